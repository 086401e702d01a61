package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/catalog"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/config"
	marketingControllers "github.com/GANESHVERMA730/HIMRAS-PROJECT/controllers/marketing"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/metrics"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/middleware"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/routes"
	"github.com/GANESHVERMA730/HIMRAS-PROJECT/session"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}

	// The catalog is loaded once and stays read-only for the life of the
	// process.
	store := catalog.NewStore(catalog.Seed())
	log.Printf("✅ Catalog loaded: %d products", store.Len())

	sessions := session.NewManager(cfg.SessionTTL, cfg.CartPolicy())
	newsletter := marketingControllers.NewNewsletter()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Request metrics
	m := metrics.NewServerMetrics()
	r.Use(middleware.Observe(m))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Config:     cfg,
		Store:      store,
		Sessions:   sessions,
		Newsletter: newsletter,
	})

	// Sweep expired sessions every hour
	stop := make(chan struct{})
	defer close(stop)
	go sessions.StartSweeper(time.Hour, stop)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
