package models

import "time"

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         int             `json:"price"`
	OriginalPrice int             `json:"originalPrice,omitempty"` // 0 means no strike-through price
	Category      string          `json:"category"`
	Images        []string        `json:"images"`
	Stock         int             `json:"stock"`
	Weight        string          `json:"weight"`
	Ingredients   []string        `json:"ingredients"`
	Nutrition     NutritionalInfo `json:"nutritionalInfo"`
	Reviews       []Review        `json:"reviews"`
	Rating        float64         `json:"rating"`
	IsOrganic     bool            `json:"isOrganic"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Per-serving values shown on the product detail page.
type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}
