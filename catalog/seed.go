package catalog

import (
	"time"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/models"
)

// Seed returns the storefront's sample catalog. This is the full product
// set until a real data source replaces it.
func Seed() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Traditional Thekua",
			Description:   "Authentic crispy wheat cookies sweetened with jaggery, made using traditional Himalayan recipes.",
			Price:         299,
			OriginalPrice: 349,
			Category:      "Traditional Sweets",
			Images:        []string{"https://images.pexels.com/photos/1395235/pexels-photo-1395235.jpeg"},
			Stock:         25,
			Weight:        "500g",
			Ingredients:   []string{"Whole Wheat Flour", "Jaggery", "Ghee", "Fennel Seeds"},
			Nutrition: models.NutritionalInfo{
				Calories: 120, Protein: 3, Carbs: 22, Fat: 4, Fiber: 2, Sugar: 8,
			},
			Reviews: []models.Review{
				{
					ID:        "1",
					UserID:    "1",
					UserName:  "Priya Sharma",
					Rating:    5,
					Comment:   "Absolutely delicious! Tastes just like my grandmother used to make. The quality is exceptional and the packaging is beautiful.",
					CreatedAt: seedDate(2025, 1, 1),
				},
				{
					ID:        "2",
					UserID:    "2",
					UserName:  "Rajesh Kumar",
					Rating:    5,
					Comment:   "Perfect for gifting during festivals. Everyone loved these traditional sweets.",
					CreatedAt: seedDate(2025, 1, 2),
				},
			},
			Rating:    4.8,
			IsOrganic: true,
			CreatedAt: seedDate(2025, 1, 1),
		},
		{
			ID:            "2",
			Name:          "Jaggery Thekua",
			Description:   "Premium organic jaggery-based sweet treats, rich in minerals and natural goodness.",
			Price:         399,
			OriginalPrice: 449,
			Category:      "Organic Sweets",
			Images:        []string{"https://images.pexels.com/photos/1395235/pexels-photo-1395235.jpeg"},
			Stock:         18,
			Weight:        "750g",
			Ingredients:   []string{"Organic Wheat Flour", "Organic Jaggery", "Pure Ghee", "Cardamom"},
			Nutrition: models.NutritionalInfo{
				Calories: 135, Protein: 3.5, Carbs: 25, Fat: 4.5, Fiber: 2.5, Sugar: 12,
			},
			Reviews:   []models.Review{},
			Rating:    4.9,
			IsOrganic: true,
			CreatedAt: seedDate(2025, 1, 1),
		},
		{
			ID:            "3",
			Name:          "Himalayan Combo Pack",
			Description:   "Perfect gift set containing our best traditional sweets from the Himalayan region.",
			Price:         799,
			OriginalPrice: 999,
			Category:      "Combo Packs",
			Images:        []string{"https://images.pexels.com/photos/1395235/pexels-photo-1395235.jpeg"},
			Stock:         12,
			Weight:        "1.5kg",
			Ingredients:   []string{"Mixed Traditional Sweets", "Organic Ingredients", "Pure Ghee"},
			Nutrition: models.NutritionalInfo{
				Calories: 125, Protein: 3.2, Carbs: 23, Fat: 4.2, Fiber: 2.2, Sugar: 10,
			},
			Reviews:   []models.Review{},
			Rating:    4.7,
			IsOrganic: true,
			CreatedAt: seedDate(2025, 1, 1),
		},
		{
			ID:          "4",
			Name:        "Organic Sesame Laddoo",
			Description: "Nutritious sesame seed balls made with pure jaggery and traditional spices.",
			Price:       449,
			Category:    "Organic Sweets",
			Images:      []string{"https://images.pexels.com/photos/1395235/pexels-photo-1395235.jpeg"},
			Stock:       20,
			Weight:      "600g",
			Ingredients: []string{"Sesame Seeds", "Jaggery", "Cardamom", "Ghee"},
			Nutrition: models.NutritionalInfo{
				Calories: 145, Protein: 4, Carbs: 18, Fat: 6, Fiber: 3, Sugar: 9,
			},
			Reviews:   []models.Review{},
			Rating:    4.6,
			IsOrganic: true,
			CreatedAt: seedDate(2025, 1, 1),
		},
	}
}

// Testimonials returns the home page's customer quotes.
func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:     "Anjali Gupta",
			Location: "Mumbai",
			Text:     "The quality is exceptional! These traditional sweets remind me of my childhood.",
			Rating:   5,
		},
		{
			Name:     "Rajesh Kumar",
			Location: "Delhi",
			Text:     "Authentic taste and premium quality. HIMRAS has become our family favorite.",
			Rating:   5,
		},
		{
			Name:     "Meera Patel",
			Location: "Bangalore",
			Text:     "Perfect for festivals and special occasions. The packaging is beautiful too!",
			Rating:   5,
		},
	}
}

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
