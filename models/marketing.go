package models

import "time"

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
}

// Subscriber is one newsletter signup.
type Subscriber struct {
	Email    string    `json:"email"`
	SignedUp time.Time `json:"signed_up"`
}
