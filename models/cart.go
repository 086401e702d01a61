package models

import "time"

// CartLine is one entry in a session's cart. Product display fields are
// snapshotted at add-time, and UnitPrice is locked on first insertion: later
// catalog price changes do not move a line that is already in the cart.
type CartLine struct {
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	ProductStock int       `json:"product_stock"`
	Weight       string    `json:"weight"`
	UnitPrice    int       `json:"unit_price"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// Totals is the order summary shown on the cart page. All amounts are in
// whole currency units.
type Totals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Tax      int `json:"tax"`
	Total    int `json:"total"`
}
