package model

import "time"

// Order is a pending-queue entry. Price stays as the raw text the client
// submitted; it is only parsed at checkout time.
type Order struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Item      string    `json:"item"`
	Quantity  int       `json:"quantity"`
	Notes     string    `json:"notes"`
	Price     string    `json:"price"`
}
