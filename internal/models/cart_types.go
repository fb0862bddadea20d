package models

import "time"

// CartItem defines the struct for the 'cart_items' table.
// One row per (UserID, ProductID); adding the same product again merges quantities.
type CartItem struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	ProductID int64     `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	AddedAt   time.Time `json:"addedAt" db:"added_at"`
}
