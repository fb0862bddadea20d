package models

import "time"

// WishlistItem defines the struct for the 'wishlist_items' table.
type WishlistItem struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	ProductID int64     `json:"productId" db:"product_id"`
	AddedAt   time.Time `json:"addedAt" db:"added_at"`
}
