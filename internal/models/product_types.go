package models

import "github.com/shopspring/decimal"

// Inventory status labels. Stored as free text, not derived from Quantity.
const (
	InventoryInStock    = "INSTOCK"
	InventoryLowStock   = "LOWSTOCK"
	InventoryOutOfStock = "OUTOFSTOCK"
)

// Product is the model for the 'products' table.
// CreatedAt and UpdatedAt are unix seconds.
type Product struct {
	ID                int64           `json:"id" db:"id"`
	Code              string          `json:"code" db:"code"`
	Name              string          `json:"name" db:"name"`
	Description       string          `json:"description" db:"description"`
	Image             string          `json:"image" db:"image"`
	Category          string          `json:"category" db:"category"`
	Price             decimal.Decimal `json:"price" db:"price"`
	Quantity          int             `json:"quantity" db:"quantity"`
	InternalReference string          `json:"internalReference" db:"internal_reference"`
	ShelfID           int             `json:"shelfId" db:"shelf_id"`
	InventoryStatus   string          `json:"inventoryStatus" db:"inventory_status"`
	Rating            decimal.Decimal `json:"rating" db:"rating"`
	CreatedAt         int64           `json:"createdAt" db:"created_at"`
	UpdatedAt         int64           `json:"updatedAt" db:"updated_at"`
}
