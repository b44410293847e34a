package catalog

import (
	"time"

	"github.com/google/uuid"
)

// lowStockThreshold flags products running out on the dashboard and the
// low-stock product filter.
const lowStockThreshold = 5

// Product is a catalog item. Price is in minor currency units (cents);
// stock is never negative.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Price     int64     `json:"price"` // cents
	Stock     int       `json:"stock"`
	Supplier  string    `json:"supplier,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProductRequest is the payload for adding a product.
type CreateProductRequest struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Supplier string `json:"supplier,omitempty"`
}

// UpdateProductRequest carries a partial update; nil fields are untouched.
type UpdateProductRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Price    *int64  `json:"price,omitempty"`
	Stock    *int    `json:"stock,omitempty"`
	Supplier *string `json:"supplier,omitempty"`
}
