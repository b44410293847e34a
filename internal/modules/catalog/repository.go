package catalog

import "context"

// Repository defines data access for catalog products. Stock decrement as
// a side effect of a sale is owned by the order module's transaction and
// deliberately absent here.
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error

	// GetProductByID returns (nil, nil) when the id is unknown.
	GetProductByID(ctx context.Context, id string) (*Product, error)

	// ListProducts returns products ordered by name, optionally filtered
	// by a name substring and by low stock.
	ListProducts(ctx context.Context, search string, lowStock bool) ([]*Product, error)

	UpdateProduct(ctx context.Context, p *Product) error

	DeleteProduct(ctx context.Context, id string) error
}
