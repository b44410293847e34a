package order

import "context"

// Repository defines the data access the order workflow needs: catalog
// reads, a customer existence check, and the atomic order commit.
type Repository interface {
	// GetProduct returns the product's current name, price, and stock,
	// or (nil, nil) when the id is unknown.
	GetProduct(ctx context.Context, id string) (*ProductInfo, error)

	// CustomerExists reports whether a customer record exists.
	CustomerExists(ctx context.Context, id string) (bool, error)

	// GetCustomer returns customer details for invoice assembly,
	// or (nil, nil) when the id is unknown.
	GetCustomer(ctx context.Context, id string) (*CustomerInfo, error)

	// CreateOrder persists the order with its items and decrements each
	// product's stock, all-or-nothing. A decrement that would drive stock
	// negative aborts the whole order with *InsufficientStockError and
	// leaves every product untouched.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order with its items, or (nil, nil) when
	// the id is unknown.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// ListOrders returns all orders, newest first.
	ListOrders(ctx context.Context) ([]*Order, error)
}
