package customer

import "context"

// Repository defines data access for customers.
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error

	// GetCustomerByID returns (nil, nil) when the id is unknown.
	GetCustomerByID(ctx context.Context, id string) (*Customer, error)

	// ListCustomers returns customers newest first, optionally filtered by
	// a name/email/phone substring.
	ListCustomers(ctx context.Context, search string) ([]*Customer, error)

	UpdateCustomer(ctx context.Context, c *Customer) error

	DeleteCustomer(ctx context.Context, id string) error
}
