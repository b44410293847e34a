package order

import "fmt"

// NotFoundError reports an unknown customer, product, or order id.
type NotFoundError struct {
	Kind string // "customer", "product", "order"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ValidationError reports malformed order input. Nothing is applied.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// InsufficientStockError rejects an order whose requested quantity exceeds
// available stock on any line. The whole order is aborted.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}
