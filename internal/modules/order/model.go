package order

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus marks whether an order has been paid.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

// Order is a completed sale. Total and per-item unit prices are captured
// at purchase time and never recomputed from the catalog afterwards.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	CustomerID    uuid.UUID     `json:"customer_id"`
	Total         int64         `json:"total"` // minor currency units (cents)
	PaymentStatus PaymentStatus `json:"payment_status"`
	Items         []*OrderItem  `json:"items"`
	CreatedAt     time.Time     `json:"created_at"`
}

// OrderItem is a single line within an order.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"` // snapshot at purchase time, cents
}

// LineItem is a (product, quantity) pair in an order request, prior to pricing.
type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderRequest is the payload for creating a new order.
type PlaceOrderRequest struct {
	CustomerID    string     `json:"customer_id"`
	Items         []LineItem `json:"items"`
	PaymentStatus string     `json:"payment_status,omitempty"`
}

// ProductInfo is the catalog view the order workflow reads: current price
// and stock for validation and pricing, current name for display.
type ProductInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
	Stock int       `json:"stock"`
}

// CustomerInfo is the customer view resolved onto an invoice.
type CustomerInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
	Phone string    `json:"phone,omitempty"`
}

// InvoiceLine pairs an order line with the product as it exists now.
// UnitPrice is historical; Product carries the current catalog state and
// is nil when the product has since been deleted.
type InvoiceLine struct {
	ProductID uuid.UUID    `json:"product_id"`
	Quantity  int          `json:"quantity"`
	UnitPrice int64        `json:"unit_price"`
	Product   *ProductInfo `json:"product,omitempty"`
}

// Invoice is an order assembled with its customer and live product data.
type Invoice struct {
	ID            uuid.UUID      `json:"id"`
	CustomerID    uuid.UUID      `json:"customer_id"`
	Total         int64          `json:"total"`
	PaymentStatus PaymentStatus  `json:"payment_status"`
	CreatedAt     time.Time      `json:"created_at"`
	Customer      *CustomerInfo  `json:"customer,omitempty"`
	Items         []*InvoiceLine `json:"items"`
}
