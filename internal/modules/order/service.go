package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service defines the order placement and invoicing business logic. It is
// the sole writer of orders and the only code path allowed to decrement
// product stock.
type Service interface {
	// PlaceOrder validates the request, prices it from current catalog
	// state, and persists the order while decrementing stock atomically.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error)

	// GetInvoice assembles an order with its customer and the current
	// catalog state of each product. Stored totals are never recomputed.
	GetInvoice(ctx context.Context, id string) (*Invoice, error)

	// ListOrders returns all orders, newest first.
	ListOrders(ctx context.Context) ([]*Order, error)
}

type service struct {
	repo Repository
}

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, &ValidationError{Reason: "order must contain at least one item"}
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, &ValidationError{Reason: "invalid customer_id"}
	}

	status := PaymentPending
	if req.PaymentStatus != "" {
		status = PaymentStatus(req.PaymentStatus)
		if status != PaymentPending && status != PaymentPaid {
			return nil, &ValidationError{Reason: fmt.Sprintf("invalid payment_status %q", req.PaymentStatus)}
		}
	}

	exists, err := s.repo.CustomerExists(ctx, customerID.String())
	if err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return nil, &NotFoundError{Kind: "customer", ID: req.CustomerID}
	}

	// Price every line from current catalog state. The stock check here is
	// advisory; the binding check is the conditional decrement inside
	// CreateOrder, so two concurrent orders cannot both pass and oversell.
	orderID := uuid.New()
	var items []*OrderItem
	var total int64
	for _, li := range req.Items {
		if li.Quantity < 1 {
			return nil, &ValidationError{Reason: fmt.Sprintf("quantity must be at least 1 for product %s", li.ProductID)}
		}
		productID, err := uuid.Parse(li.ProductID)
		if err != nil {
			return nil, &NotFoundError{Kind: "product", ID: li.ProductID}
		}
		product, err := s.repo.GetProduct(ctx, productID.String())
		if err != nil {
			return nil, fmt.Errorf("get product: %w", err)
		}
		if product == nil {
			return nil, &NotFoundError{Kind: "product", ID: li.ProductID}
		}
		if product.Stock < li.Quantity {
			return nil, &InsufficientStockError{
				ProductID:   product.ID.String(),
				ProductName: product.Name,
				Requested:   li.Quantity,
				Available:   product.Stock,
			}
		}
		total += product.Price * int64(li.Quantity)
		items = append(items, &OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  li.Quantity,
			UnitPrice: product.Price,
		})
	}

	o := &Order{
		ID:            orderID,
		CustomerID:    customerID,
		Total:         total,
		PaymentStatus: status,
		Items:         items,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &NotFoundError{Kind: "order", ID: id}
	}
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if o == nil {
		return nil, &NotFoundError{Kind: "order", ID: id}
	}

	inv := &Invoice{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Total:         o.Total,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
	}

	// Customer and product ids are weak references: either may have been
	// deleted since the sale, so a missing record is not an error here.
	customer, err := s.repo.GetCustomer(ctx, o.CustomerID.String())
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	inv.Customer = customer

	for _, item := range o.Items {
		product, err := s.repo.GetProduct(ctx, item.ProductID.String())
		if err != nil {
			return nil, fmt.Errorf("get product: %w", err)
		}
		inv.Items = append(inv.Items, &InvoiceLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Product:   product,
		})
	}
	return inv, nil
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.ListOrders(ctx)
}
