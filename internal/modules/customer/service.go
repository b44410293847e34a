package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines customer business logic.
type Service interface {
	CreateCustomer(ctx context.Context, req UpsertCustomerRequest) (*Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	ListCustomers(ctx context.Context, search string) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, id string, req UpsertCustomerRequest) (*Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new customer service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validSegment(s Segment) bool {
	return s == SegmentNew || s == SegmentRepeat || s == SegmentVIP
}

func (s *service) CreateCustomer(ctx context.Context, req UpsertCustomerRequest) (*Customer, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	segment := Segment(req.Segment)
	if segment == "" {
		segment = SegmentNew
	}
	if !validSegment(segment) {
		return nil, fmt.Errorf("invalid segment %q", req.Segment)
	}
	c := &Customer{
		ID:             uuid.New(),
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Notes:          req.Notes,
		Segment:        segment,
		WarrantyExpiry: req.WarrantyExpiry,
		ReminderFlag:   req.ReminderFlag,
	}
	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid customer id: %w", err)
	}
	c, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("customer %s not found", id)
	}
	return c, nil
}

func (s *service) ListCustomers(ctx context.Context, search string) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx, search)
}

func (s *service) UpdateCustomer(ctx context.Context, id string, req UpsertCustomerRequest) (*Customer, error) {
	c, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	segment := Segment(req.Segment)
	if segment == "" {
		segment = c.Segment
	}
	if !validSegment(segment) {
		return nil, fmt.Errorf("invalid segment %q", req.Segment)
	}
	c.Name = req.Name
	c.Phone = req.Phone
	c.Email = req.Email
	c.Notes = req.Notes
	c.Segment = segment
	c.WarrantyExpiry = req.WarrantyExpiry
	c.ReminderFlag = req.ReminderFlag
	if err := s.repo.UpdateCustomer(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid customer id: %w", err)
	}
	return s.repo.DeleteCustomer(ctx, id)
}
