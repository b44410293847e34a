package lead

import (
	"context"
	"fmt"

	"github.com/georgemunganga/crm-backend/internal/modules/customer"
	"github.com/google/uuid"
)

// CustomerCreator creates the customer record a converted lead becomes.
// Satisfied by the customer module's service.
type CustomerCreator interface {
	CreateCustomer(ctx context.Context, req customer.UpsertCustomerRequest) (*customer.Customer, error)
}

// Service defines lead business logic.
type Service interface {
	CreateLead(ctx context.Context, req UpsertLeadRequest) (*Lead, error)
	GetLead(ctx context.Context, id string) (*Lead, error)
	ListLeads(ctx context.Context) ([]*Lead, error)
	UpdateLead(ctx context.Context, id string, req UpsertLeadRequest) (*Lead, error)
	DeleteLead(ctx context.Context, id string) error

	// ConvertLead creates a customer from the lead and marks it Converted.
	ConvertLead(ctx context.Context, id string) (*ConvertResult, error)
}

type service struct {
	repo      Repository
	customers CustomerCreator
}

// NewService creates a new lead service.
func NewService(repo Repository, customers CustomerCreator) Service {
	return &service{repo: repo, customers: customers}
}

func validStatus(s LeadStatus) bool {
	switch s {
	case StatusNew, StatusContacted, StatusConverted, StatusLost:
		return true
	}
	return false
}

func (s *service) CreateLead(ctx context.Context, req UpsertLeadRequest) (*Lead, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	status := LeadStatus(req.Status)
	if status == "" {
		status = StatusNew
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("invalid status %q", req.Status)
	}
	l := &Lead{
		ID:                uuid.New(),
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Interest:          req.Interest,
		Status:            status,
		CallbackRequested: req.CallbackRequested,
		Notes:             req.Notes,
	}
	if err := s.repo.CreateLead(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) GetLead(ctx context.Context, id string) (*Lead, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid lead id: %w", err)
	}
	l, err := s.repo.GetLeadByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("lead %s not found", id)
	}
	return l, nil
}

func (s *service) ListLeads(ctx context.Context) ([]*Lead, error) {
	return s.repo.ListLeads(ctx)
}

func (s *service) UpdateLead(ctx context.Context, id string, req UpsertLeadRequest) (*Lead, error) {
	l, err := s.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	status := LeadStatus(req.Status)
	if status == "" {
		status = l.Status
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("invalid status %q", req.Status)
	}
	l.Name = req.Name
	l.Email = req.Email
	l.Phone = req.Phone
	l.Interest = req.Interest
	l.Status = status
	l.CallbackRequested = req.CallbackRequested
	l.Notes = req.Notes
	if err := s.repo.UpdateLead(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) DeleteLead(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid lead id: %w", err)
	}
	return s.repo.DeleteLead(ctx, id)
}

func (s *service) ConvertLead(ctx context.Context, id string) (*ConvertResult, error) {
	l, err := s.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}
	c, err := s.customers.CreateCustomer(ctx, customer.UpsertCustomerRequest{
		Name:    l.Name,
		Email:   l.Email,
		Phone:   l.Phone,
		Notes:   fmt.Sprintf("Converted from lead. Interest: %s", l.Interest),
		Segment: string(customer.SegmentNew),
	})
	if err != nil {
		return nil, fmt.Errorf("create customer from lead: %w", err)
	}
	l.Status = StatusConverted
	if err := s.repo.UpdateLead(ctx, l); err != nil {
		return nil, err
	}
	return &ConvertResult{CustomerID: c.ID.String()}, nil
}
