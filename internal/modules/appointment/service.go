package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines appointment business logic.
type Service interface {
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error)
	ListAppointments(ctx context.Context) ([]*Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new appointment service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error) {
	if req.CustomerName == "" {
		return nil, fmt.Errorf("customer_name is required")
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}
	if req.Time == "" {
		return nil, fmt.Errorf("time is required")
	}
	a := &Appointment{
		ID:           uuid.New(),
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Time:         req.Time,
		Purpose:      req.Purpose,
		StaffID:      req.StaffID,
	}
	if err := s.repo.CreateAppointment(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	return s.repo.ListAppointments(ctx)
}

func (s *service) DeleteAppointment(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid appointment id: %w", err)
	}
	return s.repo.DeleteAppointment(ctx, id)
}
