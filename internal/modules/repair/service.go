package repair

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines repair ticket business logic.
type Service interface {
	CreateRepair(ctx context.Context, req CreateRepairRequest) (*Repair, error)
	GetRepair(ctx context.Context, id string) (*Repair, error)
	ListRepairs(ctx context.Context, search string, status string) ([]*Repair, error)
	UpdateRepair(ctx context.Context, id string, req UpdateRepairRequest) (*Repair, error)
	DeleteRepair(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new repair service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validStatus(s RepairStatus) bool {
	switch s {
	case StatusReceived, StatusDiagnosing, StatusInRepair, StatusCompleted, StatusDelivered:
		return true
	}
	return false
}

func (s *service) CreateRepair(ctx context.Context, req CreateRepairRequest) (*Repair, error) {
	if req.DeviceName == "" {
		return nil, fmt.Errorf("device_name is required")
	}
	status := RepairStatus(req.Status)
	if status == "" {
		status = StatusReceived
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("invalid status %q", req.Status)
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}
	rep := &Repair{
		ID:               uuid.New(),
		DeviceName:       req.DeviceName,
		SerialNumber:     req.SerialNumber,
		IMEI:             req.IMEI,
		IssueDescription: req.IssueDescription,
		Status:           status,
		TechnicianNotes:  req.TechnicianNotes,
		TechnicianID:     req.TechnicianID,
		Amount:           req.Amount,
	}
	if req.CustomerID != "" {
		customerID, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("invalid customer_id: %w", err)
		}
		rep.CustomerID = &customerID
	}
	if err := s.repo.CreateRepair(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *service) GetRepair(ctx context.Context, id string) (*Repair, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid repair id: %w", err)
	}
	rep, err := s.repo.GetRepairByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, fmt.Errorf("repair %s not found", id)
	}
	return rep, nil
}

func (s *service) ListRepairs(ctx context.Context, search string, status string) ([]*Repair, error) {
	return s.repo.ListRepairs(ctx, search, status)
}

func (s *service) UpdateRepair(ctx context.Context, id string, req UpdateRepairRequest) (*Repair, error) {
	rep, err := s.GetRepair(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.DeviceName != nil {
		if *req.DeviceName == "" {
			return nil, fmt.Errorf("device_name is required")
		}
		rep.DeviceName = *req.DeviceName
	}
	if req.SerialNumber != nil {
		rep.SerialNumber = *req.SerialNumber
	}
	if req.IMEI != nil {
		rep.IMEI = *req.IMEI
	}
	if req.IssueDescription != nil {
		rep.IssueDescription = *req.IssueDescription
	}
	if req.Status != nil {
		status := RepairStatus(*req.Status)
		if !validStatus(status) {
			return nil, fmt.Errorf("invalid status %q", *req.Status)
		}
		rep.Status = status
	}
	if req.TechnicianNotes != nil {
		rep.TechnicianNotes = *req.TechnicianNotes
	}
	if req.TechnicianID != nil {
		rep.TechnicianID = *req.TechnicianID
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, fmt.Errorf("amount must not be negative")
		}
		rep.Amount = *req.Amount
	}
	if req.CustomerID != nil {
		if *req.CustomerID == "" {
			rep.CustomerID = nil
		} else {
			customerID, err := uuid.Parse(*req.CustomerID)
			if err != nil {
				return nil, fmt.Errorf("invalid customer_id: %w", err)
			}
			rep.CustomerID = &customerID
		}
	}
	if err := s.repo.UpdateRepair(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *service) DeleteRepair(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid repair id: %w", err)
	}
	return s.repo.DeleteRepair(ctx, id)
}
