package repair

import "context"

// Repository defines data access for repair tickets.
type Repository interface {
	CreateRepair(ctx context.Context, rep *Repair) error

	// GetRepairByID returns (nil, nil) when the id is unknown.
	GetRepairByID(ctx context.Context, id string) (*Repair, error)

	// ListRepairs returns repairs newest first, optionally filtered by a
	// device-name/serial substring and by status.
	ListRepairs(ctx context.Context, search string, status string) ([]*Repair, error)

	UpdateRepair(ctx context.Context, rep *Repair) error

	DeleteRepair(ctx context.Context, id string) error
}
