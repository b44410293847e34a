package lead

import "context"

// Repository defines data access for leads.
type Repository interface {
	CreateLead(ctx context.Context, l *Lead) error

	// GetLeadByID returns (nil, nil) when the id is unknown.
	GetLeadByID(ctx context.Context, id string) (*Lead, error)

	// ListLeads returns leads newest first.
	ListLeads(ctx context.Context) ([]*Lead, error)

	UpdateLead(ctx context.Context, l *Lead) error

	DeleteLead(ctx context.Context, id string) error
}
