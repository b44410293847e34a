package dashboard

import (
	"context"
	"time"
)

// Stats is the analytics snapshot shown on the dashboard. Revenue figures
// are sums of stored order totals, in minor currency units.
type Stats struct {
	TotalCustomers   int   `json:"total_customers"`
	TotalProducts    int   `json:"total_products"`
	LowStockProducts int   `json:"low_stock_products"`
	ActiveRepairs    int   `json:"active_repairs"`
	TotalRevenue     int64 `json:"total_revenue"`
	MonthlyRevenue   int64 `json:"monthly_revenue"`
	NewLeads         int   `json:"new_leads"`
}

// Repository defines the aggregation queries behind the dashboard.
type Repository interface {
	CountCustomers(ctx context.Context) (int, error)
	CountProducts(ctx context.Context) (int, error)
	CountLowStockProducts(ctx context.Context) (int, error)
	CountActiveRepairs(ctx context.Context) (int, error)
	CountNewLeads(ctx context.Context) (int, error)
	SumOrderTotals(ctx context.Context) (int64, error)
	SumOrderTotalsSince(ctx context.Context, since time.Time) (int64, error)
}

// Service assembles dashboard statistics.
type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new dashboard service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var err error

	if stats.TotalCustomers, err = s.repo.CountCustomers(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.repo.CountProducts(ctx); err != nil {
		return nil, err
	}
	if stats.LowStockProducts, err = s.repo.CountLowStockProducts(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveRepairs, err = s.repo.CountActiveRepairs(ctx); err != nil {
		return nil, err
	}
	if stats.NewLeads, err = s.repo.CountNewLeads(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.repo.SumOrderTotals(ctx); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if stats.MonthlyRevenue, err = s.repo.SumOrderTotalsSince(ctx, monthStart); err != nil {
		return nil, err
	}
	return stats, nil
}
