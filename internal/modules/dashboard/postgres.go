package dashboard

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/georgemunganga/crm-backend/internal/modules/repair"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new postgres-backed dashboard repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

const lowStockThreshold = 5

func (r *postgresRepository) CountCustomers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM customers`)
}

func (r *postgresRepository) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

func (r *postgresRepository) CountLowStockProducts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE stock < $1`, lowStockThreshold)
}

func (r *postgresRepository) CountActiveRepairs(ctx context.Context) (int, error) {
	statuses := make([]string, len(repair.ActiveStatuses))
	for i, s := range repair.ActiveStatuses {
		statuses[i] = string(s)
	}
	return r.count(ctx, `SELECT COUNT(*) FROM repairs WHERE status = ANY($1)`, pq.Array(statuses))
}

func (r *postgresRepository) CountNewLeads(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM leads WHERE status = 'New'`)
}

func (r *postgresRepository) SumOrderTotals(ctx context.Context) (int64, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(total), 0) FROM orders`)
}

func (r *postgresRepository) SumOrderTotalsSince(ctx context.Context, since time.Time) (int64, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(total), 0) FROM orders WHERE created_at >= $1`, since)
}

func (r *postgresRepository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *postgresRepository) sum(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
