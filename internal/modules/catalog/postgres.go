package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL catalog repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateProduct(ctx context.Context, p *Product) error {
	query := `
		INSERT INTO products (id, name, category, price, stock, supplier)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		p.ID, p.Name, p.Category, p.Price, p.Stock, p.Supplier).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *postgresRepo) GetProductByID(ctx context.Context, id string) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, price, stock, supplier, created_at, updated_at
		FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Supplier,
			&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) ListProducts(ctx context.Context, search string, lowStock bool) ([]*Product, error) {
	query := `
		SELECT id, name, category, price, stock, supplier, created_at, updated_at
		FROM products WHERE 1=1`
	var args []interface{}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if lowStock {
		args = append(args, lowStockThreshold)
		query += fmt.Sprintf(" AND stock < $%d", len(args))
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock,
			&p.Supplier, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products SET name=$1, category=$2, price=$3, stock=$4, supplier=$5, updated_at=$6
		WHERE id=$7`,
		p.Name, p.Category, p.Price, p.Stock, p.Supplier, time.Now().UTC(), p.ID)
	return err
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	return err
}
