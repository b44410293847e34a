package customer

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL customer repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateCustomer(ctx context.Context, c *Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, email, notes, segment, warranty_expiry, reminder_flag)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, c.Notes, c.Segment, c.WarrantyExpiry, c.ReminderFlag).
		Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *postgresRepo) GetCustomerByID(ctx context.Context, id string) (*Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx, `
		SELECT id, name, phone, email, notes, segment, warranty_expiry, reminder_flag, created_at, updated_at
		FROM customers WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

func (r *postgresRepo) ListCustomers(ctx context.Context, search string) ([]*Customer, error) {
	query := `
		SELECT id, name, phone, email, notes, segment, warranty_expiry, reminder_flag, created_at, updated_at
		FROM customers`
	var args []interface{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*Customer
	for rows.Next() {
		c := &Customer{}
		var warrantyExpiry sql.NullTime
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Notes, &c.Segment,
			&warrantyExpiry, &c.ReminderFlag, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		if warrantyExpiry.Valid {
			c.WarrantyExpiry = &warrantyExpiry.Time
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *postgresRepo) UpdateCustomer(ctx context.Context, c *Customer) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET name=$1, phone=$2, email=$3, notes=$4, segment=$5, warranty_expiry=$6, reminder_flag=$7, updated_at=$8
		WHERE id=$9`,
		c.Name, c.Phone, c.Email, c.Notes, c.Segment, c.WarrantyExpiry, c.ReminderFlag,
		time.Now().UTC(), c.ID)
	return err
}

func (r *postgresRepo) DeleteCustomer(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id=$1`, id)
	return err
}

func scanCustomer(row *sql.Row) (*Customer, error) {
	c := &Customer{}
	var warrantyExpiry sql.NullTime
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Notes, &c.Segment,
		&warrantyExpiry, &c.ReminderFlag, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if warrantyExpiry.Valid {
		c.WarrantyExpiry = &warrantyExpiry.Time
	}
	return c, nil
}
