package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// CreateOrder decrements stock and inserts the order and its items inside a
// single transaction. The decrement is conditional (stock >= quantity), so
// concurrent orders on the same product serialize on the row and can never
// drive stock negative; a failed condition rolls back the whole order.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range o.Items {
		res, err := tx.ExecContext(ctx, `
			UPDATE products SET stock = stock - $1, updated_at = $2
			WHERE id = $3 AND stock >= $1`,
			item.Quantity, time.Now().UTC(), item.ProductID)
		if err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			var name string
			var stock int
			err := tx.QueryRowContext(ctx,
				`SELECT name, stock FROM products WHERE id = $1`,
				item.ProductID).Scan(&name, &stock)
			if errors.Is(err, sql.ErrNoRows) {
				return &NotFoundError{Kind: "product", ID: item.ProductID.String()}
			}
			if err != nil {
				return err
			}
			return &InsufficientStockError{
				ProductID:   item.ProductID.String(),
				ProductName: name,
				Requested:   item.Quantity,
				Available:   stock,
			}
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, total, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		o.ID, o.CustomerID, o.Total, o.PaymentStatus, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)`,
			item.ID, o.ID, item.ProductID, item.Quantity, item.UnitPrice)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *postgresRepo) GetProduct(ctx context.Context, id string) (*ProductInfo, error) {
	p := &ProductInfo{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, price, stock FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Stock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) CustomerExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) GetCustomer(ctx context.Context, id string) (*CustomerInfo, error) {
	c := &CustomerInfo{}
	var email, phone sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &email, &phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Email = email.String
	c.Phone = phone.String
	return c, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	o := &Order{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, total, payment_status, created_at
		FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.CustomerID, &o.Total, &o.PaymentStatus, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o)
	return o, err
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, total, payment_status, created_at
		FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Total, &o.PaymentStatus, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.Items, err = r.listItems(ctx, o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *postgresRepo) listItems(ctx context.Context, o *Order) ([]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items WHERE order_id = $1`, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*OrderItem
	for rows.Next() {
		item := &OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
