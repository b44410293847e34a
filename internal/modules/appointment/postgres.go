package appointment

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL appointment repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateAppointment(ctx context.Context, a *Appointment) error {
	query := `
		INSERT INTO appointments (id, customer_name, date, time, purpose, staff_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		a.ID, a.CustomerName, a.Date, a.Time, a.Purpose, a.StaffID).
		Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *postgresRepo) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_name, date, time, purpose, staff_id, created_at, updated_at
		FROM appointments ORDER BY date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []*Appointment
	for rows.Next() {
		a := &Appointment{}
		if err := rows.Scan(&a.ID, &a.CustomerName, &a.Date, &a.Time, &a.Purpose,
			&a.StaffID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (r *postgresRepo) DeleteAppointment(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	return err
}
