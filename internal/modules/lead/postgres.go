package lead

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL lead repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateLead(ctx context.Context, l *Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, interest, status, callback_requested, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		l.ID, l.Name, l.Email, l.Phone, l.Interest, l.Status, l.CallbackRequested, l.Notes).
		Scan(&l.CreatedAt, &l.UpdatedAt)
}

func (r *postgresRepo) GetLeadByID(ctx context.Context, id string) (*Lead, error) {
	l := &Lead{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, interest, status, callback_requested, notes, created_at, updated_at
		FROM leads WHERE id = $1`, id).
		Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Interest, &l.Status,
			&l.CallbackRequested, &l.Notes, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *postgresRepo) ListLeads(ctx context.Context) ([]*Lead, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, interest, status, callback_requested, notes, created_at, updated_at
		FROM leads ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*Lead
	for rows.Next() {
		l := &Lead{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Interest, &l.Status,
			&l.CallbackRequested, &l.Notes, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *postgresRepo) UpdateLead(ctx context.Context, l *Lead) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE leads
		SET name=$1, email=$2, phone=$3, interest=$4, status=$5, callback_requested=$6, notes=$7, updated_at=$8
		WHERE id=$9`,
		l.Name, l.Email, l.Phone, l.Interest, l.Status, l.CallbackRequested, l.Notes,
		time.Now().UTC(), l.ID)
	return err
}

func (r *postgresRepo) DeleteLead(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id=$1`, id)
	return err
}
