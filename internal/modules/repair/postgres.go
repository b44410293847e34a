package repair

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL repair repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateRepair(ctx context.Context, rep *Repair) error {
	query := `
		INSERT INTO repairs
		  (id, device_name, serial_number, imei, issue_description, status,
		   technician_notes, technician_id, amount, customer_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		rep.ID, rep.DeviceName, rep.SerialNumber, rep.IMEI, rep.IssueDescription,
		rep.Status, rep.TechnicianNotes, rep.TechnicianID, rep.Amount, rep.CustomerID).
		Scan(&rep.CreatedAt, &rep.UpdatedAt)
}

func (r *postgresRepo) GetRepairByID(ctx context.Context, id string) (*Repair, error) {
	rep := &Repair{}
	var customerID sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, device_name, serial_number, imei, issue_description, status,
		       technician_notes, technician_id, amount, customer_id, created_at, updated_at
		FROM repairs WHERE id = $1`, id).
		Scan(&rep.ID, &rep.DeviceName, &rep.SerialNumber, &rep.IMEI, &rep.IssueDescription,
			&rep.Status, &rep.TechnicianNotes, &rep.TechnicianID, &rep.Amount,
			&customerID, &rep.CreatedAt, &rep.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if customerID.Valid {
		cid, err := uuid.Parse(customerID.String)
		if err != nil {
			return nil, err
		}
		rep.CustomerID = &cid
	}
	return rep, nil
}

func (r *postgresRepo) ListRepairs(ctx context.Context, search string, status string) ([]*Repair, error) {
	query := `
		SELECT id, device_name, serial_number, imei, issue_description, status,
		       technician_notes, technician_id, amount, customer_id, created_at, updated_at
		FROM repairs WHERE 1=1`
	var args []interface{}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += ` AND (device_name ILIKE $1 OR serial_number ILIKE $1)`
	}
	if status != "" {
		args = append(args, status)
		if len(args) == 1 {
			query += ` AND status = $1`
		} else {
			query += ` AND status = $2`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repairs []*Repair
	for rows.Next() {
		rep := &Repair{}
		var customerID sql.NullString
		if err := rows.Scan(&rep.ID, &rep.DeviceName, &rep.SerialNumber, &rep.IMEI,
			&rep.IssueDescription, &rep.Status, &rep.TechnicianNotes, &rep.TechnicianID,
			&rep.Amount, &customerID, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, err
		}
		if customerID.Valid {
			cid, err := uuid.Parse(customerID.String)
			if err != nil {
				return nil, err
			}
			rep.CustomerID = &cid
		}
		repairs = append(repairs, rep)
	}
	return repairs, rows.Err()
}

func (r *postgresRepo) UpdateRepair(ctx context.Context, rep *Repair) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE repairs
		SET device_name=$1, serial_number=$2, imei=$3, issue_description=$4, status=$5,
		    technician_notes=$6, technician_id=$7, amount=$8, customer_id=$9, updated_at=$10
		WHERE id=$11`,
		rep.DeviceName, rep.SerialNumber, rep.IMEI, rep.IssueDescription, rep.Status,
		rep.TechnicianNotes, rep.TechnicianID, rep.Amount, rep.CustomerID,
		time.Now().UTC(), rep.ID)
	return err
}

func (r *postgresRepo) DeleteRepair(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM repairs WHERE id=$1`, id)
	return err
}
