package provider

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const providerCols = `id, user_id, first_name, last_name, specialization,
	license_number, phone, department, created_at, updated_at`

func scanProvider(row pgx.Row) (*Provider, error) {
	var p Provider
	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Specialization,
		&p.LicenseNumber, &p.Phone, &p.Department, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Provider) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO provider (id, user_id, first_name, last_name, specialization,
			license_number, phone, department)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.UserID, p.FirstName, p.LastName, p.Specialization,
		p.LicenseNumber, p.Phone, p.Department)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrProfileExists
	}
	return err
}

func (r *repoPG) GetByUserID(ctx context.Context, userID uuid.UUID) (*Provider, error) {
	return scanProvider(r.pool.QueryRow(ctx, `SELECT `+providerCols+` FROM provider WHERE user_id = $1`, userID))
}

func (r *repoPG) ListAll(ctx context.Context) ([]*DirectoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, specialization, department
		FROM provider
		ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*DirectoryEntry
	for rows.Next() {
		var e DirectoryEntry
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Specialization, &e.Department); err != nil {
			return nil, err
		}
		items = append(items, &e)
	}
	return items, rows.Err()
}

func (r *repoPG) ProviderIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT id FROM provider WHERE user_id = $1`, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, ErrNotFound
	}
	return id, err
}

func (r *repoPG) ListAppointments(ctx context.Context, providerID uuid.UUID) ([]*AppointmentView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.patient_id, a.date, a.slot_time, a.status, a.reason, a.notes,
			pt.first_name || ' ' || pt.last_name, pt.phone
		FROM appointment a
		JOIN patient pt ON pt.id = a.patient_id
		WHERE a.provider_id = $1
		ORDER BY a.date ASC, a.slot_time ASC`, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*AppointmentView
	for rows.Next() {
		var v AppointmentView
		if err := rows.Scan(&v.ID, &v.PatientID, &v.Date, &v.Time, &v.Status,
			&v.Reason, &v.Notes, &v.PatientName, &v.PatientPhone); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}
