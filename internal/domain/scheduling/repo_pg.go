package scheduling

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/callmeAyanda/digital-healthcare-management-system/internal/platform/auth"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `id, patient_id, provider_id, date, slot_time, status, reason, notes, created_at, updated_at`

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *repoPG) Insert(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (id, patient_id, provider_id, date, slot_time, status, reason, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.PatientID, a.ProviderID, a.Date, a.Time, a.Status, a.Reason, a.Notes)
	if isUniqueViolation(err) {
		// The partial unique index caught a concurrent booking that the
		// service-level pre-check missed.
		return ErrSlotConflict
	}
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	var a Appointment
	err := r.pool.QueryRow(ctx, `SELECT `+apptCols+` FROM appointment WHERE id = $1`, id).
		Scan(&a.ID, &a.PatientID, &a.ProviderID, &a.Date, &a.Time, &a.Status,
			&a.Reason, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string, notes *string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointment
		SET status = $2, notes = COALESCE($3, notes), updated_at = NOW()
		WHERE id = $1`,
		id, status, notes)
	if isUniqueViolation(err) {
		return ErrSlotConflict
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) TakenTimes(ctx context.Context, providerID uuid.UUID, date string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT slot_time FROM appointment
		WHERE provider_id = $1 AND date = $2 AND status <> 'cancelled'`,
		providerID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

func (r *repoPG) PatientIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT id FROM patient WHERE user_id = $1`, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, auth.ErrProfileMissing
	}
	return id, err
}

func (r *repoPG) ProviderIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT id FROM provider WHERE user_id = $1`, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, auth.ErrProfileMissing
	}
	return id, err
}

func (r *repoPG) ProviderExists(ctx context.Context, providerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM provider WHERE id = $1)`, providerID).Scan(&exists)
	return exists, err
}
