package admin

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}

func (r *repoPG) CountPatients(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM patient`)
}

func (r *repoPG) CountProviders(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM provider`)
}

func (r *repoPG) CountAppointments(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM appointment`)
}

func (r *repoPG) CountPrescriptions(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM prescription`)
}

func (r *repoPG) CountAppointmentsOn(ctx context.Context, date string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM appointment WHERE date = $1`, date)
}

const recentApptQuery = `
	SELECT a.id, a.date, a.slot_time, a.status, a.reason,
		pt.first_name || ' ' || pt.last_name,
		pr.first_name || ' ' || pr.last_name,
		a.created_at
	FROM appointment a
	JOIN patient pt ON pt.id = a.patient_id
	JOIN provider pr ON pr.id = a.provider_id
	ORDER BY a.created_at DESC`

func (r *repoPG) queryAppointments(ctx context.Context, query string, args ...interface{}) ([]*RecentAppointment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*RecentAppointment
	for rows.Next() {
		var a RecentAppointment
		if err := rows.Scan(&a.ID, &a.Date, &a.Time, &a.Status, &a.Reason,
			&a.PatientName, &a.ProviderName, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}

func (r *repoPG) RecentAppointments(ctx context.Context, limit int) ([]*RecentAppointment, error) {
	return r.queryAppointments(ctx, recentApptQuery+` LIMIT $1`, limit)
}

func (r *repoPG) ListPatients(ctx context.Context, limit, offset int) ([]*PatientSummary, int, error) {
	total, err := r.count(ctx, `SELECT COUNT(*) FROM patient`)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, date_of_birth, phone, created_at
		FROM patient
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*PatientSummary
	for rows.Next() {
		var p PatientSummary
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Phone, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &p)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListProviders(ctx context.Context, limit, offset int) ([]*ProviderSummary, int, error) {
	total, err := r.count(ctx, `SELECT COUNT(*) FROM provider`)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, specialization, department, license_number, created_at
		FROM provider
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*ProviderSummary
	for rows.Next() {
		var p ProviderSummary
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Specialization,
			&p.Department, &p.LicenseNumber, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &p)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListAppointments(ctx context.Context, limit, offset int) ([]*RecentAppointment, int, error) {
	total, err := r.count(ctx, `SELECT COUNT(*) FROM appointment`)
	if err != nil {
		return nil, 0, err
	}
	items, err := r.queryAppointments(ctx, recentApptQuery+` LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
