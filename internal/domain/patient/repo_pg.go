package patient

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

const patientCols = `id, user_id, first_name, last_name, date_of_birth, phone,
	address, emergency_contact, blood_type, allergies, medical_history,
	created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.DateOfBirth,
		&p.Phone, &p.Address, &p.EmergencyContact, &p.BloodType, &p.Allergies,
		&p.MedicalHistory, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient (id, user_id, first_name, last_name, date_of_birth,
			phone, address, emergency_contact, blood_type, allergies, medical_history)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.UserID, p.FirstName, p.LastName, p.DateOfBirth,
		p.Phone, p.Address, p.EmergencyContact, p.BloodType, p.Allergies, p.MedicalHistory)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrProfileExists
	}
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *repoPG) GetByUserID(ctx context.Context, userID uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE user_id = $1`, userID))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE patient SET first_name=$2, last_name=$3, date_of_birth=$4, phone=$5,
			address=$6, emergency_contact=$7, blood_type=$8, allergies=$9,
			medical_history=$10, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Phone,
		p.Address, p.EmergencyContact, p.BloodType, p.Allergies, p.MedicalHistory)
	return err
}

func (r *repoPG) PatientIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT id FROM patient WHERE user_id = $1`, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, ErrNotFound
	}
	return id, err
}

func (r *repoPG) PatientExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM patient WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *repoPG) ListAppointments(ctx context.Context, patientID uuid.UUID) ([]*AppointmentView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.provider_id, a.date, a.slot_time, a.status, a.reason, a.notes,
			pr.first_name || ' ' || pr.last_name, pr.specialization
		FROM appointment a
		JOIN provider pr ON pr.id = a.provider_id
		WHERE a.patient_id = $1
		ORDER BY a.date DESC, a.slot_time DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*AppointmentView
	for rows.Next() {
		var v AppointmentView
		if err := rows.Scan(&v.ID, &v.ProviderID, &v.Date, &v.Time, &v.Status,
			&v.Reason, &v.Notes, &v.ProviderName, &v.ProviderSpecialization); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}

func (r *repoPG) ListPrescriptions(ctx context.Context, patientID uuid.UUID) ([]*PrescriptionView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.provider_id, p.medications, p.instructions, p.status,
			pr.first_name || ' ' || pr.last_name, p.created_at
		FROM prescription p
		JOIN provider pr ON pr.id = p.provider_id
		WHERE p.patient_id = $1
		ORDER BY p.created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*PrescriptionView
	for rows.Next() {
		var v PrescriptionView
		if err := rows.Scan(&v.ID, &v.ProviderID, &v.Medications, &v.Instructions,
			&v.Status, &v.ProviderName, &v.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}

func (r *repoPG) ListMedicalRecords(ctx context.Context, patientID uuid.UUID) ([]*MedicalRecordView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.provider_id, m.record_type, m.title, m.description, m.date,
			pr.first_name || ' ' || pr.last_name, m.created_at
		FROM medical_record m
		JOIN provider pr ON pr.id = m.provider_id
		WHERE m.patient_id = $1
		ORDER BY m.date DESC, m.created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*MedicalRecordView
	for rows.Next() {
		var v MedicalRecordView
		if err := rows.Scan(&v.ID, &v.ProviderID, &v.RecordType, &v.Title,
			&v.Description, &v.Date, &v.ProviderName, &v.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}
