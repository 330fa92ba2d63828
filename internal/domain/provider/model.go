package provider

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("provider not found")
	ErrProfileExists = errors.New("provider profile already exists")
)

// Provider maps to the provider table. Exactly one profile per user account.
type Provider struct {
	ID             uuid.UUID `db:"id" json:"id"`
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	Specialization string    `db:"specialization" json:"specialization"`
	LicenseNumber  string    `db:"license_number" json:"license_number"`
	Phone          string    `db:"phone" json:"phone"`
	Department     string    `db:"department" json:"department"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// DirectoryEntry is the public shape of a provider as the booking page
// shows it. Contact and licensing details stay out of the public listing.
type DirectoryEntry struct {
	ID             uuid.UUID `db:"id" json:"id"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	Specialization string    `db:"specialization" json:"specialization"`
	Department     string    `db:"department" json:"department"`
}

// AppointmentView is an appointment row joined with the patient's display
// fields, as the provider worklist renders it.
type AppointmentView struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PatientID    uuid.UUID `db:"patient_id" json:"patient_id"`
	Date         string    `db:"date" json:"date"`
	Time         string    `db:"slot_time" json:"time"`
	Status       string    `db:"status" json:"status"`
	Reason       string    `db:"reason" json:"reason"`
	Notes        *string   `db:"notes" json:"notes,omitempty"`
	PatientName  string    `db:"patient_name" json:"patient_name"`
	PatientPhone string    `db:"patient_phone" json:"patient_phone"`
}
