package prescription

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var (
	ErrNotFound        = errors.New("prescription not found")
	ErrPatientNotFound = errors.New("patient not found")
)

// Medication is one entry of the medications array, stored as jsonb.
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

// Prescription maps to the prescription table. Everything except the
// status is immutable after creation.
type Prescription struct {
	ID            uuid.UUID    `db:"id" json:"id"`
	PatientID     uuid.UUID    `db:"patient_id" json:"patient_id"`
	ProviderID    uuid.UUID    `db:"provider_id" json:"provider_id"`
	AppointmentID *uuid.UUID   `db:"appointment_id" json:"appointment_id,omitempty"`
	Medications   []Medication `db:"medications" json:"medications"`
	Instructions  *string      `db:"instructions" json:"instructions,omitempty"`
	Status        string       `db:"status" json:"status"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at" json:"updated_at"`
}

func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusCompleted || status == StatusCancelled
}
