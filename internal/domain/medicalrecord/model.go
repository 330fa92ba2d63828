package medicalrecord

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TypeDiagnosis = "diagnosis"
	TypeLabResult = "lab_result"
	TypeTreatment = "treatment"
)

var (
	ErrNotFound        = errors.New("medical record not found")
	ErrPatientNotFound = errors.New("patient not found")
)

// MedicalRecord maps to the medical_record table. Records are immutable
// once written; corrections are new records.
type MedicalRecord struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	PatientID     uuid.UUID  `db:"patient_id" json:"patient_id"`
	ProviderID    uuid.UUID  `db:"provider_id" json:"provider_id"`
	AppointmentID *uuid.UUID `db:"appointment_id" json:"appointment_id,omitempty"`
	RecordType    string     `db:"record_type" json:"record_type"`
	Title         string     `db:"title" json:"title"`
	Description   string     `db:"description" json:"description"`
	Date          string     `db:"date" json:"date"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

func ValidType(t string) bool {
	return t == TypeDiagnosis || t == TypeLabResult || t == TypeTreatment
}
