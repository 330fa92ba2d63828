package patient

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("patient profile not found")
	ErrProfileExists = errors.New("patient profile already exists")
)

// Patient maps to the patient table. Exactly one profile per user account.
type Patient struct {
	ID               uuid.UUID `db:"id" json:"id"`
	UserID           uuid.UUID `db:"user_id" json:"user_id"`
	FirstName        string    `db:"first_name" json:"first_name"`
	LastName         string    `db:"last_name" json:"last_name"`
	DateOfBirth      string    `db:"date_of_birth" json:"date_of_birth"`
	Phone            string    `db:"phone" json:"phone"`
	Address          string    `db:"address" json:"address"`
	EmergencyContact string    `db:"emergency_contact" json:"emergency_contact"`
	BloodType        *string   `db:"blood_type" json:"blood_type,omitempty"`
	Allergies        []string  `db:"allergies" json:"allergies,omitempty"`
	MedicalHistory   []string  `db:"medical_history" json:"medical_history,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// AppointmentView is an appointment row joined with the provider's display
// fields, as the patient dashboard renders it.
type AppointmentView struct {
	ID                     uuid.UUID `db:"id" json:"id"`
	ProviderID             uuid.UUID `db:"provider_id" json:"provider_id"`
	Date                   string    `db:"date" json:"date"`
	Time                   string    `db:"slot_time" json:"time"`
	Status                 string    `db:"status" json:"status"`
	Reason                 string    `db:"reason" json:"reason"`
	Notes                  *string   `db:"notes" json:"notes,omitempty"`
	ProviderName           string    `db:"provider_name" json:"provider_name"`
	ProviderSpecialization string    `db:"provider_specialization" json:"provider_specialization"`
}

// Medication mirrors one entry of the prescription medications array.
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

// PrescriptionView is a prescription row joined with the prescribing
// provider's name.
type PrescriptionView struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	ProviderID   uuid.UUID    `db:"provider_id" json:"provider_id"`
	Medications  []Medication `db:"medications" json:"medications"`
	Instructions *string      `db:"instructions" json:"instructions,omitempty"`
	Status       string       `db:"status" json:"status"`
	ProviderName string       `db:"provider_name" json:"provider_name"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// MedicalRecordView is a medical record row joined with the authoring
// provider's name.
type MedicalRecordView struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ProviderID   uuid.UUID `db:"provider_id" json:"provider_id"`
	RecordType   string    `db:"record_type" json:"record_type"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Date         string    `db:"date" json:"date"`
	ProviderName string    `db:"provider_name" json:"provider_name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
