package admin

import (
	"time"

	"github.com/google/uuid"
)

// Stats is the dashboard summary: table totals, today's appointment load,
// and the latest bookings.
type Stats struct {
	TotalPatients      int                  `json:"total_patients"`
	TotalProviders     int                  `json:"total_providers"`
	TotalAppointments  int                  `json:"total_appointments"`
	TotalPrescriptions int                  `json:"total_prescriptions"`
	TodaysAppointments int                  `json:"todays_appointments"`
	RecentAppointments []*RecentAppointment `json:"recent_appointments"`
}

// RecentAppointment is an appointment row decorated with both parties'
// display names.
type RecentAppointment struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Date         string    `db:"date" json:"date"`
	Time         string    `db:"slot_time" json:"time"`
	Status       string    `db:"status" json:"status"`
	Reason       string    `db:"reason" json:"reason"`
	PatientName  string    `db:"patient_name" json:"patient_name"`
	ProviderName string    `db:"provider_name" json:"provider_name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// PatientSummary is the admin listing shape for patients.
type PatientSummary struct {
	ID          uuid.UUID `db:"id" json:"id"`
	FirstName   string    `db:"first_name" json:"first_name"`
	LastName    string    `db:"last_name" json:"last_name"`
	DateOfBirth string    `db:"date_of_birth" json:"date_of_birth"`
	Phone       string    `db:"phone" json:"phone"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ProviderSummary is the admin listing shape for providers.
type ProviderSummary struct {
	ID             uuid.UUID `db:"id" json:"id"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	Specialization string    `db:"specialization" json:"specialization"`
	Department     string    `db:"department" json:"department"`
	LicenseNumber  string    `db:"license_number" json:"license_number"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
