package scheduling

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Appointment statuses. Cancelled rows release their slot; the other two
// hold it.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var (
	ErrNotFound         = errors.New("appointment not found")
	ErrProviderNotFound = errors.New("provider not found")
	ErrSlotConflict     = errors.New("this time slot is already booked")
)

// Appointment maps to the appointment table. Date and Time are stored as
// plain strings and compared by exact equality; Time is always one of the
// configured catalog values.
type Appointment struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	ProviderID uuid.UUID `db:"provider_id" json:"provider_id"`
	Date       string    `db:"date" json:"date"`
	Time       string    `db:"slot_time" json:"time"`
	Status     string    `db:"status" json:"status"`
	Reason     string    `db:"reason" json:"reason"`
	Notes      *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

func ValidStatus(status string) bool {
	return status == StatusScheduled || status == StatusCompleted || status == StatusCancelled
}

// AvailableTimes returns the catalog minus the taken times, preserving
// catalog order. Taken times outside the catalog are ignored.
func AvailableTimes(catalog, taken []string) []string {
	busy := make(map[string]bool, len(taken))
	for _, t := range taken {
		busy[t] = true
	}
	free := make([]string, 0, len(catalog))
	for _, t := range catalog {
		if !busy[t] {
			free = append(free, t)
		}
	}
	return free
}
