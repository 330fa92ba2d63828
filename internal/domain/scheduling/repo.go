package scheduling

import (
	"context"

	"github.com/google/uuid"
)

// Repository owns every query the booking flow needs, including the lookups
// into the patient and provider tables that resolve the caller's profile.
type Repository interface {
	// Insert stores a new appointment. A live row already holding the same
	// (provider_id, date, slot_time) makes it fail with ErrSlotConflict.
	Insert(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	// UpdateStatus overwrites the status and, when notes is non-nil, the
	// notes. Reviving a cancelled appointment into an occupied slot fails
	// with ErrSlotConflict.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, notes *string) error
	// TakenTimes returns the slot times of the non-cancelled appointments
	// for (provider, date).
	TakenTimes(ctx context.Context, providerID uuid.UUID, date string) ([]string, error)

	// PatientIDByUser and ProviderIDByUser resolve a user account to its
	// profile id, reporting a missing profile with auth.ErrProfileMissing.
	PatientIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	ProviderIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	ProviderExists(ctx context.Context, providerID uuid.UUID) (bool, error)
}
