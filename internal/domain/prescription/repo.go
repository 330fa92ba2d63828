package prescription

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByID(ctx context.Context, id uuid.UUID) (*Prescription, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Prescription, error)

	// ProviderIDByUser resolves the prescribing provider, reporting a
	// missing profile with auth.ErrProfileMissing.
	ProviderIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	PatientExists(ctx context.Context, patientID uuid.UUID) (bool, error)
}
