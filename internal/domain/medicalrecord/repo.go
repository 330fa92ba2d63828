package medicalrecord

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *MedicalRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MedicalRecord, error)

	// ProviderIDByUser resolves the authoring provider, reporting a
	// missing profile with auth.ErrProfileMissing.
	ProviderIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	PatientExists(ctx context.Context, patientID uuid.UUID) (bool, error)
}
