package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error

	// PatientIDByUser resolves a user account to its patient profile id.
	// Returns ErrNotFound when the user has no profile.
	PatientIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	// PatientExists reports whether a patient profile id is known.
	PatientExists(ctx context.Context, id uuid.UUID) (bool, error)

	ListAppointments(ctx context.Context, patientID uuid.UUID) ([]*AppointmentView, error)
	ListPrescriptions(ctx context.Context, patientID uuid.UUID) ([]*PrescriptionView, error)
	ListMedicalRecords(ctx context.Context, patientID uuid.UUID) ([]*MedicalRecordView, error)
}
