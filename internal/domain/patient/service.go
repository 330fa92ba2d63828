package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/callmeAyanda/digital-healthcare-management-system/internal/platform/auth"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// CreateProfile creates the caller's patient profile. The user_id unique
// constraint rejects a second profile for the same account.
func (s *Service) CreateProfile(ctx context.Context, userID uuid.UUID, p *Patient) error {
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if p.DateOfBirth == "" {
		return fmt.Errorf("date_of_birth is required")
	}
	p.UserID = userID
	return s.patients.Create(ctx, p)
}

func (s *Service) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*Patient, error) {
	return s.patients.GetByUserID(ctx, userID)
}

// UpdateProfile applies changes to the caller's own profile. The stored
// user_id decides ownership; id and user_id in the payload are ignored.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, updated *Patient) (*Patient, error) {
	current, err := s.patients.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwner(current.UserID, userID); err != nil {
		return nil, err
	}

	updated.ID = current.ID
	updated.UserID = current.UserID
	if updated.FirstName == "" || updated.LastName == "" {
		return nil, fmt.Errorf("first_name and last_name are required")
	}
	if err := s.patients.Update(ctx, updated); err != nil {
		return nil, err
	}
	return s.patients.GetByID(ctx, current.ID)
}

func (s *Service) ListOwnAppointments(ctx context.Context, userID uuid.UUID) ([]*AppointmentView, error) {
	id, err := s.patients.PatientIDByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.patients.ListAppointments(ctx, id)
}

func (s *Service) ListOwnPrescriptions(ctx context.Context, userID uuid.UUID) ([]*PrescriptionView, error) {
	id, err := s.patients.PatientIDByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.patients.ListPrescriptions(ctx, id)
}

func (s *Service) ListOwnMedicalRecords(ctx context.Context, userID uuid.UUID) ([]*MedicalRecordView, error) {
	id, err := s.patients.PatientIDByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.patients.ListMedicalRecords(ctx, id)
}
