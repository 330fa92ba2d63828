package provider

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	providers Repository
}

func NewService(providers Repository) *Service {
	return &Service{providers: providers}
}

func (s *Service) CreateProfile(ctx context.Context, userID uuid.UUID, p *Provider) error {
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if p.Specialization == "" {
		return fmt.Errorf("specialization is required")
	}
	if p.LicenseNumber == "" {
		return fmt.Errorf("license_number is required")
	}
	p.UserID = userID
	return s.providers.Create(ctx, p)
}

func (s *Service) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*Provider, error) {
	return s.providers.GetByUserID(ctx, userID)
}

// Directory lists every provider. Served without authentication: the booking
// page needs it before the patient signs in.
func (s *Service) Directory(ctx context.Context) ([]*DirectoryEntry, error) {
	return s.providers.ListAll(ctx)
}

func (s *Service) ListOwnAppointments(ctx context.Context, userID uuid.UUID) ([]*AppointmentView, error) {
	id, err := s.providers.ProviderIDByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.providers.ListAppointments(ctx, id)
}
