package provider

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Provider) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Provider, error)
	ListAll(ctx context.Context) ([]*DirectoryEntry, error)

	// ProviderIDByUser resolves a user account to its provider profile id.
	// Returns ErrNotFound when the user has no profile.
	ProviderIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)

	ListAppointments(ctx context.Context, providerID uuid.UUID) ([]*AppointmentView, error)
}
