package admin

import "context"

type Repository interface {
	CountPatients(ctx context.Context) (int, error)
	CountProviders(ctx context.Context) (int, error)
	CountAppointments(ctx context.Context) (int, error)
	CountPrescriptions(ctx context.Context) (int, error)
	CountAppointmentsOn(ctx context.Context, date string) (int, error)
	RecentAppointments(ctx context.Context, limit int) ([]*RecentAppointment, error)

	ListPatients(ctx context.Context, limit, offset int) ([]*PatientSummary, int, error)
	ListProviders(ctx context.Context, limit, offset int) ([]*ProviderSummary, int, error)
	ListAppointments(ctx context.Context, limit, offset int) ([]*RecentAppointment, int, error)
}
