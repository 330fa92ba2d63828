package admin

import (
	"context"
	"time"
)

// recentLimit is how many of the latest bookings the dashboard shows.
const recentLimit = 10

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Stats assembles the dashboard summary in one pass.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var (
		st  Stats
		err error
	)
	if st.TotalPatients, err = s.repo.CountPatients(ctx); err != nil {
		return nil, err
	}
	if st.TotalProviders, err = s.repo.CountProviders(ctx); err != nil {
		return nil, err
	}
	if st.TotalAppointments, err = s.repo.CountAppointments(ctx); err != nil {
		return nil, err
	}
	if st.TotalPrescriptions, err = s.repo.CountPrescriptions(ctx); err != nil {
		return nil, err
	}

	today := s.now().Format("2006-01-02")
	if st.TodaysAppointments, err = s.repo.CountAppointmentsOn(ctx, today); err != nil {
		return nil, err
	}

	if st.RecentAppointments, err = s.repo.RecentAppointments(ctx, recentLimit); err != nil {
		return nil, err
	}
	if st.RecentAppointments == nil {
		st.RecentAppointments = []*RecentAppointment{}
	}
	return &st, nil
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*PatientSummary, int, error) {
	return s.repo.ListPatients(ctx, limit, offset)
}

func (s *Service) ListProviders(ctx context.Context, limit, offset int) ([]*ProviderSummary, int, error) {
	return s.repo.ListProviders(ctx, limit, offset)
}

func (s *Service) ListAppointments(ctx context.Context, limit, offset int) ([]*RecentAppointment, int, error) {
	return s.repo.ListAppointments(ctx, limit, offset)
}
