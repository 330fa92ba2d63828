package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/callmeAyanda/digital-healthcare-management-system/internal/platform/auth"
)

type Service struct {
	appts   Repository
	catalog []string
}

// NewService builds the booking service around the configured slot catalog.
// The catalog order is the order availability is returned in.
func NewService(appts Repository, slotTimes []string) *Service {
	catalog := make([]string, len(slotTimes))
	copy(catalog, slotTimes)
	return &Service{appts: appts, catalog: catalog}
}

// SlotTimes returns the full catalog.
func (s *Service) SlotTimes() []string {
	out := make([]string, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func (s *Service) inCatalog(t string) bool {
	for _, ct := range s.catalog {
		if ct == t {
			return true
		}
	}
	return false
}

// AvailableSlots returns the catalog minus the provider's live bookings for
// the date. An unknown provider or an empty day yields the full catalog;
// the result is advisory and the insert path is the enforcement point.
func (s *Service) AvailableSlots(ctx context.Context, providerID uuid.UUID, date string) ([]string, error) {
	if !validDate(date) {
		return nil, fmt.Errorf("date must be YYYY-MM-DD")
	}
	taken, err := s.appts.TakenTimes(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	return AvailableTimes(s.catalog, taken), nil
}

// BookingRequest carries the patient-supplied booking fields.
type BookingRequest struct {
	ProviderID uuid.UUID `json:"provider_id"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Reason     string    `json:"reason"`
	Notes      *string   `json:"notes,omitempty"`
}

// Book creates a scheduled appointment for the calling patient. The
// pre-check gives the common conflict a friendly error; the partial unique
// index on (provider_id, date, slot_time) closes the race window and the
// repository reports its violation as the same ErrSlotConflict.
func (s *Service) Book(ctx context.Context, userID uuid.UUID, req BookingRequest) (*Appointment, error) {
	patientID, err := s.appts.PatientIDByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	exists, err := s.appts.ProviderExists(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProviderNotFound
	}

	if !validDate(req.Date) {
		return nil, fmt.Errorf("date must be YYYY-MM-DD")
	}
	if !s.inCatalog(req.Time) {
		return nil, fmt.Errorf("time %q is not a bookable slot", req.Time)
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("reason is required")
	}

	taken, err := s.appts.TakenTimes(ctx, req.ProviderID, req.Date)
	if err != nil {
		return nil, err
	}
	for _, t := range taken {
		if t == req.Time {
			return nil, ErrSlotConflict
		}
	}

	a := &Appointment{
		PatientID:  patientID,
		ProviderID: req.ProviderID,
		Date:       req.Date,
		Time:       req.Time,
		Status:     StatusScheduled,
		Reason:     req.Reason,
		Notes:      req.Notes,
	}
	if err := s.appts.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Cancel sets the caller's own appointment to cancelled, releasing its
// slot. Cancelling an already cancelled appointment succeeds again.
func (s *Service) Cancel(ctx context.Context, userID, appointmentID uuid.UUID) error {
	patientID, err := s.appts.PatientIDByUser(ctx, userID)
	if err != nil {
		return err
	}
	a, err := s.appts.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if err := auth.RequireOwner(patientID, a.PatientID); err != nil {
		return err
	}
	return s.appts.UpdateStatus(ctx, appointmentID, StatusCancelled, nil)
}

// UpdateStatus lets the owning provider overwrite the status and notes of
// an appointment. Any transition between valid statuses is accepted.
func (s *Service) UpdateStatus(ctx context.Context, userID, appointmentID uuid.UUID, status string, notes *string) (*Appointment, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid appointment status: %s", status)
	}
	providerID, err := s.appts.ProviderIDByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	a, err := s.appts.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwner(providerID, a.ProviderID); err != nil {
		return nil, err
	}
	if err := s.appts.UpdateStatus(ctx, appointmentID, status, notes); err != nil {
		return nil, err
	}
	return s.appts.GetByID(ctx, appointmentID)
}
