package prescription

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/callmeAyanda/digital-healthcare-management-system/internal/platform/auth"
)

type Service struct {
	rx Repository
}

func NewService(rx Repository) *Service {
	return &Service{rx: rx}
}

// CreateRequest carries the provider-supplied prescription fields. The
// authoring provider comes from the caller's token, never the payload.
type CreateRequest struct {
	PatientID     uuid.UUID    `json:"patient_id"`
	AppointmentID *uuid.UUID   `json:"appointment_id,omitempty"`
	Medications   []Medication `json:"medications"`
	Instructions  *string      `json:"instructions,omitempty"`
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Prescription, error) {
	providerID, err := s.rx.ProviderIDByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	exists, err := s.rx.PatientExists(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	if len(req.Medications) == 0 {
		return nil, fmt.Errorf("at least one medication is required")
	}
	for i, m := range req.Medications {
		if m.Name == "" || m.Dosage == "" || m.Frequency == "" || m.Duration == "" {
			return nil, fmt.Errorf("medication %d is missing a field", i)
		}
	}

	p := &Prescription{
		PatientID:     req.PatientID,
		ProviderID:    providerID,
		AppointmentID: req.AppointmentID,
		Medications:   req.Medications,
		Instructions:  req.Instructions,
		Status:        StatusActive,
	}
	if err := s.rx.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateStatus changes the status of a prescription. Only the authoring
// provider may change it; the medication list and instructions stay as
// written.
func (s *Service) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status string) (*Prescription, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid prescription status: %s", status)
	}
	providerID, err := s.rx.ProviderIDByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	p, err := s.rx.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwner(providerID, p.ProviderID); err != nil {
		return nil, err
	}
	if err := s.rx.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.rx.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Prescription, error) {
	return s.rx.ListByPatient(ctx, patientID)
}
