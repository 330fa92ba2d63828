package medicalrecord

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	records Repository
}

func NewService(records Repository) *Service {
	return &Service{records: records}
}

// CreateRequest carries the provider-supplied record fields. The authoring
// provider comes from the caller's token.
type CreateRequest struct {
	PatientID     uuid.UUID  `json:"patient_id"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	RecordType    string     `json:"record_type"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Date          string     `json:"date"`
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*MedicalRecord, error) {
	providerID, err := s.records.ProviderIDByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	exists, err := s.records.PatientExists(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	if !ValidType(req.RecordType) {
		return nil, fmt.Errorf("invalid record type: %s", req.RecordType)
	}
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if req.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD")
	}

	rec := &MedicalRecord{
		PatientID:     req.PatientID,
		ProviderID:    providerID,
		AppointmentID: req.AppointmentID,
		RecordType:    req.RecordType,
		Title:         req.Title,
		Description:   req.Description,
		Date:          req.Date,
	}
	if err := s.records.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MedicalRecord, error) {
	return s.records.ListByPatient(ctx, patientID)
}
