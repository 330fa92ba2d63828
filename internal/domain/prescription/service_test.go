package prescription

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/callmeAyanda/digital-healthcare-management-system/internal/platform/auth"
)

type mockRepo struct {
	rx        map[uuid.UUID]*Prescription
	providers map[uuid.UUID]uuid.UUID // user id -> provider id
	patients  map[uuid.UUID]bool
	order     []uuid.UUID
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		rx:        make(map[uuid.UUID]*Prescription),
		providers: make(map[uuid.UUID]uuid.UUID),
		patients:  make(map[uuid.UUID]bool),
	}
}

func (m *mockRepo) Create(_ context.Context, p *Prescription) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.rx[p.ID] = p
	m.order = append(m.order, p.ID)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Prescription, error) {
	p, ok := m.rx[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) SetStatus(_ context.Context, id uuid.UUID, status string) error {
	p, ok := m.rx[id]
	if !ok {
		return ErrNotFound
	}
	p.Status = status
	return nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Prescription, error) {
	var items []*Prescription
	for i := len(m.order) - 1; i >= 0; i-- {
		if p := m.rx[m.order[i]]; p.PatientID == patientID {
			items = append(items, p)
		}
	}
	return items, nil
}

func (m *mockRepo) ProviderIDByUser(_ context.Context, userID uuid.UUID) (uuid.UUID, error) {
	id, ok := m.providers[userID]
	if !ok {
		return uuid.Nil, auth.ErrProfileMissing
	}
	return id, nil
}

func (m *mockRepo) PatientExists(_ context.Context, patientID uuid.UUID) (bool, error) {
	return m.patients[patientID], nil
}

func amoxicillin() []Medication {
	return []Medication{{Name: "Amoxicillin", Dosage: "500mg", Frequency: "3x daily", Duration: "7 days"}}
}

func TestCreate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	providerUser := uuid.New()
	providerID := uuid.New()
	repo.providers[providerUser] = providerID
	patientID := uuid.New()
	repo.patients[patientID] = true

	p, err := svc.Create(context.Background(), providerUser, CreateRequest{
		PatientID:   patientID,
		Medications: amoxicillin(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Status != StatusActive {
		t.Errorf("status = %s, want active", p.Status)
	}
	if p.ProviderID != providerID {
		t.Errorf("provider_id = %s, want %s", p.ProviderID, providerID)
	}
}

func TestCreateWithoutProviderProfile(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	patientID := uuid.New()
	repo.patients[patientID] = true

	_, err := svc.Create(context.Background(), uuid.New(), CreateRequest{
		PatientID:   patientID,
		Medications: amoxicillin(),
	})
	if !errors.Is(err, auth.ErrProfileMissing) {
		t.Errorf("err = %v, want ErrProfileMissing", err)
	}
}

func TestCreateUnknownPatient(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	providerUser := uuid.New()
	repo.providers[providerUser] = uuid.New()

	_, err := svc.Create(context.Background(), providerUser, CreateRequest{
		PatientID:   uuid.New(),
		Medications: amoxicillin(),
	})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("err = %v, want ErrPatientNotFound", err)
	}
}

func TestCreateValidation(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	providerUser := uuid.New()
	repo.providers[providerUser] = uuid.New()
	patientID := uuid.New()
	repo.patients[patientID] = true

	cases := []struct {
		name string
		meds []Medication
	}{
		{"no medications", nil},
		{"missing dosage", []Medication{{Name: "Amoxicillin", Frequency: "3x daily", Duration: "7 days"}}},
		{"missing name", []Medication{{Dosage: "500mg", Frequency: "3x daily", Duration: "7 days"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), providerUser, CreateRequest{
				PatientID:   patientID,
				Medications: tc.meds,
			})
			if err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	providerUser := uuid.New()
	repo.providers[providerUser] = uuid.New()
	patientID := uuid.New()
	repo.patients[patientID] = true

	p, err := svc.Create(context.Background(), providerUser, CreateRequest{
		PatientID:   patientID,
		Medications: amoxicillin(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.UpdateStatus(context.Background(), providerUser, p.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", got.Status)
	}
	if len(got.Medications) != 1 || got.Medications[0].Name != "Amoxicillin" {
		t.Errorf("medications changed: %+v", got.Medications)
	}
}

func TestUpdateStatusInvalid(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), "paused"); err == nil {
		t.Error("expected an error")
	}
}

func TestUpdateStatusByOtherProvider(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	authorUser := uuid.New()
	repo.providers[authorUser] = uuid.New()
	otherUser := uuid.New()
	repo.providers[otherUser] = uuid.New()
	patientID := uuid.New()
	repo.patients[patientID] = true

	p, err := svc.Create(context.Background(), authorUser, CreateRequest{
		PatientID:   patientID,
		Medications: amoxicillin(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), otherUser, p.ID, StatusCancelled)
	if !errors.Is(err, auth.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
	if repo.rx[p.ID].Status != StatusActive {
		t.Errorf("status = %s, want active", repo.rx[p.ID].Status)
	}
}

func TestUpdateStatusWithoutProviderProfile(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	authorUser := uuid.New()
	repo.providers[authorUser] = uuid.New()
	patientID := uuid.New()
	repo.patients[patientID] = true

	p, err := svc.Create(context.Background(), authorUser, CreateRequest{
		PatientID:   patientID,
		Medications: amoxicillin(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), uuid.New(), p.ID, StatusCancelled); !errors.Is(err, auth.ErrProfileMissing) {
		t.Errorf("err = %v, want ErrProfileMissing", err)
	}
}

func TestListByPatientNewestFirst(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	providerUser := uuid.New()
	repo.providers[providerUser] = uuid.New()
	patientID := uuid.New()
	repo.patients[patientID] = true

	first, err := svc.Create(context.Background(), providerUser, CreateRequest{PatientID: patientID, Medications: amoxicillin()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(context.Background(), providerUser, CreateRequest{PatientID: patientID, Medications: amoxicillin()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, err := svc.ListByPatient(context.Background(), patientID)
	if err != nil {
		t.Fatalf("ListByPatient: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Error("prescriptions not in newest-first order")
	}
}
