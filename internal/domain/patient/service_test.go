package patient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	patients      map[uuid.UUID]*Patient
	appointments  map[uuid.UUID][]*AppointmentView
	prescriptions map[uuid.UUID][]*PrescriptionView
	records       map[uuid.UUID][]*MedicalRecordView
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		patients:      make(map[uuid.UUID]*Patient),
		appointments:  make(map[uuid.UUID][]*AppointmentView),
		prescriptions: make(map[uuid.UUID][]*PrescriptionView),
		records:       make(map[uuid.UUID][]*MedicalRecordView),
	}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	for _, existing := range m.patients {
		if existing.UserID == p.UserID {
			return ErrProfileExists
		}
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*Patient, error) {
	for _, p := range m.patients {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	if _, ok := m.patients[p.ID]; !ok {
		return ErrNotFound
	}
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) PatientIDByUser(_ context.Context, userID uuid.UUID) (uuid.UUID, error) {
	for _, p := range m.patients {
		if p.UserID == userID {
			return p.ID, nil
		}
	}
	return uuid.Nil, ErrNotFound
}

func (m *mockRepo) PatientExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.patients[id]
	return ok, nil
}

func (m *mockRepo) ListAppointments(_ context.Context, patientID uuid.UUID) ([]*AppointmentView, error) {
	return m.appointments[patientID], nil
}

func (m *mockRepo) ListPrescriptions(_ context.Context, patientID uuid.UUID) ([]*PrescriptionView, error) {
	return m.prescriptions[patientID], nil
}

func (m *mockRepo) ListMedicalRecords(_ context.Context, patientID uuid.UUID) ([]*MedicalRecordView, error) {
	return m.records[patientID], nil
}

func validProfile() *Patient {
	return &Patient{
		FirstName:        "Jane",
		LastName:         "Doe",
		DateOfBirth:      "1990-04-12",
		Phone:            "555-0100",
		Address:          "12 Main St",
		EmergencyContact: "John Doe 555-0101",
	}
}

func TestCreateProfile(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	userID := uuid.New()

	p := validProfile()
	if err := svc.CreateProfile(context.Background(), userID, p); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if p.UserID != userID {
		t.Errorf("user_id = %s, want %s", p.UserID, userID)
	}

	got, err := svc.GetOwnProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetOwnProfile: %v", err)
	}
	if got.FirstName != "Jane" {
		t.Errorf("first_name = %q", got.FirstName)
	}
}

func TestCreateProfileSecondInsertFails(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	userID := uuid.New()

	if err := svc.CreateProfile(context.Background(), userID, validProfile()); err != nil {
		t.Fatalf("first CreateProfile: %v", err)
	}
	err := svc.CreateProfile(context.Background(), userID, validProfile())
	if !errors.Is(err, ErrProfileExists) {
		t.Errorf("err = %v, want ErrProfileExists", err)
	}
}

func TestCreateProfileValidation(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p := validProfile()
	p.FirstName = ""
	if err := svc.CreateProfile(context.Background(), uuid.New(), p); err == nil {
		t.Error("expected an error for missing first_name")
	}

	p = validProfile()
	p.DateOfBirth = ""
	if err := svc.CreateProfile(context.Background(), uuid.New(), p); err == nil {
		t.Error("expected an error for missing date_of_birth")
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	userID := uuid.New()

	if err := svc.CreateProfile(context.Background(), userID, validProfile()); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	upd := validProfile()
	upd.Phone = "555-0199"
	upd.ID = uuid.New()      // payload ids must be ignored
	upd.UserID = uuid.New()

	got, err := svc.UpdateProfile(context.Background(), userID, upd)
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.Phone != "555-0199" {
		t.Errorf("phone = %q, want 555-0199", got.Phone)
	}
	if got.UserID != userID {
		t.Errorf("user_id changed to %s", got.UserID)
	}
}

func TestUpdateProfileWithoutProfile(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), validProfile())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListOwnAppointments(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	userID := uuid.New()

	p := validProfile()
	if err := svc.CreateProfile(context.Background(), userID, p); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	repo.appointments[p.ID] = []*AppointmentView{
		{ID: uuid.New(), Date: "2026-09-02", Time: "10:00", ProviderName: "Dr Smith"},
		{ID: uuid.New(), Date: "2026-09-01", Time: "09:00", ProviderName: "Dr Smith"},
	}

	items, err := svc.ListOwnAppointments(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListOwnAppointments: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len = %d, want 2", len(items))
	}
}

func TestListOwnAppointmentsWithoutProfile(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	_, err := svc.ListOwnAppointments(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
