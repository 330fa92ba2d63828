package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/callmeAyanda/digital-healthcare-management-system/internal/platform/auth"
)

func newAuthedContext(e *echo.Echo, method, path, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID.String())
	ctx = context.WithValue(ctx, auth.UserRoleKey, "patient")
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_CreateProfile(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	userID := uuid.New()

	c, rec := newAuthedContext(e, http.MethodPost, "/api/v1/patients",
		`{"first_name":"Jane","last_name":"Doe","date_of_birth":"1990-04-12","phone":"555-0100","address":"12 Main St","emergency_contact":"John 555-0101"}`,
		userID)
	if err := h.CreateProfile(c); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var p Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.UserID != userID {
		t.Errorf("user_id = %s, want %s", p.UserID, userID)
	}
}

func TestHandler_CreateProfile_Duplicate(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	userID := uuid.New()
	body := `{"first_name":"Jane","last_name":"Doe","date_of_birth":"1990-04-12"}`

	c, _ := newAuthedContext(e, http.MethodPost, "/api/v1/patients", body, userID)
	if err := h.CreateProfile(c); err != nil {
		t.Fatalf("first CreateProfile: %v", err)
	}

	c, _ = newAuthedContext(e, http.MethodPost, "/api/v1/patients", body, userID)
	err := h.CreateProfile(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Errorf("err = %v, want 409", err)
	}
}

func TestHandler_GetProfile_NotFound(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()

	c, _ := newAuthedContext(e, http.MethodGet, "/api/v1/patients/me", "", uuid.New())
	err := h.GetProfile(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("err = %v, want 404", err)
	}
}

func TestHandler_GetProfile_Unauthenticated(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetProfile(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("err = %v, want 401", err)
	}
}

func TestHandler_ListAppointments_Empty(t *testing.T) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	e := echo.New()
	userID := uuid.New()

	c, _ := newAuthedContext(e, http.MethodPost, "/api/v1/patients",
		`{"first_name":"Jane","last_name":"Doe","date_of_birth":"1990-04-12"}`, userID)
	if err := h.CreateProfile(c); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	c, rec := newAuthedContext(e, http.MethodGet, "/api/v1/patients/me/appointments", "", userID)
	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body = %q, want []", rec.Body.String())
	}
}

func TestHandler_ListAppointments_NoProfile(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()

	c, _ := newAuthedContext(e, http.MethodGet, "/api/v1/patients/me/appointments", "", uuid.New())
	err := h.ListAppointments(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("err = %v, want 403", err)
	}
}
