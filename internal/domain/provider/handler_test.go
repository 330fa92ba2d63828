package provider

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
	ctx = context.WithValue(ctx, auth.UserRoleKey, "provider")
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_CreateProfile(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	userID := uuid.New()

	c, rec := newAuthedContext(e, http.MethodPost, "/api/v1/providers",
		`{"first_name":"Alice","last_name":"Smith","specialization":"Cardiology","license_number":"MD-12345","phone":"555-0200","department":"Cardiology"}`,
		userID)
	if err := h.CreateProfile(c); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

func TestHandler_Directory_Public(t *testing.T) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	e := echo.New()

	p := validProfile()
	p.UserID = uuid.New()
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// No auth context on the request: the directory is a public read.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Directory(c); err != nil {
		t.Fatalf("Directory: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var items []*DirectoryEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len = %d, want 1", len(items))
	}
	if strings.Contains(rec.Body.String(), "license_number") {
		t.Error("directory leaks licensing details")
	}
	if strings.Contains(rec.Body.String(), "user_id") {
		t.Error("directory leaks account ids")
	}
}

func TestHandler_Directory_Empty(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Directory(c); err != nil {
		t.Fatalf("Directory: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body = %q, want []", rec.Body.String())
	}
}

func TestHandler_ListAppointments_NoProfile(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()

	c, _ := newAuthedContext(e, http.MethodGet, "/api/v1/providers/me/appointments", "", uuid.New())
	err := h.ListAppointments(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("err = %v, want 403", err)
	}
}
