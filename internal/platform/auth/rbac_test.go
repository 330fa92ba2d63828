package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func contextWithRole(role string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), UserRoleKey, role)
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestRequireRole_Allows(t *testing.T) {
	c := contextWithRole("provider")
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	if err := RequireRole("provider")(handler)(c); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRequireRole_AdminBypass(t *testing.T) {
	c := contextWithRole("admin")
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	if err := RequireRole("patient")(handler)(c); err != nil {
		t.Errorf("expected admin to pass any role check: %v", err)
	}
}

func TestRequireRole_Denies(t *testing.T) {
	c := contextWithRole("patient")
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := RequireRole("provider")(handler)(c)
	if err == nil {
		t.Fatal("expected forbidden error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %v", err)
	}
}
