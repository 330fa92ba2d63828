package provider

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/callmeAyanda/digital-healthcare-management-system/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the provider endpoints. The directory listing goes
// on the public group; everything else requires a provider token.
func (h *Handler) RegisterRoutes(public, api *echo.Group) {
	public.GET("/providers", h.Directory)

	g := api.Group("/providers", auth.RequireRole("provider"))
	g.POST("", h.CreateProfile)
	g.GET("/me", h.GetProfile)
	g.GET("/me/appointments", h.ListAppointments)
}

func callerID(c echo.Context) (uuid.UUID, error) {
	uid, err := uuid.Parse(auth.UserIDFromContext(c.Request().Context()))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return uid, nil
}

func (h *Handler) CreateProfile(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	var p Provider
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateProfile(c.Request().Context(), uid, &p); err != nil {
		if errors.Is(err, ErrProfileExists) {
			return echo.NewHTTPError(http.StatusConflict, ErrProfileExists.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetProfile(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	p, err := h.svc.GetOwnProfile(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Directory(c echo.Context) error {
	items, err := h.svc.Directory(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*DirectoryEntry{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	items, err := h.svc.ListOwnAppointments(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusForbidden, ErrNotFound.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*AppointmentView{}
	}
	return c.JSON(http.StatusOK, items)
}
