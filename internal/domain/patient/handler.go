package patient

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

// RegisterRoutes mounts the patient endpoints on the authenticated group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/patients", auth.RequireRole("patient"))
	g.POST("", h.CreateProfile)
	g.GET("/me", h.GetProfile)
	g.PUT("/me", h.UpdateProfile)
	g.GET("/me/appointments", h.ListAppointments)
	g.GET("/me/prescriptions", h.ListPrescriptions)
	g.GET("/me/medical-records", h.ListMedicalRecords)
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
	var p Patient
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

func (h *Handler) UpdateProfile(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdateProfile(c.Request().Context(), uid, &p)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
		case errors.Is(err, auth.ErrUnauthorized):
			return echo.NewHTTPError(http.StatusForbidden, "unauthorized")
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return c.JSON(http.StatusOK, updated)
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

func (h *Handler) ListPrescriptions(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	items, err := h.svc.ListOwnPrescriptions(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusForbidden, ErrNotFound.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*PrescriptionView{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListMedicalRecords(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}
	items, err := h.svc.ListOwnMedicalRecords(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusForbidden, ErrNotFound.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*MedicalRecordView{}
	}
	return c.JSON(http.StatusOK, items)
}
