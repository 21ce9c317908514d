package prescription

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/domain/user"
	"github.com/hms/hms/internal/platform/auth"
)

// DoctorDirectory enumerates doctor ids for list fan-out.
type DoctorDirectory interface {
	ListDoctorIDs(ctx context.Context) ([]int64, error)
}

type Handler struct {
	svc     *Service
	doctors DoctorDirectory
}

func NewHandler(svc *Service, doctors DoctorDirectory) *Handler {
	return &Handler{svc: svc, doctors: doctors}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/prescriptions", h.List)
	api.GET("/prescriptions/:id", h.Get)

	// Writes are doctor-only; self-ownership is checked in the handlers.
	write := api.Group("", auth.RequireRole("doctor"))
	write.POST("/prescriptions", h.Create)
	write.PUT("/prescriptions/:id", h.Update)
}

// List is role-scoped the same way appointments are: patients see their own,
// doctors their own, and everyone else the union of all doctors' records.
func (h *Handler) List(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	ctx := c.Request().Context()

	switch user.Role(id.Role) {
	case user.RolePatient:
		rx, err := h.svc.ListByPatient(ctx, id.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list prescriptions")
		}
		return c.JSON(http.StatusOK, nonNil(rx))
	case user.RoleDoctor:
		rx, err := h.svc.ListByDoctor(ctx, id.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list prescriptions")
		}
		return c.JSON(http.StatusOK, nonNil(rx))
	default:
		doctorIDs, err := h.doctors.ListDoctorIDs(ctx)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list prescriptions")
		}
		out := []*Prescription{}
		for _, doctorID := range doctorIDs {
			rx, err := h.svc.ListByDoctor(ctx, doctorID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to list prescriptions")
			}
			out = append(out, rx...)
		}
		return c.JSON(http.StatusOK, out)
	}
}

func (h *Handler) Get(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	rxID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := h.svc.Get(c.Request().Context(), rxID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "prescription not found")
	}
	if user.Role(id.Role) == user.RolePatient && p.PatientID != id.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "patients may only view their own prescriptions")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// A doctor may only prescribe as themselves.
	if in.DoctorID != id.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "doctors may only create their own prescriptions")
	}

	p, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) Update(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	rxID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	// Ownership is checked against the stored record, not the payload.
	existing, err := h.svc.Get(c.Request().Context(), rxID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "prescription not found")
	}
	if existing.DoctorID != id.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "doctors may only modify their own prescriptions")
	}

	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.svc.Update(c.Request().Context(), rxID, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "prescription not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func nonNil(rx []*Prescription) []*Prescription {
	if rx == nil {
		return []*Prescription{}
	}
	return rx
}
