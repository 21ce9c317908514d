package appointment

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/domain/user"
	"github.com/hms/hms/internal/platform/auth"
)

// DoctorDirectory enumerates doctor ids for list fan-out. Aggregated list
// responses concatenate each doctor's records in the order returned here.
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
	api.GET("/appointments", h.List)
	api.GET("/appointments/date/:date", h.ListByDate)
	api.POST("/appointments", h.Create)
	api.PUT("/appointments/:id", h.Update)
	api.DELETE("/appointments/:id", h.Delete)
}

// List is role-scoped: a patient sees only their own appointments, a doctor
// only theirs, and any other role the concatenation of every doctor's list.
func (h *Handler) List(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	ctx := c.Request().Context()

	switch user.Role(id.Role) {
	case user.RolePatient:
		appts, err := h.svc.ListByPatient(ctx, id.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list appointments")
		}
		return c.JSON(http.StatusOK, nonNil(appts))
	case user.RoleDoctor:
		appts, err := h.svc.ListByDoctor(ctx, id.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list appointments")
		}
		return c.JSON(http.StatusOK, nonNil(appts))
	default:
		appts, err := h.listAllDoctors(ctx)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list appointments")
		}
		return c.JSON(http.StatusOK, appts)
	}
}

// listAllDoctors aggregates every doctor's appointments, one store call per
// doctor, concatenated in doctor-id order.
func (h *Handler) listAllDoctors(ctx context.Context) ([]*Appointment, error) {
	doctorIDs, err := h.doctors.ListDoctorIDs(ctx)
	if err != nil {
		return nil, err
	}
	out := []*Appointment{}
	for _, doctorID := range doctorIDs {
		appts, err := h.svc.ListByDoctor(ctx, doctorID)
		if err != nil {
			return nil, err
		}
		out = append(out, appts...)
	}
	return out, nil
}

func (h *Handler) ListByDate(c echo.Context) error {
	day, err := time.ParseInLocation("2006-01-02", c.Param("date"), time.UTC)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	appts, err := h.svc.ListByDay(c.Request().Context(), day)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list appointments")
	}
	return c.JSON(http.StatusOK, nonNil(appts))
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

	// A patient may only book for themselves.
	if user.Role(id.Role) == user.RolePatient && in.PatientID != id.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "patients may only create their own appointments")
	}

	a, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) Update(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	apptID, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	existing, err := h.svc.Get(c.Request().Context(), apptID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	if user.Role(id.Role) == user.RolePatient && existing.PatientID != id.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "patients may only modify their own appointments")
	}

	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, err := h.svc.Update(c.Request().Context(), apptID, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Delete(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	apptID, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	existing, err := h.svc.Get(c.Request().Context(), apptID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	if user.Role(id.Role) == user.RolePatient && existing.PatientID != id.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "patients may only delete their own appointments")
	}

	if err := h.svc.Delete(c.Request().Context(), apptID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete appointment")
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func nonNil(appts []*Appointment) []*Appointment {
	if appts == nil {
		return []*Appointment{}
	}
	return appts
}
