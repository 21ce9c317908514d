package schedule

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
	api.GET("/schedules", h.List)
	api.GET("/schedules/doctor/:id", h.ListByDoctor)

	// Writes are doctor or nurse; a doctor may only touch their own entries,
	// which the handlers check, while a nurse is unrestricted.
	write := api.Group("", auth.RequireRole("doctor", "nurse"))
	write.POST("/schedules", h.Create)
	write.PUT("/schedules/:id", h.Update)
	write.DELETE("/schedules/:id", h.Delete)
}

// List returns the caller's own timetable for doctors and the union of every
// doctor's entries for any other role.
func (h *Handler) List(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	ctx := c.Request().Context()

	if user.Role(id.Role) == user.RoleDoctor {
		entries, err := h.svc.ListByDoctor(ctx, id.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list schedules")
		}
		return c.JSON(http.StatusOK, nonNil(entries))
	}

	doctorIDs, err := h.doctors.ListDoctorIDs(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list schedules")
	}
	out := []*Schedule{}
	for _, doctorID := range doctorIDs {
		entries, err := h.svc.ListByDoctor(ctx, doctorID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list schedules")
		}
		out = append(out, entries...)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListByDoctor(c echo.Context) error {
	doctorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	entries, err := h.svc.ListByDoctor(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list schedules")
	}
	return c.JSON(http.StatusOK, nonNil(entries))
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

	if user.Role(id.Role) == user.RoleDoctor && in.DoctorID != id.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "doctors may only manage their own schedules")
	}

	entry, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *Handler) Update(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	entryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	// Ownership is checked against the stored record, not the payload.
	existing, err := h.svc.Get(c.Request().Context(), entryID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
	}
	if user.Role(id.Role) == user.RoleDoctor && existing.DoctorID != id.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "doctors may only manage their own schedules")
	}

	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.svc.Update(c.Request().Context(), entryID, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) Delete(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	entryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	existing, err := h.svc.Get(c.Request().Context(), entryID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
	}
	if user.Role(id.Role) == user.RoleDoctor && existing.DoctorID != id.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "doctors may only manage their own schedules")
	}

	if err := h.svc.Delete(c.Request().Context(), entryID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete schedule")
	}
	return c.NoContent(http.StatusNoContent)
}

func nonNil(entries []*Schedule) []*Schedule {
	if entries == nil {
		return []*Schedule{}
	}
	return entries
}
