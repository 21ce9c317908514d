package bed

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Reads: any authenticated user
	api.GET("/beds", h.List)
	api.GET("/beds/ward/:ward", h.ListByWard)
	api.GET("/beds/status/:status", h.ListByStatus)

	// Writes: doctor or nurse, no ownership restriction
	write := api.Group("", auth.RequireRole("doctor", "nurse"))
	write.POST("/beds", h.Create)
	write.PUT("/beds/:id", h.Update)
}

func (h *Handler) List(c echo.Context) error {
	beds, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list beds")
	}
	return c.JSON(http.StatusOK, nonNil(beds))
}

func (h *Handler) ListByWard(c echo.Context) error {
	beds, err := h.svc.ListByWard(c.Request().Context(), Ward(c.Param("ward")))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list beds")
	}
	return c.JSON(http.StatusOK, nonNil(beds))
}

func (h *Handler) ListByStatus(c echo.Context) error {
	beds, err := h.svc.ListByStatus(c.Request().Context(), Status(c.Param("status")))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list beds")
	}
	return c.JSON(http.StatusOK, nonNil(beds))
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	b, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	b, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "bed not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func nonNil(beds []*Bed) []*Bed {
	if beds == nil {
		return []*Bed{}
	}
	return beds
}
