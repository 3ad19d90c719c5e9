package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/platform/auth"
	"github.com/clinicdesk/clinicdesk/pkg/clock"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "doctor", "nurse", "receptionist"))
	read.GET("/bookings", h.ListBookings)
	read.GET("/bookings/:id", h.GetBooking)
	read.GET("/time-blocks", h.ListTimeBlocks)
	read.GET("/time-blocks/:id", h.GetTimeBlock)

	write := api.Group("", auth.RequireRole("admin", "receptionist"))
	write.POST("/bookings", h.CreateBooking)
	write.PUT("/bookings/:id", h.Reschedule)
	write.PATCH("/bookings/:id/status", h.UpdateStatus)
	write.POST("/time-blocks", h.CreateTimeBlock)
	write.DELETE("/time-blocks/:id", h.DeleteTimeBlock)
}

type bookingRequest struct {
	BranchID    int64         `json:"branch_id"`
	PatientName string        `json:"patient_name"`
	TreatmentID *uuid.UUID    `json:"treatment_id"`
	Date        string        `json:"date"`
	StartTime   clock.Minutes `json:"start_time"`
	EndTime     clock.Minutes `json:"end_time"`
	Status      string        `json:"status"`
	Notes       *string       `json:"notes"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func (h *Handler) CreateBooking(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}
	b := Booking{
		BranchID:    req.BranchID,
		PatientName: req.PatientName,
		TreatmentID: req.TreatmentID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      req.Status,
		Notes:       req.Notes,
	}
	if err := h.svc.CreateBooking(c.Request().Context(), &b); err != nil {
		if errors.Is(err, ErrConflict) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) GetBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	b, err := h.svc.GetBooking(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) ListBookings(c echo.Context) error {
	branchID, err := strconv.ParseInt(c.QueryParam("branch_id"), 10, 64)
	if err != nil || branchID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "branch_id is required")
	}
	if dateStr := c.QueryParam("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		}
		items, err := h.svc.ListBookingsForDate(c.Request().Context(), branchID, date)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, items)
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListBookings(c.Request().Context(), branchID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Reschedule(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}
	b, err := h.svc.Reschedule(c.Request().Context(), id, date, &Booking{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "booking not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b, err := h.svc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "booking not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

// -- Time blocks --

type timeBlockRequest struct {
	BranchID  int64         `json:"branch_id"`
	Date      string        `json:"date"`
	StartTime clock.Minutes `json:"start_time"`
	EndTime   clock.Minutes `json:"end_time"`
	Reason    *string       `json:"reason"`
}

func (h *Handler) CreateTimeBlock(c echo.Context) error {
	var req timeBlockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}
	t := TimeBlock{
		BranchID:  req.BranchID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}
	if err := h.svc.CreateTimeBlock(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) GetTimeBlock(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	t, err := h.svc.GetTimeBlock(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "time block not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTimeBlock(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteTimeBlock(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListTimeBlocks(c echo.Context) error {
	branchID, err := strconv.ParseInt(c.QueryParam("branch_id"), 10, 64)
	if err != nil || branchID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "branch_id is required")
	}
	date, err := parseDate(c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}
	items, err := h.svc.ListTimeBlocks(c.Request().Context(), branchID, date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}
