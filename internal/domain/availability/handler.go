package availability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/platform/auth"
)

const defaultDurationMinutes = 60

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "doctor", "nurse", "receptionist"))
	g.GET("/branches/:id/availability", h.GetAvailability)
}

type availabilityResponse struct {
	Date string `json:"date"`
	Result
}

func (h *Handler) GetAvailability(c echo.Context) error {
	branchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || branchID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid branch id")
	}

	dateStr := c.QueryParam("date")
	if dateStr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required (YYYY-MM-DD)")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}

	duration := defaultDurationMinutes
	if d := c.QueryParam("duration"); d != "" {
		duration, err = strconv.Atoi(d)
		if err != nil || duration <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "duration must be a positive integer")
		}
	}

	res, err := h.svc.ComputeAvailability(c.Request().Context(), branchID, date, duration)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, availabilityResponse{Date: dateStr, Result: *res})
}
