package branch

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/platform/auth"
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
	read.GET("/branches", h.ListBranches)
	read.GET("/branches/:id", h.GetBranch)
	read.GET("/branches/:id/schedule", h.GetWeeklySchedule)

	write := api.Group("", auth.RequireRole("admin"))
	write.POST("/branches", h.CreateBranch)
	write.PUT("/branches/:id", h.UpdateBranch)
	write.DELETE("/branches/:id", h.DeactivateBranch)
	write.PUT("/branches/:id/schedule/:weekday", h.UpsertSchedule)
	write.DELETE("/branches/:id/schedule/:weekday", h.DeleteSchedule)
}

func branchIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid branch id")
	}
	return id, nil
}

func (h *Handler) CreateBranch(c echo.Context) error {
	var b Branch
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateBranch(c.Request().Context(), &b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) GetBranch(c echo.Context) error {
	id, err := branchIDParam(c)
	if err != nil {
		return err
	}
	b, err := h.svc.GetBranch(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "branch not found")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) ListBranches(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListBranches(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateBranch(c echo.Context) error {
	id, err := branchIDParam(c)
	if err != nil {
		return err
	}
	var b Branch
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b.ID = id
	if err := h.svc.UpdateBranch(c.Request().Context(), &b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) DeactivateBranch(c echo.Context) error {
	id, err := branchIDParam(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeactivateBranch(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetWeeklySchedule(c echo.Context) error {
	id, err := branchIDParam(c)
	if err != nil {
		return err
	}
	items, err := h.svc.WeeklySchedule(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpsertSchedule(c echo.Context) error {
	id, err := branchIDParam(c)
	if err != nil {
		return err
	}
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid weekday")
	}
	var d DaySchedule
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d.BranchID = id
	d.Weekday = weekday
	if err := h.svc.UpsertSchedule(c.Request().Context(), &d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteSchedule(c echo.Context) error {
	id, err := branchIDParam(c)
	if err != nil {
		return err
	}
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid weekday")
	}
	if err := h.svc.DeleteSchedule(c.Request().Context(), id, weekday); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
