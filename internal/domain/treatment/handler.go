package treatment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
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
	read.GET("/treatments", h.ListTreatments)
	read.GET("/treatments/:id", h.GetTreatment)
	read.GET("/branches/:id/treatments", h.ListPrices)
	read.GET("/branches/:id/treatments/:treatmentId/price", h.GetPrice)

	write := api.Group("", auth.RequireRole("admin"))
	write.POST("/treatments", h.CreateTreatment)
	write.PUT("/treatments/:id", h.UpdateTreatment)
	write.DELETE("/treatments/:id", h.DeactivateTreatment)
	write.PUT("/branches/:id/treatments/:treatmentId/price", h.SetPrice)
	write.DELETE("/branches/:id/treatments/:treatmentId/price", h.RemovePrice)
}

func branchIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid branch id")
	}
	return id, nil
}

func (h *Handler) CreateTreatment(c echo.Context) error {
	var t Treatment
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateTreatment(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) GetTreatment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	t, err := h.svc.GetTreatment(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "treatment not found")
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) ListTreatments(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListTreatments(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateTreatment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var t Treatment
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	t.ID = id
	if err := h.svc.UpdateTreatment(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) DeactivateTreatment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeactivateTreatment(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// -- Pricing --

func (h *Handler) SetPrice(c echo.Context) error {
	branchID, err := branchIDParam(c)
	if err != nil {
		return err
	}
	treatmentID, err := uuid.Parse(c.Param("treatmentId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid treatment id")
	}
	var p BranchPrice
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.BranchID = branchID
	p.TreatmentID = treatmentID
	if err := h.svc.SetPrice(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) GetPrice(c echo.Context) error {
	branchID, err := branchIDParam(c)
	if err != nil {
		return err
	}
	treatmentID, err := uuid.Parse(c.Param("treatmentId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid treatment id")
	}
	p, err := h.svc.PriceFor(c.Request().Context(), branchID, treatmentID)
	if err != nil {
		if errors.Is(err, ErrNotOffered) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPrices(c echo.Context) error {
	branchID, err := branchIDParam(c)
	if err != nil {
		return err
	}
	items, err := h.svc.ListPrices(c.Request().Context(), branchID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) RemovePrice(c echo.Context) error {
	branchID, err := branchIDParam(c)
	if err != nil {
		return err
	}
	treatmentID, err := uuid.Parse(c.Param("treatmentId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid treatment id")
	}
	if err := h.svc.RemovePrice(c.Request().Context(), branchID, treatmentID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
