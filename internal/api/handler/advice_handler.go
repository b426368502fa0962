package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autofixpro/workshop-system/internal/core/domain"
	"github.com/autofixpro/workshop-system/internal/core/ports"
)

// AdviceHandler serves the static advisory texts.
type AdviceHandler struct {
	advice ports.AdviceService
	sync   ports.SyncService
}

func NewAdviceHandler(advice ports.AdviceService, sync ports.SyncService) *AdviceHandler {
	return &AdviceHandler{advice: advice, sync: sync}
}

type adviceResponse struct {
	Advice string `json:"advice"`
}

// Maintenance returns service suggestions for one vehicle.
//
// @Summary      Maintenance advice for a vehicle
// @Tags         advice
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Vehicle id"
// @Success      200 {object}  adviceResponse
// @Failure      404 {object}  map[string]string
// @Router       /v1/advice/maintenance/{id} [get]
func (h *AdviceHandler) Maintenance(c echo.Context) error {
	state := h.sync.State()
	vehicle, ok := state.FindVehicle(c.Param("id"))
	if !ok {
		return domain.ErrVehicleNotFound
	}

	var owner *domain.Customer
	if cust, ok := h.sync.LookupCustomer(vehicle.CustomerID); ok {
		owner = &cust
	}

	text := h.advice.MaintenanceAdvice(c.Request().Context(), vehicle, owner)
	return c.JSON(http.StatusOK, adviceResponse{Advice: text})
}

// Business returns the summary note over the current snapshot.
//
// @Summary      Business insight
// @Tags         advice
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object}  adviceResponse
// @Router       /v1/advice/business [get]
func (h *AdviceHandler) Business(c echo.Context) error {
	state := h.sync.State()
	text := h.advice.BusinessInsight(c.Request().Context(), state.Snapshot)
	return c.JSON(http.StatusOK, adviceResponse{Advice: text})
}
