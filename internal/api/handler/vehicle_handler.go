package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autofixpro/workshop-system/internal/core/ports"
)

// VehicleHandler handles HTTP requests for vehicle records.
type VehicleHandler struct {
	service ports.SyncService
}

func NewVehicleHandler(service ports.SyncService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// vehicleResponse decorates a vehicle with its resolved owner name, or the
// unknown-owner marker when the customer reference dangles.
type vehicleResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customerId"`
	OwnerName   string `json:"ownerName"`
	PlateNumber string `json:"plateNumber"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        string `json:"year"`
	VIN         string `json:"vin,omitempty"`
	LastService string `json:"lastService"`
}

const unknownOwner = "unknown owner"

// Save upserts a vehicle.
//
// @Summary      Create or update a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveVehicleRequest  true  "Vehicle record"
// @Success      200   {object}  vehicleResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/vehicles [post]
func (h *VehicleHandler) Save(c echo.Context) error {
	var req saveVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	v, err := h.service.SaveVehicle(c.Request().Context(), ports.SaveVehicleInput{
		ID:          req.ID,
		CustomerID:  req.CustomerID,
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		VIN:         req.VIN,
		LastService: req.LastService,
	})
	if err != nil {
		return err
	}

	resp := vehicleResponse{
		ID:          v.ID,
		CustomerID:  v.CustomerID,
		OwnerName:   unknownOwner,
		PlateNumber: v.PlateNumber,
		Brand:       v.Brand,
		Model:       v.Model,
		Year:        v.Year,
		VIN:         v.VIN,
		LastService: v.LastService,
	}
	if owner, ok := h.service.LookupCustomer(v.CustomerID); ok {
		resp.OwnerName = owner.Name
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete removes a vehicle record. Admin only.
//
// @Summary      Delete a vehicle
// @Tags         vehicles
// @Security     BearerAuth
// @Param        id  path  string  true  "Vehicle id"
// @Success      204 "deleted"
// @Failure      403 {object}  map[string]string
// @Router       /v1/vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteVehicle(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
