package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autofixpro/workshop-system/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer records.
type CustomerHandler struct {
	service ports.SyncService
}

func NewCustomerHandler(service ports.SyncService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Save upserts a customer.
//
// @Summary      Create or update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveCustomerRequest  true  "Customer record"
// @Success      200   {object}  domain.Customer
// @Failure      400   {object}  map[string]string
// @Router       /v1/customers [post]
func (h *CustomerHandler) Save(c echo.Context) error {
	var req saveCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cust, err := h.service.SaveCustomer(c.Request().Context(), ports.SaveCustomerInput{
		ID:        req.ID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Balance:   req.Balance,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cust)
}

// Get returns one customer by id, resolving possibly dangling references.
//
// @Summary      Get a customer by id
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Customer id"
// @Success      200 {object}  domain.Customer
// @Failure      404 {object}  map[string]string
// @Router       /v1/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	cust, ok := h.service.LookupCustomer(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "customer not found"})
	}
	return c.JSON(http.StatusOK, cust)
}

// Delete removes a customer. Vehicles and transactions referencing it are
// kept; their owner renders as unknown from then on. Admin only — the
// client is expected to confirm before calling, this being the one
// destructive, user-visible action.
//
// @Summary      Delete a customer
// @Tags         customers
// @Security     BearerAuth
// @Param        id  path  string  true  "Customer id"
// @Success      204 "deleted"
// @Failure      403 {object}  map[string]string
// @Router       /v1/customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteCustomer(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
