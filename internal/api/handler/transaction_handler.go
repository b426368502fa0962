package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autofixpro/workshop-system/internal/core/domain"
	"github.com/autofixpro/workshop-system/internal/core/ports"
)

// TransactionHandler handles HTTP requests for balance movements.
type TransactionHandler struct {
	service ports.SyncService
}

func NewTransactionHandler(service ports.SyncService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

type addTransactionResponse struct {
	Transaction domain.Transaction `json:"transaction"`
	// Balance is the customer's new in-memory balance after the local
	// formula was applied. The remote copy converges separately.
	Balance float64 `json:"balance"`
}

// Add records a TOPUP or SPEND movement and applies it to the customer's
// balance.
//
// @Summary      Record a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addTransactionRequest  true  "Transaction"
// @Success      201   {object}  addTransactionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/transactions [post]
func (h *TransactionHandler) Add(c echo.Context) error {
	var req addTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.service.AddTransaction(c.Request().Context(), ports.AddTransactionInput{
		ID:          req.ID,
		CustomerID:  req.CustomerID,
		Type:        domain.TransactionType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return err
	}

	resp := addTransactionResponse{Transaction: t}
	if cust, ok := h.service.LookupCustomer(t.CustomerID); ok {
		resp.Balance = cust.Balance
	}
	return c.JSON(http.StatusCreated, resp)
}
