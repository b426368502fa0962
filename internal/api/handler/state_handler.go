package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/autofixpro/workshop-system/internal/core/ports"
)

// StateHandler exposes the live snapshot, dashboard stats, the backup
// export, and the local reset.
type StateHandler struct {
	service ports.SyncService
}

func NewStateHandler(service ports.SyncService) *StateHandler {
	return &StateHandler{service: service}
}

// Get returns the full current snapshot.
//
// @Summary      Current application state
// @Tags         state
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AppState
// @Router       /v1/state [get]
func (h *StateHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.State())
}

// Reload re-runs the load decision (remote when reachable, mirror
// otherwise) and returns the resulting snapshot.
//
// @Summary      Reload state from the remote store or mirror
// @Tags         state
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AppState
// @Router       /v1/state/reload [post]
func (h *StateHandler) Reload(c echo.Context) error {
	state, err := h.service.Load(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}

type statsResponse struct {
	Customers         int     `json:"customers"`
	Vehicles          int     `json:"vehicles"`
	TotalBalance      float64 `json:"totalBalance"`
	TransactionsToday int     `json:"transactionsToday"`
}

// Stats returns the dashboard counters.
//
// @Summary      Dashboard statistics
// @Tags         state
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Router       /v1/stats [get]
func (h *StateHandler) Stats(c echo.Context) error {
	s := h.service.Stats()
	return c.JSON(http.StatusOK, statsResponse{
		Customers:         s.Customers,
		Vehicles:          s.Vehicles,
		TotalBalance:      s.TotalBalance,
		TransactionsToday: s.TransactionsToday,
	})
}

// Backup streams the full state as a downloadable JSON document.
//
// @Summary      Export a backup document
// @Tags         state
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AppState
// @Router       /v1/backup [get]
func (h *StateHandler) Backup(c echo.Context) error {
	raw, err := h.service.Export()
	if err != nil {
		return err
	}
	filename := fmt.Sprintf("workshop_backup_%s.json", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, raw)
}

// Reset clears the local mirror and empties the snapshot. Remote data is
// untouched. Admin only.
//
// @Summary      Reset local data
// @Tags         state
// @Security     BearerAuth
// @Success      204  "reset"
// @Failure      403  {object}  map[string]string
// @Router       /v1/reset [post]
func (h *StateHandler) Reset(c echo.Context) error {
	if err := h.service.Reset(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
