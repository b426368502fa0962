package service

import (
	"context"
	"fmt"

	"github.com/autofixpro/workshop-system/internal/core/domain"
	"github.com/autofixpro/workshop-system/internal/core/ports"
)

// adviceService is a static stub. Real inference is switched off; the texts
// below are fixed and the inputs only decorate them.
type adviceService struct{}

// NewAdviceService returns the stub AdviceService.
func NewAdviceService() ports.AdviceService {
	return &adviceService{}
}

func (adviceService) MaintenanceAdvice(_ context.Context, vehicle domain.Vehicle, owner *domain.Customer) string {
	ownerName := "unknown owner"
	if owner != nil {
		ownerName = owner.Name
	}
	return fmt.Sprintf(`Routine checks for %s %s (%s, %s):
1. Check oil level and tire pressure.
2. Confirm mileage since the last service (%s).
3. Inspect brake pad wear.`,
		vehicle.Brand, vehicle.Model, vehicle.PlateNumber, ownerName, vehicle.LastService)
}

func (adviceService) BusinessInsight(_ context.Context, snap domain.Snapshot) string {
	return fmt.Sprintf(
		"Insight generation is currently paused. Watch customer growth (%d on file) and cash flow across %d recorded transactions, and keep service quality up.",
		len(snap.Customers), len(snap.Transactions))
}
