package ports

import (
	"context"

	"github.com/autofixpro/workshop-system/internal/core/domain"
)

// AdviceService produces the advisory texts shown on the dashboard and the
// vehicle pages. The current implementation is a static stub: no inference
// happens and the inputs only shape the wording.
type AdviceService interface {
	// MaintenanceAdvice returns service suggestions for a vehicle. Owner is
	// nil when the owning customer no longer exists.
	MaintenanceAdvice(ctx context.Context, vehicle domain.Vehicle, owner *domain.Customer) string

	// BusinessInsight returns a summary note over the current snapshot.
	BusinessInsight(ctx context.Context, snap domain.Snapshot) string
}
