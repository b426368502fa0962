package ports

import (
	"context"

	"github.com/autofixpro/workshop-system/internal/core/domain"
)

// SaveCustomerInput carries a full customer record for upsert. An empty ID
// means "create" and the service assigns one; resubmitting an existing ID
// replaces the record in place.
type SaveCustomerInput struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Balance   float64
	CreatedAt string
}

// SaveVehicleInput carries a full vehicle record for upsert.
type SaveVehicleInput struct {
	ID          string
	CustomerID  string
	PlateNumber string
	Brand       string
	Model       string
	Year        string
	VIN         string
	LastService string
}

// AddTransactionInput carries a new balance movement. Transactions are
// append-only; there is no update or delete counterpart.
type AddTransactionInput struct {
	ID          string
	CustomerID  string
	Type        domain.TransactionType
	Amount      float64
	Description string
	Date        string
}

// StatsResult is the dashboard summary computed from the live snapshot.
type StatsResult struct {
	Customers         int
	Vehicles          int
	TotalBalance      float64
	TransactionsToday int
}

// SyncService is the state reconciler: the single owner of the live AppState
// snapshot. Every mutation applies to the snapshot exactly once, in call
// order, regardless of the remote outcome, and persists the snapshot to the
// mirror as its final step.
type SyncService interface {
	// Load decides who is authoritative: the remote store when enabled and a
	// full fetch succeeds (the mirror is rewritten to match), otherwise the
	// mirror verbatim, otherwise an empty snapshot. The session identity is
	// preserved across reloads.
	Load(ctx context.Context) (domain.AppState, error)

	// State returns a copy of the current snapshot.
	State() domain.AppState

	SaveCustomer(ctx context.Context, input SaveCustomerInput) (domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	SaveVehicle(ctx context.Context, input SaveVehicleInput) (domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error

	// AddTransaction appends the transaction and recomputes the affected
	// customer's in-memory balance with the local formula, independently of
	// whatever the remote two-step update computes.
	AddTransaction(ctx context.Context, input AddTransactionInput) (domain.Transaction, error)

	// Reset clears the local mirror only — never a remote delete — and
	// returns the snapshot to its empty form, keeping the session identity.
	Reset(ctx context.Context) error

	// Export serializes the full AppState (session identity included) for
	// download as a backup document.
	Export() ([]byte, error)

	// LookupCustomer resolves a possibly dangling customer reference. Absent
	// is a normal result, not an error.
	LookupCustomer(id string) (domain.Customer, bool)

	Stats() StatsResult

	// SetCurrentUser installs or clears (nil) the session identity.
	SetCurrentUser(u *domain.User)
}
