package ports

import (
	"context"

	"github.com/autofixpro/workshop-system/internal/core/domain"
)

// RemoteStore is the adapter boundary to the hosted data store. It is
// stateless: it translates entity shapes to remote row shapes, issues the
// calls, and classifies every failure into one of the domain remote error
// classes. Implementations never retain entity data between calls.
//
// When the store is disabled (no well-formed credential) every write is a
// no-op success and FetchAll must not be called.
type RemoteStore interface {
	// Enabled reports whether a well-formed access credential is configured.
	Enabled() bool

	// FetchAll reads all three collections in parallel. It succeeds only if
	// every read succeeds; any partial failure is reported as a whole so the
	// caller never merges a half-fetched world.
	FetchAll(ctx context.Context) (*domain.Snapshot, error)

	// UpsertCustomer and UpsertVehicle write-or-replace by id, asking the
	// store to merge on duplicate identifiers rather than reject.
	UpsertCustomer(ctx context.Context, c domain.Customer) error
	UpsertVehicle(ctx context.Context, v domain.Vehicle) error

	// DeleteCustomer and DeleteVehicle are idempotent: deleting an id that
	// matches nothing is a success.
	DeleteCustomer(ctx context.Context, id string) error
	DeleteVehicle(ctx context.Context, id string) error

	// RecordTransaction writes the transaction row, then reads the affected
	// customer's remote balance and writes the adjusted value back. The two
	// round-trips are not atomic; a failure of the second leaves the remote
	// balance behind the transaction history.
	RecordTransaction(ctx context.Context, t domain.Transaction) error
}
