package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/autofixpro/workshop-system/internal/core/domain"
	"github.com/autofixpro/workshop-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// syncService is the state reconciler. It exclusively owns the live AppState
// and serializes all visible state transitions behind one mutex; remote
// writes are attempted first and their outcome never blocks or reverts the
// optimistic in-memory result.
type syncService struct {
	remote ports.RemoteStore
	mirror ports.Mirror
	log    zerolog.Logger

	mu    sync.Mutex
	state domain.AppState
}

// NewSyncService returns a SyncService starting from an empty snapshot.
// Call Load to hydrate it from the remote store or the mirror.
func NewSyncService(remote ports.RemoteStore, mirror ports.Mirror, log zerolog.Logger) ports.SyncService {
	return &syncService{
		remote: remote,
		mirror: mirror,
		log:    log,
		state:  domain.AppState{Snapshot: domain.EmptySnapshot()},
	}
}

// Load hydrates the snapshot. The remote store is authoritative when enabled
// and the full three-collection fetch succeeds, in which case the mirror is
// rewritten to match. On any fetch failure (or with the remote disabled) the
// mirror is restored verbatim; with no mirror the snapshot stays empty.
// Load never fails the caller: every fallback step is a normal outcome.
func (s *syncService) Load(ctx context.Context) (domain.AppState, error) {
	if s.remote.Enabled() {
		snap, err := s.remote.FetchAll(ctx)
		if err == nil {
			s.mu.Lock()
			s.state.Snapshot = snap.Clone()
			out := s.copyStateLocked()
			s.mu.Unlock()

			s.persist(ctx, *snap)
			s.log.Info().
				Int("customers", len(snap.Customers)).
				Int("vehicles", len(snap.Vehicles)).
				Int("transactions", len(snap.Transactions)).
				Msg("snapshot loaded from remote store")
			return out, nil
		}
		s.log.Warn().Err(err).Msg("remote fetch failed, falling back to mirror")
	}

	snap, err := s.mirror.Load(ctx)
	switch {
	case err == nil:
		s.mu.Lock()
		s.state.Snapshot = snap.Clone()
		out := s.copyStateLocked()
		s.mu.Unlock()
		s.log.Info().Msg("snapshot restored from local mirror")
		return out, nil
	case errors.Is(err, ports.ErrNoSnapshot):
		s.log.Info().Msg("no mirror snapshot, starting empty")
	default:
		s.log.Error().Err(err).Msg("mirror read failed, starting empty")
	}

	s.mu.Lock()
	s.state.Snapshot = domain.EmptySnapshot()
	out := s.copyStateLocked()
	s.mu.Unlock()
	return out, nil
}

func (s *syncService) State() domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyStateLocked()
}

func (s *syncService) SaveCustomer(ctx context.Context, input ports.SaveCustomerInput) (domain.Customer, error) {
	c := domain.Customer{
		ID:        input.ID,
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Balance:   input.Balance,
		CreatedAt: input.CreatedAt,
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt == "" {
		c.CreatedAt = time.Now().Format(dateLayout)
	}

	if err := s.remote.UpsertCustomer(ctx, c); err != nil {
		s.logUnconfirmed(err, "customers", c.ID)
	}

	s.mu.Lock()
	replaced := false
	for i := range s.state.Customers {
		if s.state.Customers[i].ID == c.ID {
			s.state.Customers[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.Customers = append(s.state.Customers, c)
	}
	snap := s.state.Snapshot.Clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return c, nil
}

// DeleteCustomer removes the customer from the snapshot. Vehicles and
// transactions referencing it are left in place; their owner lookups report
// absent from then on. Deleting an unknown id is a no-op success.
func (s *syncService) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.remote.DeleteCustomer(ctx, id); err != nil {
		s.logUnconfirmed(err, "customers", id)
	}

	s.mu.Lock()
	kept := s.state.Customers[:0]
	for _, c := range s.state.Customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.state.Customers = kept
	snap := s.state.Snapshot.Clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return nil
}

func (s *syncService) SaveVehicle(ctx context.Context, input ports.SaveVehicleInput) (domain.Vehicle, error) {
	v := domain.Vehicle{
		ID:          input.ID,
		CustomerID:  input.CustomerID,
		PlateNumber: input.PlateNumber,
		Brand:       input.Brand,
		Model:       input.Model,
		Year:        input.Year,
		VIN:         input.VIN,
		LastService: input.LastService,
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}

	if err := s.remote.UpsertVehicle(ctx, v); err != nil {
		s.logUnconfirmed(err, "vehicles", v.ID)
	}

	s.mu.Lock()
	replaced := false
	for i := range s.state.Vehicles {
		if s.state.Vehicles[i].ID == v.ID {
			s.state.Vehicles[i] = v
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.Vehicles = append(s.state.Vehicles, v)
	}
	snap := s.state.Snapshot.Clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return v, nil
}

func (s *syncService) DeleteVehicle(ctx context.Context, id string) error {
	if err := s.remote.DeleteVehicle(ctx, id); err != nil {
		s.logUnconfirmed(err, "vehicles", id)
	}

	s.mu.Lock()
	kept := s.state.Vehicles[:0]
	for _, v := range s.state.Vehicles {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	s.state.Vehicles = kept
	snap := s.state.Snapshot.Clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return nil
}

// AddTransaction appends the transaction and applies the balance delta to
// the in-memory customer using the local formula. The remote side runs its
// own two-step update; the two can diverge when the remote balance write
// fails after the transaction insert succeeded. That gap is accepted and
// observable in the logs, not hidden.
func (s *syncService) AddTransaction(ctx context.Context, input ports.AddTransactionInput) (domain.Transaction, error) {
	if !input.Type.Valid() || input.Amount <= 0 {
		return domain.Transaction{}, domain.ErrInvalidTransaction
	}

	s.mu.Lock()
	_, found := s.state.FindCustomer(input.CustomerID)
	s.mu.Unlock()
	if !found {
		return domain.Transaction{}, domain.ErrCustomerNotFound
	}

	t := domain.Transaction{
		ID:          input.ID,
		CustomerID:  input.CustomerID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Date == "" {
		t.Date = time.Now().Format(dateLayout)
	}

	if err := s.remote.RecordTransaction(ctx, t); err != nil {
		s.logUnconfirmed(err, "transactions", t.ID)
	}

	s.mu.Lock()
	for i := range s.state.Customers {
		if s.state.Customers[i].ID == t.CustomerID {
			s.state.Customers[i].Balance = t.Type.Apply(s.state.Customers[i].Balance, t.Amount)
			break
		}
	}
	s.state.Transactions = append(s.state.Transactions, t)
	snap := s.state.Snapshot.Clone()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return t, nil
}

// Reset clears the local mirror and empties the snapshot. Remote data is
// untouched: the next Load with the remote enabled repopulates everything.
func (s *syncService) Reset(ctx context.Context) error {
	if err := s.mirror.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("mirror clear failed")
		return err
	}

	s.mu.Lock()
	s.state.Snapshot = domain.EmptySnapshot()
	s.mu.Unlock()

	s.log.Info().Msg("local data reset")
	return nil
}

func (s *syncService) Export() ([]byte, error) {
	s.mu.Lock()
	state := s.copyStateLocked()
	s.mu.Unlock()
	return json.MarshalIndent(state, "", "  ")
}

func (s *syncService) LookupCustomer(id string) (domain.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.FindCustomer(id)
}

func (s *syncService) Stats() ports.StatsResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := time.Now().Format(dateLayout)
	out := ports.StatsResult{
		Customers: len(s.state.Customers),
		Vehicles:  len(s.state.Vehicles),
	}
	for _, c := range s.state.Customers {
		out.TotalBalance += c.Balance
	}
	for _, t := range s.state.Transactions {
		if t.Date == today {
			out.TransactionsToday++
		}
	}
	return out
}

func (s *syncService) SetCurrentUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentUser = u
}

// persist writes the snapshot to the mirror as the final step of a mutation.
// A mirror failure is logged but never surfaced: the in-memory state already
// reflects the mutation and remains the source for this process.
func (s *syncService) persist(ctx context.Context, snap domain.Snapshot) {
	if err := s.mirror.Save(ctx, snap); err != nil {
		s.log.Error().Err(err).Msg("mirror write failed")
	}
}

func (s *syncService) logUnconfirmed(err error, collection, id string) {
	s.log.Warn().Err(err).
		Str("collection", collection).
		Str("id", id).
		Str("reason", domain.FailureReason(err)).
		Msg("remote write not confirmed")
}

// copyStateLocked returns a deep copy of the state; callers must hold mu.
func (s *syncService) copyStateLocked() domain.AppState {
	return domain.AppState{
		CurrentUser: s.state.CurrentUser,
		Snapshot:    s.state.Snapshot.Clone(),
	}
}
