package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/autofixpro/workshop-system/internal/core/domain"
)

// captureRemote records calls with the goroutine that made them visible.
type captureRemote struct {
	mu    sync.Mutex
	calls []string
	err   error
	done  chan struct{}
}

func newCaptureRemote(expected int) *captureRemote {
	return &captureRemote{done: make(chan struct{}, expected)}
}

func (r *captureRemote) record(call string) error {
	r.mu.Lock()
	r.calls = append(r.calls, call)
	r.mu.Unlock()
	r.done <- struct{}{}
	return r.err
}

func (r *captureRemote) wait(t *testing.T, n int) []string {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for background write %d of %d", i+1, n)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

func (r *captureRemote) Enabled() bool { return true }

func (r *captureRemote) FetchAll(context.Context) (*domain.Snapshot, error) {
	snap := domain.EmptySnapshot()
	snap.Customers = append(snap.Customers, domain.Customer{ID: "fetched"})
	return &snap, nil
}

func (r *captureRemote) UpsertCustomer(_ context.Context, c domain.Customer) error {
	return r.record("upsert_customer:" + c.ID)
}

func (r *captureRemote) UpsertVehicle(_ context.Context, v domain.Vehicle) error {
	return r.record("upsert_vehicle:" + v.ID)
}

func (r *captureRemote) DeleteCustomer(_ context.Context, id string) error {
	return r.record("delete_customer:" + id)
}

func (r *captureRemote) DeleteVehicle(_ context.Context, id string) error {
	return r.record("delete_vehicle:" + id)
}

func (r *captureRemote) RecordTransaction(_ context.Context, t domain.Transaction) error {
	return r.record("record_transaction:" + t.ID)
}

func startWriter(t *testing.T, remote *captureRemote, workers int) *Writer {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	w := NewWriter(remote, workers, zerolog.Nop())
	w.Start(ctx)
	return w
}

func TestWriter_ReturnsBeforeTheRemoteRuns(t *testing.T) {
	remote := newCaptureRemote(1)
	w := startWriter(t, remote, 2)

	if err := w.UpsertCustomer(context.Background(), domain.Customer{ID: "c1"}); err != nil {
		t.Fatalf("enqueue must always succeed, got %v", err)
	}

	calls := remote.wait(t, 1)
	if len(calls) != 1 || calls[0] != "upsert_customer:c1" {
		t.Errorf("background write wrong: %v", calls)
	}
}

func TestWriter_SwallowsRemoteFailures(t *testing.T) {
	remote := newCaptureRemote(1)
	remote.err = domain.ErrNetworkFailure
	w := startWriter(t, remote, 1)

	if err := w.DeleteVehicle(context.Background(), "v1"); err != nil {
		t.Errorf("caller must never see the background failure, got %v", err)
	}
	remote.wait(t, 1)
}

func TestWriter_SameCustomerWritesStayOrdered(t *testing.T) {
	const n = 20
	remote := newCaptureRemote(n)
	w := startWriter(t, remote, 4)
	ctx := context.Background()

	// All for one customer, so every job lands on one worker in queue order.
	for i := 0; i < n; i++ {
		tx := domain.Transaction{ID: string(rune('a' + i)), CustomerID: "c1", Type: domain.TypeTopup, Amount: 1}
		if err := w.RecordTransaction(ctx, tx); err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}

	calls := remote.wait(t, n)
	for i, call := range calls {
		want := "record_transaction:" + string(rune('a'+i))
		if call != want {
			t.Fatalf("call %d out of order: want %s, got %s", i, want, call)
		}
	}
}

func TestShardIndex_IsDeterministicAndBounded(t *testing.T) {
	w := NewWriter(newCaptureRemote(0), 4, zerolog.Nop())

	keys := []string{"c1", "c2", "customer-uuid-123", "", "沪B88888"}
	for _, key := range keys {
		first := w.ShardIndex(key)
		if first < 0 || first >= 4 {
			t.Errorf("shard for %q out of range: %d", key, first)
		}
		for i := 0; i < 10; i++ {
			if got := w.ShardIndex(key); got != first {
				t.Errorf("shard for %q not stable: %d then %d", key, first, got)
			}
		}
	}
}

func TestWriter_FetchAllPassesThrough(t *testing.T) {
	remote := newCaptureRemote(0)
	w := NewWriter(remote, 2, zerolog.Nop())

	snap, err := w.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(snap.Customers) != 1 || snap.Customers[0].ID != "fetched" {
		t.Errorf("fetch not passed through: %+v", snap)
	}
	if !w.Enabled() {
		t.Error("enabled not passed through")
	}
}

func TestNewWriter_DefaultsWorkerCount(t *testing.T) {
	w := NewWriter(newCaptureRemote(0), 0, zerolog.Nop())
	if got := len(w.workers); got != defaultWorkers {
		t.Errorf("want %d workers by default, got %d", defaultWorkers, got)
	}
}
