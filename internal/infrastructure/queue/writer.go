package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/autofixpro/workshop-system/internal/api/metrics"
	"github.com/autofixpro/workshop-system/internal/core/domain"
	"github.com/autofixpro/workshop-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// writeJob is one deferred remote write.
type writeJob struct {
	collection string
	id         string
	run        func(ctx context.Context) error
}

// Writer wraps a RemoteStore and moves its writes onto a fixed set of
// background workers. Jobs are routed by consistent hashing on the owning
// entity key — the customer id for customer and transaction writes — so all
// writes for the same customer land on the same worker and the two-step
// balance update is serialized per customer within this process.
//
// Write methods enqueue and return nil immediately: the reconciler's
// optimistic update never waits on the remote store. Failures are logged by
// the worker. FetchAll and Enabled pass straight through.
type Writer struct {
	inner   ports.RemoteStore
	workers []chan writeJob
	log     zerolog.Logger
}

// NewWriter creates a Writer with numWorkers shards. If numWorkers <= 0,
// defaultWorkers is used.
func NewWriter(inner ports.RemoteStore, numWorkers int, log zerolog.Logger) *Writer {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	w := &Writer{
		inner:   inner,
		workers: make([]chan writeJob, numWorkers),
		log:     log,
	}
	for i := range w.workers {
		w.workers[i] = make(chan writeJob, channelBuffer)
	}
	return w
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// jobs still queued at that point are dropped, consistent with the no-retry
// policy for unconfirmed writes.
func (w *Writer) Start(ctx context.Context) {
	for i, ch := range w.workers {
		go w.runWorker(ctx, i, ch)
	}
}

func (w *Writer) Enabled() bool { return w.inner.Enabled() }

func (w *Writer) FetchAll(ctx context.Context) (*domain.Snapshot, error) {
	return w.inner.FetchAll(ctx)
}

func (w *Writer) UpsertCustomer(_ context.Context, c domain.Customer) error {
	w.enqueue(c.ID, writeJob{
		collection: "customers",
		id:         c.ID,
		run: func(ctx context.Context) error {
			return w.inner.UpsertCustomer(ctx, c)
		},
	})
	return nil
}

func (w *Writer) UpsertVehicle(_ context.Context, v domain.Vehicle) error {
	w.enqueue(v.ID, writeJob{
		collection: "vehicles",
		id:         v.ID,
		run: func(ctx context.Context) error {
			return w.inner.UpsertVehicle(ctx, v)
		},
	})
	return nil
}

func (w *Writer) DeleteCustomer(_ context.Context, id string) error {
	w.enqueue(id, writeJob{
		collection: "customers",
		id:         id,
		run: func(ctx context.Context) error {
			return w.inner.DeleteCustomer(ctx, id)
		},
	})
	return nil
}

func (w *Writer) DeleteVehicle(_ context.Context, id string) error {
	w.enqueue(id, writeJob{
		collection: "vehicles",
		id:         id,
		run: func(ctx context.Context) error {
			return w.inner.DeleteVehicle(ctx, id)
		},
	})
	return nil
}

func (w *Writer) RecordTransaction(_ context.Context, t domain.Transaction) error {
	// Sharded by customer, not transaction, so concurrent transactions for
	// the same account cannot interleave their balance round-trips.
	w.enqueue(t.CustomerID, writeJob{
		collection: "transactions",
		id:         t.ID,
		run: func(ctx context.Context) error {
			return w.inner.RecordTransaction(ctx, t)
		},
	})
	return nil
}

// ShardIndex maps an entity key deterministically to a worker index.
func (w *Writer) ShardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(w.workers)
}

func (w *Writer) enqueue(key string, job writeJob) {
	idx := w.ShardIndex(key)
	w.workers[idx] <- job
	metrics.WriterQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
}

func (w *Writer) runWorker(ctx context.Context, id int, ch <-chan writeJob) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.WriterQueueDepth.WithLabelValues(label).Dec()
			if err := job.run(ctx); err != nil {
				w.log.Warn().Err(err).
					Str("collection", job.collection).
					Str("id", job.id).
					Str("reason", domain.FailureReason(err)).
					Int("worker_id", id).
					Msg("background remote write not confirmed")
			}
		}
	}
}
