// Package metrics defines and registers all custom Prometheus metrics for
// the workshop sync service. It is the single source of truth for metric
// names, labels, and help strings; promauto registers everything with the
// default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workshop"

// ── Remote store metrics ─────────────────────────────────────────────────────

// RemoteWritesTotal counts remote write attempts by outcome.
// Labels:
//   - collection: "customers", "vehicles", or "transactions"
//   - outcome: "confirmed" or a failure reason ("network", "permission_denied",
//     "not_found", "unexpected_status")
var RemoteWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_writes_total",
		Help:      "Total number of remote store write attempts, by collection and outcome.",
	},
	[]string{"collection", "outcome"},
)

// RemoteFetchesTotal counts full three-collection fetches.
// Label:
//   - outcome: "ok" or "failed" (any partial failure counts as failed)
var RemoteFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_fetches_total",
		Help:      "Total number of full snapshot fetches from the remote store.",
	},
	[]string{"outcome"},
)

// ── Mirror metrics ───────────────────────────────────────────────────────────

// MirrorWritesTotal counts snapshot writes to the local mirror.
// Label:
//   - outcome: "ok" or "error"
var MirrorWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mirror_writes_total",
		Help:      "Total number of full-snapshot writes to the local mirror.",
	},
	[]string{"outcome"},
)

// ── Background writer metrics ────────────────────────────────────────────────

// WriterQueueDepth tracks the number of remote writes waiting in each
// background writer shard.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var WriterQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "writer_queue_depth",
		Help:      "Current number of remote writes pending in each writer shard.",
	},
	[]string{"worker_id"},
)
