// Package metrics defines the custom Prometheus metrics of the voluntariados
// API. It is the single source of truth for metric names, labels, and help
// strings.
//
// Metrics are registered with the default Prometheus registry on package
// init through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voluntariados"

// ── Record store metrics ──────────────────────────────────────────────────────

// RecordsCreatedTotal counts records inserted successfully.
// Label:
//   - collection: "usuarios" or "voluntariados"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by collection.",
	},
	[]string{"collection"},
)

// RecordsDeletedTotal counts records removed successfully.
var RecordsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of records deleted, by collection.",
	},
	[]string{"collection"},
)

// DuplicateInsertsTotal counts inserts rejected because the key was taken.
var DuplicateInsertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "duplicate_inserts_total",
		Help:      "Total number of inserts rejected with an existing identity key.",
	},
	[]string{"collection"},
)

// StoreErrorsTotal counts backend failures.
// Labels:
//   - collection: "usuarios" or "voluntariados"
//   - op: "list", "get", "create" or "delete"
var StoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Total number of record store backend failures.",
	},
	[]string{"collection", "op"},
)
