package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Validation metrics
	ValidationsTotal    *prometheus.CounterVec
	ValidationDuration  prometheus.Histogram
	ValidationWarnings  prometheus.Counter
	ValidationErrors    prometheus.Counter
	ValidationBypasses  prometheus.Counter
	ReconciliationDrift prometheus.Counter

	// Quick-status metrics
	QuickStatusTotal  *prometheus.CounterVec
	BatchSize         prometheus.Histogram
	StatusCacheHits   prometheus.Counter
	StatusCacheMisses prometheus.Counter

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Audit metrics
	AuditRecordsCreated *prometheus.CounterVec
	AuditWriteFailures  prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Validation metrics
		ValidationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditgate_validations_total",
				Help: "Total number of credit validations by outcome",
			},
			[]string{"outcome"},
		),
		ValidationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "creditgate_validation_duration_seconds",
			Help:    "Duration of full credit validations",
			Buckets: prometheus.DefBuckets,
		}),
		ValidationWarnings: promauto.NewCounter(prometheus.CounterOpts{
			Name: "creditgate_validation_warnings_total",
			Help: "Total number of warnings emitted by validations",
		}),
		ValidationErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "creditgate_validation_errors_total",
			Help: "Total number of blocking errors emitted by validations",
		}),
		ValidationBypasses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "creditgate_validation_bypasses_total",
			Help: "Total number of validations bypassed by privileged override",
		}),
		ReconciliationDrift: promauto.NewCounter(prometheus.CounterOpts{
			Name: "creditgate_reconciliation_drift_total",
			Help: "Total number of validations that detected ledger/cache drift",
		}),

		// Quick-status metrics
		QuickStatusTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditgate_quick_status_total",
				Help: "Total quick-status classifications by label",
			},
			[]string{"label"},
		),
		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "creditgate_batch_size",
			Help:    "Number of customers per batch quick-status request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
		StatusCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "creditgate_status_cache_hits_total",
			Help: "Total quick-status cache hits",
		}),
		StatusCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "creditgate_status_cache_misses_total",
			Help: "Total quick-status cache misses",
		}),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditgate_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "creditgate_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "creditgate_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditgate_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Audit metrics
		AuditRecordsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditgate_audit_records_total",
				Help: "Total decision audit records created by outcome",
			},
			[]string{"outcome"},
		),
		AuditWriteFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "creditgate_audit_write_failures_total",
			Help: "Total decision audit writes that failed",
		}),
	}
}
