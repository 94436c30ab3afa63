package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	MovementsCreated  prometheus.Counter
	BalanceRecomputes prometheus.Counter

	// Cash entry metrics
	EntriesCreated prometheus.Counter
	Approvals      *prometheus.CounterVec

	// Shop sale metrics
	SalesCreated prometheus.Counter

	// Disbursement metrics
	OrdersCreated    prometheus.Counter
	OrderTransitions *prometheus.CounterVec

	// Reconciliation metrics
	Reconciliations *prometheus.CounterVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Ledger metrics
		MovementsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashtrack_movements_created_total",
			Help: "Total number of ledger movements created",
		}),
		BalanceRecomputes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashtrack_balance_recomputes_total",
			Help: "Total number of full running-balance recomputations",
		}),

		// Cash entry metrics
		EntriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashtrack_cash_entries_created_total",
			Help: "Total number of cash entries created",
		}),
		Approvals: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashtrack_entry_approvals_total",
				Help: "Total cash entry approvals by approver",
			},
			[]string{"approver"},
		),

		// Shop sale metrics
		SalesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashtrack_shop_sales_created_total",
			Help: "Total number of shop sales recorded",
		}),

		// Disbursement metrics
		OrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashtrack_disbursement_orders_created_total",
			Help: "Total number of disbursement orders created",
		}),
		OrderTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashtrack_disbursement_transitions_total",
				Help: "Total disbursement order transitions by target status",
			},
			[]string{"status"},
		),

		// Reconciliation metrics
		Reconciliations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashtrack_reconciliations_total",
				Help: "Total cash counts recorded by resulting status",
			},
			[]string{"status"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashtrack_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashtrack_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "cashtrack_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashtrack_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashtrack_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashtrack_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashtrack_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
