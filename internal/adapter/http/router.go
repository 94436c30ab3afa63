package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hcstudio/cashtrack/internal/adapter/http/handler"
	"github.com/hcstudio/cashtrack/internal/adapter/http/middleware"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	MovementHandler     *handler.MovementHandler
	CashEntryHandler    *handler.CashEntryHandler
	DisbursementHandler *handler.DisbursementHandler
	ShopSaleHandler     *handler.ShopSaleHandler
	CashCountHandler    *handler.CashCountHandler
	SummaryHandler      *handler.SummaryHandler
	HealthHandler       *handler.HealthHandler
	IdempotencyStore    usecase.IdempotencyStore
	RateLimiter         *middleware.RateLimiter
	Logging             *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Movements (the ledger engine)
		r.Route("/movements", func(r chi.Router) {
			r.Post("/", cfg.MovementHandler.Create)
			r.Get("/", cfg.MovementHandler.List)
		})

		// Scopes: per-project/event views over the ledger
		r.Route("/scopes", func(r chi.Router) {
			r.Get("/{scope}/movements", cfg.MovementHandler.ListByScope)
			r.Get("/{scope}/balance", cfg.MovementHandler.GetBalance)
			r.Get("/{scope}/monthly-summary", cfg.SummaryHandler.Monthly)
			r.Get("/{scope}/cash-counts", cfg.CashCountHandler.ListByScope)
		})

		// General cash entries and their approval workflow
		r.Route("/cash-entries", func(r chi.Router) {
			r.Post("/", cfg.CashEntryHandler.Create)
			r.Get("/", cfg.CashEntryHandler.List)
			r.Get("/{id}", cfg.CashEntryHandler.Get)
			r.Post("/{id}/approve", cfg.CashEntryHandler.Approve)
		})

		// Disbursement orders
		r.Route("/disbursement-orders", func(r chi.Router) {
			r.Post("/", cfg.DisbursementHandler.Create)
			r.Get("/", cfg.DisbursementHandler.List)
			r.Get("/overdue", cfg.DisbursementHandler.ListOverdue)
			r.Get("/{id}", cfg.DisbursementHandler.Get)
			r.Post("/{id}/approve", cfg.DisbursementHandler.Approve)
			r.Post("/{id}/process", cfg.DisbursementHandler.Process)
			r.Post("/{id}/reject", cfg.DisbursementHandler.Reject)
		})

		// Shop sales: the retail business line
		r.Route("/shop-sales", func(r chi.Router) {
			r.Post("/", cfg.ShopSaleHandler.Create)
			r.Get("/", cfg.ShopSaleHandler.List)
			r.Get("/{id}", cfg.ShopSaleHandler.Get)
			r.Post("/{id}/status", cfg.ShopSaleHandler.SetStatus)
		})

		// Cash counts (reconciliation)
		r.Route("/cash-counts", func(r chi.Router) {
			r.Post("/", cfg.CashCountHandler.Create)
			r.Get("/{id}", cfg.CashCountHandler.Get)
		})

		// Aggregated views
		r.Route("/summaries", func(r chi.Router) {
			r.Get("/scopes", cfg.SummaryHandler.Scopes)
			r.Get("/applications", cfg.SummaryHandler.Applications)
		})
	})

	return r
}
