package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hcstudio/cashtrack/internal/adapter/http/dto"
	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/infrastructure/metrics"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

// CashCountService defines the behavior needed by CashCountHandler.
type CashCountService interface {
	CreateCount(ctx context.Context, input usecase.CreateCashCountInput) (*domain.CashCount, error)
	GetCount(ctx context.Context, id string) (*domain.CashCount, error)
	ListByScope(ctx context.Context, input usecase.ListCountsInput) ([]*domain.CashCount, error)
}

// CashCountHandler handles cash count HTTP requests.
type CashCountHandler struct {
	countUC CashCountService
	metrics *metrics.Metrics
}

// NewCashCountHandler creates a new CashCountHandler.
func NewCashCountHandler(countUC CashCountService, m *metrics.Metrics) *CashCountHandler {
	return &CashCountHandler{countUC: countUC, metrics: m}
}

// Create submits a count, reconciles it against the ledger and returns the
// frozen result.
func (h *CashCountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCashCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	count, err := h.countUC.CreateCount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create cash count", err.Error())
		return
	}

	h.metrics.Reconciliations.WithLabelValues(string(count.Status)).Inc()
	writeJSON(w, http.StatusCreated, dto.CashCountFromDomain(count))
}

// Get retrieves a cash count by ID.
func (h *CashCountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	count, err := h.countUC.GetCount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get cash count", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashCountFromDomain(count))
}

// ListByScope lists a scope's cash counts.
func (h *CashCountHandler) ListByScope(w http.ResponseWriter, r *http.Request) {
	counts, err := h.countUC.ListByScope(r.Context(), usecase.ListCountsInput{
		Scope:  chi.URLParam(r, "scope"),
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list cash counts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashCountsFromDomain(counts))
}
