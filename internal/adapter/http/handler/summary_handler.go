package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hcstudio/cashtrack/internal/adapter/http/dto"
	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

// SummaryService defines the behavior needed by SummaryHandler.
type SummaryService interface {
	ScopeSummaries(ctx context.Context) ([]domain.ScopeAggregate, error)
	MonthlySummary(ctx context.Context, scope string) ([]domain.MonthlyAggregate, error)
	EntrySummaries(ctx context.Context) ([]usecase.ApplicationSummary, error)
}

// SummaryHandler handles aggregation HTTP requests.
type SummaryHandler struct {
	summaryUC SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryUC SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryUC: summaryUC}
}

// Scopes returns the per-scope rollup, ordered descending by balance.
func (h *SummaryHandler) Scopes(w http.ResponseWriter, r *http.Request) {
	groups, err := h.summaryUC.ScopeSummaries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build scope summaries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ScopeSummariesFromDomain(groups))
}

// Monthly returns one scope's rollup by calendar month.
func (h *SummaryHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	scope := chi.URLParam(r, "scope")

	months, err := h.summaryUC.MonthlySummary(r.Context(), scope)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build monthly summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MonthlySummariesFromDomain(months))
}

// Applications returns the per-application rollup of general cash entries.
func (h *SummaryHandler) Applications(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.summaryUC.EntrySummaries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build application summaries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ApplicationSummariesFromDomain(summaries))
}
