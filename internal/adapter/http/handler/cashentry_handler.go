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

// CashEntryService defines the behavior needed by CashEntryHandler.
type CashEntryService interface {
	CreateEntry(ctx context.Context, input usecase.CreateCashEntryInput) (*domain.CashEntry, error)
	ApproveEntry(ctx context.Context, id string, by domain.Approver) (*domain.CashEntry, error)
	GetEntry(ctx context.Context, id string) (*domain.CashEntry, error)
	ListEntries(ctx context.Context, filter usecase.CashEntryFilter) ([]*domain.CashEntry, error)
}

// CashEntryHandler handles general cash entry HTTP requests.
type CashEntryHandler struct {
	entryUC CashEntryService
	metrics *metrics.Metrics
}

// NewCashEntryHandler creates a new CashEntryHandler.
func NewCashEntryHandler(entryUC CashEntryService, m *metrics.Metrics) *CashEntryHandler {
	return &CashEntryHandler{entryUC: entryUC, metrics: m}
}

// Create creates a cash entry in Pending state.
func (h *CashEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCashEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.entryUC.CreateEntry(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create entry", err.Error())
		return
	}

	h.metrics.EntriesCreated.Inc()

	writeJSON(w, http.StatusCreated, dto.CashEntryFromDomain(entry))
}

// Get retrieves a cash entry by ID.
func (h *CashEntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.entryUC.GetEntry(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashEntryFromDomain(entry))
}

// Approve sets one party's approval flag on an entry. Re-approving by the
// same party returns 200 with the unchanged entry.
func (h *CashEntryHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.ApproveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.entryUC.ApproveEntry(r.Context(), id, domain.Approver(req.ApprovedBy))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to approve entry", err.Error())
		return
	}

	h.metrics.Approvals.WithLabelValues(req.ApprovedBy).Inc()

	writeJSON(w, http.StatusOK, dto.CashEntryFromDomain(entry))
}

// List lists cash entries, optionally filtered by application and date range.
func (h *CashEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.CashEntryFilter{
		Application: domain.Application(r.URL.Query().Get("application")),
		From:        parseDateQuery(r, "from"),
		To:          parseDateQuery(r, "to"),
		Limit:       parseIntQuery(r, "limit", 50),
		Offset:      parseIntQuery(r, "offset", 0),
	}

	entries, err := h.entryUC.ListEntries(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListCashEntriesResponse{
		Entries: dto.CashEntriesFromDomain(entries),
		Total:   int64(len(entries)),
	})
}
