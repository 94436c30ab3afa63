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

// MovementService defines the behavior needed by MovementHandler.
type MovementService interface {
	CreateMovement(ctx context.Context, input usecase.CreateMovementInput) (*domain.Movement, error)
	ListByScope(ctx context.Context, scope string) ([]*domain.Movement, error)
	ListAll(ctx context.Context, input usecase.ListMovementsInput) ([]*domain.Movement, error)
	GetBalanceAsOf(ctx context.Context, scope string, asOf domain.Date) (domain.Amount, error)
	GetScopeBalance(ctx context.Context, scope string) (domain.ScopeTotals, error)
}

// MovementHandler handles ledger movement HTTP requests.
type MovementHandler struct {
	movementUC MovementService
	metrics    *metrics.Metrics
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(movementUC MovementService, m *metrics.Metrics) *MovementHandler {
	return &MovementHandler{movementUC: movementUC, metrics: m}
}

// Create appends a movement to its scope and returns it with the recomputed
// running balances.
func (h *MovementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	movement, err := h.movementUC.CreateMovement(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create movement", err.Error())
		return
	}

	h.metrics.MovementsCreated.Inc()
	// Every committed insert recomputes the scope's full running-balance
	// sequence, so the two counters advance together here.
	h.metrics.BalanceRecomputes.Inc()
	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}

// List lists movements across all scopes.
func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	movements, err := h.movementUC.ListAll(r.Context(), usecase.ListMovementsInput{
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListMovementsResponse{
		Movements: dto.MovementsFromDomain(movements),
		Total:     int64(len(movements)),
	})
}

// ListByScope lists one scope's movements in ledger order.
func (h *MovementHandler) ListByScope(w http.ResponseWriter, r *http.Request) {
	scope := chi.URLParam(r, "scope")

	movements, err := h.movementUC.ListByScope(r.Context(), scope)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListMovementsResponse{
		Movements: dto.MovementsFromDomain(movements),
		Total:     int64(len(movements)),
	})
}

// GetBalance returns a scope's balance: current totals, or the running
// balance as of the date given in the as_of query parameter.
func (h *MovementHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	scope := chi.URLParam(r, "scope")

	if asOf := parseDateQuery(r, "as_of"); asOf != nil {
		balance, err := h.movementUC.GetBalanceAsOf(r.Context(), scope, *asOf)
		if err != nil {
			writeError(w, mapDomainError(err), "failed to get balance", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, dto.BalanceResponse{
			Scope:      scope,
			AsOf:       asOf,
			BalanceUSD: balance.USD,
			BalanceARS: balance.ARS,
		})
		return
	}

	totals, err := h.movementUC.GetScopeBalance(r.Context(), scope)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ScopeTotalsFromDomain(scope, totals))
}
