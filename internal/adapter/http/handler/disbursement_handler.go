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

// DisbursementService defines the behavior needed by DisbursementHandler.
type DisbursementService interface {
	CreateOrder(ctx context.Context, input usecase.CreateDisbursementInput) (*domain.DisbursementOrder, error)
	ApproveOrder(ctx context.Context, id, approvedBy string) (*domain.DisbursementOrder, error)
	ProcessOrder(ctx context.Context, id, processedBy string) (*domain.DisbursementOrder, error)
	RejectOrder(ctx context.Context, id, reason string) (*domain.DisbursementOrder, error)
	GetOrder(ctx context.Context, id string) (*domain.DisbursementOrder, error)
	ListOrders(ctx context.Context, filter usecase.DisbursementFilter) ([]*domain.DisbursementOrder, error)
	ListOverdue(ctx context.Context, today domain.Date) ([]*domain.DisbursementOrder, error)
}

// DisbursementHandler handles disbursement order HTTP requests.
type DisbursementHandler struct {
	orderUC DisbursementService
	metrics *metrics.Metrics
}

// NewDisbursementHandler creates a new DisbursementHandler.
func NewDisbursementHandler(orderUC DisbursementService, m *metrics.Metrics) *DisbursementHandler {
	return &DisbursementHandler{orderUC: orderUC, metrics: m}
}

// Create requests a new disbursement order.
func (h *DisbursementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDisbursementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	order, err := h.orderUC.CreateOrder(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create order", err.Error())
		return
	}

	h.metrics.OrdersCreated.Inc()
	writeJSON(w, http.StatusCreated, dto.DisbursementFromDomain(order, domain.Today()))
}

// Get retrieves an order by ID.
func (h *DisbursementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := h.orderUC.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get order", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DisbursementFromDomain(order, domain.Today()))
}

// Approve moves a Requested order to Approved.
func (h *DisbursementHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req dto.ApproveOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	h.transition(w, r, domain.OrderStatusApproved, func(ctx context.Context, id string) (*domain.DisbursementOrder, error) {
		return h.orderUC.ApproveOrder(ctx, id, req.ApprovedBy)
	})
}

// Process moves an Approved order to Processed.
func (h *DisbursementHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req dto.ProcessOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	h.transition(w, r, domain.OrderStatusProcessed, func(ctx context.Context, id string) (*domain.DisbursementOrder, error) {
		return h.orderUC.ProcessOrder(ctx, id, req.ProcessedBy)
	})
}

// Reject moves an order to Rejected.
func (h *DisbursementHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req dto.RejectOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	h.transition(w, r, domain.OrderStatusRejected, func(ctx context.Context, id string) (*domain.DisbursementOrder, error) {
		return h.orderUC.RejectOrder(ctx, id, req.Reason)
	})
}

func (h *DisbursementHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	target domain.OrderStatus,
	do func(ctx context.Context, id string) (*domain.DisbursementOrder, error),
) {
	id := chi.URLParam(r, "id")

	order, err := do(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to transition order", err.Error())
		return
	}

	h.metrics.OrderTransitions.WithLabelValues(string(target)).Inc()
	writeJSON(w, http.StatusOK, dto.DisbursementFromDomain(order, domain.Today()))
}

// List lists orders filtered by project, status and priority.
func (h *DisbursementHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.DisbursementFilter{
		Project:  r.URL.Query().Get("project"),
		Status:   domain.OrderStatus(r.URL.Query().Get("status")),
		Priority: domain.OrderPriority(r.URL.Query().Get("priority")),
		Limit:    parseIntQuery(r, "limit", 50),
		Offset:   parseIntQuery(r, "offset", 0),
	}

	orders, err := h.orderUC.ListOrders(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list orders", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListDisbursementsResponse{
		Orders: dto.DisbursementsFromDomain(orders, domain.Today()),
		Total:  int64(len(orders)),
	})
}

// ListOverdue lists non-terminal orders past their due date.
func (h *DisbursementHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	today := domain.Today()

	orders, err := h.orderUC.ListOverdue(r.Context(), today)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list overdue orders", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListDisbursementsResponse{
		Orders: dto.DisbursementsFromDomain(orders, today),
		Total:  int64(len(orders)),
	})
}
