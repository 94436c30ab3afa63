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

// ShopSaleService defines the behavior needed by ShopSaleHandler.
type ShopSaleService interface {
	CreateSale(ctx context.Context, input usecase.CreateShopSaleInput) (*domain.ShopSale, error)
	GetSale(ctx context.Context, id string) (*domain.ShopSale, error)
	SetSaleStatus(ctx context.Context, id string, status domain.SaleStatus) (*domain.ShopSale, error)
	ListSales(ctx context.Context, filter usecase.ShopSaleFilter) ([]*domain.ShopSale, error)
}

// ShopSaleHandler handles shop sale HTTP requests.
type ShopSaleHandler struct {
	saleUC  ShopSaleService
	metrics *metrics.Metrics
}

// NewShopSaleHandler creates a new ShopSaleHandler.
func NewShopSaleHandler(saleUC ShopSaleService, m *metrics.Metrics) *ShopSaleHandler {
	return &ShopSaleHandler{saleUC: saleUC, metrics: m}
}

// Create records a shop sale in Pending state with its derived figures.
func (h *ShopSaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShopSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sale, err := h.saleUC.CreateSale(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record sale", err.Error())
		return
	}

	h.metrics.SalesCreated.Inc()

	writeJSON(w, http.StatusCreated, dto.ShopSaleFromDomain(sale))
}

// Get retrieves a shop sale by ID.
func (h *ShopSaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sale, err := h.saleUC.GetSale(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get sale", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ShopSaleFromDomain(sale))
}

// SetStatus moves a sale to a new lifecycle status. Setting the current
// status again returns 200 with the unchanged sale.
func (h *ShopSaleHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.SetSaleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sale, err := h.saleUC.SetSaleStatus(r.Context(), id, domain.SaleStatus(req.Status))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to set sale status", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ShopSaleFromDomain(sale))
}

// List lists shop sales, optionally filtered by coordinator, status and
// date range.
func (h *ShopSaleHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.ShopSaleFilter{
		Coordinator: r.URL.Query().Get("coordinator"),
		Status:      domain.SaleStatus(r.URL.Query().Get("status")),
		From:        parseDateQuery(r, "from"),
		To:          parseDateQuery(r, "to"),
		Limit:       parseIntQuery(r, "limit", 50),
		Offset:      parseIntQuery(r, "offset", 0),
	}

	sales, err := h.saleUC.ListSales(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sales", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListShopSalesResponse{
		Sales: dto.ShopSalesFromDomain(sales),
		Total: int64(len(sales)),
	})
}
