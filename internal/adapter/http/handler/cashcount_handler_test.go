package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hcstudio/cashtrack/internal/adapter/http/dto"
	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

type cashCountServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateCashCountInput) (*domain.CashCount, error)
	getFn    func(ctx context.Context, id string) (*domain.CashCount, error)
	listFn   func(ctx context.Context, input usecase.ListCountsInput) ([]*domain.CashCount, error)
}

func (s *cashCountServiceStub) CreateCount(ctx context.Context, input usecase.CreateCashCountInput) (*domain.CashCount, error) {
	return s.createFn(ctx, input)
}

func (s *cashCountServiceStub) GetCount(ctx context.Context, id string) (*domain.CashCount, error) {
	return s.getFn(ctx, id)
}

func (s *cashCountServiceStub) ListByScope(ctx context.Context, input usecase.ListCountsInput) ([]*domain.CashCount, error) {
	return s.listFn(ctx, input)
}

func TestCashCountHandler_Create_Discrepancy(t *testing.T) {
	counted := decimal.NewFromInt(600)
	expected := decimal.NewFromInt(900)
	count := &domain.CashCount{
		ID:          "cnt-1",
		Scope:       "alvear",
		CountDate:   domain.NewDate(2024, time.January, 31),
		Type:        domain.CountTypeMonthly,
		CountedUSD:  counted,
		ExpectedUSD: expected,
		ComparisonUSD: &domain.LedgerComparison{
			Currency:   domain.USD,
			Expected:   expected,
			Counted:    counted,
			Difference: counted.Sub(expected),
			Matches:    false,
		},
		Status: domain.ReconciliationDiscrepancyFound,
		Discrepancies: []domain.Discrepancy{
			{
				Type:       domain.DiscrepancyShortage,
				Severity:   domain.SeverityHigh,
				Currency:   domain.USD,
				Expected:   expected,
				Counted:    counted,
				Difference: counted.Sub(expected),
			},
		},
	}

	handler := NewCashCountHandler(&cashCountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateCashCountInput) (*domain.CashCount, error) {
			if input.Scope != "alvear" || !input.CountedUSD.Equal(counted) {
				t.Fatalf("unexpected input: %+v", input)
			}
			return count, nil
		},
	}, testMetrics)

	body, _ := json.Marshal(dto.CreateCashCountRequest{
		Scope:          "alvear",
		CountDate:      domain.NewDate(2024, time.January, 31),
		CountType:      "Monthly",
		CashUSDCounted: counted,
	})

	req := httptest.NewRequest(http.MethodPost, "/cash-counts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.CashCountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != string(domain.ReconciliationDiscrepancyFound) {
		t.Fatalf("expected discrepancy status, got %s", resp.Status)
	}
	if resp.LedgerComparisonUSD == nil || !resp.LedgerComparisonUSD.Difference.Equal(decimal.NewFromInt(-300)) {
		t.Fatalf("expected -300 difference, got %+v", resp.LedgerComparisonUSD)
	}
	if len(resp.Discrepancies) != 1 || resp.Discrepancies[0].Severity != string(domain.SeverityHigh) {
		t.Fatalf("expected one High discrepancy, got %+v", resp.Discrepancies)
	}
}

func TestCashCountHandler_Create_NegativeTolerance(t *testing.T) {
	handler := NewCashCountHandler(&cashCountServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateCashCountInput) (*domain.CashCount, error) {
			return nil, domain.ErrNegativeTolerance
		},
	}, testMetrics)

	body, _ := json.Marshal(dto.CreateCashCountRequest{
		Scope:     "alvear",
		CountDate: domain.NewDate(2024, time.January, 31),
		CountType: "Monthly",
	})

	req := httptest.NewRequest(http.MethodPost, "/cash-counts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCashCountHandler_Get_NotFound(t *testing.T) {
	handler := NewCashCountHandler(&cashCountServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.CashCount, error) {
			return nil, domain.ErrCashCountNotFound
		},
	}, testMetrics)

	req := httptest.NewRequest(http.MethodGet, "/cash-counts/missing", nil)
	req = withURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCashCountHandler_ListByScope(t *testing.T) {
	var captured usecase.ListCountsInput
	handler := NewCashCountHandler(&cashCountServiceStub{
		listFn: func(ctx context.Context, input usecase.ListCountsInput) ([]*domain.CashCount, error) {
			captured = input
			return []*domain.CashCount{{ID: "cnt-1", Scope: "alvear"}}, nil
		},
	}, testMetrics)

	req := httptest.NewRequest(http.MethodGet, "/scopes/alvear/cash-counts?limit=5", nil)
	req = withURLParam(req, "scope", "alvear")
	rec := httptest.NewRecorder()

	handler.ListByScope(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Scope != "alvear" || captured.Limit != 5 {
		t.Fatalf("expected scope and limit from request, got %+v", captured)
	}
}
