package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hcstudio/cashtrack/internal/adapter/http/dto"
	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

type summaryServiceStub struct {
	scopesFn  func(ctx context.Context) ([]domain.ScopeAggregate, error)
	monthlyFn func(ctx context.Context, scope string) ([]domain.MonthlyAggregate, error)
	entriesFn func(ctx context.Context) ([]usecase.ApplicationSummary, error)
}

func (s *summaryServiceStub) ScopeSummaries(ctx context.Context) ([]domain.ScopeAggregate, error) {
	return s.scopesFn(ctx)
}

func (s *summaryServiceStub) MonthlySummary(ctx context.Context, scope string) ([]domain.MonthlyAggregate, error) {
	return s.monthlyFn(ctx, scope)
}

func (s *summaryServiceStub) EntrySummaries(ctx context.Context) ([]usecase.ApplicationSummary, error) {
	return s.entriesFn(ctx)
}

func TestSummaryHandler_Scopes_KeepsOrder(t *testing.T) {
	groups := []domain.ScopeAggregate{
		{Scope: "alvear", Totals: domain.ScopeTotals{IncomeUSD: decimal.NewFromInt(900)}, Count: 3},
		{Scope: "libertador", Totals: domain.ScopeTotals{IncomeUSD: decimal.NewFromInt(100)}, Count: 1},
	}

	handler := NewSummaryHandler(&summaryServiceStub{
		scopesFn: func(ctx context.Context) ([]domain.ScopeAggregate, error) {
			return groups, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/summaries/scopes", nil)
	rec := httptest.NewRecorder()

	handler.Scopes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []dto.ScopeSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 || resp[0].Scope != "alvear" || resp[1].Scope != "libertador" {
		t.Fatalf("expected descending-balance order preserved, got %+v", resp)
	}
	if resp[0].MovementCount != 3 {
		t.Fatalf("expected movement count 3, got %d", resp[0].MovementCount)
	}
}

func TestSummaryHandler_Monthly_UnknownScope(t *testing.T) {
	handler := NewSummaryHandler(&summaryServiceStub{
		monthlyFn: func(ctx context.Context, scope string) ([]domain.MonthlyAggregate, error) {
			return nil, domain.ErrScopeNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/scopes/missing/monthly-summary", nil)
	req = withURLParam(req, "scope", "missing")
	rec := httptest.NewRecorder()

	handler.Monthly(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSummaryHandler_Applications(t *testing.T) {
	summaries := []usecase.ApplicationSummary{
		{
			Application: "Impuestos",
			Totals:      domain.ScopeTotals{ExpenseARS: decimal.NewFromInt(150)},
			Count:       2,
			Pending:     1,
		},
	}

	handler := NewSummaryHandler(&summaryServiceStub{
		entriesFn: func(ctx context.Context) ([]usecase.ApplicationSummary, error) {
			return summaries, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/summaries/applications", nil)
	rec := httptest.NewRecorder()

	handler.Applications(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []dto.ApplicationSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Application != "Impuestos" || resp[0].Pending != 1 {
		t.Fatalf("unexpected summaries: %+v", resp)
	}
}
