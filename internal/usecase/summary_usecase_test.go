package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
	"github.com/hcstudio/cashtrack/internal/usecase/mocks"
)

func seedMovements(t *testing.T, repo *mocks.MockMovementRepository, scope string, amounts ...int64) {
	t.Helper()
	movements := make([]*domain.Movement, 0, len(amounts))
	for i, v := range amounts {
		m := &domain.Movement{
			ID:       scope + string(rune('a'+i)),
			Scope:    scope,
			Date:     domain.NewDate(2025, time.Month(1+i%12), 1),
			Sequence: int64(i + 1),
		}
		if v >= 0 {
			m.Income = usd(v)
		} else {
			m.Expense = usd(-v)
		}
		movements = append(movements, m)
	}
	ordered, err := domain.ComputeRunningBalances(movements)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.UpdateBalances(context.Background(), nil, ordered); err != nil {
		t.Fatal(err)
	}
}

func TestSummaryUseCase_ScopeSummariesOrderedByBalance(t *testing.T) {
	movementRepo := mocks.NewMockMovementRepository()
	uc := usecase.NewSummaryUseCase(movementRepo, mocks.NewMockCashEntryRepository(), nil)

	seedMovements(t, movementRepo, "small", 100)
	seedMovements(t, movementRepo, "big", 1000, -100)
	seedMovements(t, movementRepo, "medium", 500)

	groups, err := uc.ScopeSummaries(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	wantOrder := []string{"big", "medium", "small"}
	for i, want := range wantOrder {
		if groups[i].Scope != want {
			t.Errorf("position %d: expected %q, got %q", i, want, groups[i].Scope)
		}
	}
	if !groups[0].Totals.BalanceUSD().Equal(decimal.NewFromInt(900)) {
		t.Errorf("big balance = %s", groups[0].Totals.BalanceUSD())
	}
}

func TestSummaryUseCase_ScopeSummariesUseCache(t *testing.T) {
	movementRepo := mocks.NewMockMovementRepository()
	cache := mocks.NewMockCache()
	uc := usecase.NewSummaryUseCase(movementRepo, mocks.NewMockCashEntryRepository(), cache)
	ctx := context.Background()

	seedMovements(t, movementRepo, "s", 100)

	first, err := uc.ScopeSummaries(ctx)
	if err != nil {
		t.Fatal(err)
	}

	// Change the store; the second call must still serve the cached result.
	seedMovements(t, movementRepo, "other", 9999)

	second, err := uc.ScopeSummaries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != len(first) {
		t.Errorf("cached summaries changed: %d groups, want %d", len(second), len(first))
	}
}

func TestSummaryUseCase_MonthlySummaryChronological(t *testing.T) {
	movementRepo := mocks.NewMockMovementRepository()
	uc := usecase.NewSummaryUseCase(movementRepo, mocks.NewMockCashEntryRepository(), nil)

	movements := []*domain.Movement{
		{ID: "a", Scope: "s", Date: domain.NewDate(2025, time.March, 5), Sequence: 1, Income: usd(100)},
		{ID: "b", Scope: "s", Date: domain.NewDate(2025, time.January, 2), Sequence: 2, Income: usd(200)},
		{ID: "c", Scope: "s", Date: domain.NewDate(2025, time.January, 20), Sequence: 3, Expense: usd(50)},
	}
	ordered, err := domain.ComputeRunningBalances(movements)
	if err != nil {
		t.Fatal(err)
	}
	if err := movementRepo.UpdateBalances(context.Background(), nil, ordered); err != nil {
		t.Fatal(err)
	}

	months, err := uc.MonthlySummary(context.Background(), "s")
	if err != nil {
		t.Fatal(err)
	}
	if len(months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(months))
	}
	if months[0].Month.Month != time.January || months[1].Month.Month != time.March {
		t.Errorf("months out of order: %v, %v", months[0].Month, months[1].Month)
	}
	if months[0].Count != 2 {
		t.Errorf("january count = %d", months[0].Count)
	}
	if !months[0].Totals.BalanceUSD().Equal(decimal.NewFromInt(150)) {
		t.Errorf("january balance = %s", months[0].Totals.BalanceUSD())
	}
}

func TestSummaryUseCase_MonthlySummaryInvalidScope(t *testing.T) {
	uc := usecase.NewSummaryUseCase(mocks.NewMockMovementRepository(), mocks.NewMockCashEntryRepository(), nil)

	_, err := uc.MonthlySummary(context.Background(), "")
	if !errors.Is(err, domain.ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestSummaryUseCase_EntrySummaries(t *testing.T) {
	entryRepo := mocks.NewMockCashEntryRepository()
	uc := usecase.NewSummaryUseCase(mocks.NewMockMovementRepository(), entryRepo, nil)
	ctx := context.Background()

	entries := []*domain.CashEntry{
		{ID: "1", Application: domain.ApplicationImpuestos, Expense: usd(100)},
		{ID: "2", Application: domain.ApplicationImpuestos, Expense: usd(50), ApprovedByFede: true, ApprovedBySisters: true},
		{ID: "3", Application: domain.ApplicationHonorarios, Income: usd(700)},
	}
	for _, e := range entries {
		if err := entryRepo.Create(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	summaries, err := uc.EntrySummaries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(summaries))
	}

	// Ordered by application name: Honorarios before Impuestos.
	if summaries[0].Application != domain.ApplicationHonorarios {
		t.Errorf("first application = %q", summaries[0].Application)
	}
	impuestos := summaries[1]
	if impuestos.Count != 2 {
		t.Errorf("impuestos count = %d", impuestos.Count)
	}
	if impuestos.Pending != 1 {
		t.Errorf("impuestos pending = %d, fully approved entries are not pending", impuestos.Pending)
	}
	if !impuestos.Totals.ExpenseUSD.Equal(decimal.NewFromInt(150)) {
		t.Errorf("impuestos expense = %s", impuestos.Totals.ExpenseUSD)
	}
}
