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

func newMovementUC() (*usecase.MovementUseCase, *mocks.MockMovementRepository, *mocks.MockScopeRepository) {
	txManager := mocks.NewMockTxManager()
	scopeRepo := mocks.NewMockScopeRepository()
	movementRepo := mocks.NewMockMovementRepository()
	uc := usecase.NewMovementUseCase(txManager, scopeRepo, movementRepo, mocks.NewMockIDGenerator(), mocks.NewMockRetrier())
	return uc, movementRepo, scopeRepo
}

func usd(v int64) domain.Amount {
	d := decimal.NewFromInt(v)
	return domain.Amount{USD: &d}
}

func TestMovementUseCase_CreateMovement(t *testing.T) {
	uc, _, _ := newMovementUC()
	ctx := context.Background()

	m, err := uc.CreateMovement(ctx, usecase.CreateMovementInput{
		Scope:       "Alvear",
		Date:        domain.NewDate(2025, time.January, 5),
		Description: "anticipo cliente",
		Income:      usd(1000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Sequence != 1 {
		t.Errorf("expected sequence 1, got %d", m.Sequence)
	}
	if !m.RunningBalanceUSD.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected balance 1000, got %s", m.RunningBalanceUSD)
	}
}

func TestMovementUseCase_SequencesAreMonotonic(t *testing.T) {
	uc, _, _ := newMovementUC()
	ctx := context.Background()
	day := domain.NewDate(2025, time.January, 5)

	for i := 1; i <= 3; i++ {
		m, err := uc.CreateMovement(ctx, usecase.CreateMovementInput{
			Scope:       "Alvear",
			Date:        day,
			Description: "entry",
			Income:      usd(10),
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if m.Sequence != int64(i) {
			t.Errorf("expected sequence %d, got %d", i, m.Sequence)
		}
	}
}

func TestMovementUseCase_OutOfOrderInsertionRecomputesAll(t *testing.T) {
	// Jan 5 +1000, Jan 10 -300, then Jan 1 +200
	// inserted last must yield [Jan01: 200], [Jan05: 1200], [Jan10: 900].
	uc, _, _ := newMovementUC()
	ctx := context.Background()

	inputs := []usecase.CreateMovementInput{
		{Scope: "Alvear", Date: domain.NewDate(2025, time.January, 5), Description: "income", Income: usd(1000)},
		{Scope: "Alvear", Date: domain.NewDate(2025, time.January, 10), Description: "expense", Expense: usd(300)},
		{Scope: "Alvear", Date: domain.NewDate(2025, time.January, 1), Description: "late income", Income: usd(200)},
	}
	for _, in := range inputs {
		if _, err := uc.CreateMovement(ctx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	movements, err := uc.ListByScope(ctx, "Alvear")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(movements) != 3 {
		t.Fatalf("expected 3 movements, got %d", len(movements))
	}

	wantBalances := []int64{200, 1200, 900}
	wantDays := []int{1, 5, 10}
	for i, m := range movements {
		if m.Date.Day != wantDays[i] {
			t.Errorf("position %d: expected day %d, got %d", i, wantDays[i], m.Date.Day)
		}
		if !m.RunningBalanceUSD.Equal(decimal.NewFromInt(wantBalances[i])) {
			t.Errorf("position %d: expected balance %d, got %s", i, wantBalances[i], m.RunningBalanceUSD)
		}
	}
}

func TestMovementUseCase_ScopesAreIndependent(t *testing.T) {
	uc, _, _ := newMovementUC()
	ctx := context.Background()
	day := domain.NewDate(2025, time.February, 1)

	a, err := uc.CreateMovement(ctx, usecase.CreateMovementInput{Scope: "a", Date: day, Description: "x", Income: usd(5)})
	if err != nil {
		t.Fatal(err)
	}
	b, err := uc.CreateMovement(ctx, usecase.CreateMovementInput{Scope: "b", Date: day, Description: "y", Income: usd(7)})
	if err != nil {
		t.Fatal(err)
	}

	if a.Sequence != 1 || b.Sequence != 1 {
		t.Errorf("each scope assigns its own sequence, got %d and %d", a.Sequence, b.Sequence)
	}
	if !b.RunningBalanceUSD.Equal(decimal.NewFromInt(7)) {
		t.Errorf("scope b balance = %s", b.RunningBalanceUSD)
	}
}

func TestMovementUseCase_ValidationErrors(t *testing.T) {
	uc, _, _ := newMovementUC()
	ctx := context.Background()
	neg := decimal.NewFromInt(-1)

	tests := []struct {
		name  string
		input usecase.CreateMovementInput
		want  error
	}{
		{
			name:  "empty scope",
			input: usecase.CreateMovementInput{Date: domain.Today(), Description: "x"},
			want:  domain.ErrInvalidName,
		},
		{
			name:  "empty description",
			input: usecase.CreateMovementInput{Scope: "s", Date: domain.Today()},
			want:  domain.ErrInvalidName,
		},
		{
			name:  "missing date",
			input: usecase.CreateMovementInput{Scope: "s", Description: "x"},
			want:  domain.ErrMissingDate,
		},
		{
			name: "negative income",
			input: usecase.CreateMovementInput{
				Scope: "s", Date: domain.Today(), Description: "x",
				Income: domain.Amount{USD: &neg},
			},
			want: domain.ErrNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateMovement(ctx, tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMovementUseCase_RepoErrorRollsBack(t *testing.T) {
	txManager := mocks.NewMockTxManager()
	scopeRepo := mocks.NewMockScopeRepository()
	movementRepo := mocks.NewMockMovementRepository()
	movementRepo.CreateFunc = func(ctx context.Context, tx usecase.Transaction, m *domain.Movement) error {
		return errors.New("insert failed")
	}
	uc := usecase.NewMovementUseCase(txManager, scopeRepo, movementRepo, mocks.NewMockIDGenerator(), mocks.NewMockRetrier())

	_, err := uc.CreateMovement(context.Background(), usecase.CreateMovementInput{
		Scope: "s", Date: domain.Today(), Description: "x", Income: usd(1),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if txManager.Last == nil || !txManager.Last.RolledBack {
		t.Error("expected transaction rollback")
	}
}

func TestMovementUseCase_GetBalanceAsOf(t *testing.T) {
	uc, _, _ := newMovementUC()
	ctx := context.Background()

	seed := []usecase.CreateMovementInput{
		{Scope: "s", Date: domain.NewDate(2025, time.January, 1), Description: "a", Income: usd(200)},
		{Scope: "s", Date: domain.NewDate(2025, time.January, 5), Description: "b", Income: usd(1000)},
		{Scope: "s", Date: domain.NewDate(2025, time.January, 10), Description: "c", Expense: usd(300)},
	}
	for _, in := range seed {
		if _, err := uc.CreateMovement(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	balance, err := uc.GetBalanceAsOf(ctx, "s", domain.NewDate(2025, time.January, 7))
	if err != nil {
		t.Fatal(err)
	}
	if !balance.USDOrZero().Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected 1200, got %s", balance.USDOrZero())
	}
}

func TestMovementUseCase_GetScopeBalance(t *testing.T) {
	uc, _, _ := newMovementUC()
	ctx := context.Background()

	_, err := uc.CreateMovement(ctx, usecase.CreateMovementInput{
		Scope: "s", Date: domain.Today(), Description: "a", Income: usd(100), Expense: usd(30),
	})
	if err != nil {
		t.Fatal(err)
	}

	totals, err := uc.GetScopeBalance(ctx, "s")
	if err != nil {
		t.Fatal(err)
	}
	if !totals.BalanceUSD().Equal(decimal.NewFromInt(70)) {
		t.Errorf("expected balance 70, got %s", totals.BalanceUSD())
	}
}
