package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
	"github.com/hcstudio/cashtrack/internal/usecase/mocks"
)

func newCashEntryUC() (*usecase.CashEntryUseCase, *mocks.MockCashEntryRepository) {
	repo := mocks.NewMockCashEntryRepository()
	return usecase.NewCashEntryUseCase(repo, mocks.NewMockIDGenerator()), repo
}

func validEntryInput() usecase.CreateCashEntryInput {
	return usecase.CreateCashEntryInput{
		Date:        domain.Today(),
		Description: "pago impuestos",
		Application: domain.ApplicationImpuestos,
		Provider:    "AFIP",
		Expense:     usd(150),
	}
}

func TestCashEntryUseCase_CreateEntry(t *testing.T) {
	uc, _ := newCashEntryUC()

	entry, err := uc.CreateEntry(context.Background(), validEntryInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Status() != domain.EntryStatusPending {
		t.Errorf("new entries start Pending, got %q", entry.Status())
	}
	if entry.ApprovedByFede || entry.ApprovedBySisters {
		t.Error("new entries must have both approval flags unset")
	}
}

func TestCashEntryUseCase_CreateEntry_ValidationErrors(t *testing.T) {
	uc, _ := newCashEntryUC()

	tests := []struct {
		name   string
		mutate func(*usecase.CreateCashEntryInput)
		want   error
	}{
		{
			name:   "empty description",
			mutate: func(in *usecase.CreateCashEntryInput) { in.Description = "" },
			want:   domain.ErrInvalidName,
		},
		{
			name:   "missing date",
			mutate: func(in *usecase.CreateCashEntryInput) { in.Date = domain.Date{} },
			want:   domain.ErrMissingDate,
		},
		{
			name:   "unknown application",
			mutate: func(in *usecase.CreateCashEntryInput) { in.Application = "Marketing" },
			want:   domain.ErrInvalidName,
		},
		{
			name:   "empty provider",
			mutate: func(in *usecase.CreateCashEntryInput) { in.Provider = "" },
			want:   domain.ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validEntryInput()
			tt.mutate(&input)
			_, err := uc.CreateEntry(context.Background(), input)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCashEntryUseCase_ApprovalFlow(t *testing.T) {
	uc, _ := newCashEntryUC()
	ctx := context.Background()

	entry, err := uc.CreateEntry(ctx, validEntryInput())
	if err != nil {
		t.Fatal(err)
	}

	entry, err = uc.ApproveEntry(ctx, entry.ID, domain.ApproverFede)
	if err != nil {
		t.Fatal(err)
	}
	if entry.Status() != domain.EntryStatusApprovedByFede {
		t.Errorf("after fede approval: %q", entry.Status())
	}

	entry, err = uc.ApproveEntry(ctx, entry.ID, domain.ApproverSisters)
	if err != nil {
		t.Fatal(err)
	}
	if entry.Status() != domain.EntryStatusFullyApproved {
		t.Errorf("after both approvals: %q", entry.Status())
	}
}

func TestCashEntryUseCase_ApproveIsIdempotent(t *testing.T) {
	uc, repo := newCashEntryUC()
	ctx := context.Background()

	entry, err := uc.CreateEntry(ctx, validEntryInput())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uc.ApproveEntry(ctx, entry.ID, domain.ApproverFede); err != nil {
		t.Fatal(err)
	}

	// The second identical approval must not hit the store again.
	updates := 0
	repo.UpdateApprovalsFunc = func(ctx context.Context, id string, fede, sisters bool, updatedAt time.Time) (bool, bool, error) {
		updates++
		return fede, sisters, nil
	}

	got, err := uc.ApproveEntry(ctx, entry.ID, domain.ApproverFede)
	if err != nil {
		t.Fatalf("re-approval must succeed: %v", err)
	}
	if got.Status() != domain.EntryStatusApprovedByFede {
		t.Errorf("status changed on re-approval: %q", got.Status())
	}
	if updates != 0 {
		t.Errorf("re-approval wrote %d updates, want 0", updates)
	}
}

func TestCashEntryUseCase_ConcurrentApprovalsAreMerged(t *testing.T) {
	uc, repo := newCashEntryUC()
	ctx := context.Background()

	entry, err := uc.CreateEntry(ctx, validEntryInput())
	if err != nil {
		t.Fatal(err)
	}

	// Both parties read the entry before either approval commits.
	repo.GetByIDFunc = func(ctx context.Context, id string) (*domain.CashEntry, error) {
		stale := *entry
		stale.ApprovedByFede = false
		stale.ApprovedBySisters = false
		return &stale, nil
	}

	if _, err := uc.ApproveEntry(ctx, entry.ID, domain.ApproverFede); err != nil {
		t.Fatal(err)
	}
	merged, err := uc.ApproveEntry(ctx, entry.ID, domain.ApproverSisters)
	if err != nil {
		t.Fatal(err)
	}

	if merged.Status() != domain.EntryStatusFullyApproved {
		t.Errorf("second approval must report the merged flags: %q", merged.Status())
	}

	repo.GetByIDFunc = nil
	stored, err := repo.GetByID(ctx, entry.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.ApprovedByFede || !stored.ApprovedBySisters {
		t.Errorf("approval flag lost: fede=%v sisters=%v",
			stored.ApprovedByFede, stored.ApprovedBySisters)
	}
}

func TestCashEntryUseCase_UnknownApprover(t *testing.T) {
	uc, _ := newCashEntryUC()
	ctx := context.Background()

	entry, err := uc.CreateEntry(ctx, validEntryInput())
	if err != nil {
		t.Fatal(err)
	}

	_, err = uc.ApproveEntry(ctx, entry.ID, "accountant")
	if !errors.Is(err, domain.ErrUnknownApprover) {
		t.Errorf("expected ErrUnknownApprover, got %v", err)
	}
}

func TestCashEntryUseCase_ApproveMissingEntry(t *testing.T) {
	uc, _ := newCashEntryUC()

	_, err := uc.ApproveEntry(context.Background(), "missing", domain.ApproverFede)
	if !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestCashEntryUseCase_ListEntries_FilterByApplication(t *testing.T) {
	uc, _ := newCashEntryUC()
	ctx := context.Background()

	first := validEntryInput()
	if _, err := uc.CreateEntry(ctx, first); err != nil {
		t.Fatal(err)
	}
	second := validEntryInput()
	second.Application = domain.ApplicationHonorarios
	if _, err := uc.CreateEntry(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := uc.ListEntries(ctx, usecase.CashEntryFilter{Application: domain.ApplicationImpuestos})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Application != domain.ApplicationImpuestos {
		t.Errorf("filter leaked application %q", got[0].Application)
	}
}
