package usecase

import (
	"context"
	"time"

	"github.com/hcstudio/cashtrack/internal/domain"
)

// CashEntryUseCase handles general cash entries and their two-party
// approval workflow.
type CashEntryUseCase struct {
	entryRepo CashEntryRepository
	idGen     IDGenerator
}

// NewCashEntryUseCase creates a new CashEntryUseCase.
func NewCashEntryUseCase(entryRepo CashEntryRepository, idGen IDGenerator) *CashEntryUseCase {
	return &CashEntryUseCase{entryRepo: entryRepo, idGen: idGen}
}

// CreateCashEntryInput represents input for creating a cash entry.
type CreateCashEntryInput struct {
	Date        domain.Date
	Description string
	Application domain.Application
	Provider    string
	Income      domain.Amount
	Expense     domain.Amount
}

// CreateEntry creates a cash entry in Pending state.
func (uc *CashEntryUseCase) CreateEntry(ctx context.Context, input CreateCashEntryInput) (*domain.CashEntry, error) {
	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, domain.ErrMissingDate
	}
	if !input.Application.Valid() {
		return nil, domain.ErrInvalidName
	}
	if err := domain.ValidateProviderName(input.Provider); err != nil {
		return nil, err
	}
	if err := domain.ValidateNonNegative(input.Income, "income"); err != nil {
		return nil, err
	}
	if err := domain.ValidateNonNegative(input.Expense, "expense"); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.CashEntry{
		ID:          uc.idGen.Generate(),
		Date:        input.Date,
		Description: input.Description,
		Application: input.Application,
		Provider:    input.Provider,
		Income:      input.Income,
		Expense:     input.Expense,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ApproveEntry sets one approver's flag on an entry. Re-approving by the
// same party returns the unchanged entry.
func (uc *CashEntryUseCase) ApproveEntry(ctx context.Context, id string, by domain.Approver) (*domain.CashEntry, error) {
	entry, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := entry.Approve(by)
	if err != nil {
		return nil, err
	}
	if !changed {
		return entry, nil
	}

	entry.UpdatedAt = time.Now().UTC()
	fede, sisters, err := uc.entryRepo.UpdateApprovals(ctx, entry.ID, entry.ApprovedByFede, entry.ApprovedBySisters, entry.UpdatedAt)
	if err != nil {
		return nil, err
	}

	// The repository merges flags monotonically, so a concurrent approval
	// by the other party shows up in the stored result even when this
	// call read the entry before it committed.
	entry.ApprovedByFede = fede
	entry.ApprovedBySisters = sisters

	return entry, nil
}

// GetEntry retrieves a cash entry by ID.
func (uc *CashEntryUseCase) GetEntry(ctx context.Context, id string) (*domain.CashEntry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// ListEntries lists cash entries matching the filter.
func (uc *CashEntryUseCase) ListEntries(ctx context.Context, filter CashEntryFilter) ([]*domain.CashEntry, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.entryRepo.List(ctx, filter)
}
