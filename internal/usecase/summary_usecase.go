package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/hcstudio/cashtrack/internal/domain"
)

const (
	summaryCacheTTL      = 30 * time.Second
	scopeSummaryCacheKey = "summary:scopes"
)

// SummaryUseCase builds aggregated views over movements and entries. All
// aggregation is stateless and per request; results are cached briefly, not
// maintained incrementally.
type SummaryUseCase struct {
	movementRepo MovementRepository
	entryRepo    CashEntryRepository
	cache        Cache
}

// NewSummaryUseCase creates a new SummaryUseCase. cache may be nil, in which
// case every summary is computed fresh.
func NewSummaryUseCase(movementRepo MovementRepository, entryRepo CashEntryRepository, cache Cache) *SummaryUseCase {
	return &SummaryUseCase{
		movementRepo: movementRepo,
		entryRepo:    entryRepo,
		cache:        cache,
	}
}

// ScopeSummaries rolls all movements up per scope, ordered descending by
// aggregate balance.
func (uc *SummaryUseCase) ScopeSummaries(ctx context.Context) ([]domain.ScopeAggregate, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, scopeSummaryCacheKey); err == nil && raw != "" {
			var cached []domain.ScopeAggregate
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	movements, err := uc.movementRepo.ListAll(ctx, 10000, 0)
	if err != nil {
		return nil, err
	}

	groups := domain.GroupMovementsByScope(movements)

	if uc.cache != nil {
		if raw, err := json.Marshal(groups); err == nil {
			// Cache errors are not worth failing a read for.
			_ = uc.cache.Set(ctx, scopeSummaryCacheKey, string(raw), summaryCacheTTL)
		}
	}

	return groups, nil
}

// MonthlySummary rolls one scope's movements up by calendar month,
// chronologically ordered.
func (uc *SummaryUseCase) MonthlySummary(ctx context.Context, scope string) ([]domain.MonthlyAggregate, error) {
	if err := domain.ValidateScopeName(scope); err != nil {
		return nil, err
	}

	movements, err := uc.movementRepo.ListByScope(ctx, scope)
	if err != nil {
		return nil, err
	}

	return domain.GroupMovementsByMonth(movements), nil
}

// ApplicationSummary is the per-application rollup of general cash entries.
type ApplicationSummary struct {
	Application domain.Application
	Totals      domain.ScopeTotals
	Count       int
	Pending     int
}

// EntrySummaries rolls general cash entries up per application category.
// Output is ordered by application name so presentation is stable.
func (uc *SummaryUseCase) EntrySummaries(ctx context.Context) ([]ApplicationSummary, error) {
	entries, err := uc.entryRepo.List(ctx, CashEntryFilter{Limit: 1000})
	if err != nil {
		return nil, err
	}

	byApp := make(map[domain.Application]*ApplicationSummary)
	for _, e := range entries {
		s := byApp[e.Application]
		if s == nil {
			s = &ApplicationSummary{Application: e.Application}
			byApp[e.Application] = s
		}
		s.Totals.IncomeUSD = s.Totals.IncomeUSD.Add(e.Income.USDOrZero())
		s.Totals.IncomeARS = s.Totals.IncomeARS.Add(e.Income.ARSOrZero())
		s.Totals.ExpenseUSD = s.Totals.ExpenseUSD.Add(e.Expense.USDOrZero())
		s.Totals.ExpenseARS = s.Totals.ExpenseARS.Add(e.Expense.ARSOrZero())
		s.Count++
		if e.Status() == domain.EntryStatusPending {
			s.Pending++
		}
	}

	out := make([]ApplicationSummary, 0, len(byApp))
	for _, s := range byApp {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Application < out[j].Application
	})
	return out, nil
}
