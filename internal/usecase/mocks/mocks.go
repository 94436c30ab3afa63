package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

// MockTransaction is a no-op transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
	Committed    bool
	RolledBack   bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTxManager hands out MockTransactions.
type MockTxManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
	Last      *MockTransaction
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.Last = &MockTransaction{}
	return m.Last, nil
}

// MockScopeRepository is an in-memory ScopeRepository.
type MockScopeRepository struct {
	mu     sync.Mutex
	scopes map[string]*domain.Scope

	EnsureAndLockFunc  func(ctx context.Context, tx usecase.Transaction, name string) (*domain.Scope, error)
	UpdateSequenceFunc func(ctx context.Context, tx usecase.Transaction, name string, lastSequence int64, updatedAt time.Time) error
}

func NewMockScopeRepository() *MockScopeRepository {
	return &MockScopeRepository{scopes: make(map[string]*domain.Scope)}
}

func (m *MockScopeRepository) EnsureAndLock(ctx context.Context, tx usecase.Transaction, name string) (*domain.Scope, error) {
	if m.EnsureAndLockFunc != nil {
		return m.EnsureAndLockFunc(ctx, tx, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.scopes[name]; ok {
		return s, nil
	}
	s := &domain.Scope{Name: name, CreatedAt: time.Now().UTC()}
	m.scopes[name] = s
	return s, nil
}

func (m *MockScopeRepository) UpdateSequence(ctx context.Context, tx usecase.Transaction, name string, lastSequence int64, updatedAt time.Time) error {
	if m.UpdateSequenceFunc != nil {
		return m.UpdateSequenceFunc(ctx, tx, name, lastSequence, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.scopes[name]
	if !ok {
		return domain.ErrScopeNotFound
	}
	s.LastSequence = lastSequence
	s.UpdatedAt = updatedAt
	return nil
}

func (m *MockScopeRepository) List(ctx context.Context) ([]*domain.Scope, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Scope, 0, len(m.scopes))
	for _, s := range m.scopes {
		out = append(out, s)
	}
	return out, nil
}

// MockMovementRepository is an in-memory MovementRepository keeping
// movements per scope in (date, sequence) order.
type MockMovementRepository struct {
	mu      sync.Mutex
	byScope map[string][]*domain.Movement

	CreateFunc         func(ctx context.Context, tx usecase.Transaction, m *domain.Movement) error
	ListByScopeFunc    func(ctx context.Context, scope string) ([]*domain.Movement, error)
	UpdateBalancesFunc func(ctx context.Context, tx usecase.Transaction, movements []*domain.Movement) error
}

func NewMockMovementRepository() *MockMovementRepository {
	return &MockMovementRepository{byScope: make(map[string][]*domain.Movement)}
}

func (m *MockMovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byScope[movement.Scope] = append(m.byScope[movement.Scope], movement)
	return nil
}

func (m *MockMovementRepository) ListByScopeTx(ctx context.Context, tx usecase.Transaction, scope string) ([]*domain.Movement, error) {
	return m.ListByScope(ctx, scope)
}

func (m *MockMovementRepository) ListByScope(ctx context.Context, scope string) ([]*domain.Movement, error) {
	if m.ListByScopeFunc != nil {
		return m.ListByScopeFunc(ctx, scope)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Movement, len(m.byScope[scope]))
	copy(out, m.byScope[scope])
	return out, nil
}

func (m *MockMovementRepository) ListAll(ctx context.Context, limit, offset int) ([]*domain.Movement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Movement
	for _, ms := range m.byScope {
		out = append(out, ms...)
	}
	return out, nil
}

func (m *MockMovementRepository) UpdateBalances(ctx context.Context, tx usecase.Transaction, movements []*domain.Movement) error {
	if m.UpdateBalancesFunc != nil {
		return m.UpdateBalancesFunc(ctx, tx, movements)
	}
	if len(movements) == 0 {
		return nil
	}
	// The ordered slice shares pointers with stored movements; keep the
	// per-scope slice in recomputed order like the real repository reads it.
	m.mu.Lock()
	defer m.mu.Unlock()
	scope := movements[0].Scope
	out := make([]*domain.Movement, len(movements))
	copy(out, movements)
	m.byScope[scope] = out
	return nil
}

// MockCashEntryRepository is an in-memory CashEntryRepository.
type MockCashEntryRepository struct {
	mu      sync.Mutex
	entries map[string]*domain.CashEntry

	CreateFunc          func(ctx context.Context, entry *domain.CashEntry) error
	GetByIDFunc         func(ctx context.Context, id string) (*domain.CashEntry, error)
	UpdateApprovalsFunc func(ctx context.Context, id string, fede, sisters bool, updatedAt time.Time) (bool, bool, error)
}

func NewMockCashEntryRepository() *MockCashEntryRepository {
	return &MockCashEntryRepository{entries: make(map[string]*domain.CashEntry)}
}

func (m *MockCashEntryRepository) Create(ctx context.Context, entry *domain.CashEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockCashEntryRepository) GetByID(ctx context.Context, id string) (*domain.CashEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockCashEntryRepository) UpdateApprovals(ctx context.Context, id string, fede, sisters bool, updatedAt time.Time) (bool, bool, error) {
	if m.UpdateApprovalsFunc != nil {
		return m.UpdateApprovalsFunc(ctx, id, fede, sisters, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return false, false, domain.ErrEntryNotFound
	}
	e.ApprovedByFede = e.ApprovedByFede || fede
	e.ApprovedBySisters = e.ApprovedBySisters || sisters
	e.UpdatedAt = updatedAt
	return e.ApprovedByFede, e.ApprovedBySisters, nil
}

func (m *MockCashEntryRepository) List(ctx context.Context, filter usecase.CashEntryFilter) ([]*domain.CashEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.CashEntry
	for _, e := range m.entries {
		if filter.Application != "" && e.Application != filter.Application {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// MockDisbursementRepository is an in-memory DisbursementRepository.
type MockDisbursementRepository struct {
	mu     sync.Mutex
	orders map[string]*domain.DisbursementOrder

	CreateFunc       func(ctx context.Context, order *domain.DisbursementOrder) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.DisbursementOrder, error)
	UpdateStatusFunc func(ctx context.Context, order *domain.DisbursementOrder) error
}

func NewMockDisbursementRepository() *MockDisbursementRepository {
	return &MockDisbursementRepository{orders: make(map[string]*domain.DisbursementOrder)}
}

func (m *MockDisbursementRepository) Create(ctx context.Context, order *domain.DisbursementOrder) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
	return nil
}

func (m *MockDisbursementRepository) GetByID(ctx context.Context, id string) (*domain.DisbursementOrder, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (m *MockDisbursementRepository) UpdateStatus(ctx context.Context, order *domain.DisbursementOrder) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, order)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	m.orders[order.ID] = order
	return nil
}

func (m *MockDisbursementRepository) List(ctx context.Context, filter usecase.DisbursementFilter) ([]*domain.DisbursementOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.DisbursementOrder
	for _, o := range m.orders {
		if filter.Project != "" && o.Project != filter.Project {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && o.Priority != filter.Priority {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// MockCashCountRepository is an in-memory CashCountRepository.
type MockCashCountRepository struct {
	mu     sync.Mutex
	counts map[string]*domain.CashCount

	CreateFunc func(ctx context.Context, count *domain.CashCount) error
}

func NewMockCashCountRepository() *MockCashCountRepository {
	return &MockCashCountRepository{counts: make(map[string]*domain.CashCount)}
}

func (m *MockCashCountRepository) Create(ctx context.Context, count *domain.CashCount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, count)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[count.ID] = count
	return nil
}

func (m *MockCashCountRepository) GetByID(ctx context.Context, id string) (*domain.CashCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.counts[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCashCountNotFound
}

func (m *MockCashCountRepository) ListByScope(ctx context.Context, scope string, limit, offset int) ([]*domain.CashCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.CashCount
	for _, c := range m.counts {
		if c.Scope == scope {
			out = append(out, c)
		}
	}
	return out, nil
}

// MockIDGenerator generates sequential test IDs.
type MockIDGenerator struct {
	mu           sync.Mutex
	counter      int
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("test-id-%d", m.counter)
}

// MockRetrier runs the operation once, no retries.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCache is an in-memory Cache ignoring TTLs.
type MockCache struct {
	mu     sync.Mutex
	values map[string]string

	GetFunc func(ctx context.Context, key string) (string, error)
	SetFunc func(ctx context.Context, key, value string, ttl time.Duration) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// MockShopSaleRepository is an in-memory ShopSaleRepository.
type MockShopSaleRepository struct {
	mu    sync.Mutex
	sales map[string]*domain.ShopSale

	CreateFunc       func(ctx context.Context, sale *domain.ShopSale) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.ShopSale, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.SaleStatus, updatedAt time.Time) error
}

func NewMockShopSaleRepository() *MockShopSaleRepository {
	return &MockShopSaleRepository{sales: make(map[string]*domain.ShopSale)}
}

func (m *MockShopSaleRepository) Create(ctx context.Context, sale *domain.ShopSale) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sale)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sales[sale.ID] = sale
	return nil
}

func (m *MockShopSaleRepository) GetByID(ctx context.Context, id string) (*domain.ShopSale, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sales[id]; ok {
		return s, nil
	}
	return nil, domain.ErrSaleNotFound
}

func (m *MockShopSaleRepository) UpdateStatus(ctx context.Context, id string, status domain.SaleStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sales[id]
	if !ok {
		return domain.ErrSaleNotFound
	}
	s.Status = status
	s.UpdatedAt = updatedAt
	return nil
}

func (m *MockShopSaleRepository) List(ctx context.Context, filter usecase.ShopSaleFilter) ([]*domain.ShopSale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.ShopSale
	for _, s := range m.sales {
		if filter.Coordinator != "" && s.Coordinator != filter.Coordinator {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
