package usecase

import (
	"context"
	"time"

	"github.com/hcstudio/cashtrack/internal/domain"
)

// DisbursementUseCase manages the disbursement order lifecycle.
type DisbursementUseCase struct {
	orderRepo DisbursementRepository
	idGen     IDGenerator
}

// NewDisbursementUseCase creates a new DisbursementUseCase.
func NewDisbursementUseCase(orderRepo DisbursementRepository, idGen IDGenerator) *DisbursementUseCase {
	return &DisbursementUseCase{orderRepo: orderRepo, idGen: idGen}
}

// CreateDisbursementInput represents input for requesting a disbursement.
type CreateDisbursementInput struct {
	Project     string
	Type        domain.DisbursementType
	Amount      domain.Amount
	Supplier    string
	Description string
	DueDate     *domain.Date
	Priority    domain.OrderPriority
	RequestedBy string
}

// CreateOrder validates and creates an order in Requested state. Validation
// failures reject the order before any state change.
func (uc *DisbursementUseCase) CreateOrder(ctx context.Context, input CreateDisbursementInput) (*domain.DisbursementOrder, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}

	now := time.Now().UTC()
	order := &domain.DisbursementOrder{
		ID:          uc.idGen.Generate(),
		Project:     input.Project,
		Type:        input.Type,
		Amount:      input.Amount,
		Supplier:    input.Supplier,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    priority,
		Status:      domain.OrderStatusRequested,
		RequestedBy: input.RequestedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// ApproveOrder moves a Requested order to Approved.
func (uc *DisbursementUseCase) ApproveOrder(ctx context.Context, id, approvedBy string) (*domain.DisbursementOrder, error) {
	return uc.transition(ctx, id, domain.OrderStatusApproved, func(o *domain.DisbursementOrder) {
		o.ApprovedBy = approvedBy
	})
}

// ProcessOrder moves an Approved order to Processed, a terminal state.
func (uc *DisbursementUseCase) ProcessOrder(ctx context.Context, id, processedBy string) (*domain.DisbursementOrder, error) {
	return uc.transition(ctx, id, domain.OrderStatusProcessed, func(o *domain.DisbursementOrder) {
		o.ProcessedBy = processedBy
	})
}

// RejectOrder moves a Requested or Approved order to Rejected, a terminal
// state.
func (uc *DisbursementUseCase) RejectOrder(ctx context.Context, id, reason string) (*domain.DisbursementOrder, error) {
	return uc.transition(ctx, id, domain.OrderStatusRejected, func(o *domain.DisbursementOrder) {
		o.RejectionReason = reason
	})
}

func (uc *DisbursementUseCase) transition(
	ctx context.Context,
	id string,
	target domain.OrderStatus,
	apply func(*domain.DisbursementOrder),
) (*domain.DisbursementOrder, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.TransitionTo(target); err != nil {
		return nil, err
	}
	apply(order)
	order.UpdatedAt = time.Now().UTC()

	if err := uc.orderRepo.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder retrieves an order by ID.
func (uc *DisbursementUseCase) GetOrder(ctx context.Context, id string) (*domain.DisbursementOrder, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

// ListOrders lists orders matching the filter.
func (uc *DisbursementUseCase) ListOrders(ctx context.Context, filter DisbursementFilter) ([]*domain.DisbursementOrder, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.orderRepo.List(ctx, filter)
}

// ListOverdue returns non-terminal orders whose due date is before today.
// Overdue is derived at read time, never stored.
func (uc *DisbursementUseCase) ListOverdue(ctx context.Context, today domain.Date) ([]*domain.DisbursementOrder, error) {
	orders, err := uc.orderRepo.List(ctx, DisbursementFilter{Limit: 1000})
	if err != nil {
		return nil, err
	}

	var overdue []*domain.DisbursementOrder
	for _, o := range orders {
		if o.IsOverdue(today) {
			overdue = append(overdue, o)
		}
	}
	return overdue, nil
}
