package domain

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus is the lifecycle state of a disbursement order.
// Processed and Rejected are terminal.
type OrderStatus string

const (
	OrderStatusRequested OrderStatus = "Requested"
	OrderStatusApproved  OrderStatus = "Approved"
	OrderStatusProcessed OrderStatus = "Processed"
	OrderStatusRejected  OrderStatus = "Rejected"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusRequested: {OrderStatusApproved, OrderStatusRejected},
	OrderStatusApproved:  {OrderStatusProcessed, OrderStatusRejected},
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusProcessed || s == OrderStatusRejected
}

// OrderPriority ranks disbursement orders for processing.
type OrderPriority string

const (
	PriorityLow    OrderPriority = "Low"
	PriorityNormal OrderPriority = "Normal"
	PriorityHigh   OrderPriority = "High"
	PriorityUrgent OrderPriority = "Urgent"
)

// Valid reports whether p is a known priority.
func (p OrderPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// DisbursementType categorizes what an order pays for.
type DisbursementType string

const (
	DisbursementSupplierPayment DisbursementType = "Supplier Payment"
	DisbursementMaterials       DisbursementType = "Materials"
	DisbursementLabor           DisbursementType = "Labor"
	DisbursementTransport       DisbursementType = "Transport"
	DisbursementUtilities       DisbursementType = "Utilities"
	DisbursementMaintenance     DisbursementType = "Maintenance"
	DisbursementOther           DisbursementType = "Other"
)

var validDisbursementTypes = map[DisbursementType]bool{
	DisbursementSupplierPayment: true,
	DisbursementMaterials:       true,
	DisbursementLabor:           true,
	DisbursementTransport:       true,
	DisbursementUtilities:       true,
	DisbursementMaintenance:     true,
	DisbursementOther:           true,
}

// Valid reports whether t is a known disbursement type.
func (t DisbursementType) Valid() bool {
	return validDisbursementTypes[t]
}

// DisbursementOrder is a request to pay out funds against a project.
// Overdue is never stored; it is derived from DueDate and Status at read
// time so it cannot drift from the current date.
type DisbursementOrder struct {
	ID          string
	Project     string
	Type        DisbursementType
	Amount      Amount
	Supplier    string
	Description string
	DueDate     *Date
	Priority    OrderPriority
	Status      OrderStatus

	RequestedBy     string
	ApprovedBy      string
	ProcessedBy     string
	RejectionReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks an order before it is persisted. At least one currency
// track must be present and every present track must be positive.
func (o *DisbursementOrder) Validate() error {
	if o.Amount.IsEmpty() {
		return ErrNoCurrencyAmount
	}
	if o.Amount.USD != nil && !o.Amount.USD.IsPositive() {
		return fmt.Errorf("%w: usd", ErrNonPositiveAmount)
	}
	if o.Amount.ARS != nil && !o.Amount.ARS.IsPositive() {
		return fmt.Errorf("%w: ars", ErrNonPositiveAmount)
	}
	if strings.TrimSpace(o.Project) == "" {
		return fmt.Errorf("%w: project is required", ErrInvalidName)
	}
	if strings.TrimSpace(o.Supplier) == "" {
		return fmt.Errorf("%w: supplier is required", ErrInvalidName)
	}
	if strings.TrimSpace(o.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidName)
	}
	if !o.Type.Valid() {
		return fmt.Errorf("%w: disbursement type %q", ErrInvalidName, o.Type)
	}
	if !o.Priority.Valid() {
		return fmt.Errorf("%w: priority %q", ErrInvalidName, o.Priority)
	}
	return nil
}

// CanTransitionTo reports whether the order may move to target.
func (o *DisbursementOrder) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderTransitions[o.Status] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the order to target, failing with ErrInvalidTransition
// from terminal or incompatible states. Illegal transitions are errors,
// never silently ignored.
func (o *DisbursementOrder) TransitionTo(target OrderStatus) error {
	if !o.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
	}
	o.Status = target
	return nil
}

// IsOverdue reports whether the order is past due as of today. Terminal
// orders are never overdue.
func (o *DisbursementOrder) IsOverdue(today Date) bool {
	if o.DueDate == nil || o.Status.Terminal() {
		return false
	}
	return o.DueDate.Before(today)
}

// DaysUntilDue returns the number of days until the due date, negative when
// past due, and false when the order has no due date.
func (o *DisbursementOrder) DaysUntilDue(today Date) (int, bool) {
	if o.DueDate == nil {
		return 0, false
	}
	days := int(o.DueDate.Time().Sub(today.Time()).Hours() / 24)
	return days, true
}
