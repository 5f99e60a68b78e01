package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayableType classifies a payable record.
type PayableType string

const (
	PayableInvoice      PayableType = "invoice"
	PayableSubscription PayableType = "subscription"
	PayableDebt         PayableType = "debt"
	PayableInstallment  PayableType = "installment"
	PayableOther        PayableType = "other"
)

// PayableStatus is the raw record status. Overdue is derived, not stored.
type PayableStatus string

const (
	PayablePending PayableStatus = "pending"
	PayablePaid    PayableStatus = "paid"
)

// StatusState is the derived display state of a payable or entity.
type StatusState string

const (
	StatePending StatusState = "pending"
	StatePaid    StatusState = "paid"
	StateOverdue StatusState = "overdue"
)

// Receipt is proof-of-payment attachment metadata.
type Receipt struct {
	URL      string
	Filename string
}

// Payable is one raw payable record: a bill, subscription charge, debt or a
// single installment of a plan.
//
// Installment invariant: when Type is PayableInstallment and InstallmentTotal
// is greater than 1, the record shares InstallmentGroup with its siblings,
// numbered 1..InstallmentTotal. Missing siblings are tolerated downstream.
type Payable struct {
	ID          int
	Title       string
	Description string
	Type        PayableType
	Category    *PayableCategory
	Bank        *Bank
	Status      PayableStatus
	Amount      decimal.Decimal
	DueDate     time.Time // calendar date
	PaymentDate *time.Time
	PaymentNote string
	Receipt     *Receipt

	InstallmentNumber int    // 0 when not an installment
	InstallmentTotal  int    // 0 when not an installment
	InstallmentGroup  string // UUID shared across one plan, "" when standalone

	IsRecurring bool // meaningful for subscriptions only
}

// IsOverdue reports whether the payable is pending with a due date strictly
// before today, compared at calendar-date granularity.
func (p Payable) IsOverdue(today time.Time) bool {
	return p.Status == PayablePending && dayOf(p.DueDate).Before(dayOf(today))
}

// State derives the display status of a single payable.
func (p Payable) State(today time.Time) StatusState {
	if p.Status == PayablePaid {
		return StatePaid
	}
	if p.IsOverdue(today) {
		return StateOverdue
	}
	return StatePending
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
