// Package plan expands an installment purchase into its monthly payable
// records and resolves group-level bulk actions (pay until, pay all, reopen).
package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AndreCode112/FinanceMartins/internal/entity"
	"github.com/AndreCode112/FinanceMartins/internal/model"
)

// AddMonths advances a date by whole months, clamping the day to the last day
// of the target month (Jan 31 + 1 month = Feb 28).
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// ExpandParams describes an installment purchase to expand.
type ExpandParams struct {
	Title        string
	Description  string
	Category     *model.PayableCategory
	Bank         *model.Bank
	TotalAmount  decimal.Decimal
	Installments int
	FirstDueDate time.Time

	// State of the installment being created right now; the remaining
	// records start out pending.
	CurrentNumber int
	Status        model.PayableStatus
	PaymentDate   *time.Time
	PaymentNote   string
	Receipt       *model.Receipt
}

// ExpandInstallments builds one payable per installment, sharing a fresh
// group id. The total is split into equal cents with the remainder spread
// over the leading installments, so the records always sum to the total.
// Record ids are left at zero for the persistence layer to assign.
func ExpandInstallments(params ExpandParams) ([]model.Payable, error) {
	if params.Installments < 2 {
		return nil, fmt.Errorf("installment plan needs at least 2 installments, got %d", params.Installments)
	}
	if params.TotalAmount.Sign() <= 0 {
		return nil, fmt.Errorf("installment plan needs a positive total, got %s", params.TotalAmount)
	}
	current := params.CurrentNumber
	if current == 0 {
		current = 1
	}
	if current < 1 || current > params.Installments {
		return nil, fmt.Errorf("current installment %d out of range 1..%d", current, params.Installments)
	}

	n := int64(params.Installments)
	unit := params.TotalAmount.Div(decimal.NewFromInt(n)).RoundDown(2)
	remainder := params.TotalAmount.Sub(unit.Mul(decimal.NewFromInt(n)))
	cent := decimal.New(1, -2)
	extraCents := remainder.Div(cent).IntPart()

	group := uuid.NewString()
	payables := make([]model.Payable, 0, params.Installments)
	for i := 1; i <= params.Installments; i++ {
		amount := unit
		if int64(i) <= extraCents {
			amount = amount.Add(cent)
		}
		p := model.Payable{
			Title:             params.Title,
			Description:       params.Description,
			Type:              model.PayableInstallment,
			Category:          params.Category,
			Bank:              params.Bank,
			Status:            model.PayablePending,
			Amount:            amount,
			DueDate:           AddMonths(params.FirstDueDate, i-1),
			InstallmentNumber: i,
			InstallmentTotal:  params.Installments,
			InstallmentGroup:  group,
		}
		if i == current {
			p.Status = params.Status
			p.PaymentDate = params.PaymentDate
			p.PaymentNote = params.PaymentNote
			p.Receipt = params.Receipt
		}
		payables = append(payables, p)
	}
	return payables, nil
}

// Action is a group-level bulk operation.
type Action string

const (
	// PayUntil marks members up to and including a given installment number
	// as paid.
	PayUntil Action = "pay_until"
	// PayAll marks every member paid.
	PayAll Action = "pay_all"
	// ReopenAll reverts every member to pending.
	ReopenAll Action = "reopen_all"
)

// GroupBulkTargets resolves which members of an installment group a bulk
// action touches: members whose status would actually change.
func GroupBulkTargets(members []model.Payable, action Action, untilNumber int) ([]model.Payable, error) {
	sorted := entity.SortMembers(members)
	var targets []model.Payable
	switch action {
	case PayUntil:
		for _, m := range sorted {
			if m.InstallmentNumber <= untilNumber && m.Status != model.PayablePaid {
				targets = append(targets, m)
			}
		}
	case PayAll:
		for _, m := range sorted {
			if m.Status != model.PayablePaid {
				targets = append(targets, m)
			}
		}
	case ReopenAll:
		for _, m := range sorted {
			if m.Status != model.PayablePending {
				targets = append(targets, m)
			}
		}
	default:
		return nil, fmt.Errorf("unknown group action %q", action)
	}
	return targets, nil
}
