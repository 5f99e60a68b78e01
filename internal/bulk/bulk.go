// Package bulk resolves multi-row actions over the visible payable entities:
// which raw records they touch, a preview of the damage, and the mutation to
// apply.
package bulk

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AndreCode112/FinanceMartins/internal/entity"
	"github.com/AndreCode112/FinanceMartins/internal/model"
)

// Action is a bulk operation over selected payable rows.
type Action string

const (
	MarkPaid    Action = "mark_paid"
	MarkPending Action = "mark_pending"
	Delete      Action = "delete"
)

// ResolveTargets flattens the selected entities into their member payables,
// deduplicated by id in first-seen order. Selecting a group row targets every
// installment in the group.
func ResolveTargets(selected []entity.PayableEntity) []model.Payable {
	seen := make(map[int]bool)
	var targets []model.Payable
	for _, e := range selected {
		for _, m := range e.Members {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			targets = append(targets, m)
		}
	}
	return targets
}

// TargetSummary previews what a bulk action would touch.
type TargetSummary struct {
	Count        int
	TotalAmount  decimal.Decimal
	PaidCount    int
	PendingCount int
}

// Summarize totals the resolved targets for the confirmation prompt.
func Summarize(targets []model.Payable) TargetSummary {
	summary := TargetSummary{Count: len(targets), TotalAmount: decimal.Zero}
	for _, p := range targets {
		summary.TotalAmount = summary.TotalAmount.Add(p.Amount)
		if p.Status == model.PayablePaid {
			summary.PaidCount++
		} else {
			summary.PendingCount++
		}
	}
	return summary
}

// Result is the outcome of applying a bulk action: updated records to merge
// back, or ids to delete.
type Result struct {
	Action     Action
	Updated    []model.Payable
	DeletedIDs []int
}

// Apply computes the result of a bulk action over the targets. Marking paid
// stamps today as the payment date on records that were not already paid;
// marking pending clears payment data. The input is not mutated.
func Apply(targets []model.Payable, action Action, today time.Time) (Result, error) {
	result := Result{Action: action}
	switch action {
	case MarkPaid:
		for _, p := range targets {
			if p.Status == model.PayablePaid {
				continue
			}
			paidAt := today
			p.Status = model.PayablePaid
			p.PaymentDate = &paidAt
			result.Updated = append(result.Updated, p)
		}
	case MarkPending:
		for _, p := range targets {
			if p.Status == model.PayablePending && p.PaymentDate == nil {
				continue
			}
			p.Status = model.PayablePending
			p.PaymentDate = nil
			p.PaymentNote = ""
			result.Updated = append(result.Updated, p)
		}
	case Delete:
		for _, p := range targets {
			result.DeletedIDs = append(result.DeletedIDs, p.ID)
		}
	default:
		return Result{}, fmt.Errorf("unknown bulk action %q", action)
	}
	return result, nil
}
