// Package entity collapses raw payable records into display entities: one row
// per standalone payable or per installment group, with derived status and
// progress. Entities are rebuilt from the raw records on every read and never
// mutated in place.
package entity

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AndreCode112/FinanceMartins/internal/model"
)

// PayableEntity is the user-facing aggregate of one payable or one
// installment group.
type PayableEntity struct {
	ID          int // reference payable id (first member)
	Key         string
	Type        model.PayableType
	Category    *model.PayableCategory
	Title       string
	Description string
	Bank        *model.Bank
	DueDate     time.Time
	StatusState model.StatusState

	InstallmentText string
	AmountTotal     decimal.Decimal
	Members         []model.Payable

	DetailReferenceID    int
	CanOpenDetails       bool
	CanEdit              bool
	IsGroupedInstallment bool

	PaidCount       int
	TotalCount      int
	ProgressPercent int
}

// SingleKey is the entity key for a standalone payable.
func SingleKey(id int) string {
	return fmt.Sprintf("single-%d", id)
}

// GroupKey is the entity key for an installment group.
func GroupKey(group string) string {
	return "group-" + group
}

// Build partitions payables into entities: grouped installments (installment
// type, non-empty group, total > 1) collapse into one entity per group,
// everything else becomes a single-member entity. Every input payable lands
// in exactly one entity; groups with missing siblings are built from the
// members that exist. Singles come out in input order, then groups in
// first-seen order; callers re-sort for display.
func Build(payables []model.Payable, today time.Time) []PayableEntity {
	grouped := make(map[string][]model.Payable)
	var groupOrder []string
	var entities []PayableEntity

	for _, p := range payables {
		isGrouped := p.Type == model.PayableInstallment && p.InstallmentGroup != "" && p.InstallmentTotal > 1
		if !isGrouped {
			entities = append(entities, fromSingle(p, today))
			continue
		}
		if _, seen := grouped[p.InstallmentGroup]; !seen {
			groupOrder = append(groupOrder, p.InstallmentGroup)
		}
		grouped[p.InstallmentGroup] = append(grouped[p.InstallmentGroup], p)
	}

	for _, group := range groupOrder {
		entities = append(entities, fromGroup(grouped[group], today))
	}
	return entities
}

func fromSingle(p model.Payable, today time.Time) PayableEntity {
	isInstallment := p.Type == model.PayableInstallment

	paidCount := 0
	if p.Status == model.PayablePaid {
		paidCount = 1
	}
	totalCount := p.InstallmentTotal
	if totalCount == 0 {
		totalCount = 1
	}

	text := "-"
	if p.InstallmentNumber > 0 && p.InstallmentTotal > 0 {
		text = fmt.Sprintf("%d/%d", p.InstallmentNumber, p.InstallmentTotal)
	}

	return PayableEntity{
		ID:                p.ID,
		Key:               SingleKey(p.ID),
		Type:              p.Type,
		Category:          p.Category,
		Title:             p.Title,
		Description:       p.Description,
		Bank:              p.Bank,
		DueDate:           p.DueDate,
		StatusState:       p.State(today),
		InstallmentText:   text,
		AmountTotal:       p.Amount,
		Members:           []model.Payable{p},
		DetailReferenceID: p.ID,
		CanOpenDetails:    isInstallment && p.InstallmentTotal > 1,
		CanEdit:           !isInstallment,
		PaidCount:         paidCount,
		TotalCount:        totalCount,
		ProgressPercent:   progressPercent(paidCount, totalCount),
	}
}

func fromGroup(members []model.Payable, today time.Time) PayableEntity {
	sorted := SortMembers(members)
	first := sorted[0]

	var pending []model.Payable
	paidCount := 0
	overdueCount := 0
	total := decimal.Zero
	for _, m := range sorted {
		total = total.Add(m.Amount)
		if m.Status == model.PayablePaid {
			paidCount++
			continue
		}
		pending = append(pending, m)
		if m.IsOverdue(today) {
			overdueCount++
		}
	}
	totalCount := len(sorted)

	state := model.StatePending
	switch {
	case paidCount == totalCount:
		state = model.StatePaid
	case overdueCount > 0:
		state = model.StateOverdue
	}

	// Representative due date: earliest pending due date, or the last
	// member's due date when everything is paid.
	dueDate := sorted[totalCount-1].DueDate
	if len(pending) > 0 {
		earliest := pending[0].DueDate
		for _, m := range pending[1:] {
			if m.DueDate.Before(earliest) {
				earliest = m.DueDate
			}
		}
		dueDate = earliest
	}

	return PayableEntity{
		ID:                   first.ID,
		Key:                  GroupKey(first.InstallmentGroup),
		Type:                 model.PayableInstallment,
		Category:             first.Category,
		Title:                first.Title,
		Description:          first.Description,
		Bank:                 first.Bank,
		DueDate:              dueDate,
		StatusState:          state,
		InstallmentText:      fmt.Sprintf("%d/%d pagas", paidCount, totalCount),
		AmountTotal:          total,
		Members:              sorted,
		DetailReferenceID:    first.ID,
		CanOpenDetails:       true,
		CanEdit:              false,
		IsGroupedInstallment: true,
		PaidCount:            paidCount,
		TotalCount:           totalCount,
		ProgressPercent:      progressPercent(paidCount, totalCount),
	}
}

// SortMembers orders installment members by installment number, id ascending
// on ties, without mutating the input.
func SortMembers(members []model.Payable) []model.Payable {
	sorted := make([]model.Payable, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].InstallmentNumber == sorted[j].InstallmentNumber {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].InstallmentNumber < sorted[j].InstallmentNumber
	})
	return sorted
}

// DetailReferenceID resolves the stable handle used to open a payable's
// detail view: the first member of its installment group, or the payable
// itself when ungrouped.
func DetailReferenceID(p model.Payable, all []model.Payable) int {
	if p.InstallmentGroup == "" {
		return p.ID
	}
	var members []model.Payable
	for _, candidate := range all {
		if candidate.InstallmentGroup == p.InstallmentGroup {
			members = append(members, candidate)
		}
	}
	if len(members) == 0 {
		return p.ID
	}
	return SortMembers(members)[0].ID
}

func progressPercent(paid, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(paid) / float64(total) * 100))
}
