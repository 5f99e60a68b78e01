// Package filter applies faceted filters to transactions, payable entities
// and calendar events. Filtering is pure: inputs are never mutated and the
// same inputs always produce the same output.
package filter

import (
	"sort"
	"time"

	"github.com/AndreCode112/FinanceMartins/internal/entity"
	"github.com/AndreCode112/FinanceMartins/internal/model"
	"github.com/AndreCode112/FinanceMartins/internal/period"
	"github.com/AndreCode112/FinanceMartins/internal/search"
	"github.com/AndreCode112/FinanceMartins/internal/textnorm"
)

// RefKind selects how a reference facet (bank, category) matches.
type RefKind int

const (
	// RefAll matches every record.
	RefAll RefKind = iota
	// RefNone matches records without the reference.
	RefNone
	// RefID matches records referencing a specific id.
	RefID
)

// Ref is a reference facet value: all records, records without the reference,
// or records pointing at one id.
type Ref struct {
	Kind RefKind
	ID   int
}

// AllRef matches everything. It is the zero value.
func AllRef() Ref { return Ref{Kind: RefAll} }

// NoneRef matches records without the reference set.
func NoneRef() Ref { return Ref{Kind: RefNone} }

// ByID matches records referencing the given id.
func ByID(id int) Ref { return Ref{Kind: RefID, ID: id} }

func (r Ref) matchBank(b *model.Bank) bool {
	switch r.Kind {
	case RefNone:
		return b == nil
	case RefID:
		return b != nil && b.ID == r.ID
	default:
		return true
	}
}

func (r Ref) matchCategory(c *model.PayableCategory) bool {
	switch r.Kind {
	case RefNone:
		return c == nil
	case RefID:
		return c != nil && c.ID == r.ID
	default:
		return true
	}
}

// TransactionFilters is the facet state of the transaction list. Zero value
// means "show everything".
type TransactionFilters struct {
	Bank   Ref
	Type   model.TransactionType // "" = all
	Period period.Period
	Query  string
}

// HasActive reports whether any facet deviates from the default.
func (f TransactionFilters) HasActive() bool {
	return f.Bank.Kind != RefAll ||
		f.Type != "" ||
		(f.Period != "" && f.Period != period.All) ||
		f.Query != ""
}

// PayableFilters is the facet state of the payable list. Zero value means
// "show everything". A non-zero ExactDate overrides the period facet.
type PayableFilters struct {
	Status    model.StatusState // "" = all
	Type      model.PayableType // "" = all
	Category  Ref
	Bank      Ref
	Period    period.Period
	ExactDate time.Time
	Query     string
}

// HasActive reports whether any facet deviates from the default.
func (f PayableFilters) HasActive() bool {
	return f.Status != "" ||
		f.Type != "" ||
		f.Category.Kind != RefAll ||
		f.Bank.Kind != RefAll ||
		(f.Period != "" && f.Period != period.All) ||
		!f.ExactDate.IsZero() ||
		f.Query != ""
}

// EventFilters is the facet state of the event list. Zero value means "show
// everything".
type EventFilters struct {
	Status     model.EventStatus     // "" = all
	Importance model.EventImportance // "" = all
	Query      string
}

// HasActive reports whether any facet deviates from the default.
func (f EventFilters) HasActive() bool {
	return f.Status != "" || f.Importance != "" || f.Query != ""
}

// Transactions returns the transactions matching every facet, in input order.
func Transactions(transactions []model.Transaction, f TransactionFilters, today time.Time) []model.Transaction {
	var out []model.Transaction
	for _, tx := range transactions {
		if !f.Bank.matchBank(tx.Bank) {
			continue
		}
		if f.Type != "" && tx.Type != f.Type {
			continue
		}
		if !period.Classify(tx.Date, f.Period, today) {
			continue
		}
		if !textnorm.Matches(f.Query, search.TransactionBlob(tx)) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Payables returns the entities matching every facet, in input order. Facets
// compose with AND; the free-text query runs against the entity blob so a hit
// on any member surfaces its group row.
func Payables(entities []entity.PayableEntity, f PayableFilters, today time.Time) []entity.PayableEntity {
	var out []entity.PayableEntity
	for _, e := range entities {
		if !matchPayable(e, f, today) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchPayable(e entity.PayableEntity, f PayableFilters, today time.Time) bool {
	if f.Status != "" && e.StatusState != f.Status {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if !f.Category.matchCategory(e.Category) {
		return false
	}
	if !f.Bank.matchBank(e.Bank) {
		return false
	}
	if !matchWhen(e, f, today) {
		return false
	}
	return textnorm.Matches(f.Query, search.EntityBlob(e, today))
}

// matchWhen applies the date dimension. An exact date wins over the period
// facet and matches when any member is due that day, so a group surfaces on
// each of its installment dates.
func matchWhen(e entity.PayableEntity, f PayableFilters, today time.Time) bool {
	if !f.ExactDate.IsZero() {
		want := period.DayOf(f.ExactDate)
		for _, m := range e.Members {
			if period.DayOf(m.DueDate).Equal(want) {
				return true
			}
		}
		return false
	}
	if f.Period == period.Overdue {
		return e.StatusState == model.StateOverdue
	}
	return period.Classify(e.DueDate, f.Period, today)
}

// Events returns the events matching every facet, ordered by start time with
// id as tiebreak.
func Events(events []model.CalendarEvent, f EventFilters) []model.CalendarEvent {
	var out []model.CalendarEvent
	for _, e := range events {
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if f.Importance != "" && e.Importance != f.Importance {
			continue
		}
		if !textnorm.Matches(f.Query, search.EventBlob(e)) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartsAt.Equal(out[j].StartsAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartsAt.Before(out[j].StartsAt)
	})
	return out
}
