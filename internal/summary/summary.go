// Package summary derives the dashboard headline numbers and reminder lists
// from raw records. Everything here is computed on demand from the full
// collections, never from a filtered view.
package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AndreCode112/FinanceMartins/internal/entity"
	"github.com/AndreCode112/FinanceMartins/internal/model"
	"github.com/AndreCode112/FinanceMartins/internal/period"
)

// TransactionTotals summarizes a transaction list.
type TransactionTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
	Count   int
}

// Transactions sums income and expenses; balance is income minus expenses.
func Transactions(transactions []model.Transaction) TransactionTotals {
	totals := TransactionTotals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Count:   len(transactions),
	}
	for _, tx := range transactions {
		switch tx.Type {
		case model.TransactionIncome:
			totals.Income = totals.Income.Add(tx.Amount)
		case model.TransactionExpense:
			totals.Expense = totals.Expense.Add(tx.Amount)
		}
	}
	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals
}

// PayableTotals summarizes payable entities. Amounts are accumulated per
// member so a half-paid installment group contributes to both the paid and
// pending buckets.
type PayableTotals struct {
	Pending decimal.Decimal
	Overdue decimal.Decimal
	Paid    decimal.Decimal

	EntityCount        int
	OverdueEntityCount int
}

// Payables accumulates member amounts by state across the given entities.
func Payables(entities []entity.PayableEntity, today time.Time) PayableTotals {
	totals := PayableTotals{
		Pending:     decimal.Zero,
		Overdue:     decimal.Zero,
		Paid:        decimal.Zero,
		EntityCount: len(entities),
	}
	for _, e := range entities {
		if e.StatusState == model.StateOverdue {
			totals.OverdueEntityCount++
		}
		for _, m := range e.Members {
			switch m.State(today) {
			case model.StatePaid:
				totals.Paid = totals.Paid.Add(m.Amount)
			case model.StateOverdue:
				totals.Overdue = totals.Overdue.Add(m.Amount)
				totals.Pending = totals.Pending.Add(m.Amount)
			default:
				totals.Pending = totals.Pending.Add(m.Amount)
			}
		}
	}
	return totals
}

// EventTotals summarizes a calendar event list.
type EventTotals struct {
	Total     int
	Pending   int
	Completed int
	Critical  int
}

// Events counts events by status, plus pending critical ones.
func Events(events []model.CalendarEvent) EventTotals {
	totals := EventTotals{Total: len(events)}
	for _, e := range events {
		switch e.Status {
		case model.EventPending:
			totals.Pending++
			if e.Importance == model.ImportanceCritical {
				totals.Critical++
			}
		case model.EventCompleted:
			totals.Completed++
		}
	}
	return totals
}

// Reminder is one pending payable that deserves attention today.
type Reminder struct {
	Payable       model.Payable
	DaysFromToday int
}

// reminderDays are the upcoming horizons that trigger a reminder, besides
// anything already overdue.
var reminderDays = map[int]bool{0: true, 1: true, 3: true}

// PayableReminders selects pending payables that are overdue or due today,
// tomorrow or in three days, ordered by urgency (overdue first, then due
// today, tomorrow, later), then by days and id.
func PayableReminders(payables []model.Payable, today time.Time) []Reminder {
	var reminders []Reminder
	for _, p := range payables {
		if p.Status != model.PayablePending {
			continue
		}
		days := period.DaysFromToday(p.DueDate, today)
		if days >= 0 && !reminderDays[days] {
			continue
		}
		reminders = append(reminders, Reminder{Payable: p, DaysFromToday: days})
	}
	sort.SliceStable(reminders, func(i, j int) bool {
		a, b := reminders[i], reminders[j]
		if pa, pb := reminderPriority(a.DaysFromToday), reminderPriority(b.DaysFromToday); pa != pb {
			return pa < pb
		}
		if a.DaysFromToday != b.DaysFromToday {
			return a.DaysFromToday < b.DaysFromToday
		}
		return a.Payable.ID < b.Payable.ID
	})
	return reminders
}

func reminderPriority(days int) int {
	switch {
	case days < 0:
		return 0
	case days == 0:
		return 1
	case days == 1:
		return 2
	case days == 3:
		return 3
	default:
		return 4
	}
}

// ReminderCounts buckets payable reminders for badge display.
type ReminderCounts struct {
	Overdue  int
	DueToday int
	Upcoming int
}

// CountReminders tallies reminders by bucket.
func CountReminders(reminders []Reminder) ReminderCounts {
	var counts ReminderCounts
	for _, r := range reminders {
		switch {
		case r.DaysFromToday < 0:
			counts.Overdue++
		case r.DaysFromToday == 0:
			counts.DueToday++
		default:
			counts.Upcoming++
		}
	}
	return counts
}

// Event reminder window around now: events that started in the last 12 hours
// or start within the next 72 hours.
const (
	eventLookback = 12 * time.Hour
	eventHorizon  = 72 * time.Hour
)

// EventReminder is one pending event near its start time.
type EventReminder struct {
	Event       model.CalendarEvent
	ReminderAt  time.Time
	DiffMinutes int
	DueNow      bool
}

// EventReminders selects pending events around now, ordered by start time.
// DueNow marks events inside their reminder lead time that have not started
// yet.
func EventReminders(events []model.CalendarEvent, now time.Time) []EventReminder {
	var reminders []EventReminder
	for _, e := range events {
		if e.Status != model.EventPending {
			continue
		}
		delta := e.StartsAt.Sub(now)
		if delta < -eventLookback || delta > eventHorizon {
			continue
		}
		reminderAt := e.StartsAt.Add(-time.Duration(e.ReminderMinutesBefore) * time.Minute)
		diffMinutes := int(delta.Minutes())
		reminders = append(reminders, EventReminder{
			Event:       e,
			ReminderAt:  reminderAt,
			DiffMinutes: diffMinutes,
			DueNow:      !now.Before(reminderAt) && diffMinutes >= 0,
		})
	}
	sort.SliceStable(reminders, func(i, j int) bool {
		a, b := reminders[i], reminders[j]
		if a.Event.StartsAt.Equal(b.Event.StartsAt) {
			return a.Event.ID < b.Event.ID
		}
		return a.Event.StartsAt.Before(b.Event.StartsAt)
	})
	return reminders
}

// Reconciliation lists paid installments still missing a receipt, most
// recently paid first.
func Reconciliation(payables []model.Payable) []model.Payable {
	var missing []model.Payable
	for _, p := range payables {
		if p.Type != model.PayableInstallment {
			continue
		}
		if p.Status != model.PayablePaid || p.Receipt != nil {
			continue
		}
		missing = append(missing, p)
	}
	sort.SliceStable(missing, func(i, j int) bool {
		a, b := reconciliationDate(missing[i]), reconciliationDate(missing[j])
		if a.Equal(b) {
			return missing[i].ID < missing[j].ID
		}
		return a.After(b)
	})
	return missing
}

func reconciliationDate(p model.Payable) time.Time {
	if p.PaymentDate != nil {
		return *p.PaymentDate
	}
	return p.DueDate
}
