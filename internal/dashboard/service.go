// Package dashboard is the facade over the record store, the faceted filters
// and the derived views. Commands and UIs talk to the Service; everything
// below it is pure and stateless.
package dashboard

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/AndreCode112/FinanceMartins/internal/bulk"
	"github.com/AndreCode112/FinanceMartins/internal/entity"
	"github.com/AndreCode112/FinanceMartins/internal/filter"
	"github.com/AndreCode112/FinanceMartins/internal/history"
	"github.com/AndreCode112/FinanceMartins/internal/model"
	"github.com/AndreCode112/FinanceMartins/internal/plan"
	"github.com/AndreCode112/FinanceMartins/internal/snapshot"
	"github.com/AndreCode112/FinanceMartins/internal/store"
	"github.com/AndreCode112/FinanceMartins/internal/summary"
)

// Service coordinates the dashboard state: one record store, the current
// facet selections, and the status-change history of the session.
type Service struct {
	log     zerolog.Logger
	store   *store.Store
	history *history.Log
	flushed int
	today   time.Time

	txFilters      filter.TransactionFilters
	payableFilters filter.PayableFilters
	eventFilters   filter.EventFilters
}

// NewService creates a dashboard service with an empty store. Today defaults
// to the wall clock and can be pinned via SetToday or a snapshot.
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log:     log,
		store:   store.New(),
		history: history.NewLog(),
		today:   time.Now(),
	}
}

// ApplySnapshot replaces the whole store with a decoded snapshot and resets
// the facet selections.
func (s *Service) ApplySnapshot(snap *snapshot.Snapshot) {
	s.store.ReplaceBanks(snap.Banks)
	s.store.ReplaceCategories(snap.Categories)
	s.store.ReplaceTransactions(snap.Transactions)
	s.store.ReplacePayables(snap.Payables)
	s.store.ReplaceEvents(snap.Events)
	s.store.EnsureDefaultBanks()
	if !snap.Today.IsZero() {
		s.today = snap.Today
	}
	s.txFilters = filter.TransactionFilters{}
	s.payableFilters = filter.PayableFilters{}
	s.eventFilters = filter.EventFilters{}
	s.log.Info().
		Int("transactions", len(snap.Transactions)).
		Int("payables", len(snap.Payables)).
		Int("events", len(snap.Events)).
		Time("today", s.today).
		Msg("snapshot applied")
}

// Snapshot exports the current store contents and reference date, in the
// shape ApplySnapshot consumes.
func (s *Service) Snapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Today:        s.today,
		Banks:        s.store.Banks(),
		Categories:   s.store.Categories(),
		Transactions: s.store.Transactions(),
		Payables:     s.store.Payables(),
		Events:       s.store.Events(),
	}
}

// SetToday pins the reference date used for overdue and period computations.
func (s *Service) SetToday(today time.Time) {
	s.today = today
}

// Today returns the reference date.
func (s *Service) Today() time.Time {
	return s.today
}

// Banks returns the bank collection.
func (s *Service) Banks() []model.Bank { return s.store.Banks() }

// Categories returns the category collection.
func (s *Service) Categories() []model.PayableCategory { return s.store.Categories() }

// UpsertTransaction adds or replaces a transaction.
func (s *Service) UpsertTransaction(tx model.Transaction) {
	s.store.UpsertTransaction(tx)
}

// DeleteTransaction removes a transaction.
func (s *Service) DeleteTransaction(id int) {
	s.store.DeleteTransaction(id)
}

// UpsertPayable adds or replaces one payable, recording the status change.
func (s *Service) UpsertPayable(p model.Payable) {
	if before, ok := s.store.PayableByID(p.ID); ok {
		if entry, changed := history.Diff(before, p, history.SourceManual, s.today); changed {
			s.history.Append(entry)
		}
	}
	s.store.UpsertPayables([]model.Payable{p})
}

// Payable returns one payable by id.
func (s *Service) Payable(id int) (model.Payable, bool) {
	return s.store.PayableByID(id)
}

// DeletePayables removes payables by id.
func (s *Service) DeletePayables(ids []int) {
	s.store.DeletePayables(ids)
}

// UpsertEvent adds or replaces a calendar event.
func (s *Service) UpsertEvent(e model.CalendarEvent) {
	s.store.UpsertEvent(e)
}

// DeleteEvent removes a calendar event.
func (s *Service) DeleteEvent(id int) {
	s.store.DeleteEvent(id)
}

// UpsertBank adds or replaces a bank.
func (s *Service) UpsertBank(b model.Bank) {
	s.store.UpsertBank(b)
}

// DeleteBank removes a bank and heals any facet pointing at it. Banks with
// linked transactions are protected.
func (s *Service) DeleteBank(id int) error {
	if err := s.store.DeleteBank(id); err != nil {
		return err
	}
	s.healFilters()
	return nil
}

// UpsertCategory adds or replaces a category.
func (s *Service) UpsertCategory(c model.PayableCategory) {
	s.store.UpsertCategory(c)
}

// DeleteCategory removes a category and heals any facet pointing at it.
func (s *Service) DeleteCategory(id int) {
	s.store.DeleteCategory(id)
	s.healFilters()
}

// healFilters resets reference facets that point at records that no longer
// exist, so a deleted bank or category never leaves the list stuck empty.
func (s *Service) healFilters() {
	if s.txFilters.Bank.Kind == filter.RefID && !s.store.HasBank(s.txFilters.Bank.ID) {
		s.log.Debug().Int("bank", s.txFilters.Bank.ID).Msg("resetting stale transaction bank facet")
		s.txFilters.Bank = filter.AllRef()
	}
	if s.payableFilters.Bank.Kind == filter.RefID && !s.store.HasBank(s.payableFilters.Bank.ID) {
		s.log.Debug().Int("bank", s.payableFilters.Bank.ID).Msg("resetting stale payable bank facet")
		s.payableFilters.Bank = filter.AllRef()
	}
	if s.payableFilters.Category.Kind == filter.RefID && !s.store.HasCategory(s.payableFilters.Category.ID) {
		s.log.Debug().Int("category", s.payableFilters.Category.ID).Msg("resetting stale category facet")
		s.payableFilters.Category = filter.AllRef()
	}
}

// SetTransactionFilters replaces the transaction facet selection.
func (s *Service) SetTransactionFilters(f filter.TransactionFilters) {
	s.txFilters = f
}

// TransactionFilters returns the current transaction facet selection.
func (s *Service) TransactionFilters() filter.TransactionFilters {
	return s.txFilters
}

// SetPayableFilters replaces the payable facet selection.
func (s *Service) SetPayableFilters(f filter.PayableFilters) {
	s.payableFilters = f
}

// PayableFilters returns the current payable facet selection.
func (s *Service) PayableFilters() filter.PayableFilters {
	return s.payableFilters
}

// SetEventFilters replaces the event facet selection.
func (s *Service) SetEventFilters(f filter.EventFilters) {
	s.eventFilters = f
}

// EventFilters returns the current event facet selection.
func (s *Service) EventFilters() filter.EventFilters {
	return s.eventFilters
}

// ClearFilters resets every facet selection.
func (s *Service) ClearFilters() {
	s.txFilters = filter.TransactionFilters{}
	s.payableFilters = filter.PayableFilters{}
	s.eventFilters = filter.EventFilters{}
}

// FilteredTransactions returns the transactions matching the current facets.
func (s *Service) FilteredTransactions() []model.Transaction {
	return filter.Transactions(s.store.Transactions(), s.txFilters, s.today)
}

// PayableEntities returns every payable entity, unfiltered.
func (s *Service) PayableEntities() []entity.PayableEntity {
	return entity.Build(s.store.Payables(), s.today)
}

// FilteredPayables returns the payable entities matching the current facets.
func (s *Service) FilteredPayables() []entity.PayableEntity {
	return filter.Payables(s.PayableEntities(), s.payableFilters, s.today)
}

// FilteredEvents returns the events matching the current facets, ordered by
// start time.
func (s *Service) FilteredEvents() []model.CalendarEvent {
	return filter.Events(s.store.Events(), s.eventFilters)
}

// TransactionTotals summarizes the filtered transaction view.
func (s *Service) TransactionTotals() summary.TransactionTotals {
	return summary.Transactions(s.FilteredTransactions())
}

// PayableTotals summarizes the filtered payable view.
func (s *Service) PayableTotals() summary.PayableTotals {
	return summary.Payables(s.FilteredPayables(), s.today)
}

// EventTotals summarizes the filtered event view.
func (s *Service) EventTotals() summary.EventTotals {
	return summary.Events(s.FilteredEvents())
}

// PayableReminders derives reminders from every payable, regardless of the
// current facets.
func (s *Service) PayableReminders() []summary.Reminder {
	return summary.PayableReminders(s.store.Payables(), s.today)
}

// ReminderCounts buckets the payable reminders.
func (s *Service) ReminderCounts() summary.ReminderCounts {
	return summary.CountReminders(s.PayableReminders())
}

// EventReminders derives event reminders around now from every event.
func (s *Service) EventReminders(now time.Time) []summary.EventReminder {
	return summary.EventReminders(s.store.Events(), now)
}

// Reconciliation lists paid installments still missing a receipt.
func (s *Service) Reconciliation() []model.Payable {
	return summary.Reconciliation(s.store.Payables())
}

// SelectedEntities resolves entity keys against the current filtered view.
// Unknown keys are ignored.
func (s *Service) SelectedEntities(keys []string) []entity.PayableEntity {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	var selected []entity.PayableEntity
	for _, e := range s.FilteredPayables() {
		if want[e.Key] {
			selected = append(selected, e)
		}
	}
	return selected
}

// BulkTargets resolves the raw payables a bulk action over the given entity
// keys would touch.
func (s *Service) BulkTargets(keys []string) []model.Payable {
	return bulk.ResolveTargets(s.SelectedEntities(keys))
}

// BulkTargetSummary previews a bulk action over the given entity keys.
func (s *Service) BulkTargetSummary(keys []string) bulk.TargetSummary {
	return bulk.Summarize(s.BulkTargets(keys))
}

// ApplyBulk runs a bulk action over the given entity keys, merges the result
// into the store and records the status changes.
func (s *Service) ApplyBulk(keys []string, action bulk.Action) (bulk.Result, error) {
	targets := s.BulkTargets(keys)
	result, err := bulk.Apply(targets, action, s.today)
	if err != nil {
		return bulk.Result{}, err
	}

	source := history.SourceManual
	switch action {
	case bulk.MarkPaid:
		source = history.SourceBulkMarkPaid
	case bulk.MarkPending:
		source = history.SourceBulkMarkPending
	}

	s.recordChanges(result.Updated, source)
	s.store.UpsertPayables(result.Updated)
	s.store.DeletePayables(result.DeletedIDs)
	s.log.Info().
		Str("action", string(action)).
		Int("updated", len(result.Updated)).
		Int("deleted", len(result.DeletedIDs)).
		Msg("bulk action applied")
	return result, nil
}

// ApplyGroupAction runs a group-level action (pay until, pay all, reopen all)
// over one installment group.
func (s *Service) ApplyGroupAction(group string, action plan.Action, untilNumber int) ([]model.Payable, error) {
	var members []model.Payable
	for _, p := range s.store.Payables() {
		if p.InstallmentGroup == group {
			members = append(members, p)
		}
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("installment group %q not found", group)
	}

	targets, err := plan.GroupBulkTargets(members, action, untilNumber)
	if err != nil {
		return nil, err
	}

	source := history.SourceManual
	updated := make([]model.Payable, 0, len(targets))
	switch action {
	case plan.PayUntil, plan.PayAll:
		if action == plan.PayUntil {
			source = history.SourceBulkPayUntil
		} else {
			source = history.SourceBulkPayAll
		}
		for _, p := range targets {
			paidAt := s.today
			p.Status = model.PayablePaid
			p.PaymentDate = &paidAt
			updated = append(updated, p)
		}
	case plan.ReopenAll:
		source = history.SourceBulkReopenAll
		for _, p := range targets {
			p.Status = model.PayablePending
			p.PaymentDate = nil
			p.PaymentNote = ""
			updated = append(updated, p)
		}
	}

	s.recordChanges(updated, source)
	s.store.UpsertPayables(updated)
	s.log.Info().
		Str("group", group).
		Str("action", string(action)).
		Int("updated", len(updated)).
		Msg("group action applied")
	return updated, nil
}

// CreateInstallmentPlan expands an installment purchase and stores the
// resulting records with freshly assigned ids.
func (s *Service) CreateInstallmentPlan(params plan.ExpandParams) ([]model.Payable, error) {
	payables, err := plan.ExpandInstallments(params)
	if err != nil {
		return nil, err
	}
	next := s.nextPayableID()
	for i := range payables {
		payables[i].ID = next + i
	}
	s.store.UpsertPayables(payables)
	s.log.Info().
		Str("title", params.Title).
		Int("installments", len(payables)).
		Msg("installment plan created")
	return payables, nil
}

// History returns every recorded status change, oldest first.
func (s *Service) History() []history.Entry {
	return s.history.All()
}

// PayableHistory returns the recorded status changes of one payable.
func (s *Service) PayableHistory(id int) []history.Entry {
	return s.history.ForPayable(id)
}

// FlushHistory appends the entries recorded since the last flush to the CSV
// log under dir. Flushing again without new changes writes nothing.
func (s *Service) FlushHistory(dir string) (int, error) {
	entries := s.history.All()
	unflushed := entries[s.flushed:]
	if len(unflushed) == 0 {
		return 0, nil
	}
	if err := history.Append(dir, unflushed); err != nil {
		return 0, err
	}
	s.flushed = len(entries)
	s.log.Info().Int("entries", len(unflushed)).Str("dir", dir).Msg("history flushed")
	return len(unflushed), nil
}

func (s *Service) recordChanges(updated []model.Payable, source string) {
	for _, after := range updated {
		before, ok := s.store.PayableByID(after.ID)
		if !ok {
			continue
		}
		if entry, changed := history.Diff(before, after, source, s.today); changed {
			s.history.Append(entry)
		}
	}
}

func (s *Service) nextPayableID() int {
	next := 1
	for _, p := range s.store.Payables() {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}
