// Package store owns the in-memory record collections behind the dashboard.
// All mutation funnels through merge/replace/delete operations so future sync
// channels have a single place to hook into; last writer wins on id clashes.
package store

import (
	"fmt"
	"sort"

	"github.com/AndreCode112/FinanceMartins/internal/model"
)

// Store holds the session's record collections. Not safe for concurrent use;
// the dashboard runs a single logical thread of control.
type Store struct {
	transactions []model.Transaction
	payables     []model.Payable
	banks        []model.Bank
	categories   []model.PayableCategory
	events       []model.CalendarEvent
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// DefaultBanks are seeded into a fresh store so the bank facet is usable
// before the user registers anything.
func DefaultBanks() []model.Bank {
	return []model.Bank{
		{ID: 1, Name: "Nubank", Color: "#8A05BE", Icon: "ph-credit-card"},
		{ID: 2, Name: "Itau", Color: "#EC7000", Icon: "ph-bank"},
		{ID: 3, Name: "Inter", Color: "#FF7A00", Icon: "ph-wallet"},
	}
}

// EnsureDefaultBanks seeds the default banks, but only into an empty bank
// collection.
func (s *Store) EnsureDefaultBanks() {
	if len(s.banks) > 0 {
		return
	}
	s.ReplaceBanks(DefaultBanks())
}

// ReplaceTransactions swaps the whole transaction collection.
func (s *Store) ReplaceTransactions(transactions []model.Transaction) {
	s.transactions = append([]model.Transaction(nil), transactions...)
}

// ReplacePayables swaps the whole payable collection.
func (s *Store) ReplacePayables(payables []model.Payable) {
	s.payables = append([]model.Payable(nil), payables...)
}

// ReplaceBanks swaps the bank collection and normalizes it (canonical icons,
// name order).
func (s *Store) ReplaceBanks(banks []model.Bank) {
	s.banks = append([]model.Bank(nil), banks...)
	s.syncBanks()
}

// ReplaceCategories swaps the category collection, keeping name order.
func (s *Store) ReplaceCategories(categories []model.PayableCategory) {
	s.categories = append([]model.PayableCategory(nil), categories...)
	s.syncCategories()
}

// ReplaceEvents swaps the event collection.
func (s *Store) ReplaceEvents(events []model.CalendarEvent) {
	s.events = append([]model.CalendarEvent(nil), events...)
}

// Transactions returns a copy of the transaction collection.
func (s *Store) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), s.transactions...)
}

// Payables returns a copy of the payable collection.
func (s *Store) Payables() []model.Payable {
	return append([]model.Payable(nil), s.payables...)
}

// Banks returns a copy of the bank collection, sorted by name.
func (s *Store) Banks() []model.Bank {
	return append([]model.Bank(nil), s.banks...)
}

// Categories returns a copy of the category collection, sorted by name.
func (s *Store) Categories() []model.PayableCategory {
	return append([]model.PayableCategory(nil), s.categories...)
}

// Events returns a copy of the event collection.
func (s *Store) Events() []model.CalendarEvent {
	return append([]model.CalendarEvent(nil), s.events...)
}

// PayableByID returns a payable by id.
func (s *Store) PayableByID(id int) (model.Payable, bool) {
	for _, p := range s.payables {
		if p.ID == id {
			return p, true
		}
	}
	return model.Payable{}, false
}

// HasBank reports whether a bank id exists.
func (s *Store) HasBank(id int) bool {
	for _, b := range s.banks {
		if b.ID == id {
			return true
		}
	}
	return false
}

// HasCategory reports whether a category id exists.
func (s *Store) HasCategory(id int) bool {
	for _, c := range s.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// UpsertTransaction replaces a transaction by id, or appends it.
func (s *Store) UpsertTransaction(tx model.Transaction) {
	for i, existing := range s.transactions {
		if existing.ID == tx.ID {
			s.transactions[i] = tx
			return
		}
	}
	s.transactions = append(s.transactions, tx)
}

// DeleteTransaction removes a transaction by id.
func (s *Store) DeleteTransaction(id int) {
	s.transactions = deleteByID(s.transactions, func(t model.Transaction) int { return t.ID }, id)
}

// UpsertPayables merges server-returned payables by id: existing records are
// replaced in place, new ones appended. Last writer wins.
func (s *Store) UpsertPayables(updated []model.Payable) {
	for _, u := range updated {
		replaced := false
		for i, existing := range s.payables {
			if existing.ID == u.ID {
				s.payables[i] = u
				replaced = true
				break
			}
		}
		if !replaced {
			s.payables = append(s.payables, u)
		}
	}
}

// DeletePayables removes all payables whose ids are listed.
func (s *Store) DeletePayables(ids []int) {
	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := s.payables[:0]
	for _, p := range s.payables {
		if !drop[p.ID] {
			kept = append(kept, p)
		}
	}
	s.payables = kept
}

// UpsertEvent replaces an event by id, or appends it.
func (s *Store) UpsertEvent(event model.CalendarEvent) {
	for i, existing := range s.events {
		if existing.ID == event.ID {
			s.events[i] = event
			return
		}
	}
	s.events = append(s.events, event)
}

// DeleteEvent removes an event by id.
func (s *Store) DeleteEvent(id int) {
	s.events = deleteByID(s.events, func(e model.CalendarEvent) int { return e.ID }, id)
}

// UpsertBank replaces a bank by id, or appends it, then re-normalizes the
// collection.
func (s *Store) UpsertBank(bank model.Bank) {
	for i, existing := range s.banks {
		if existing.ID == bank.ID {
			s.banks[i] = bank
			s.syncBanks()
			return
		}
	}
	s.banks = append(s.banks, bank)
	s.syncBanks()
}

// DeleteBank removes a bank. Banks referenced by transactions are protected;
// payable references are nulled instead.
func (s *Store) DeleteBank(id int) error {
	for _, tx := range s.transactions {
		if tx.Bank != nil && tx.Bank.ID == id {
			return fmt.Errorf("bank %d has linked transactions", id)
		}
	}
	s.banks = deleteByID(s.banks, func(b model.Bank) int { return b.ID }, id)
	for i, p := range s.payables {
		if p.Bank != nil && p.Bank.ID == id {
			s.payables[i].Bank = nil
		}
	}
	return nil
}

// UpsertCategory replaces a category by id, or appends it.
func (s *Store) UpsertCategory(category model.PayableCategory) {
	for i, existing := range s.categories {
		if existing.ID == category.ID {
			s.categories[i] = category
			s.syncCategories()
			return
		}
	}
	s.categories = append(s.categories, category)
	s.syncCategories()
}

// DeleteCategory removes a category and nulls the reference on dependent
// payables; the payables themselves survive untouched.
func (s *Store) DeleteCategory(id int) {
	s.categories = deleteByID(s.categories, func(c model.PayableCategory) int { return c.ID }, id)
	for i, p := range s.payables {
		if p.Category != nil && p.Category.ID == id {
			s.payables[i].Category = nil
		}
	}
}

func (s *Store) syncBanks() {
	for i := range s.banks {
		s.banks[i].Icon = model.NormalizeIcon(s.banks[i].Icon)
	}
	sort.SliceStable(s.banks, func(i, j int) bool {
		return s.banks[i].Name < s.banks[j].Name
	})
}

func (s *Store) syncCategories() {
	sort.SliceStable(s.categories, func(i, j int) bool {
		return s.categories[i].Name < s.categories[j].Name
	})
}

func deleteByID[T any](items []T, id func(T) int, target int) []T {
	kept := items[:0]
	for _, item := range items {
		if id(item) != target {
			kept = append(kept, item)
		}
	}
	return kept
}
