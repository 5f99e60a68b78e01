// Package snapshot decodes the JSON export the dashboard boots from: the
// reference date plus every collection, with banks and categories referenced
// by id so the decoded records share one pointer per referenced object.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AndreCode112/FinanceMartins/internal/model"
)

const dateLayout = "2006-01-02"

// Snapshot is the decoded export.
type Snapshot struct {
	Today        time.Time
	Banks        []model.Bank
	Categories   []model.PayableCategory
	Transactions []model.Transaction
	Payables     []model.Payable
	Events       []model.CalendarEvent
}

type rawSnapshot struct {
	Today        string           `json:"today"`
	Banks        []rawBank        `json:"banks"`
	Categories   []rawCategory    `json:"categories"`
	Transactions []rawTransaction `json:"transactions"`
	Payables     []rawPayable     `json:"payables"`
	Events       []rawEvent       `json:"events"`
}

type rawBank struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type rawCategory struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

type rawTransaction struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	BankID      *int        `json:"bank_id"`
	Type        string      `json:"type"`
	Amount      json.Number `json:"amount"`
	Date        string      `json:"date"`
}

type rawReceipt struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type rawPayable struct {
	ID                int         `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Type              string      `json:"type"`
	CategoryID        *int        `json:"category_id"`
	BankID            *int        `json:"bank_id"`
	Status            string      `json:"status"`
	Amount            json.Number `json:"amount"`
	DueDate           string      `json:"due_date"`
	PaymentDate       *string     `json:"payment_date"`
	PaymentNote       string      `json:"payment_note"`
	Receipt           *rawReceipt `json:"receipt"`
	InstallmentNumber int         `json:"installment_number"`
	InstallmentTotal  int         `json:"installment_total"`
	InstallmentGroup  string      `json:"installment_group"`
	IsRecurring       bool        `json:"is_recurring"`
}

type rawEvent struct {
	ID                    int     `json:"id"`
	Title                 string  `json:"title"`
	Description           string  `json:"description"`
	Location              string  `json:"location"`
	CreatorName           string  `json:"creator_name"`
	Status                string  `json:"status"`
	Importance            string  `json:"importance"`
	StartsAt              string  `json:"starts_at"`
	EndsAt                *string `json:"ends_at"`
	ReminderMinutesBefore int     `json:"reminder_minutes_before"`
	AllDay                bool    `json:"all_day"`
}

// Decode reads a snapshot from r, interpreting dates in the local timezone.
func Decode(r io.Reader) (*Snapshot, error) {
	return DecodeIn(r, time.Local)
}

// DecodeIn reads a snapshot from r, interpreting calendar dates in the given
// location.
func DecodeIn(r io.Reader, loc *time.Location) (*Snapshot, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw rawSnapshot
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	snap := &Snapshot{}

	if raw.Today != "" {
		today, err := time.ParseInLocation(dateLayout, raw.Today, loc)
		if err != nil {
			return nil, fmt.Errorf("parsing today %q: %w", raw.Today, err)
		}
		snap.Today = today
	}

	// Records share one pointer per referenced bank/category, so the maps
	// are built after the backing slices are fully populated.
	snap.Banks = make([]model.Bank, len(raw.Banks))
	banks := make(map[int]*model.Bank, len(raw.Banks))
	for i, b := range raw.Banks {
		snap.Banks[i] = model.Bank{ID: b.ID, Name: b.Name, Slug: b.Slug, Color: b.Color, Icon: model.NormalizeIcon(b.Icon)}
	}
	for i := range snap.Banks {
		banks[snap.Banks[i].ID] = &snap.Banks[i]
	}

	snap.Categories = make([]model.PayableCategory, len(raw.Categories))
	categories := make(map[int]*model.PayableCategory, len(raw.Categories))
	for i, c := range raw.Categories {
		snap.Categories[i] = model.PayableCategory{ID: c.ID, Name: c.Name, Slug: c.Slug, Color: c.Color}
	}
	for i := range snap.Categories {
		categories[snap.Categories[i].ID] = &snap.Categories[i]
	}

	for _, t := range raw.Transactions {
		tx, err := decodeTransaction(t, banks, loc)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", t.ID, err)
		}
		snap.Transactions = append(snap.Transactions, tx)
	}

	for _, p := range raw.Payables {
		payable, err := decodePayable(p, banks, categories, loc)
		if err != nil {
			return nil, fmt.Errorf("payable %d: %w", p.ID, err)
		}
		snap.Payables = append(snap.Payables, payable)
	}

	for _, e := range raw.Events {
		event, err := decodeEvent(e)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", e.ID, err)
		}
		snap.Events = append(snap.Events, event)
	}

	return snap, nil
}

// Load reads a snapshot file from disk, interpreting dates in the local
// timezone.
func Load(path string) (*Snapshot, error) {
	return LoadIn(path, time.Local)
}

// LoadIn reads a snapshot file from disk, interpreting calendar dates in the
// given location.
func LoadIn(path string, loc *time.Location) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()
	return DecodeIn(f, loc)
}

// Encode writes a snapshot to w in the same JSON shape Decode reads, so a
// mutated collection can be written back where it came from.
func Encode(w io.Writer, snap *Snapshot) error {
	raw := rawSnapshot{
		Banks:        make([]rawBank, 0, len(snap.Banks)),
		Categories:   make([]rawCategory, 0, len(snap.Categories)),
		Transactions: make([]rawTransaction, 0, len(snap.Transactions)),
		Payables:     make([]rawPayable, 0, len(snap.Payables)),
		Events:       make([]rawEvent, 0, len(snap.Events)),
	}
	if !snap.Today.IsZero() {
		raw.Today = snap.Today.Format(dateLayout)
	}
	for _, b := range snap.Banks {
		raw.Banks = append(raw.Banks, rawBank{ID: b.ID, Name: b.Name, Slug: b.Slug, Color: b.Color, Icon: b.Icon})
	}
	for _, c := range snap.Categories {
		raw.Categories = append(raw.Categories, rawCategory{ID: c.ID, Name: c.Name, Slug: c.Slug, Color: c.Color})
	}
	for _, t := range snap.Transactions {
		raw.Transactions = append(raw.Transactions, encodeTransaction(t))
	}
	for _, p := range snap.Payables {
		raw.Payables = append(raw.Payables, encodePayable(p))
	}
	for _, e := range snap.Events {
		raw.Events = append(raw.Events, encodeEvent(e))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// Save writes a snapshot file to disk.
func Save(path string, snap *Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := Encode(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func decodeTransaction(t rawTransaction, banks map[int]*model.Bank, loc *time.Location) (model.Transaction, error) {
	amount, err := parseAmount(t.Amount)
	if err != nil {
		return model.Transaction{}, err
	}
	date, err := time.ParseInLocation(dateLayout, t.Date, loc)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", t.Date, err)
	}
	return model.Transaction{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Bank:        lookupBank(banks, t.BankID),
		Type:        model.TransactionType(t.Type),
		Amount:      amount,
		Date:        date,
	}, nil
}

func decodePayable(p rawPayable, banks map[int]*model.Bank, categories map[int]*model.PayableCategory, loc *time.Location) (model.Payable, error) {
	amount, err := parseAmount(p.Amount)
	if err != nil {
		return model.Payable{}, err
	}
	dueDate, err := time.ParseInLocation(dateLayout, p.DueDate, loc)
	if err != nil {
		return model.Payable{}, fmt.Errorf("parsing due_date %q: %w", p.DueDate, err)
	}

	var paymentDate *time.Time
	if p.PaymentDate != nil && *p.PaymentDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, *p.PaymentDate, loc)
		if err != nil {
			return model.Payable{}, fmt.Errorf("parsing payment_date %q: %w", *p.PaymentDate, err)
		}
		paymentDate = &parsed
	}

	var receipt *model.Receipt
	if p.Receipt != nil {
		receipt = &model.Receipt{URL: p.Receipt.URL, Filename: p.Receipt.Filename}
	}

	var category *model.PayableCategory
	if p.CategoryID != nil {
		category = categories[*p.CategoryID]
	}

	return model.Payable{
		ID:                p.ID,
		Title:             p.Title,
		Description:       p.Description,
		Type:              model.PayableType(p.Type),
		Category:          category,
		Bank:              lookupBank(banks, p.BankID),
		Status:            model.PayableStatus(p.Status),
		Amount:            amount,
		DueDate:           dueDate,
		PaymentDate:       paymentDate,
		PaymentNote:       p.PaymentNote,
		Receipt:           receipt,
		InstallmentNumber: p.InstallmentNumber,
		InstallmentTotal:  p.InstallmentTotal,
		InstallmentGroup:  p.InstallmentGroup,
		IsRecurring:       p.IsRecurring,
	}, nil
}

func decodeEvent(e rawEvent) (model.CalendarEvent, error) {
	startsAt, err := time.Parse(time.RFC3339, e.StartsAt)
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("parsing starts_at %q: %w", e.StartsAt, err)
	}

	var endsAt *time.Time
	if e.EndsAt != nil && *e.EndsAt != "" {
		parsed, err := time.Parse(time.RFC3339, *e.EndsAt)
		if err != nil {
			return model.CalendarEvent{}, fmt.Errorf("parsing ends_at %q: %w", *e.EndsAt, err)
		}
		endsAt = &parsed
	}

	return model.CalendarEvent{
		ID:                    e.ID,
		Title:                 e.Title,
		Description:           e.Description,
		Location:              e.Location,
		CreatorName:           e.CreatorName,
		Status:                model.EventStatus(e.Status),
		Importance:            model.EventImportance(e.Importance),
		StartsAt:              startsAt,
		EndsAt:                endsAt,
		ReminderMinutesBefore: e.ReminderMinutesBefore,
		AllDay:                e.AllDay,
	}, nil
}

func encodeTransaction(t model.Transaction) rawTransaction {
	return rawTransaction{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		BankID:      bankID(t.Bank),
		Type:        string(t.Type),
		Amount:      json.Number(t.Amount.StringFixed(2)),
		Date:        t.Date.Format(dateLayout),
	}
}

func encodePayable(p model.Payable) rawPayable {
	raw := rawPayable{
		ID:                p.ID,
		Title:             p.Title,
		Description:       p.Description,
		Type:              string(p.Type),
		BankID:            bankID(p.Bank),
		Status:            string(p.Status),
		Amount:            json.Number(p.Amount.StringFixed(2)),
		DueDate:           p.DueDate.Format(dateLayout),
		PaymentNote:       p.PaymentNote,
		InstallmentNumber: p.InstallmentNumber,
		InstallmentTotal:  p.InstallmentTotal,
		InstallmentGroup:  p.InstallmentGroup,
		IsRecurring:       p.IsRecurring,
	}
	if p.Category != nil {
		id := p.Category.ID
		raw.CategoryID = &id
	}
	if p.PaymentDate != nil {
		date := p.PaymentDate.Format(dateLayout)
		raw.PaymentDate = &date
	}
	if p.Receipt != nil {
		raw.Receipt = &rawReceipt{URL: p.Receipt.URL, Filename: p.Receipt.Filename}
	}
	return raw
}

func encodeEvent(e model.CalendarEvent) rawEvent {
	raw := rawEvent{
		ID:                    e.ID,
		Title:                 e.Title,
		Description:           e.Description,
		Location:              e.Location,
		CreatorName:           e.CreatorName,
		Status:                string(e.Status),
		Importance:            string(e.Importance),
		StartsAt:              e.StartsAt.Format(time.RFC3339),
		ReminderMinutesBefore: e.ReminderMinutesBefore,
		AllDay:                e.AllDay,
	}
	if e.EndsAt != nil {
		ends := e.EndsAt.Format(time.RFC3339)
		raw.EndsAt = &ends
	}
	return raw
}

func bankID(b *model.Bank) *int {
	if b == nil {
		return nil
	}
	id := b.ID
	return &id
}

func lookupBank(banks map[int]*model.Bank, id *int) *model.Bank {
	if id == nil {
		return nil
	}
	return banks[*id]
}

func parseAmount(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", n, err)
	}
	return amount, nil
}
