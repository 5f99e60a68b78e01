// Package history records payable status changes for auditing: who-ever
// flipped a status (manually or through a bulk action), what changed, and
// when. Entries persist as CSV next to the snapshot.
package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/AndreCode112/FinanceMartins/internal/model"
)

// Sources identify what triggered a status change.
const (
	SourceManual          = "manual"
	SourceBulkMarkPaid    = "bulk_mark_paid"
	SourceBulkMarkPending = "bulk_mark_pending"
	SourceBulkPayUntil    = "bulk_pay_until"
	SourceBulkPayAll      = "bulk_pay_all"
	SourceBulkReopenAll   = "bulk_reopen_all"
)

// Entry is one recorded status change.
type Entry struct {
	PayableID  int
	Title      string
	PrevStatus model.PayableStatus
	NewStatus  model.PayableStatus
	PrevNote   string
	NewNote    string
	Source     string
	ChangedAt  time.Time
}

// Header is the CSV header for history.csv.
const Header = "changed_at,payable_id,title,prev_status,new_status,prev_note,new_note,source"

const (
	numFields     = 8
	historyFile   = "history.csv"
	colChangedAt  = 0
	colPayableID  = 1
	colTitle      = 2
	colPrevStatus = 3
	colNewStatus  = 4
	colPrevNote   = 5
	colNewNote    = 6
	colSource     = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colChangedAt] = e.ChangedAt.Format(time.RFC3339)
	row[colPayableID] = strconv.Itoa(e.PayableID)
	row[colTitle] = e.Title
	row[colPrevStatus] = string(e.PrevStatus)
	row[colNewStatus] = string(e.NewStatus)
	row[colPrevNote] = e.PrevNote
	row[colNewNote] = e.NewNote
	row[colSource] = e.Source
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colChangedAt])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing changed_at %q: %w", record[colChangedAt], err)
	}
	id, err := strconv.Atoi(record[colPayableID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing payable_id %q: %w", record[colPayableID], err)
	}

	return Entry{
		PayableID:  id,
		Title:      record[colTitle],
		PrevStatus: model.PayableStatus(record[colPrevStatus]),
		NewStatus:  model.PayableStatus(record[colNewStatus]),
		PrevNote:   record[colPrevNote],
		NewNote:    record[colNewNote],
		Source:     record[colSource],
		ChangedAt:  ts,
	}, nil
}

// Diff compares a payable before and after a mutation and produces an entry
// when the status or payment note actually changed. No-op mutations return
// false.
func Diff(before, after model.Payable, source string, at time.Time) (Entry, bool) {
	if before.Status == after.Status && before.PaymentNote == after.PaymentNote {
		return Entry{}, false
	}
	return Entry{
		PayableID:  after.ID,
		Title:      after.Title,
		PrevStatus: before.Status,
		NewStatus:  after.Status,
		PrevNote:   before.PaymentNote,
		NewNote:    after.PaymentNote,
		Source:     source,
		ChangedAt:  at,
	}, true
}

// Log accumulates entries for the session, newest last.
type Log struct {
	entries []Entry
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds entries to the log.
func (l *Log) Append(entries ...Entry) {
	l.entries = append(l.entries, entries...)
}

// All returns a copy of every entry, oldest first.
func (l *Log) All() []Entry {
	return append([]Entry(nil), l.entries...)
}

// ForPayable returns the entries for one payable, oldest first.
func (l *Log) ForPayable(id int) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.PayableID == id {
			out = append(out, e)
		}
	}
	return out
}

// Append writes entries to <dir>/history.csv, creating the file and header if
// needed.
func Append(dir string, entries []Entry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	path := filepath.Join(dir, historyFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dir>/history.csv. Returns nil if the file
// does not exist.
func Read(dir string) ([]Entry, error) {
	path := filepath.Join(dir, historyFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history log: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	var entries []Entry
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading history line %d: %w", line, err)
		}
		line++
		if line == 1 && record[colChangedAt] == "changed_at" {
			continue
		}
		entry, err := UnmarshalEntry(record)
		if err != nil {
			return nil, fmt.Errorf("history line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
