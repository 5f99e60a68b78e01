package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType splits transactions into the two summary axes.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single bank movement. Records are replaced wholesale on
// edit, never mutated in place.
type Transaction struct {
	ID          int
	Title       string
	Description string
	Bank        *Bank
	Type        TransactionType
	Amount      decimal.Decimal
	Date        time.Time // calendar date, time-of-day ignored
}
