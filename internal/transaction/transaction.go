package transaction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeExpense Type = "expense"
	TypeIncome  Type = "income"
)

// ErrNotFound is returned when a transaction does not exist.
var ErrNotFound = errors.New("transaction not found")

// Transaction represents a single recorded income or expense event.
type Transaction struct {
	ID            int64
	Description   string
	Amount        decimal.Decimal
	CategoryID    *int64
	Type          Type
	Date          time.Time
	PaymentMethod string
	Notes         string
	Category      *Category // Loaded via JOIN
	CreatedAt     time.Time
}

// Category carries the joined category columns on a listed transaction.
type Category struct {
	Name string
	Type Type
}
