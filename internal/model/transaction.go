package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day/month/year layout used for every stored date.
const DateLayout = "02/01/2006"

// TransactionType indicates whether a transaction is income, expense, or savings.
type TransactionType string

const (
	// TypeExpense represents money spent.
	TypeExpense TransactionType = "expense"
	// TypeIncome represents money received.
	TypeIncome TransactionType = "income"
	// TypeSavings represents money set aside; only present when savings are enabled.
	TypeSavings TransactionType = "savings"
)

// TransactionTypes lists every known type in display order.
var TransactionTypes = []TransactionType{TypeExpense, TypeIncome, TypeSavings}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeExpense, TypeIncome, TypeSavings:
		return true
	default:
		return false
	}
}

// ParseTransactionType converts user input into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
	return t, nil
}

// Transaction represents a single ledger entry.
// Category holds a bare name or a composite "<icon> <name>" label, not a reference.
type Transaction struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	ID          int64           `json:"id"`
}

// FormatDate renders t in the stored day/month/year layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseAmount parses a user-entered amount. Both dot and comma are accepted as the
// decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a number: %w", s, err)
	}
	return d, nil
}
