// Package filter derives the history view of a ledger by type, category and month.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/tally/internal/model"
)

// All is the sentinel that disables a criterion.
const All = "all"

// Criteria selects transactions. A zero field matches everything.
type Criteria struct {
	// Type must equal the transaction type exactly.
	Type model.TransactionType
	// Category is compared, trimmed and case-insensitively, against the raw label
	// stored on the transaction.
	Category string
	// Month is the calendar month, 1 to 12.
	Month int
}

// ParseCriteria builds Criteria from user input where "all" or "" disables a field.
func ParseCriteria(typ, category, month string) (Criteria, error) {
	var c Criteria

	if !IsAll(typ) {
		t, err := model.ParseTransactionType(typ)
		if err != nil {
			return Criteria{}, err
		}
		c.Type = t
	}

	if !IsAll(category) {
		c.Category = category
	}

	if !IsAll(month) {
		m, err := strconv.Atoi(strings.TrimSpace(month))
		if err != nil || m < 1 || m > 12 {
			return Criteria{}, fmt.Errorf("month must be between 1 and 12, got %q", month)
		}
		c.Month = m
	}

	return c, nil
}

// IsZero reports whether c matches every transaction.
func (c Criteria) IsZero() bool {
	return c.Type == "" && c.Category == "" && c.Month == 0
}

// Match reports whether txn satisfies every criterion.
func (c Criteria) Match(txn model.Transaction) bool {
	if c.Type != "" && txn.Type != c.Type {
		return false
	}
	if c.Category != "" && foldLabel(txn.Category) != foldLabel(c.Category) {
		return false
	}
	if c.Month != 0 {
		m, ok := MonthOf(txn.Date)
		if !ok || m != c.Month {
			return false
		}
	}
	return true
}

// Apply returns the transactions matching c, in their original order.
func Apply(txns []model.Transaction, c Criteria) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if c.Match(txn) {
			out = append(out, txn)
		}
	}
	return out
}

// MonthOf extracts the month from a day/month/year date. ok is false for anything
// that does not have three numeric slash-separated segments with a plausible day
// and month.
func MonthOf(date string) (month int, ok bool) {
	parts := strings.Split(strings.TrimSpace(date), "/")
	if len(parts) != 3 {
		return 0, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return 0, false
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, false
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return 0, false
	}

	return month, true
}

func foldLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsAll reports whether s is the "all" sentinel or empty.
func IsAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, All)
}
