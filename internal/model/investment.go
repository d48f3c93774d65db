package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// InvestmentType is the direction of an investment movement.
type InvestmentType string

const (
	// InvestmentDeposit adds to the invested balance.
	InvestmentDeposit InvestmentType = "deposit"
	// InvestmentWithdraw removes from the invested balance.
	InvestmentWithdraw InvestmentType = "withdraw"
)

// ParseInvestmentType converts user input into an InvestmentType.
func ParseInvestmentType(s string) (InvestmentType, error) {
	t := InvestmentType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case InvestmentDeposit, InvestmentWithdraw:
		return t, nil
	default:
		return "", fmt.Errorf("unknown investment type %q", s)
	}
}

// InvestmentEntry is one movement of the investment mini-ledger.
type InvestmentEntry struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        InvestmentType  `json:"type"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	ID          int64           `json:"id"`
}

// Signed returns the amount with deposits positive and withdrawals negative.
func (e InvestmentEntry) Signed() decimal.Decimal {
	if e.Type == InvestmentWithdraw {
		return e.Amount.Neg()
	}
	return e.Amount
}
