package cli

import (
	"strings"

	"github.com/Veraticus/tally/internal/model"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with two fraction digits and a currency suffix.
func FormatMoney(amount decimal.Decimal, currency string) string {
	s := amount.StringFixed(2)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatTransactionAmount renders a ledger amount the way history lists show it:
// "+" for money in and "-" for money out. Income counts as money in and every
// other type as money out, so a negative expense such as a refund shows "+".
func FormatTransactionAmount(tx model.Transaction, currency string) string {
	in := tx.Amount.IsNegative()
	if tx.Type == model.TypeIncome {
		in = !in
	}

	sign := "-"
	if in {
		sign = "+"
	}
	return sign + FormatMoney(tx.Amount.Abs(), currency)
}

// FormatBalance renders a balance colored by its sign.
func FormatBalance(balance decimal.Decimal, currency string) string {
	text := FormatMoney(balance, currency)
	if balance.IsNegative() {
		return ErrorStyle.Render(text)
	}
	return SuccessStyle.Render(text)
}

// CategoryCell prefixes a category label with its icon unless the label already
// starts with it.
func CategoryCell(icon, label string) string {
	if icon == "" || strings.HasPrefix(label, icon) {
		return label
	}
	return icon + " " + label
}
