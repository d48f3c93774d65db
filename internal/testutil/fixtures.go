package testutil

import (
	"github.com/Veraticus/tally/internal/model"
	"github.com/shopspring/decimal"
)

// Expense builds an undated expense for seeding.
func Expense(amount, category string) model.Transaction {
	return entry(model.TypeExpense, amount, category)
}

// Income builds an undated income entry for seeding.
func Income(amount, category string) model.Transaction {
	return entry(model.TypeIncome, amount, category)
}

// Savings builds an undated savings entry for seeding.
func Savings(amount, category string) model.Transaction {
	return entry(model.TypeSavings, amount, category)
}

// On returns tx dated date (day/month/year).
func On(tx model.Transaction, date string) model.Transaction {
	tx.Date = date
	return tx
}

func entry(t model.TransactionType, amount, category string) model.Transaction {
	return model.Transaction{
		Type:     t,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
	}
}
