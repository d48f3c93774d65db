// Package report computes totals and per-category breakdowns over a ledger snapshot.
// Every figure is recomputed from the sources on each call; nothing is cached.
package report

import (
	"fmt"
	"strings"

	"github.com/Veraticus/tally/internal/label"
	"github.com/Veraticus/tally/internal/model"
	"github.com/shopspring/decimal"
)

// BalanceModel selects how savings take part in the balance and breakdowns.
type BalanceModel string

const (
	// ThreeWay nets savings against the balance and counts them in breakdowns.
	ThreeWay BalanceModel = "three-way"
	// TwoWay ignores savings in the balance and breakdowns.
	TwoWay BalanceModel = "two-way"
)

// ParseBalanceModel converts a configured model name.
func ParseBalanceModel(s string) (BalanceModel, error) {
	switch m := BalanceModel(strings.ToLower(strings.TrimSpace(s))); m {
	case ThreeWay, TwoWay:
		return m, nil
	case "":
		return ThreeWay, nil
	default:
		return "", fmt.Errorf("unknown balance model %q", s)
	}
}

// TransactionSource provides the current ledger snapshot.
type TransactionSource interface {
	List() []model.Transaction
}

// CategorySource provides the current category snapshot.
type CategorySource interface {
	List() []model.Category
}

// Transactions adapts a plain slice, such as a filtered view, to TransactionSource.
type Transactions []model.Transaction

// List returns the slice itself.
func (t Transactions) List() []model.Transaction {
	return t
}

// Categories adapts a plain slice to CategorySource.
type Categories []model.Category

// List returns the slice itself.
func (c Categories) List() []model.Category {
	return c
}

// CategoryTotal is the summed spending attributed to one category.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
}

// Summary gathers the figures shown on the dashboard.
type Summary struct {
	Income    decimal.Decimal
	Expense   decimal.Decimal
	Savings   decimal.Decimal
	Balance   decimal.Decimal
	Breakdown []CategoryTotal
}

// Aggregator computes totals over a transaction source and a category source.
type Aggregator struct {
	transactions TransactionSource
	categories   CategorySource
	model        BalanceModel
}

// NewAggregator creates an aggregator. An empty model means ThreeWay.
func NewAggregator(transactions TransactionSource, categories CategorySource, m BalanceModel) *Aggregator {
	if m == "" {
		m = ThreeWay
	}
	return &Aggregator{
		transactions: transactions,
		categories:   categories,
		model:        m,
	}
}

// Model returns the balance model in effect.
func (a *Aggregator) Model() BalanceModel {
	return a.model
}

// TotalByType sums the amounts of every transaction of type t.
func (a *Aggregator) TotalByType(t model.TransactionType) decimal.Decimal {
	return totalByType(a.transactions.List(), t)
}

// Balance is income minus expense, minus savings as well under ThreeWay.
func (a *Aggregator) Balance() decimal.Decimal {
	txns := a.transactions.List()
	return a.balance(totalByType(txns, model.TypeIncome), totalByType(txns, model.TypeExpense), totalByType(txns, model.TypeSavings))
}

// UsedCategories returns, in store order, the categories with a positive total.
func (a *Aggregator) UsedCategories() []model.Category {
	breakdown := a.Breakdown()
	used := make([]model.Category, len(breakdown))
	for i, ct := range breakdown {
		used[i] = ct.Category
	}
	return used
}

// ExpenseByCategory returns the totals positionally aligned with UsedCategories.
func (a *Aggregator) ExpenseByCategory() []decimal.Decimal {
	breakdown := a.Breakdown()
	totals := make([]decimal.Decimal, len(breakdown))
	for i, ct := range breakdown {
		totals[i] = ct.Total
	}
	return totals
}

// Breakdown attributes expense transactions (and savings under ThreeWay) to
// categories by normalized label and keeps the categories whose total is positive.
// When several categories share a normalized name, the first one in store order
// receives the matching transactions.
func (a *Aggregator) Breakdown() []CategoryTotal {
	return a.breakdown(a.transactions.List(), a.categories.List())
}

// Summary computes every dashboard figure from one snapshot.
func (a *Aggregator) Summary() Summary {
	txns := a.transactions.List()
	income := totalByType(txns, model.TypeIncome)
	expense := totalByType(txns, model.TypeExpense)
	savings := totalByType(txns, model.TypeSavings)

	return Summary{
		Income:    income,
		Expense:   expense,
		Savings:   savings,
		Balance:   a.balance(income, expense, savings),
		Breakdown: a.breakdown(txns, a.categories.List()),
	}
}

func (a *Aggregator) balance(income, expense, savings decimal.Decimal) decimal.Decimal {
	if a.model == TwoWay {
		return income.Sub(expense)
	}
	return income.Sub(expense.Add(savings))
}

func (a *Aggregator) counts(t model.TransactionType) bool {
	switch t {
	case model.TypeExpense:
		return true
	case model.TypeSavings:
		return a.model == ThreeWay
	default:
		return false
	}
}

func (a *Aggregator) breakdown(txns []model.Transaction, categories []model.Category) []CategoryTotal {
	owner := make(map[string]int, len(categories))
	for i, c := range categories {
		key := label.Normalize(c.Name)
		if key == "" {
			continue
		}
		if _, taken := owner[key]; !taken {
			owner[key] = i
		}
	}

	totals := make([]decimal.Decimal, len(categories))
	for _, t := range txns {
		if !a.counts(t.Type) {
			continue
		}
		if i, ok := owner[label.Normalize(t.Category)]; ok {
			totals[i] = totals[i].Add(t.Amount)
		}
	}

	var out []CategoryTotal
	for i, c := range categories {
		if totals[i].IsPositive() {
			out = append(out, CategoryTotal{Category: c, Total: totals[i]})
		}
	}
	return out
}

func totalByType(txns []model.Transaction, t model.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if txn.Type == t {
			total = total.Add(txn.Amount)
		}
	}
	return total
}
