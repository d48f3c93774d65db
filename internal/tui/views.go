package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/filter"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/report"
)

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.Title.Render(cli.WalletIcon + " History"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(m.filterLine()))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(m.theme.Normal.Render("No transactions match the current filters."))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n\n")

	b.WriteString(m.totalsLine())
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.theme.StatusError.Render("Error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(m.theme.StatusInfo.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) filterLine() string {
	typ, month, category := filter.All, filter.All, filter.All
	if m.criteria.Type != "" {
		typ = string(m.criteria.Type)
	}
	if m.criteria.Month != 0 {
		month = time.Month(m.criteria.Month).String()
	}
	if m.criteria.Category != "" {
		category = m.criteria.Category
	}
	return fmt.Sprintf("Type: %s · Month: %s · Category: %s  (%d of %d)",
		typ, month, category, len(m.visible), len(m.all))
}

func (m Model) totalsLine() string {
	agg := report.NewAggregator(report.Transactions(m.visible), report.Categories(nil), m.balanceModel)

	return strings.Join([]string{
		m.theme.Income.Render("Income " + cli.FormatMoney(agg.TotalByType(model.TypeIncome), m.currency)),
		m.theme.Expense.Render("Expense " + cli.FormatMoney(agg.TotalByType(model.TypeExpense), m.currency)),
		m.theme.Savings.Render("Savings " + cli.FormatMoney(agg.TotalByType(model.TypeSavings), m.currency)),
		m.theme.Bold.Render("Balance " + cli.FormatMoney(agg.Balance(), m.currency)),
	}, "  ")
}
