package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/report"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var hundred = decimal.NewFromInt(100)

func (a *app) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals, balance and spending per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				agg := a.aggregator(sess)
				printLine(cmd, a.renderSummary(agg.Summary(), agg.Model(), sess))
				return nil
			})
		},
	}
}

func (a *app) renderSummary(s report.Summary, m report.BalanceModel, sess *ledger.Session) string {
	cur := a.settings.Currency

	savingsLabel := "Savings"
	if m == report.TwoWay {
		savingsLabel = "Savings (not in balance)"
	}

	lines := []string{
		fmt.Sprintf("%-26s %s", "Income", cli.SuccessStyle.Render(cli.FormatMoney(s.Income, cur))),
		fmt.Sprintf("%-26s %s", "Expense", cli.ErrorStyle.Render(cli.FormatMoney(s.Expense, cur))),
		fmt.Sprintf("%-26s %s", savingsLabel, cli.TypeStyle(model.TypeSavings).Render(cli.FormatMoney(s.Savings, cur))),
		fmt.Sprintf("%-26s %s", "Balance", cli.FormatBalance(s.Balance, cur)),
	}

	if entries := sess.Investments().List(); len(entries) > 0 {
		lines = append(lines, fmt.Sprintf("%-26s %s", cli.BankIcon+" Invested", cli.FormatMoney(sess.Investments().Balance(), cur)))
	}

	out := cli.RenderBox(cli.WalletIcon+" Summary", strings.Join(lines, "\n"))

	if len(s.Breakdown) == 0 {
		return out + "\n" + cli.SubtleStyle.Render("No spending recorded yet.")
	}

	total := decimal.Zero
	for _, ct := range s.Breakdown {
		total = total.Add(ct.Total)
	}

	rows := make([]string, 0, len(s.Breakdown))
	for _, ct := range s.Breakdown {
		share := ct.Total.Div(total).Mul(hundred).Round(0)
		rows = append(rows, fmt.Sprintf("%-22s %14s  %3s%%", ct.Category.Label(), cli.FormatMoney(ct.Total, cur), share.String()))
	}

	return out + "\n" + cli.RenderBox(cli.ChartIcon+" Spending by category", strings.Join(rows, "\n"))
}
