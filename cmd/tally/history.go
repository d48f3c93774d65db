package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/filter"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/tui"
	"github.com/Veraticus/tally/internal/tui/themes"
	"github.com/spf13/cobra"
)

func (a *app) historyCmd() *cobra.Command {
	var (
		typ         string
		category    string
		month       string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"ls"},
		Short:   "List recorded entries",
		Long: `List recorded entries, optionally filtered by type, category and month.
Use "all" to disable a filter. --interactive opens a browser where the filters
can be cycled and entries deleted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				if !filter.IsAll(category) {
					category = resolveCategory(sess, category)
				}

				criteria, err := filter.ParseCriteria(typ, category, month)
				if err != nil {
					return common.NewUserError(err.Error(), common.ErrInvalidInput)
				}

				if interactive {
					return tui.Run(cmd.Context(), tui.Config{
						Icons:          sess.Categories(),
						Remover:        sess.Ledger(),
						Theme:          themes.GetTheme(a.settings.Theme),
						Currency:       a.settings.Currency,
						BalanceModel:   a.settings.BalanceModel,
						Transactions:   sess.Ledger().List(),
						Criteria:       criteria,
						DisableSavings: !sess.Ledger().SavingsEnabled(),
					})
				}

				return a.printHistory(cmd, sess, criteria)
			})
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", filter.All, "Filter by type (expense, income, savings, all)")
	cmd.Flags().StringVarP(&category, "category", "c", filter.All, "Filter by category")
	cmd.Flags().StringVarP(&month, "month", "m", filter.All, "Filter by month (1-12, all)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the history interactively")

	return cmd
}

func (a *app) printHistory(cmd *cobra.Command, sess *ledger.Session, criteria filter.Criteria) error {
	txns := filter.Apply(sess.Ledger().List(), criteria)
	if len(txns) == 0 {
		printLine(cmd, cli.SubtleStyle.Render("No transactions found."))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", "ID", "Date", "Type", "Category", "Description", "Amount")
	for _, tx := range txns {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			tx.ID,
			tx.Date,
			tx.Type,
			cli.CategoryCell(sess.Categories().IconFor(tx.Category), tx.Category),
			tx.Description,
			cli.FormatTransactionAmount(tx, a.settings.Currency))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}

	printLine(cmd, cli.SubtleStyle.Render(fmt.Sprintf("%d of %d entries", len(txns), sess.Ledger().Len())))
	return nil
}
