package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) investCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invest",
		Short: "Track money moved to and from investments",
		Long: `A small ledger of deposits and withdrawals, kept apart from the budget.
Its balance is the sum of deposits minus the sum of withdrawals.`,
	}

	cmd.AddCommand(a.listInvestmentsCmd())
	cmd.AddCommand(a.investMovementCmd(model.InvestmentDeposit, "Record money put into investments"))
	cmd.AddCommand(a.investMovementCmd(model.InvestmentWithdraw, "Record money taken out of investments"))

	return cmd
}

func (a *app) listInvestmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List investment movements and the invested balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				entries := sess.Investments().List()
				if len(entries) == 0 {
					printLine(cmd, cli.SubtleStyle.Render("No investment movements yet."))
					return nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "ID", "Date", "Type", "Description", "Amount")
				for _, e := range entries {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.Type, e.Description,
						cli.FormatMoney(e.Signed(), a.settings.Currency))
				}
				if err := w.Flush(); err != nil {
					return fmt.Errorf("failed to write investments: %w", err)
				}

				printLine(cmd, cli.BoldStyle.Render(cli.BankIcon+" Invested: "+cli.FormatMoney(sess.Investments().Balance(), a.settings.Currency)))
				return nil
			})
		},
	}
}

func (a *app) investMovementCmd(kind model.InvestmentType, short string) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   string(kind) + " <amount>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				entry, ok, err := sess.Investments().Add(cmd.Context(), kind, args[0], description)
				if err != nil {
					return fmt.Errorf("failed to save investment movement: %w", err)
				}
				if !ok {
					return common.UserErrorf(common.ErrInvalidInput, "invalid amount %q", args[0])
				}

				printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s, invested balance %s",
					entry.Type,
					cli.FormatMoney(entry.Amount, a.settings.Currency),
					cli.FormatMoney(sess.Investments().Balance(), a.settings.Currency))))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Free-text note")

	return cmd
}
