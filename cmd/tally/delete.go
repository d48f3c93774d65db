package main

import (
	"fmt"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/spf13/cobra"
)

func (a *app) deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				tx, ok := sess.Ledger().Get(id)
				if !ok {
					return common.UserErrorf(common.ErrNotFound, "no transaction with id %d", id)
				}

				// Confirm with user unless --force is used
				if !force {
					question := fmt.Sprintf("Delete %s %s (%s, %s)?",
						tx.Type, cli.FormatTransactionAmount(tx, a.settings.Currency), tx.Category, tx.Date)
					yes, err := cli.Confirm(cmd.Context(), a.in, cmd.OutOrStdout(), question)
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
					if !yes {
						printLine(cmd, "Delete canceled.")
						return nil
					}
				}

				if err := sess.Ledger().Remove(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to delete transaction: %w", err)
				}

				printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Deleted transaction %d", id)))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
