package main

import (
	"fmt"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/spf13/cobra"
)

func (a *app) resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data and restore the default categories",
		Long: `Reset removes every entry, every investment movement and every custom category,
then restores the default categories. This cannot be undone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				// Confirm with user unless --force is used
				if !force {
					printLine(cmd, cli.FormatWarning(fmt.Sprintf("This will delete %d entries and %d investment movements.",
						sess.Ledger().Len(), len(sess.Investments().List()))))
					yes, err := cli.Confirm(cmd.Context(), a.in, cmd.OutOrStdout(), "Are you sure you want to continue?")
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
					if !yes {
						printLine(cmd, "Reset canceled.")
						return nil
					}
				}

				if err := sess.ResetAll(cmd.Context()); err != nil {
					return fmt.Errorf("failed to reset data: %w", err)
				}

				printLine(cmd, cli.FormatSuccess("All data deleted, default categories restored"))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
