package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/spf13/cobra"
)

func (a *app) editCmd() *cobra.Command {
	var (
		amount      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the amount or description of an entry",
		Long:  `Change the amount and/or description of an entry. Type, category and date stay as recorded.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			amountSet := cmd.Flags().Changed("amount")
			descriptionSet := cmd.Flags().Changed("description")
			if !amountSet && !descriptionSet {
				return common.NewUserError("must specify --amount or --description to edit", common.ErrInvalidInput)
			}

			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				current, ok := sess.Ledger().Get(id)
				if !ok {
					return common.UserErrorf(common.ErrNotFound, "no transaction with id %d", id)
				}

				newAmount, newDescription := current.Amount.String(), current.Description
				if amountSet {
					newAmount = amount
				}
				if descriptionSet {
					newDescription = description
				}

				edited, err := sess.Ledger().Edit(cmd.Context(), id, newAmount, newDescription)
				switch {
				case errors.Is(err, common.ErrInvalidInput):
					return common.UserErrorf(err, "invalid amount %q", amount)
				case err != nil:
					return fmt.Errorf("failed to edit transaction: %w", err)
				}

				printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Updated %d: %s %s",
					edited.ID, cli.FormatTransactionAmount(edited, a.settings.Currency), edited.Description)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "New amount")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")

	return cmd
}
