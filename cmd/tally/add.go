package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) addCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <type> <amount> <category>",
		Short: "Record an expense, income or savings entry",
		Long: `Record a new entry dated today. The type is expense, income or savings.
The amount accepts a dot or a comma as decimal separator. A category name such as
"courses" is stored as the full label of the matching category ("🛒 Courses");
an unknown name is stored as typed.`,
		Example: `  tally add expense 12,50 courses -d "Marché"
  tally add income 1800 Salaire`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				return a.runAdd(cmd, sess, args, description)
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Free-text note")

	return cmd
}

func (a *app) runAdd(cmd *cobra.Command, sess *ledger.Session, args []string, description string) error {
	typ, err := model.ParseTransactionType(args[0])
	if err != nil {
		return common.UserErrorf(common.ErrInvalidInput, "unknown type %q, use expense, income or savings", args[0])
	}
	if typ == model.TypeSavings && !sess.Ledger().SavingsEnabled() {
		return common.NewUserError("savings entries are disabled by ledger.savings", common.ErrInvalidInput)
	}

	amount, err := model.ParseAmount(args[1])
	if err != nil || amount.IsZero() {
		return common.UserErrorf(common.ErrInvalidInput, "invalid amount %q", args[1])
	}

	category := resolveCategory(sess, strings.Join(args[2:], " "))
	if category == "" {
		return common.NewUserError("category must not be empty", common.ErrInvalidInput)
	}

	tx, ok, err := sess.Ledger().Add(cmd.Context(), ledger.NewTransaction{
		Type:        typ,
		Amount:      args[1],
		Category:    category,
		Description: description,
	})
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	if !ok {
		return common.NewUserError("transaction rejected", common.ErrInvalidInput)
	}

	printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Added %s %s to %s (id %d)",
		tx.Type, cli.FormatTransactionAmount(tx, a.settings.Currency), tx.Category, tx.ID)))
	return nil
}
