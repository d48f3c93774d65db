package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/report"
	"github.com/Veraticus/tally/internal/storage"
	"github.com/spf13/cobra"
)

// openSession opens the configured database, migrates it and loads the ledger.
func (a *app) openSession(ctx context.Context) (*ledger.Session, error) {
	store, err := storage.NewSQLiteStore(a.settings.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	sess, err := ledger.Open(ctx, store, ledger.Options{
		DefaultColor: a.settings.DefaultColor,
		DefaultIcon:  a.settings.DefaultIcon,
		Savings:      a.settings.Savings,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return sess, nil
}

// withSession runs fn against an open session and closes it afterwards.
func (a *app) withSession(ctx context.Context, fn func(*ledger.Session) error) error {
	sess, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := sess.Close(); closeErr != nil {
			common.LogError(closeErr, "failed to close database", common.Fields{"path": a.settings.DatabasePath})
		}
	}()

	return fn(sess)
}

func (a *app) aggregator(sess *ledger.Session) *report.Aggregator {
	return report.NewAggregator(sess.Ledger(), sess.Categories(), a.settings.BalanceModel)
}

// resolveCategory maps a bare category name to the composite label of the first
// matching category. Unknown names are kept as typed.
func resolveCategory(sess *ledger.Session, input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if c, ok := sess.Categories().Find(input); ok {
		return c.Label()
	}
	return input
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, common.UserErrorf(common.ErrInvalidInput, "invalid id %q", s)
	}
	return id, nil
}

func printLine(cmd *cobra.Command, s string) {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}
