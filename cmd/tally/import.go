package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/ofx"
	"github.com/spf13/cobra"
)

func (a *app) importCmd() *cobra.Command {
	var (
		category     string
		account      string
		dryRun       bool
		listAccounts bool
	)

	cmd := &cobra.Command{
		Use:   "import <files...>",
		Short: "Import entries from OFX/QFX bank statements",
		Long: `Import entries from OFX or QFX files exported from your bank. Credits become
income and debits become expenses, all filed under --category.`,
		Example: `  tally import ~/Downloads/releve_mars.ofx --category Autres
  tally import ~/Downloads/*.qfx --category courses --account 1234567890`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandFiles(args)
			if err != nil {
				return err
			}

			if listAccounts {
				return printAccounts(cmd, files)
			}

			if category == "" {
				return common.NewUserError("--category is required", common.ErrInvalidInput)
			}

			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				opts := ofx.Options{Category: resolveCategory(sess, category), Account: account}

				txns, err := parseFiles(cmd, files, opts)
				if err != nil {
					return err
				}
				if len(txns) == 0 {
					printLine(cmd, cli.FormatWarning("No transactions found to import"))
					return nil
				}

				if dryRun {
					return a.printImportPreview(cmd, txns)
				}

				added, err := sess.Ledger().Import(cmd.Context(), txns)
				if err != nil {
					return fmt.Errorf("failed to save imported transactions: %w", err)
				}

				printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Imported %d of %d transactions into %s",
					len(added), len(txns), opts.Category)))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category the imported entries are filed under")
	cmd.Flags().StringVar(&account, "account", "", "Only import this account id")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview import without saving")
	cmd.Flags().BoolVar(&listAccounts, "list-accounts", false, "List the account ids found in the files")

	return cmd
}

// expandFiles expands glob patterns, keeping plain paths that exist.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return nil, common.NewUserError("no files found to import", common.ErrNotFound)
	}
	return files, nil
}

func parseFiles(cmd *cobra.Command, files []string, opts ofx.Options) ([]model.Transaction, error) {
	parser := ofx.NewParser()
	bar := cli.NewProgressBar(len(files), cmd.ErrOrStderr(), "Reading statements...")

	var all []model.Transaction
	for _, path := range files {
		txns, err := parseFile(cmd.Context(), parser, path, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, txns...)

		if err := bar.Add(1); err != nil {
			slog.Debug("failed to update progress bar", "error", err)
		}
	}

	return all, nil
}

func parseFile(ctx context.Context, parser *ofx.Parser, path string, opts ofx.Options) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	txns, err := parser.ParseFile(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	slog.Debug("parsed statement", "file", filepath.Base(path), "transactions", len(txns))
	return txns, nil
}

func printAccounts(cmd *cobra.Command, files []string) error {
	parser := ofx.NewParser()
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		accounts, err := parser.GetAccounts(cmd.Context(), f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}

		for _, id := range accounts {
			printLine(cmd, fmt.Sprintf("%s\t%s", filepath.Base(path), id))
		}
	}
	return nil
}

func (a *app) printImportPreview(cmd *cobra.Command, txns []model.Transaction) error {
	printLine(cmd, cli.FormatTitle("Dry run: nothing was saved"))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "Date", "Type", "Category", "Description", "Amount")
	for _, tx := range txns {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", tx.Date, tx.Type, tx.Category, tx.Description,
			cli.FormatTransactionAmount(tx, a.settings.Currency))
	}
	return w.Flush()
}
