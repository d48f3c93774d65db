package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/spf13/cobra"
)

func (a *app) categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, add and remove the categories entries are filed under, or restore the defaults.`,
	}

	cmd.AddCommand(a.listCategoriesCmd())
	cmd.AddCommand(a.addCategoryCmd())
	cmd.AddCommand(a.removeCategoryCmd())
	cmd.AddCommand(a.resetCategoriesCmd())

	return cmd
}

func (a *app) listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				categories := sess.Categories().List()
				if len(categories) == 0 {
					printLine(cmd, cli.SubtleStyle.Render("No categories. Use 'tally categories add' or 'tally categories reset'."))
					return nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "%s\t%s\t%s\n", "Icon", "Name", "Color")
				fmt.Fprintf(w, "%s\t%s\t%s\n", strings.Repeat("-", 4), strings.Repeat("-", 20), strings.Repeat("-", 7))
				for _, c := range categories {
					fmt.Fprintf(w, "%s\t%s\t%s\n", c.Icon, c.Name, c.Color)
				}
				return w.Flush()
			})
		},
	}
}

func (a *app) addCategoryCmd() *cobra.Command {
	var icon, color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				c, ok, err := sess.Categories().Add(cmd.Context(), strings.Join(args, " "), icon, color)
				if err != nil {
					return fmt.Errorf("failed to save category: %w", err)
				}
				if !ok {
					return common.NewUserError("category name must not be empty", common.ErrInvalidInput)
				}

				printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Added category %s (%s)", c.Label(), c.Color)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "Category icon (default from categories.default_icon)")
	cmd.Flags().StringVar(&color, "color", "", "Category color as #RRGGBB (default from categories.default_color)")

	return cmd
}

func (a *app) removeCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove every category with this exact name",
		Long: `Remove every category with this exact name. Entries already filed under it
keep their label.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				n, err := sess.Categories().Remove(cmd.Context(), name)
				switch {
				case errors.Is(err, common.ErrNotFound):
					return common.UserErrorf(err, "no category named %q", name)
				case errors.Is(err, common.ErrInvalidInput):
					return common.UserErrorf(err, "%q is the last category left; add another one first", name)
				case err != nil:
					return fmt.Errorf("failed to remove category: %w", err)
				}

				printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Removed %d categor%s named %q", n, plural(n, "y", "ies"), name)))
				return nil
			})
		},
	}
}

func (a *app) resetCategoriesCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(cmd.Context(), func(sess *ledger.Session) error {
				if !force {
					yes, err := cli.Confirm(cmd.Context(), a.in, cmd.OutOrStdout(), "Replace all categories with the defaults?")
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
					if !yes {
						printLine(cmd, "Reset canceled.")
						return nil
					}
				}

				if err := sess.Categories().ResetToDefaults(cmd.Context()); err != nil {
					return fmt.Errorf("failed to reset categories: %w", err)
				}

				printLine(cmd, cli.FormatSuccess(fmt.Sprintf("Restored %d default categories", len(sess.Categories().List()))))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
