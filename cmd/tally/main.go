package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app carries the state shared by every command of one invocation.
type app struct {
	v        *viper.Viper
	in       *cli.LineReader
	cfgFile  string
	settings config.Settings
}

func newRootCmd(in io.Reader) *cobra.Command {
	a := &app{
		v:  viper.New(),
		in: cli.NewLineReader(in),
	}

	rootCmd := &cobra.Command{
		Use:   "tally",
		Short: "👛 Personal budget tracker",
		Long: `tally: a small personal budget tracker. Record expenses, income and savings,
group them into categories, browse your history and see where the money went.`,
		PersistentPreRunE: a.initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/tally/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("db", "", "database path (default: $HOME/.local/share/tally/tally.db)")

	// Bind flags to viper
	_ = a.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))

	// Add commands
	rootCmd.AddCommand(a.addCmd())
	rootCmd.AddCommand(a.editCmd())
	rootCmd.AddCommand(a.deleteCmd())
	rootCmd.AddCommand(a.historyCmd())
	rootCmd.AddCommand(a.summaryCmd())
	rootCmd.AddCommand(a.categoriesCmd())
	rootCmd.AddCommand(a.investCmd())
	rootCmd.AddCommand(a.importCmd())
	rootCmd.AddCommand(a.resetCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd(os.Stdin).ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
		os.Exit(1)
	}
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		dir, err := config.ConfigDir()
		if err != nil {
			return err
		}

		// Search for config in standard locations
		a.v.AddConfigPath(dir)
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables, e.g. TALLY_DATABASE_PATH
	a.v.SetEnvPrefix("TALLY")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	config.SetDefaults(a.v)

	// Read config file
	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	settings, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.settings = settings

	// Set up logging
	if err := common.SetupLogger(settings.LogLevel, settings.LogFormat); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Debug("loaded configuration", "config_file", a.v.ConfigFileUsed(), "database", settings.DatabasePath)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			printLine(cmd, "tally version "+version)
		},
	}
}
