package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/report"
	"github.com/Veraticus/tally/internal/tui/themes"
	"github.com/spf13/viper"
)

// DefaultDatabasePath is used when database.path is unset.
const DefaultDatabasePath = "$HOME/.local/share/tally/tally.db"

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Settings is the typed view of the tally configuration.
type Settings struct {
	DatabasePath string
	LogLevel     string
	LogFormat    string
	Currency     string
	Theme        string
	DefaultColor string
	DefaultIcon  string
	BalanceModel report.BalanceModel
	Savings      bool
}

// SetDefaults registers the default value of every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("ledger.savings", true)
	v.SetDefault("ledger.balance_model", string(report.ThreeWay))
	v.SetDefault("categories.default_color", model.DefaultColor)
	v.SetDefault("categories.default_icon", model.DefaultIcon)
	v.SetDefault("display.currency", "€")
	v.SetDefault("display.theme", "default")
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (Settings, error) {
	balance, err := report.ParseBalanceModel(v.GetString("ledger.balance_model"))
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	s := Settings{
		DatabasePath: ExpandPath(v.GetString("database.path")),
		LogLevel:     v.GetString("logging.level"),
		LogFormat:    v.GetString("logging.format"),
		Currency:     v.GetString("display.currency"),
		Theme:        v.GetString("display.theme"),
		DefaultColor: strings.TrimSpace(v.GetString("categories.default_color")),
		DefaultIcon:  strings.TrimSpace(v.GetString("categories.default_icon")),
		BalanceModel: balance,
		Savings:      v.GetBool("ledger.savings"),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings for values the application cannot run with.
func (s Settings) Validate() error {
	if s.DatabasePath == "" {
		return fmt.Errorf("%w: database.path is empty", common.ErrInvalidConfig)
	}
	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	if s.LogFormat != "console" && s.LogFormat != "json" {
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, s.LogFormat)
	}
	if !hexColor.MatchString(s.DefaultColor) {
		return fmt.Errorf("%w: categories.default_color must be #RRGGBB, got %q", common.ErrInvalidConfig, s.DefaultColor)
	}
	if s.DefaultIcon == "" {
		return fmt.Errorf("%w: categories.default_icon is empty", common.ErrInvalidConfig)
	}
	if _, ok := themes.Lookup(s.Theme); !ok {
		return fmt.Errorf("%w: display.theme must be one of %s, got %q",
			common.ErrInvalidConfig, strings.Join(themes.Names(), ", "), s.Theme)
	}
	return nil
}
