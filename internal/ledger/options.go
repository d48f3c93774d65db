package ledger

import (
	"time"

	"github.com/Veraticus/tally/internal/model"
)

// Options configures a Session.
type Options struct {
	// Now returns the current time; ids and dates are derived from it.
	Now func() time.Time
	// DefaultColor is applied to categories added without a color.
	DefaultColor string
	// DefaultIcon is applied to categories added without an icon and is shown
	// for transactions whose label matches no category.
	DefaultIcon string
	// Savings enables the savings transaction type.
	Savings bool
}

// DefaultOptions returns the three-type configuration with the stock defaults.
func DefaultOptions() Options {
	return Options{
		Now:          time.Now,
		DefaultColor: model.DefaultColor,
		DefaultIcon:  model.DefaultIcon,
		Savings:      true,
	}
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.DefaultColor == "" {
		o.DefaultColor = model.DefaultColor
	}
	if o.DefaultIcon == "" {
		o.DefaultIcon = model.DefaultIcon
	}
	return o
}
