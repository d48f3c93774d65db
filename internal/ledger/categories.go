package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/label"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
)

// CategoryStore holds the user-visible categories in insertion order.
// Duplicate names are tolerated; lookups resolve to the first match.
type CategoryStore struct {
	blobs        storage.BlobStore
	defaultColor string
	defaultIcon  string
	categories   []model.Category
}

func newCategoryStore(blobs storage.BlobStore, opts Options) *CategoryStore {
	return &CategoryStore{
		blobs:        blobs,
		defaultColor: opts.DefaultColor,
		defaultIcon:  opts.DefaultIcon,
		categories:   model.DefaultCategories(),
	}
}

// List returns a copy of every category in insertion order.
func (s *CategoryStore) List() []model.Category {
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Add appends a category. A blank name is rejected with ok=false and no mutation.
// A missing icon or color takes the configured default.
func (s *CategoryStore) Add(ctx context.Context, name, icon, color string) (model.Category, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		slog.Debug("rejected category with empty name")
		return model.Category{}, false, nil
	}

	icon = strings.TrimSpace(icon)
	if icon == "" {
		icon = s.defaultIcon
	}
	color = strings.TrimSpace(color)
	if color == "" {
		color = s.defaultColor
	}

	category := model.Category{Name: name, Icon: icon, Color: color}
	s.categories = append(s.categories, category)

	if err := s.persist(ctx); err != nil {
		return category, true, err
	}

	slog.Info("added category", "name", name, "icon", icon)
	return category, true, nil
}

// Remove deletes every category whose name equals name exactly. Transactions keep
// their labels. Returns common.ErrNotFound when nothing matched and
// common.ErrInvalidInput, without mutating, when the store would be left empty.
func (s *CategoryStore) Remove(ctx context.Context, name string) (int, error) {
	kept := s.categories[:0:0]
	for _, c := range s.categories {
		if c.Name != name {
			kept = append(kept, c)
		}
	}

	removed := len(s.categories) - len(kept)
	if removed == 0 {
		return 0, fmt.Errorf("category %q: %w", name, common.ErrNotFound)
	}
	if len(kept) == 0 {
		return 0, fmt.Errorf("category %q is the last one left: %w", name, common.ErrInvalidInput)
	}
	s.categories = kept

	if err := s.persist(ctx); err != nil {
		return removed, err
	}

	slog.Info("removed category", "name", name, "count", removed)
	return removed, nil
}

// ResetToDefaults replaces the store with the fixed default set.
func (s *CategoryStore) ResetToDefaults(ctx context.Context) error {
	s.categories = model.DefaultCategories()
	return s.persist(ctx)
}

// Find returns the first category whose normalized name matches the normalized label.
func (s *CategoryStore) Find(labelOrName string) (model.Category, bool) {
	for _, c := range s.categories {
		if label.Matches(labelOrName, c.Name) {
			return c, true
		}
	}
	return model.Category{}, false
}

// IconFor returns the icon to display for a transaction label.
func (s *CategoryStore) IconFor(transactionLabel string) string {
	if c, ok := s.Find(transactionLabel); ok && c.Icon != "" {
		return c.Icon
	}
	return s.defaultIcon
}

func (s *CategoryStore) persist(ctx context.Context) error {
	return save(ctx, s.blobs, storage.KeyCategories, s.categories)
}

func (s *CategoryStore) restore(ctx context.Context) error {
	categories, ok, err := load[model.Category](ctx, s.blobs, storage.KeyCategories)
	if err != nil {
		return err
	}
	if !ok || len(categories) == 0 {
		slog.Info("using default categories")
		s.categories = model.DefaultCategories()
		return nil
	}
	s.categories = categories
	return nil
}
