package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
)

// Session owns the stores of one running application and the blob store they
// write through to. Reads after a write always observe it.
type Session struct {
	blobs       storage.BlobStore
	categories  *CategoryStore
	ledger      *Ledger
	investments *Investments
	opts        Options
}

// Open loads every collection from blobs. Absent or unparseable collections fall
// back to their defaults, and entries stored without a date are backfilled with
// today's date and written back before Open returns.
func Open(ctx context.Context, blobs storage.BlobStore, opts Options) (*Session, error) {
	if blobs == nil {
		return nil, fmt.Errorf("open session: nil blob store")
	}
	opts = opts.withDefaults()

	s := &Session{
		blobs:       blobs,
		categories:  newCategoryStore(blobs, opts),
		ledger:      newLedger(blobs, opts),
		investments: newInvestments(blobs, opts),
		opts:        opts,
	}

	if err := s.categories.restore(ctx); err != nil {
		return nil, err
	}
	if err := s.ledger.restore(ctx); err != nil {
		return nil, err
	}
	if err := s.investments.restore(ctx); err != nil {
		return nil, err
	}

	if _, err := s.ledger.migrateMissingDates(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate transaction dates: %w", err)
	}

	slog.Debug("opened session",
		"categories", len(s.categories.categories),
		"transactions", s.ledger.Len(),
		"investments", len(s.investments.entries))

	return s, nil
}

// Categories returns the session's category store.
func (s *Session) Categories() *CategoryStore {
	return s.categories
}

// Ledger returns the session's transaction ledger.
func (s *Session) Ledger() *Ledger {
	return s.ledger
}

// Investments returns the session's investment mini-ledger.
func (s *Session) Investments() *Investments {
	return s.investments
}

// Options returns the options the session was opened with.
func (s *Session) Options() Options {
	return s.opts
}

// ResetAll returns every collection to its initial state (default categories, an
// empty ledger and no investments), wipes the blob store and writes the fresh state.
// The in-memory reset happens even when the store fails.
func (s *Session) ResetAll(ctx context.Context) error {
	s.categories.categories = model.DefaultCategories()
	s.ledger.transactions = nil
	s.investments.entries = nil

	if err := s.blobs.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}

	if err := errors.Join(
		s.categories.persist(ctx),
		s.ledger.persist(ctx),
		s.investments.persist(ctx),
	); err != nil {
		return err
	}

	slog.Info("reset all data")
	return nil
}

// Close releases the underlying blob store.
func (s *Session) Close() error {
	return s.blobs.Close()
}
