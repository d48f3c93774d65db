// Package testutil provides test fixtures backed by a real, in-memory SQLite ledger.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
)

// TestSession is a migrated in-memory database with a session opened on it.
type TestSession struct {
	*ledger.Session
	Store *storage.SQLiteStore
	t     *testing.T
}

// SessionOptions configures SetupSession.
type SessionOptions struct {
	// Now fixes the clock; zero means time.Now.
	Now time.Time
	// Categories replaces the defaults when non-empty.
	Categories []model.Category
	// Transactions are imported after the categories are in place.
	Transactions []model.Transaction
	// DisableSavings turns the savings type off.
	DisableSavings bool
}

// SetupSession creates an in-memory SQLite store, runs the migrations, opens a
// session on it and seeds it. The store is closed when the test ends.
//
// Example:
//
//	sess := testutil.SetupSession(t, testutil.SessionOptions{
//		Transactions: []model.Transaction{testutil.Expense("15", "🛒 Courses")},
//	})
func SetupSession(t *testing.T, opts SessionOptions) *TestSession {
	t.Helper()
	ctx := context.Background()

	store, err := storage.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	ledgerOpts := ledger.DefaultOptions()
	ledgerOpts.Savings = !opts.DisableSavings
	if !opts.Now.IsZero() {
		now := opts.Now
		ledgerOpts.Now = func() time.Time { return now }
	}

	sess, err := ledger.Open(ctx, store, ledgerOpts)
	if err != nil {
		t.Fatalf("failed to open session: %v", err)
	}

	if len(opts.Categories) > 0 {
		seedCategories(t, sess, opts.Categories)
	}

	if len(opts.Transactions) > 0 {
		added, err := sess.Ledger().Import(ctx, opts.Transactions)
		if err != nil {
			t.Fatalf("failed to seed transactions: %v", err)
		}
		if len(added) != len(opts.Transactions) {
			t.Fatalf("seeded %d of %d transactions", len(added), len(opts.Transactions))
		}
	}

	return &TestSession{Session: sess, Store: store, t: t}
}

func seedCategories(t *testing.T, sess *ledger.Session, categories []model.Category) {
	t.Helper()
	ctx := context.Background()

	for _, c := range sess.Categories().List() {
		if _, err := sess.Categories().Remove(ctx, c.Name); err != nil {
			t.Fatalf("failed to clear category %q: %v", c.Name, err)
		}
	}
	for _, c := range categories {
		if _, ok, err := sess.Categories().Add(ctx, c.Name, c.Icon, c.Color); err != nil || !ok {
			t.Fatalf("failed to seed category %q: ok=%v err=%v", c.Name, ok, err)
		}
	}
}

// Reopen opens a fresh session on the same store, as a restart would.
func (s *TestSession) Reopen() *ledger.Session {
	s.t.Helper()

	sess, err := ledger.Open(context.Background(), s.Store, ledger.DefaultOptions())
	if err != nil {
		s.t.Fatalf("failed to reopen session: %v", err)
	}
	return sess
}
