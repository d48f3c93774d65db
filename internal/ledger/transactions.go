package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
)

// NewTransaction is the user input for adding a ledger entry.
type NewTransaction struct {
	Type        model.TransactionType
	Amount      string
	Category    string
	Description string
}

// Ledger holds the transactions of a session in insertion order.
type Ledger struct {
	blobs        storage.BlobStore
	now          func() time.Time
	ids          *idGenerator
	transactions []model.Transaction
	savings      bool
}

func newLedger(blobs storage.BlobStore, opts Options) *Ledger {
	return &Ledger{
		blobs:   blobs,
		now:     opts.Now,
		ids:     newIDGenerator(opts.Now),
		savings: opts.Savings,
	}
}

// List returns a copy of every transaction in insertion order.
func (l *Ledger) List() []model.Transaction {
	out := make([]model.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len reports the number of transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// SavingsEnabled reports whether the savings type is accepted.
func (l *Ledger) SavingsEnabled() bool {
	return l.savings
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id int64) (model.Transaction, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.transactions[i], true
	}
	return model.Transaction{}, false
}

// Add records a new transaction dated today. Input that fails validation is
// rejected with ok=false and leaves the ledger untouched: an empty, non-numeric or
// zero amount, an empty category, or a type the configuration does not accept.
// Negative amounts are accepted as entered.
func (l *Ledger) Add(ctx context.Context, in NewTransaction) (model.Transaction, bool, error) {
	txn, reason := l.build(in)
	if reason != "" {
		slog.Debug("rejected transaction", "reason", reason, "type", in.Type, "amount", in.Amount)
		return model.Transaction{}, false, nil
	}

	l.transactions = append(l.transactions, txn)
	if err := l.persist(ctx); err != nil {
		return txn, true, err
	}

	slog.Info("added transaction", "id", txn.ID, "type", txn.Type, "amount", txn.Amount.String())
	return txn, true, nil
}

func (l *Ledger) build(in NewTransaction) (model.Transaction, string) {
	if !in.Type.Valid() {
		return model.Transaction{}, "unknown type"
	}
	if in.Type == model.TypeSavings && !l.savings {
		return model.Transaction{}, "savings disabled"
	}

	amount, err := model.ParseAmount(in.Amount)
	if err != nil {
		return model.Transaction{}, "invalid amount"
	}
	if amount.IsZero() {
		return model.Transaction{}, "zero amount"
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		return model.Transaction{}, "empty category"
	}

	return model.Transaction{
		ID:          l.ids.next(),
		Type:        in.Type,
		Amount:      amount,
		Category:    category,
		Description: in.Description,
		Date:        model.FormatDate(l.now()),
	}, ""
}

// Edit replaces the amount and description of a transaction. Type, category, date
// and id are left untouched. Returns common.ErrNotFound for an unknown id and
// common.ErrInvalidInput for an unparseable amount, without mutating the ledger.
func (l *Ledger) Edit(ctx context.Context, id int64, amount, description string) (model.Transaction, error) {
	i := l.indexOf(id)
	if i < 0 {
		return model.Transaction{}, fmt.Errorf("transaction %d: %w", id, common.ErrNotFound)
	}

	parsed, err := model.ParseAmount(amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}

	l.transactions[i].Amount = parsed
	l.transactions[i].Description = description
	edited := l.transactions[i]

	if err := l.persist(ctx); err != nil {
		return edited, err
	}

	slog.Info("edited transaction", "id", id, "amount", parsed.String())
	return edited, nil
}

// Remove deletes the transaction with the given id. Returns common.ErrNotFound and
// leaves the ledger unchanged when the id is unknown.
func (l *Ledger) Remove(ctx context.Context, id int64) error {
	i := l.indexOf(id)
	if i < 0 {
		return fmt.Errorf("transaction %d: %w", id, common.ErrNotFound)
	}

	l.transactions = append(l.transactions[:i:i], l.transactions[i+1:]...)
	if err := l.persist(ctx); err != nil {
		return err
	}

	slog.Info("removed transaction", "id", id)
	return nil
}

// Import appends already-built transactions, such as those read from a bank
// statement, assigning fresh ids and a date where missing. Entries with a zero
// amount, an empty category or an unaccepted type are skipped. It persists once
// and returns the entries that were added.
func (l *Ledger) Import(ctx context.Context, txns []model.Transaction) ([]model.Transaction, error) {
	added := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if !txn.Type.Valid() || (txn.Type == model.TypeSavings && !l.savings) {
			continue
		}
		if txn.Amount.IsZero() || strings.TrimSpace(txn.Category) == "" {
			continue
		}
		txn.ID = l.ids.next()
		if strings.TrimSpace(txn.Date) == "" {
			txn.Date = model.FormatDate(l.now())
		}
		added = append(added, txn)
	}

	if len(added) == 0 {
		return added, nil
	}

	l.transactions = append(l.transactions, added...)
	if err := l.persist(ctx); err != nil {
		return added, err
	}

	slog.Info("imported transactions", "count", len(added), "skipped", len(txns)-len(added))
	return added, nil
}

// migrateMissingDates backfills today's date on every entry without one and
// persists the corrected ledger. It runs once, when the session is opened.
func (l *Ledger) migrateMissingDates(ctx context.Context) (int, error) {
	today := model.FormatDate(l.now())

	fixed := 0
	for i := range l.transactions {
		if strings.TrimSpace(l.transactions[i].Date) == "" {
			l.transactions[i].Date = today
			fixed++
		}
	}

	if fixed == 0 {
		return 0, nil
	}

	slog.Info("backfilled missing transaction dates", "count", fixed, "date", today)
	return fixed, l.persist(ctx)
}

func (l *Ledger) indexOf(id int64) int {
	for i, t := range l.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) persist(ctx context.Context) error {
	return save(ctx, l.blobs, storage.KeyTransactions, l.transactions)
}

func (l *Ledger) restore(ctx context.Context) error {
	transactions, ok, err := load[model.Transaction](ctx, l.blobs, storage.KeyTransactions)
	if err != nil {
		return err
	}
	if !ok {
		transactions = nil
	}

	l.transactions = transactions
	for _, t := range transactions {
		l.ids.observe(t.ID)
	}
	return nil
}
