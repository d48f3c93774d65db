package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
	"github.com/shopspring/decimal"
)

// Investments is the deposit/withdraw mini-ledger. It is independent of the
// transaction ledger and never contributes to its totals.
type Investments struct {
	blobs   storage.BlobStore
	now     func() time.Time
	ids     *idGenerator
	entries []model.InvestmentEntry
}

func newInvestments(blobs storage.BlobStore, opts Options) *Investments {
	return &Investments{
		blobs: blobs,
		now:   opts.Now,
		ids:   newIDGenerator(opts.Now),
	}
}

// List returns a copy of every entry in insertion order.
func (v *Investments) List() []model.InvestmentEntry {
	out := make([]model.InvestmentEntry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Add records a movement dated today. An empty, non-numeric or zero amount is
// rejected with ok=false.
func (v *Investments) Add(ctx context.Context, kind model.InvestmentType, amount, description string) (model.InvestmentEntry, bool, error) {
	if kind != model.InvestmentDeposit && kind != model.InvestmentWithdraw {
		return model.InvestmentEntry{}, false, nil
	}

	parsed, err := model.ParseAmount(amount)
	if err != nil || parsed.IsZero() {
		slog.Debug("rejected investment entry", "amount", amount)
		return model.InvestmentEntry{}, false, nil
	}

	entry := model.InvestmentEntry{
		ID:          v.ids.next(),
		Type:        kind,
		Amount:      parsed,
		Description: description,
		Date:        model.FormatDate(v.now()),
	}
	v.entries = append(v.entries, entry)

	if err := v.persist(ctx); err != nil {
		return entry, true, err
	}

	slog.Info("added investment entry", "id", entry.ID, "type", kind, "amount", parsed.String())
	return entry, true, nil
}

// Balance is the signed sum of all entries: deposits add, withdrawals subtract.
func (v *Investments) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, e := range v.entries {
		total = total.Add(e.Signed())
	}
	return total
}

func (v *Investments) persist(ctx context.Context) error {
	return save(ctx, v.blobs, storage.KeyInvestments, v.entries)
}

func (v *Investments) restore(ctx context.Context) error {
	entries, ok, err := load[model.InvestmentEntry](ctx, v.blobs, storage.KeyInvestments)
	if err != nil {
		return err
	}
	if !ok {
		entries = nil
	}

	v.entries = entries
	for _, e := range entries {
		v.ids.observe(e.ID)
	}
	return nil
}
