package ledger

import (
	"context"
	"testing"

	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyLedger = `[
	{"id":1700000000000,"type":"expense","amount":12.5,"category":"🛒 Courses","description":"pain","date":"01/02/2024"},
	{"id":1700000000001,"type":"income","amount":900,"category":"💰 Autres","description":"salaire"},
	{"id":1700000000002,"type":"expense","amount":20,"category":"Loyer","date":""}
]`

func TestOpen_MigratesMissingDates(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemoryStore()
	require.NoError(t, blobs.Put(ctx, storage.KeyTransactions, []byte(legacyLedger)))
	putsBefore := blobs.Puts(storage.KeyTransactions)

	s := openTestSession(t, blobs, testOptions())

	all := s.Ledger().List()
	require.Len(t, all, 3)
	assert.Equal(t, "01/02/2024", all[0].Date)
	assert.Equal(t, "05/03/2024", all[1].Date)
	assert.Equal(t, "05/03/2024", all[2].Date)

	// The corrected ledger is written back exactly once.
	assert.Equal(t, putsBefore+1, blobs.Puts(storage.KeyTransactions))
	persisted := storedTransactions(t, blobs)
	require.Len(t, persisted, 3)
	for _, txn := range persisted {
		assert.NotEmpty(t, txn.Date)
	}
	assert.Equal(t, "pain", persisted[0].Description)
}

func TestOpen_NoMigrationWhenDatesPresent(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemoryStore()
	require.NoError(t, blobs.Put(ctx, storage.KeyTransactions,
		[]byte(`[{"id":1,"type":"expense","amount":1,"category":"Courses","date":"02/01/2024"}]`)))

	openTestSession(t, blobs, testOptions())
	openTestSession(t, blobs, testOptions())
	assert.Equal(t, 1, blobs.Puts(storage.KeyTransactions))
}

func TestOpen_UnparseableLedgerIsEmpty(t *testing.T) {
	ctx := context.Background()

	for _, stored := range []string{`garbage`, `{"id":1}`, `null`, `[{"id":"abc"}]`} {
		t.Run(stored, func(t *testing.T) {
			blobs := storage.NewMemoryStore()
			require.NoError(t, blobs.Put(ctx, storage.KeyTransactions, []byte(stored)))
			require.NoError(t, blobs.Put(ctx, storage.KeyInvestments, []byte(stored)))

			s := openTestSession(t, blobs, testOptions())
			assert.Empty(t, s.Ledger().List())
			assert.Empty(t, s.Investments().List())
		})
	}
}

func TestOpen_SkipsMalformedRecords(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemoryStore()
	require.NoError(t, blobs.Put(ctx, storage.KeyTransactions, []byte(`[
		{"id":1,"type":"expense","amount":10,"category":"🛒 Courses","date":"02/03/2024"},
		{"id":2,"type":"expense","amount":"abc","category":"Loyer","date":"03/03/2024"},
		null
	]`)))
	require.NoError(t, blobs.Put(ctx, storage.KeyCategories, []byte(`[
		{"name":"Travail","icon":"💼","color":"#000000"},
		{"name":42}
	]`)))

	s := openTestSession(t, blobs, testOptions())
	require.Len(t, s.Ledger().List(), 1)
	assert.Equal(t, int64(1), s.Ledger().List()[0].ID)
	assert.Equal(t, []model.Category{{Name: "Travail", Icon: "💼", Color: "#000000"}}, s.Categories().List())

	_, ok, err := s.Ledger().Add(ctx, NewTransaction{Type: model.TypeIncome, Amount: "50", Category: "Salaire"})
	require.NoError(t, err)
	require.True(t, ok)

	persisted := storedTransactions(t, blobs)
	require.Len(t, persisted, 2, "valid records survive the next write")
	assert.Equal(t, int64(1), persisted[0].ID)
	assert.Equal(t, "Salaire", persisted[1].Category)
}

func TestOpen_NilStore(t *testing.T) {
	_, err := Open(context.Background(), nil, testOptions())
	assert.Error(t, err)
}

func TestOpen_ZeroOptionsGetDefaults(t *testing.T) {
	s := openTestSession(t, storage.NewMemoryStore(), Options{})
	cat, ok, err := s.Categories().Add(context.Background(), "Cadeaux", "", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.DefaultIcon, cat.Icon)
	assert.Equal(t, model.DefaultColor, cat.Color)
	assert.NotNil(t, s.Options().Now)
}

func TestSession_ResetAll(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemoryStore()
	require.NoError(t, blobs.Put(ctx, storage.KeyTransactions, []byte(legacyLedger)))
	require.NoError(t, blobs.Put(ctx, "unrelated", []byte(`x`)))

	s := openTestSession(t, blobs, testOptions())
	_, _, err := s.Categories().Add(ctx, "Voyage", "✈️", "")
	require.NoError(t, err)
	_, err = s.Categories().Remove(ctx, "Courses")
	require.NoError(t, err)
	_, _, err = s.Investments().Add(ctx, model.InvestmentDeposit, "100", "ETF")
	require.NoError(t, err)

	require.NoError(t, s.ResetAll(ctx))

	assert.Equal(t, model.DefaultCategories(), s.Categories().List())
	assert.Empty(t, s.Ledger().List())
	assert.Empty(t, s.Investments().List())
	assert.True(t, s.Investments().Balance().IsZero())

	_, ok, err := blobs.Get(ctx, "unrelated")
	require.NoError(t, err)
	assert.False(t, ok, "reset should clear the whole store")

	reopened := openTestSession(t, blobs, testOptions())
	assert.Equal(t, model.DefaultCategories(), reopened.Categories().List())
	assert.Empty(t, reopened.Ledger().List())
	assert.Empty(t, storedTransactions(t, blobs))
}

func TestSession_ResetAllResetsMemoryWhenStoreFails(t *testing.T) {
	ctx := context.Background()
	inner := storage.NewMemoryStore()
	require.NoError(t, inner.Put(ctx, storage.KeyTransactions,
		[]byte(`[{"id":1,"type":"expense","amount":1,"category":"Courses","date":"02/01/2024"}]`)))

	s := openTestSession(t, failingStore{inner}, testOptions())
	require.Equal(t, 1, s.Ledger().Len())

	err := s.ResetAll(ctx)
	assert.ErrorIs(t, err, errWriteFailed)
	assert.Empty(t, s.Ledger().List())
	assert.Equal(t, model.DefaultCategories(), s.Categories().List())
}

func TestSession_Close(t *testing.T) {
	blobs := storage.NewMemoryStore()
	s := openTestSession(t, blobs, testOptions())
	require.NoError(t, s.Close())

	_, _, err := s.Ledger().Add(context.Background(), NewTransaction{Type: model.TypeExpense, Amount: "1", Category: "Courses"})
	assert.ErrorIs(t, err, storage.ErrStoreClosed)
}
