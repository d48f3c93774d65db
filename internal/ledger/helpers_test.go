package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return fixedNow }
	return opts
}

func openTestSession(t *testing.T, blobs storage.BlobStore, opts Options) *Session {
	t.Helper()
	s, err := Open(context.Background(), blobs, opts)
	require.NoError(t, err)
	return s
}

func storedTransactions(t *testing.T, blobs storage.BlobStore) []model.Transaction {
	t.Helper()
	data, ok, err := blobs.Get(context.Background(), storage.KeyTransactions)
	require.NoError(t, err)
	require.True(t, ok, "transactions were never persisted")

	var txns []model.Transaction
	require.NoError(t, json.Unmarshal(data, &txns))
	return txns
}

var errWriteFailed = errors.New("disk full")

// failingStore accepts reads but rejects every write.
type failingStore struct {
	*storage.MemoryStore
}

func (f failingStore) Put(context.Context, string, []byte) error {
	return errWriteFailed
}

func (f failingStore) Clear(context.Context) error {
	return errWriteFailed
}
