// Package storage provides the key-value persistence layer for the tally application.
package storage

import "context"

// Keys under which the ledger collections are persisted.
const (
	KeyCategories   = "categories"
	KeyTransactions = "transactions"
	KeyInvestments  = "invest"
)

// BlobStore persists opaque serialized collections under fixed keys.
type BlobStore interface {
	// Get returns the blob stored under key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Put replaces the blob stored under key.
	Put(ctx context.Context, key string, value []byte) error
	// Clear removes every stored blob.
	Clear(ctx context.Context) error
	Close() error
}
