package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Veraticus/tally/internal/storage"
)

// save serializes items and writes them under key.
func save[T any](ctx context.Context, blobs storage.BlobStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := blobs.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// load reads the collection stored under key. Records that fail to decode are
// skipped one by one and the rest are kept. A blob that is not a JSON array as a
// whole yields ok=false so the caller can fall back to its default; only store
// failures are errors.
func load[T any](ctx context.Context, blobs storage.BlobStore, key string) ([]T, bool, error) {
	data, found, err := blobs.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !found {
		slog.Debug("no stored collection", "key", key)
		return nil, false, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("discarding unparseable collection", "key", key, "error", err)
		return nil, false, nil
	}
	if records == nil {
		slog.Warn("discarding null collection", "key", key)
		return nil, false, nil
	}

	items := make([]T, 0, len(records))
	for i, raw := range records {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			slog.Warn("skipping null record", "key", key, "index", i)
			continue
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			slog.Warn("skipping unparseable record", "key", key, "index", i, "error", err)
			continue
		}
		items = append(items, item)
	}

	return items, true, nil
}
