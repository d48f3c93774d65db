package storage

import (
	"context"
	"testing"
)

func TestMigrate_SetsExpectedVersion(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	version, err := store.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != ExpectedSchemaVersion {
		t.Errorf("expected version %d, got %d", ExpectedSchemaVersion, version)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.Put(ctx, KeyCategories, []byte(`[]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}

	if _, ok, err := store.Get(ctx, KeyCategories); err != nil || !ok {
		t.Errorf("expected data to survive re-migration, ok=%v err=%v", ok, err)
	}
}

func TestMigrate_RecordsUpdateTime(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.Put(ctx, KeyTransactions, []byte(`[]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var missing int
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blobs WHERE updated_at IS NULL`).Scan(&missing); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if missing != 0 {
		t.Errorf("expected updated_at on every blob, %d rows missing", missing)
	}
}

func TestMigrate_RejectsNewerSchema(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	defer func() { _ = store.Close() }()
	ctx := context.Background()

	if _, err := store.db.ExecContext(ctx, "PRAGMA user_version = 7"); err != nil {
		t.Fatalf("set version failed: %v", err)
	}
	if err := store.Migrate(ctx); err == nil {
		t.Error("expected a schema version mismatch error")
	}
}
