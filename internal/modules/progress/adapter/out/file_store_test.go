package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	out "swipescoop/internal/modules/progress/adapter/out"
	progressport "swipescoop/internal/modules/progress/port/out"
	apperrors "swipescoop/internal/platform/errors"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	store := out.NewFileStore(dir)

	if _, ok, err := store.Get(ctx, progressport.KeyPlacementGrid); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}
	if err := store.Set(ctx, progressport.KeyPlacementGrid, []byte(`[null]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, ok, err := store.Get(ctx, progressport.KeyPlacementGrid)
	if err != nil || !ok || string(raw) != `[null]` {
		t.Fatalf("unexpected get: %q ok=%v err=%v", raw, ok, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "state", "placementGrid.json")); err != nil {
		t.Fatalf("expected one file per key: %v", err)
	}
	entries, _ := os.ReadDir(filepath.Join(dir, "state"))
	if len(entries) != 1 {
		t.Fatalf("temporary files left behind: %d entries", len(entries))
	}
	if err := store.Clear(ctx, progressport.KeyPlacementGrid); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := store.Clear(ctx, progressport.KeyPlacementGrid); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestFileStoreRejectsPathKeys(t *testing.T) {
	t.Parallel()
	store := out.NewFileStore(t.TempDir())
	err := store.Set(context.Background(), "../escape", []byte(`1`))
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestFileStoreWrapsIOErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// A regular file where the state directory should be.
	if err := os.WriteFile(filepath.Join(dir, "state"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := out.NewFileStore(dir)
	if err := store.Set(context.Background(), progressport.KeyStreak, []byte(`{}`)); !errors.Is(err, apperrors.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := out.NewMemoryStore()
	value := []byte(`{"count":1}`)
	if err := store.Set(ctx, progressport.KeyStreak, value); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[2] = 'X'
	raw, _, _ := store.Get(ctx, progressport.KeyStreak)
	if string(raw) != `{"count":1}` {
		t.Fatalf("store shares caller buffer: %s", raw)
	}
}
