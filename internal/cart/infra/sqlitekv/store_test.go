package sqlitekv

import (
	"context"
	"path/filepath"
	"testing"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "cart.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "cart")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok {
			t.Fatal("expected no value")
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := store.Set(ctx, "cart", `[{"id":"1"}]`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, ok, err := store.Get(ctx, "cart")
		if err != nil || !ok {
			t.Fatalf("Get failed: ok=%v err=%v", ok, err)
		}
		if got != `[{"id":"1"}]` {
			t.Fatalf("unexpected value %q", got)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		if err := store.Set(ctx, "cart", "[]"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, _, err := store.Get(ctx, "cart")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != "[]" {
			t.Fatalf("expected overwrite, got %q", got)
		}
	})
}

func TestStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cart.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Set(ctx, "cart", "durable"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get(ctx, "cart")
	if err != nil || !ok {
		t.Fatalf("Get after reopen failed: ok=%v err=%v", ok, err)
	}
	if got != "durable" {
		t.Fatalf("unexpected value %q", got)
	}
}
