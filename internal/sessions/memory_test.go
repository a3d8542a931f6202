package sessions

import (
	"context"
	"testing"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	token, err := store.Create(ctx, 7)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	userID, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if userID != 7 {
		t.Fatalf("expected user 7, got %d", userID)
	}

	if err := store.Delete(ctx, token); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	userID, err = store.Get(ctx, token)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if userID != 0 {
		t.Fatalf("expected 0 after delete, got %d", userID)
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	userID, err := store.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if userID != 0 {
		t.Fatalf("unknown token should resolve to 0, got %d", userID)
	}

	if err := store.Delete(ctx, "nope"); err != nil {
		t.Fatalf("delete of unknown token should be a no-op, got %v", err)
	}
}

func TestTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create(ctx, uint(i+1))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if seen[token] {
			t.Fatalf("token %q issued twice", token)
		}
		seen[token] = true
	}
}
