package jsonfile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestAuthStore_SetAndGet(t *testing.T) {
	store := NewAuthStore(filepath.Join(t.TempDir(), "auth.json"))
	ctx := context.Background()

	if err := store.Set(ctx, "tok-123", "admin"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	file, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if file.Token != "tok-123" {
		t.Errorf("Token = %q, want %q", file.Token, "tok-123")
	}
	if file.Username != "admin" {
		t.Errorf("Username = %q, want %q", file.Username, "admin")
	}
	if file.SavedAt.IsZero() {
		t.Error("SavedAt should not be zero")
	}
}

func TestAuthStore_GetAbsent(t *testing.T) {
	store := NewAuthStore(filepath.Join(t.TempDir(), "auth.json"))

	_, err := store.Get(context.Background())
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("Get error = %v, want ErrNoSession", err)
	}
}

func TestAuthStore_TokenNeverFails(t *testing.T) {
	store := NewAuthStore(filepath.Join(t.TempDir(), "auth.json"))
	ctx := context.Background()

	if tok := store.Token(ctx); tok != "" {
		t.Errorf("Token on absent file = %q, want empty", tok)
	}

	if err := store.Set(ctx, "tok-456", "user"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if tok := store.Token(ctx); tok != "tok-456" {
		t.Errorf("Token = %q, want %q", tok, "tok-456")
	}
}

func TestAuthStore_Delete(t *testing.T) {
	store := NewAuthStore(filepath.Join(t.TempDir(), "auth.json"))
	ctx := context.Background()

	// Deleting an absent session is fine.
	if err := store.Delete(ctx); err != nil {
		t.Fatalf("Delete on absent file failed: %v", err)
	}

	if err := store.Set(ctx, "tok", "user"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Delete(ctx); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.Get(ctx); !errors.Is(err, ErrNoSession) {
		t.Errorf("Get after delete = %v, want ErrNoSession", err)
	}
}
