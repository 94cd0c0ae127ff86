package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
)

func newTestHistoryStore(t *testing.T, maxEntries int) *HistoryStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "telegram_bot_history.json")
	return NewHistoryStore(path, maxEntries, zerolog.Nop())
}

func TestHistoryStore_AddAndLoad(t *testing.T) {
	store := newTestHistoryStore(t, 0)
	ctx := context.Background()

	id, err := store.Add(ctx, history.CategorySearch, &history.SearchDetails{
		Keywords:    []string{"crypto"},
		GroupsCount: 3,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if id == "" {
		t.Fatal("Add returned empty id")
	}

	state := store.Load(ctx)
	entries := state.Entries(history.CategorySearch)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].ID != id {
		t.Errorf("ID = %q, want %q", entries[0].ID, id)
	}
	if entries[0].Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
}

func TestHistoryStore_AddPrepends(t *testing.T) {
	store := newTestHistoryStore(t, 0)
	ctx := context.Background()

	first, err := store.Add(ctx, history.CategoryLivestream, &history.LivestreamDetails{ChannelName: "a"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	second, err := store.Add(ctx, history.CategoryLivestream, &history.LivestreamDetails{ChannelName: "b"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	entries := store.Load(ctx).Entries(history.CategoryLivestream)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != second || entries[1].ID != first {
		t.Errorf("order = [%s %s], want newest first [%s %s]", entries[0].ID, entries[1].ID, second, first)
	}
}

func TestHistoryStore_AddTrimsToMax(t *testing.T) {
	store := newTestHistoryStore(t, 50)
	ctx := context.Background()

	var lastID string
	for i := range 60 {
		id, err := store.Add(ctx, history.CategorySearch, &history.SearchDetails{
			Keywords: []string{fmt.Sprintf("kw-%d", i)},
		})
		if err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
		lastID = id
	}

	entries := store.Load(ctx).Entries(history.CategorySearch)
	if len(entries) != 50 {
		t.Fatalf("got %d entries, want 50", len(entries))
	}
	if entries[0].ID != lastID {
		t.Error("newest entry should survive trimming")
	}

	d := entries[len(entries)-1].Details.(*history.SearchDetails)
	if d.Keywords[0] != "kw-10" {
		t.Errorf("oldest surviving entry = %s, want kw-10", d.Keywords[0])
	}
}

func TestHistoryStore_CategoriesIsolated(t *testing.T) {
	store := newTestHistoryStore(t, 0)
	ctx := context.Background()

	if _, err := store.Add(ctx, history.CategorySearch, nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := store.Add(ctx, history.CategoryAutosearch, nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	state := store.Load(ctx)
	if len(state.Entries(history.CategorySearch)) != 1 {
		t.Error("search should have 1 entry")
	}
	if len(state.Entries(history.CategoryAutosearch)) != 1 {
		t.Error("autosearch should have 1 entry")
	}
	if len(state.Entries(history.CategoryLivestream)) != 0 {
		t.Error("livestream should be empty")
	}
}

func TestHistoryStore_AddRejectsBadInput(t *testing.T) {
	store := newTestHistoryStore(t, 0)
	ctx := context.Background()

	if _, err := store.Add(ctx, history.Category("bogus"), nil); err == nil {
		t.Error("expected error for unknown category")
	}

	if _, err := store.Add(ctx, history.CategorySearch, &history.LivestreamDetails{}); err == nil {
		t.Error("expected error for mismatched payload shape")
	}
}

func TestHistoryStore_Remove(t *testing.T) {
	store := newTestHistoryStore(t, 0)
	ctx := context.Background()

	keep, err := store.Add(ctx, history.CategorySearch, nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	drop, err := store.Add(ctx, history.CategorySearch, nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := store.Remove(ctx, history.CategorySearch, drop); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	entries := store.Load(ctx).Entries(history.CategorySearch)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].ID != keep {
		t.Errorf("remaining = %q, want %q", entries[0].ID, keep)
	}
}

func TestHistoryStore_RemoveMissingIsNoop(t *testing.T) {
	store := newTestHistoryStore(t, 0)
	ctx := context.Background()

	if _, err := store.Add(ctx, history.CategorySearch, nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := store.Remove(ctx, history.CategorySearch, "no-such-id"); err != nil {
		t.Fatalf("Remove of missing id should be a no-op, got: %v", err)
	}

	if len(store.Load(ctx).Entries(history.CategorySearch)) != 1 {
		t.Error("state should be unchanged")
	}
}

func TestHistoryStore_Clear(t *testing.T) {
	store := newTestHistoryStore(t, 0)
	ctx := context.Background()

	for range 3 {
		if _, err := store.Add(ctx, history.CategoryAutosearch, nil); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	if _, err := store.Add(ctx, history.CategorySearch, nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := store.Clear(ctx, history.CategoryAutosearch); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	state := store.Load(ctx)
	if len(state.Entries(history.CategoryAutosearch)) != 0 {
		t.Error("autosearch should be empty after clear")
	}
	if len(state.Entries(history.CategorySearch)) != 1 {
		t.Error("clear must not touch other categories")
	}
}

func TestHistoryStore_LoadAbsentFile(t *testing.T) {
	store := newTestHistoryStore(t, 0)

	state := store.Load(context.Background())
	for _, c := range history.Categories() {
		if state.Entries(c) == nil {
			t.Errorf("category %s should be an empty sequence, not nil", c)
		}
		if len(state.Entries(c)) != 0 {
			t.Errorf("category %s should be empty", c)
		}
	}
}

func TestHistoryStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telegram_bot_history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store := NewHistoryStore(path, 0, zerolog.Nop())

	state := store.Load(context.Background())
	if len(state.Entries(history.CategorySearch)) != 0 {
		t.Error("corrupt file should degrade to empty state")
	}

	// The store keeps working after degradation.
	if _, err := store.Add(context.Background(), history.CategorySearch, nil); err != nil {
		t.Fatalf("Add after corrupt load failed: %v", err)
	}
	if len(store.Load(context.Background()).Entries(history.CategorySearch)) != 1 {
		t.Error("entry added after corruption should persist")
	}
}

func TestHistoryStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telegram_bot_history.json")
	ctx := context.Background()

	first := NewHistoryStore(path, 0, zerolog.Nop())
	id, err := first.Add(ctx, history.CategoryLivestream, &history.LivestreamDetails{ChannelName: "ton"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	second := NewHistoryStore(path, 0, zerolog.Nop())
	entries := second.Load(ctx).Entries(history.CategoryLivestream)
	if len(entries) != 1 || entries[0].ID != id {
		t.Fatalf("entry should survive a new store instance, got %d entries", len(entries))
	}

	d, ok := entries[0].Details.(*history.LivestreamDetails)
	if !ok {
		t.Fatalf("Details = %T, want *LivestreamDetails", entries[0].Details)
	}
	if d.ChannelName != "ton" {
		t.Errorf("ChannelName = %q, want %q", d.ChannelName, "ton")
	}
}
