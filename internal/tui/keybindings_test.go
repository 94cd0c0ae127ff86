package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/config"
	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
)

func testHandler() *KeybindingHandler {
	return NewKeybindingHandler(map[string]config.Keybinding{
		"d": {Action: config.ActionDelete, Help: "delete", Confirm: "Delete this history entry?"},
		"C": {Action: config.ActionClear, Help: "clear category", Confirm: "Remove all entries in this category?"},
		"x": {Action: config.ActionClear, Help: "fast clear"},
	})
}

func TestKeybindingHandler_ResolveDelete(t *testing.T) {
	h := testHandler()
	entry := history.Entry{ID: "e1", Category: history.CategorySearch}

	action, ok := h.Resolve("d", history.CategorySearch, &entry)
	require.True(t, ok)
	assert.Equal(t, ActionTypeDelete, action.Type)
	assert.Equal(t, "e1", action.EntryID)
	assert.Equal(t, history.CategorySearch, action.Category)
	assert.True(t, action.NeedsConfirm())
}

func TestKeybindingHandler_DeleteRequiresSelection(t *testing.T) {
	h := testHandler()

	_, ok := h.Resolve("d", history.CategorySearch, nil)
	assert.False(t, ok, "delete without a selected entry should not resolve")
}

func TestKeybindingHandler_ResolveClear(t *testing.T) {
	h := testHandler()

	action, ok := h.Resolve("C", history.CategoryLivestream, nil)
	require.True(t, ok)
	assert.Equal(t, ActionTypeClear, action.Type)
	assert.Empty(t, action.EntryID)
	assert.True(t, action.NeedsConfirm())
}

func TestKeybindingHandler_NoConfirmConfigured(t *testing.T) {
	h := testHandler()

	action, ok := h.Resolve("x", history.CategoryAutosearch, nil)
	require.True(t, ok)
	assert.False(t, action.NeedsConfirm())
}

func TestKeybindingHandler_UnknownKey(t *testing.T) {
	h := testHandler()

	_, ok := h.Resolve("z", history.CategorySearch, nil)
	assert.False(t, ok)
}
