package tui

import (
	"github.com/goddevils777/tgbot3-0-sub001/internal/core/config"
	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
)

// ActionType identifies the kind of action a keybinding triggers.
type ActionType int

const (
	ActionTypeNone ActionType = iota
	ActionTypeDelete
	ActionTypeClear
)

// Action represents a resolved keybinding action ready for execution.
type Action struct {
	Type     ActionType
	Key      string
	Help     string
	Confirm  string // Non-empty if confirmation required
	Category history.Category
	EntryID  string
}

// NeedsConfirm returns true if the action requires user confirmation.
func (a Action) NeedsConfirm() bool {
	return a.Confirm != ""
}

// KeybindingHandler resolves keybindings to actions.
type KeybindingHandler struct {
	keybindings map[string]config.Keybinding
}

// NewKeybindingHandler creates a new handler with the given config.
func NewKeybindingHandler(keybindings map[string]config.Keybinding) *KeybindingHandler {
	return &KeybindingHandler{keybindings: keybindings}
}

// Resolve attempts to resolve a key press to an action against the given
// category and selected entry. Entry actions require a selection.
func (h *KeybindingHandler) Resolve(key string, c history.Category, selected *history.Entry) (Action, bool) {
	kb, exists := h.keybindings[key]
	if !exists {
		return Action{}, false
	}

	action := Action{
		Key:      key,
		Help:     kb.Help,
		Confirm:  kb.Confirm,
		Category: c,
	}

	switch kb.Action {
	case config.ActionDelete:
		if selected == nil {
			return Action{}, false
		}
		action.Type = ActionTypeDelete
		action.EntryID = selected.ID
	case config.ActionClear:
		action.Type = ActionTypeClear
	default:
		return Action{}, false
	}

	return action, true
}
