// Package jsonfile provides JSON file-backed stores for the console.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
)

// HistoryStore implements history.Store using a single JSON file holding
// all three categories. Every mutation is a whole-state read-modify-write.
type HistoryStore struct {
	path       string
	maxEntries int
	mu         sync.RWMutex
	log        zerolog.Logger
}

// NewHistoryStore creates a history store at the given path. maxEntries
// bounds each category's sequence; values < 1 fall back to
// history.MaxEntries.
func NewHistoryStore(path string, maxEntries int, log zerolog.Logger) *HistoryStore {
	if maxEntries < 1 {
		maxEntries = history.MaxEntries
	}
	return &HistoryStore{path: path, maxEntries: maxEntries, log: log}
}

// Load returns the persisted state. Absent or corrupt files degrade to the
// empty default state and are logged, never surfaced.
func (s *HistoryStore) Load(ctx context.Context) history.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.load()
}

// Add prepends a new record to category c, trims to the configured maximum,
// persists, and returns the new record's ID. The ID is returned even when
// the durable write fails; the error tells the caller the record will not
// survive a reload.
func (s *HistoryStore) Add(ctx context.Context, c history.Category, d history.Details) (string, error) {
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", c)
	}
	if d != nil && !history.Matches(c, d) {
		return "", fmt.Errorf("payload shape does not match category %q", c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load()
	entry := history.NewEntry(c, d)

	entries := append([]history.Entry{entry}, state.Entries(c)...)
	if len(entries) > s.maxEntries {
		entries = entries[:s.maxEntries]
	}
	state.SetEntries(c, entries)

	if err := s.save(state); err != nil {
		s.log.Error().Err(err).Str("category", string(c)).Msg("persist history add")
		return entry.ID, err
	}

	return entry.ID, nil
}

// Remove deletes the record with the given ID from category c. A missing ID
// leaves the state untouched and returns nil.
func (s *HistoryStore) Remove(ctx context.Context, c history.Category, id string) error {
	if !c.Valid() {
		return fmt.Errorf("unknown category %q", c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load()
	entries := state.Entries(c)

	for i, e := range entries {
		if e.ID == id {
			state.SetEntries(c, append(entries[:i:i], entries[i+1:]...))
			if err := s.save(state); err != nil {
				s.log.Error().Err(err).Str("category", string(c)).Str("id", id).Msg("persist history remove")
				return err
			}
			return nil
		}
	}

	return nil
}

// Clear removes all records from category c.
func (s *HistoryStore) Clear(ctx context.Context, c history.Category) error {
	if !c.Valid() {
		return fmt.Errorf("unknown category %q", c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load()
	state.SetEntries(c, []history.Entry{})

	if err := s.save(state); err != nil {
		s.log.Error().Err(err).Str("category", string(c)).Msg("persist history clear")
		return err
	}
	return nil
}

// load reads the history file from disk, degrading to the default state on
// any failure.
func (s *HistoryStore) load() history.State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("read history file, using empty state")
		}
		return history.DefaultState()
	}

	if len(data) == 0 {
		return history.DefaultState()
	}

	var state history.State
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("history file corrupted, using empty state")
		return history.DefaultState()
	}

	return state
}

// save writes the history file to disk atomically.
func (s *HistoryStore) save(state history.State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write history temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename history file: %w", err)
	}

	return nil
}
