package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrNoSession is returned when no login session is cached.
var ErrNoSession = errors.New("no cached login session")

// AuthFile is the root JSON structure for the cached login session.
type AuthFile struct {
	Token    string    `json:"token"`
	Username string    `json:"username"`
	SavedAt  time.Time `json:"saved_at"`
}

// AuthStore persists the backend bearer token between console runs.
type AuthStore struct {
	path string
	mu   sync.RWMutex
}

// NewAuthStore creates an auth store at the given path.
func NewAuthStore(path string) *AuthStore {
	return &AuthStore{path: path}
}

// Get returns the cached session. Returns ErrNoSession when absent.
func (s *AuthStore) Get(ctx context.Context) (AuthFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return AuthFile{}, ErrNoSession
		}
		return AuthFile{}, fmt.Errorf("read auth file: %w", err)
	}

	var file AuthFile
	if err := json.Unmarshal(data, &file); err != nil {
		return AuthFile{}, fmt.Errorf("parse auth file: %w", err)
	}

	if file.Token == "" {
		return AuthFile{}, ErrNoSession
	}

	return file, nil
}

// Token returns the cached bearer token, or "" when logged out. It never
// fails; an unreadable auth file means guest mode.
func (s *AuthStore) Token(ctx context.Context) string {
	file, err := s.Get(ctx)
	if err != nil {
		return ""
	}
	return file.Token
}

// Set persists a new session token.
func (s *AuthStore) Set(ctx context.Context, token, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := AuthFile{Token: token, Username: username, SavedAt: time.Now()}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create auth directory: %w", err)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal auth file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write auth temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename auth file: %w", err)
	}

	return nil
}

// Delete removes the cached session. Absent file is a no-op.
func (s *AuthStore) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove auth file: %w", err)
	}
	return nil
}
