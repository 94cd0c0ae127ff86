// Package config handles configuration loading and validation for the
// console.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"
)

// Built-in action names for keybindings.
const (
	ActionDelete = "delete"
	ActionClear  = "clear"
)

// defaultKeybindings provides built-in keybindings that users can override.
var defaultKeybindings = map[string]Keybinding{
	"d": {
		Action:  ActionDelete,
		Help:    "delete",
		Confirm: "Delete this history entry?",
	},
	"C": {
		Action:  ActionClear,
		Help:    "clear category",
		Confirm: "Remove all entries in this category?",
	},
}

// Config holds the application configuration.
type Config struct {
	API           APIConfig             `yaml:"api"`
	History       HistoryConfig         `yaml:"history"`
	Notifications NotificationsConfig   `yaml:"notifications"`
	Keybindings   map[string]Keybinding `yaml:"keybindings"`
	DataDir       string                `yaml:"-"` // set by caller, not from config file
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// HistoryConfig holds activity log settings.
type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

// NotificationsConfig holds toast settings.
type NotificationsConfig struct {
	DurationMS int `yaml:"duration_ms"`
}

// Duration returns the toast auto-dismiss delay.
func (n NotificationsConfig) Duration() time.Duration {
	return time.Duration(n.DurationMS) * time.Millisecond
}

// Keybinding defines a TUI keybinding action.
type Keybinding struct {
	Action  string `yaml:"action"`  // built-in action name (delete, clear)
	Help    string `yaml:"help"`    // help text shown in TUI
	Confirm string `yaml:"confirm"` // confirmation prompt (empty = no confirm)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:3000",
			Timeout: 10 * time.Second,
		},
		History: HistoryConfig{
			MaxEntries: 50,
		},
		Notifications: NotificationsConfig{
			DurationMS: 4000,
		},
		Keybindings: map[string]Keybinding{},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the
// provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = defaults.History.MaxEntries
	}
	if c.Notifications.DurationMS == 0 {
		c.Notifications.DurationMS = defaults.Notifications.DurationMS
	}
}

// mergeKeybindings merges user keybindings into defaults. User keybindings
// override defaults for the same key.
func mergeKeybindings(defaults, user map[string]Keybinding) map[string]Keybinding {
	result := make(map[string]Keybinding, len(defaults)+len(user))

	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range user {
		result[k] = v
	}

	return result
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.API.BaseURL == "" {
		errs = errs.Append("api.base_url", fmt.Errorf("cannot be empty"))
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = errs.Append("api.base_url", fmt.Errorf("must be an absolute URL"))
	}

	if c.API.Timeout < 0 {
		errs = errs.Append("api.timeout", fmt.Errorf("cannot be negative"))
	}

	if c.History.MaxEntries < 1 {
		errs = errs.Append("history.max_entries", fmt.Errorf("must be at least 1"))
	}

	if c.Notifications.DurationMS < 0 {
		errs = errs.Append("notifications.duration_ms", fmt.Errorf("cannot be negative"))
	}

	if c.DataDir == "" {
		errs = errs.Append("data_dir", fmt.Errorf("cannot be empty"))
	}

	for key, kb := range c.Keybindings {
		field := fmt.Sprintf("keybindings.%s", key)
		if kb.Action == "" {
			errs = errs.Append(field, fmt.Errorf("must have an action"))
			continue
		}
		if !isValidAction(kb.Action) {
			errs = errs.Append(field, fmt.Errorf("invalid action %q", kb.Action))
		}
	}

	return errs.ToError()
}

// HistoryFile returns the path to the activity log JSON file. The name
// keeps the storage key the web console used.
func (c *Config) HistoryFile() string {
	return filepath.Join(c.DataDir, "telegram_bot_history.json")
}

// AuthFile returns the path to the cached login session file.
func (c *Config) AuthFile() string {
	return filepath.Join(c.DataDir, "auth.json")
}

func isValidAction(action string) bool {
	switch action {
	case ActionDelete, ActionClear:
		return true
	default:
		return false
	}
}
