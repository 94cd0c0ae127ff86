package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load("", dataDir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 50, cfg.History.MaxEntries)
	assert.Equal(t, 4000, cfg.Notifications.DurationMS)
	assert.Equal(t, 4*time.Second, cfg.Notifications.Duration())
	assert.Equal(t, dataDir, cfg.DataDir)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.History.MaxEntries)
}

func TestLoad_FromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  base_url: https://bot.example.com
  timeout: 30s
history:
  max_entries: 100
notifications:
  duration_ms: 2500
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := Load(configPath, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://bot.example.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 100, cfg.History.MaxEntries)
	assert.Equal(t, 2500, cfg.Notifications.DurationMS)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("history:\n  max_entries: 20\n"), 0o644))

	cfg, err := Load(configPath, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.History.MaxEntries)
	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
}

func TestLoad_DefaultKeybindings(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)

	del, ok := cfg.Keybindings["d"]
	require.True(t, ok)
	assert.Equal(t, ActionDelete, del.Action)
	assert.NotEmpty(t, del.Confirm)

	clear, ok := cfg.Keybindings["C"]
	require.True(t, ok)
	assert.Equal(t, ActionClear, clear.Action)
}

func TestLoad_UserKeybindingsOverrideDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
keybindings:
  d:
    action: delete
    help: remove entry
    confirm: ""
  x:
    action: clear
    help: wipe
    confirm: "Really wipe?"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := Load(configPath, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "remove entry", cfg.Keybindings["d"].Help)
	assert.Empty(t, cfg.Keybindings["d"].Confirm, "user config can drop the confirmation")
	assert.Equal(t, ActionClear, cfg.Keybindings["x"].Action)

	// Untouched defaults survive the merge.
	assert.Equal(t, ActionClear, cfg.Keybindings["C"].Action)
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("api: [broken"), 0o644))

	_, err := Load(configPath, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate_FieldErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.API.BaseURL = "not a url"
	cfg.History.MaxEntries = 0
	cfg.Keybindings = map[string]Keybinding{
		"z": {Action: "explode"},
	}

	err := cfg.Validate()
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))

	fields := make(map[string]bool)
	for _, fe := range fieldErrs {
		fields[fe.Field] = true
	}
	assert.True(t, fields["api.base_url"])
	assert.True(t, fields["history.max_entries"])
	assert.True(t, fields["keybindings.z"])
}

func TestValidate_RequiresDataDir(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_dir")
}

func TestConfig_FilePaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/var/lib/tgbot-console"

	assert.Equal(t, filepath.Join("/var/lib/tgbot-console", "telegram_bot_history.json"), cfg.HistoryFile())
	assert.Equal(t, filepath.Join("/var/lib/tgbot-console", "auth.json"), cfg.AuthFile())
}
