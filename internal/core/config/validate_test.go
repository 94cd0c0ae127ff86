package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)

	result := cfg.ValidateDeep("")
	assert.True(t, result.IsValid(), "errors: %v", result.Errors)
	assert.NotEmpty(t, result.Checks)
}

func TestValidateDeep_BadBaseURL(t *testing.T) {
	cfg := validConfig(t)
	cfg.API.BaseURL = "localhost:3000"

	result := cfg.ValidateDeep("")
	require.False(t, result.IsValid())

	found := false
	for _, e := range result.Errors {
		if e.Category == "API" && e.Item == "base_url" {
			found = true
			assert.NotEmpty(t, e.Fix)
		}
	}
	assert.True(t, found, "expected an API base_url error")
}

func TestValidateDeep_HTTPWarnsNotErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.API.BaseURL = "http://bot.example.com"

	result := cfg.ValidateDeep("")
	assert.True(t, result.IsValid())

	found := false
	for _, w := range result.Warnings {
		if w.Category == "API" {
			found = true
		}
	}
	assert.True(t, found, "plain http should produce a warning")
}

func TestValidateDeep_LargeHistoryWarns(t *testing.T) {
	cfg := validConfig(t)
	cfg.History.MaxEntries = 1000

	result := cfg.ValidateDeep("")
	assert.True(t, result.IsValid())

	found := false
	for _, w := range result.Warnings {
		if w.Category == "History" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateDeep_InvalidKeybindingAction(t *testing.T) {
	cfg := validConfig(t)
	cfg.Keybindings = map[string]Keybinding{
		"z": {Action: "detonate", Help: "boom"},
	}

	result := cfg.ValidateDeep("")
	require.False(t, result.IsValid())
	assert.Equal(t, "Keybindings", result.Errors[0].Category)
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	result := cfg.ValidateDeep(t.TempDir())
	require.False(t, result.IsValid())
	assert.Equal(t, "File Access", result.Errors[0].Category)
}
