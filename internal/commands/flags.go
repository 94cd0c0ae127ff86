package commands

import (
	"os"
	"path/filepath"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/apiclient"
	"github.com/goddevils777/tgbot3-0-sub001/internal/core/config"
	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
	"github.com/goddevils777/tgbot3-0-sub001/internal/store/jsonfile"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// History is the persistent activity log
	History history.Store

	// Auth is the cached login session
	Auth *jsonfile.AuthStore

	// Client talks to the web console backend
	Client *apiclient.Client
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tgbot-console", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tgbot-console")
}
