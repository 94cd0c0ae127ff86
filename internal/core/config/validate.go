package config

import (
	"fmt"
	"net/url"
	"os"
	"sort"
)

// ValidationResult holds the outcome of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
	Checks   []ValidationCheck
}

// ValidationError represents a configuration error.
type ValidationError struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidationCheck represents a successful validation check.
type ValidationCheck struct {
	Category string   `json:"category"`
	Message  string   `json:"message"`
	Details  []string `json:"details,omitempty"`
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// ValidateDeep performs comprehensive validation of the configuration.
// Unlike Validate(), this checks file access and reports passing checks.
func (c *Config) ValidateDeep(configPath string) *ValidationResult {
	result := &ValidationResult{}

	c.validateFileAccess(result, configPath)
	c.validateAPI(result)
	c.validateHistory(result)
	c.validateKeybindingsDeep(result)

	return result
}

// validateFileAccess checks config file and data directory.
func (c *Config) validateFileAccess(result *ValidationResult, configPath string) {
	details := []string{}

	if configPath != "" {
		if info, err := os.Stat(configPath); err == nil {
			details = append(details, fmt.Sprintf("Config file: %s (found)", configPath))
			if info.IsDir() {
				result.Errors = append(result.Errors, ValidationError{
					Category: "File Access",
					Item:     "config file",
					Message:  fmt.Sprintf("%s is a directory, not a file", configPath),
				})
			}
		} else if os.IsNotExist(err) {
			details = append(details, fmt.Sprintf("Config file: %s (not found, using defaults)", configPath))
		} else {
			result.Errors = append(result.Errors, ValidationError{
				Category: "File Access",
				Item:     "config file",
				Message:  fmt.Sprintf("cannot access %s: %v", configPath, err),
			})
		}
	}

	if c.DataDir != "" {
		if info, err := os.Stat(c.DataDir); err == nil {
			if !info.IsDir() {
				result.Errors = append(result.Errors, ValidationError{
					Category: "File Access",
					Item:     "data_dir",
					Message:  fmt.Sprintf("%s exists but is not a directory", c.DataDir),
				})
			} else {
				details = append(details, fmt.Sprintf("Data directory: %s (exists)", c.DataDir))
			}
		} else if os.IsNotExist(err) {
			details = append(details, fmt.Sprintf("Data directory: %s (will be created)", c.DataDir))
		} else {
			result.Errors = append(result.Errors, ValidationError{
				Category: "File Access",
				Item:     "data_dir",
				Message:  fmt.Sprintf("cannot access %s: %v", c.DataDir, err),
			})
		}
	}

	if len(details) > 0 {
		result.Checks = append(result.Checks, ValidationCheck{
			Category: "File Access",
			Message:  "File paths validated",
			Details:  details,
		})
	}
}

// validateAPI checks the backend URL and timeout.
func (c *Config) validateAPI(result *ValidationResult) {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		result.Errors = append(result.Errors, ValidationError{
			Category: "API",
			Item:     "base_url",
			Message:  fmt.Sprintf("%q is not an absolute URL", c.API.BaseURL),
			Fix:      "Set api.base_url to the backend address, e.g. http://localhost:3000",
		})
		return
	}

	details := []string{fmt.Sprintf("Base URL: %s", c.API.BaseURL)}
	if u.Scheme != "https" {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Category: "API",
			Item:     "base_url",
			Message:  "backend URL is not https; credentials travel unencrypted",
		})
	}

	details = append(details, fmt.Sprintf("Timeout: %s", c.API.Timeout))
	result.Checks = append(result.Checks, ValidationCheck{
		Category: "API",
		Message:  "Backend settings validated",
		Details:  details,
	})
}

// validateHistory checks the activity log settings.
func (c *Config) validateHistory(result *ValidationResult) {
	if c.History.MaxEntries < 1 {
		result.Errors = append(result.Errors, ValidationError{
			Category: "History",
			Item:     "max_entries",
			Message:  "must be at least 1",
		})
		return
	}

	if c.History.MaxEntries > 500 {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Category: "History",
			Item:     "max_entries",
			Message:  "large history files slow every mutation; the whole state is rewritten on each change",
		})
	}

	result.Checks = append(result.Checks, ValidationCheck{
		Category: "History",
		Message:  fmt.Sprintf("Keeping %d entries per category", c.History.MaxEntries),
	})
}

// validateKeybindingsDeep checks keybinding configuration.
func (c *Config) validateKeybindingsDeep(result *ValidationResult) {
	if len(c.Keybindings) == 0 {
		result.Checks = append(result.Checks, ValidationCheck{
			Category: "Keybindings",
			Message:  "No keybindings defined (using defaults)",
		})
		return
	}

	keys := make([]string, 0, len(c.Keybindings))
	for k := range c.Keybindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	details := []string{}
	for _, key := range keys {
		kb := c.Keybindings[key]

		if kb.Action == "" {
			result.Errors = append(result.Errors, ValidationError{
				Category: "Keybindings",
				Item:     fmt.Sprintf("key %q", key),
				Message:  "must have an action",
				Fix:      "Add 'action: delete' or 'action: clear'",
			})
			continue
		}

		if !isValidAction(kb.Action) {
			result.Errors = append(result.Errors, ValidationError{
				Category: "Keybindings",
				Item:     fmt.Sprintf("key %q", key),
				Message:  fmt.Sprintf("invalid action %q", kb.Action),
				Fix:      "Use 'delete' or 'clear'",
			})
			continue
		}

		help := kb.Help
		if help == "" {
			help = kb.Action
		}
		details = append(details, fmt.Sprintf("%s: %s (valid)", key, help))

		if kb.Confirm == "" {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Category: "Keybindings",
				Item:     fmt.Sprintf("key %q", key),
				Message:  "no confirmation prompt; the action fires immediately",
			})
		}
	}

	if len(details) > 0 {
		result.Checks = append(result.Checks, ValidationCheck{
			Category: "Keybindings",
			Message:  fmt.Sprintf("%d keybinding(s) defined", len(c.Keybindings)),
			Details:  details,
		})
	}
}
