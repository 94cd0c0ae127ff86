package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/config"
	"github.com/goddevils777/tgbot3-0-sub001/internal/printer"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "tgbot-console config validate [options]",
				Description: "Validates the configuration file, checking file access, the backend URL, history limits, and keybindings.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	result := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)

	if cmd.format == "json" {
		return cmd.outputJSON(c, result)
	}

	return cmd.outputText(p, result)
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, result *config.ValidationResult) error {
	out := struct {
		Valid    bool                       `json:"valid"`
		Errors   []config.ValidationError   `json:"errors,omitempty"`
		Warnings []config.ValidationWarning `json:"warnings,omitempty"`
		Checks   []config.ValidationCheck   `json:"checks,omitempty"`
	}{
		Valid:    result.IsValid(),
		Errors:   result.Errors,
		Warnings: result.Warnings,
		Checks:   result.Checks,
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	if !result.IsValid() {
		return fmt.Errorf("configuration has %d error(s)", len(result.Errors))
	}
	return nil
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, result *config.ValidationResult) error {
	for _, check := range result.Checks {
		p.Section(check.Category)
		p.CheckItem(check.Message, strings.Join(check.Details, ", "))
	}

	if len(result.Warnings) > 0 {
		p.Section("Warnings")
		for _, warn := range result.Warnings {
			p.WarnItem(itemLabel(warn.Category, warn.Item), warn.Message)
		}
	}

	if len(result.Errors) > 0 {
		p.Section("Errors")
		for _, e := range result.Errors {
			p.FailItem(itemLabel(e.Category, e.Item), e.Message)
			if e.Fix != "" {
				p.Printf("      fix: %s", e.Fix)
			}
		}
		p.Printf("")
		return fmt.Errorf("configuration has %d error(s)", len(result.Errors))
	}

	p.Printf("")
	if len(result.Warnings) > 0 {
		p.Successf("Configuration is valid (%d warning(s))", len(result.Warnings))
	} else {
		p.Successf("Configuration is valid")
	}
	return nil
}

func itemLabel(category, item string) string {
	if item == "" {
		return category
	}
	return category + " / " + item
}
