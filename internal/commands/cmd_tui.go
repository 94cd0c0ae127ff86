package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/notify"
	"github.com/goddevils777/tgbot3-0-sub001/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{
		flags: flags,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return nil
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(_ context.Context, _ *cli.Command) error {
	logger := log.With().Str("component", "notify").Logger()
	center := notify.New(logger, notify.Options{
		DefaultDuration: cmd.flags.Config.Notifications.Duration(),
	})

	m := tui.New(cmd.flags.Config, cmd.flags.History, center, tui.Options{
		Client: cmd.flags.Client,
		Auth:   cmd.flags.Auth,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	// The center drives toast and modal transitions from its own timers, so
	// the program needs a nudge to repaint when a phase changes.
	center.SetOnChange(func() {
		p.Send(tui.NotifyChanged())
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
