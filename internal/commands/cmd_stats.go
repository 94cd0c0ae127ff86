package commands

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/goddevils777/tgbot3-0-sub001/internal/printer"
)

type StatsCmd struct {
	flags *Flags

	// Command-specific flags
	yes bool
}

// NewStatsCmd creates a new stats command
func NewStatsCmd(flags *Flags) *StatsCmd {
	return &StatsCmd{flags: flags}
}

// Register adds the stats command to the application
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stats",
		Usage:     "Show backend API usage statistics",
		UsageText: "tgbot-console stats",
		Description: `Fetches per-endpoint usage counters from the web console backend.

Requires an admin session. Run 'tgbot-console auth login' first.`,
		Action: cmd.run,
		Commands: []*cli.Command{
			{
				Name:      "reset",
				Usage:     "Reset all usage counters",
				UsageText: "tgbot-console stats reset --yes",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "yes",
						Aliases:     []string{"y"},
						Usage:       "confirm the reset",
						Destination: &cmd.yes,
					},
				},
				Action: cmd.runReset,
			},
		},
	})

	return app
}

func (cmd *StatsCmd) run(ctx context.Context, c *cli.Command) error {
	report, err := cmd.flags.Client.Stats(ctx)
	if err != nil {
		return fmt.Errorf("fetch stats: %w", err)
	}

	if len(report.Stats) == 0 {
		printer.Ctx(ctx).Infof("No statistics recorded yet")
		return nil
	}

	out := c.Root().Writer
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ENDPOINT\tCALLS\tAVG MS\tMIN MS\tMAX MS\tERR %")

	endpoints := make([]string, 0, len(report.Stats))
	for endpoint := range report.Stats {
		endpoints = append(endpoints, endpoint)
	}
	sort.Slice(endpoints, func(i, j int) bool {
		a, b := report.Stats[endpoints[i]], report.Stats[endpoints[j]]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return endpoints[i] < endpoints[j]
	})

	for _, endpoint := range endpoints {
		s := report.Stats[endpoint]
		_, _ = fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%.1f\t%.1f\n",
			endpoint, s.Count, s.AvgTime, s.MinTime, s.MaxTime, s.ErrorRate)
	}

	return w.Flush()
}

func (cmd *StatsCmd) runReset(ctx context.Context, _ *cli.Command) error {
	if !cmd.yes {
		return fmt.Errorf("refusing to reset statistics without --yes")
	}

	message, err := cmd.flags.Client.ResetStats(ctx)
	if err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}

	if message == "" {
		message = "Statistics reset"
	}
	printer.Ctx(ctx).Successf("%s", message)
	return nil
}
