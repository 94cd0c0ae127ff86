package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
	"github.com/goddevils777/tgbot3-0-sub001/internal/core/search"
	"github.com/goddevils777/tgbot3-0-sub001/internal/printer"
)

type HistoryCmd struct {
	flags *Flags

	// Command-specific flags
	category string
	keyword  string
}

// NewHistoryCmd creates a new history command
func NewHistoryCmd(flags *Flags) *HistoryCmd {
	return &HistoryCmd{flags: flags}
}

// Register adds the history command to the application
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "View or manage bot activity history",
		UsageText: "tgbot-console history [options]",
		Description: `View the recorded bot activity.

By default, lists entries across all categories, newest first. Use
--category to limit output to one category and --keyword to filter
search entries by keyword (glob patterns like 'crypto*' are supported).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "category",
				Aliases:     []string{"t"},
				Usage:       "limit to one category (search, livestream, autosearch)",
				Destination: &cmd.category,
			},
			&cli.StringFlag{
				Name:        "keyword",
				Aliases:     []string{"k"},
				Usage:       "filter entries by keyword or channel name",
				Destination: &cmd.keyword,
			},
		},
		Action: cmd.runList,
		Commands: []*cli.Command{
			{
				Name:      "rm",
				Usage:     "Remove a single history entry",
				UsageText: "tgbot-console history rm <category> <id>",
				Action:    cmd.runRemove,
			},
			{
				Name:      "clear",
				Usage:     "Remove all entries in a category, or everywhere",
				UsageText: "tgbot-console history clear [category]",
				Action:    cmd.runClear,
			},
		},
	})

	return app
}

func (cmd *HistoryCmd) runList(ctx context.Context, c *cli.Command) error {
	categories := history.Categories()
	if cmd.category != "" {
		cat, err := history.ParseCategory(cmd.category)
		if err != nil {
			return err
		}
		categories = []history.Category{cat}
	}

	state := cmd.flags.History.Load(ctx)

	total := 0
	out := c.Root().Writer
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tID\tSUMMARY\tTIME")

	for _, cat := range categories {
		entries := state.Entries(cat)
		if cmd.keyword != "" {
			entries = search.FilterEntries(cmd.keyword, entries)
		}

		for _, e := range entries {
			summary := e.Summary()
			if len(summary) > 60 {
				summary = summary[:57] + "..."
			}

			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cat,
				e.ID,
				summary,
				e.Timestamp.Format("2006-01-02 15:04:05"),
			)
		}
		total += len(entries)
	}

	if total == 0 {
		printer.Ctx(ctx).Infof("No history entries")
		return nil
	}

	return w.Flush()
}

func (cmd *HistoryCmd) runRemove(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected <category> <id>, got %d arguments", c.Args().Len())
	}

	cat, err := history.ParseCategory(c.Args().Get(0))
	if err != nil {
		return err
	}

	id := c.Args().Get(1)
	if err := cmd.flags.History.Remove(ctx, cat, id); err != nil {
		return fmt.Errorf("remove entry: %w", err)
	}

	printer.Ctx(ctx).Successf("Removed %s from %s history", id, cat)
	return nil
}

func (cmd *HistoryCmd) runClear(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if c.Args().Len() > 0 {
		cat, err := history.ParseCategory(c.Args().First())
		if err != nil {
			return err
		}

		if err := cmd.flags.History.Clear(ctx, cat); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}

		p.Successf("%s history cleared", cat.Title())
		return nil
	}

	for _, cat := range history.Categories() {
		if err := cmd.flags.History.Clear(ctx, cat); err != nil {
			return fmt.Errorf("clear %s history: %w", cat, err)
		}
	}

	p.Successf("All history cleared")
	return nil
}
