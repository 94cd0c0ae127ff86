package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
	"github.com/goddevils777/tgbot3-0-sub001/internal/printer"
)

type RecordCmd struct {
	flags *Flags

	// search and autosearch flags
	keywords string
	groups   int
	messages int

	// livestream flags
	channel      string
	participants int
}

// NewRecordCmd creates a new record command
func NewRecordCmd(flags *Flags) *RecordCmd {
	return &RecordCmd{flags: flags}
}

// Register adds the record command to the application
func (cmd *RecordCmd) Register(app *cli.Command) *cli.Command {
	searchFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "keywords",
			Aliases:     []string{"k"},
			Usage:       "comma-separated keywords",
			Destination: &cmd.keywords,
		},
		&cli.IntFlag{
			Name:        "groups",
			Usage:       "number of groups scanned",
			Destination: &cmd.groups,
		},
		&cli.IntFlag{
			Name:        "messages",
			Usage:       "number of messages matched",
			Destination: &cmd.messages,
		},
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "record",
		Usage:     "Record a bot activity entry",
		UsageText: "tgbot-console record <category> [options]",
		Description: `Append an entry to the activity history.

Mostly useful for scripting around the bot. The web console records
entries on its own; this command covers cron jobs and ad-hoc testing.`,
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "Record a completed keyword search",
				Flags:  searchFlags,
				Action: cmd.runSearch(history.CategorySearch),
			},
			{
				Name:   "autosearch",
				Usage:  "Record a completed autosearch run",
				Flags:  searchFlags,
				Action: cmd.runSearch(history.CategoryAutosearch),
			},
			{
				Name:  "livestream",
				Usage: "Record a monitored livestream",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "channel",
						Usage:       "channel name",
						Destination: &cmd.channel,
					},
					&cli.IntFlag{
						Name:        "participants",
						Usage:       "participant count at recording time",
						Destination: &cmd.participants,
					},
				},
				Action: cmd.runLivestream,
			},
		},
	})

	return app
}

func (cmd *RecordCmd) runSearch(cat history.Category) func(context.Context, *cli.Command) error {
	return func(ctx context.Context, _ *cli.Command) error {
		var keywords []string
		for _, kw := range strings.Split(cmd.keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}

		id, err := cmd.flags.History.Add(ctx, cat, &history.SearchDetails{
			Keywords:      keywords,
			GroupsCount:   cmd.groups,
			MessagesCount: cmd.messages,
		})
		if err != nil {
			return fmt.Errorf("record %s: %w", cat, err)
		}

		printer.Ctx(ctx).Successf("Recorded %s entry %s", cat, id)
		return nil
	}
}

func (cmd *RecordCmd) runLivestream(ctx context.Context, _ *cli.Command) error {
	id, err := cmd.flags.History.Add(ctx, history.CategoryLivestream, &history.LivestreamDetails{
		ChannelName:       cmd.channel,
		ParticipantsCount: cmd.participants,
	})
	if err != nil {
		return fmt.Errorf("record livestream: %w", err)
	}

	printer.Ctx(ctx).Successf("Recorded livestream entry %s", id)
	return nil
}
