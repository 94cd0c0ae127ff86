package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/apiclient"
	"github.com/goddevils777/tgbot3-0-sub001/internal/printer"
	"github.com/goddevils777/tgbot3-0-sub001/internal/styles"
)

type AuthCmd struct {
	flags *Flags

	// Command-specific flags
	username string
	password string
	register bool
}

// NewAuthCmd creates a new auth command
func NewAuthCmd(flags *Flags) *AuthCmd {
	return &AuthCmd{flags: flags}
}

// Register adds the auth command to the application
func (cmd *AuthCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "auth",
		Usage:     "Manage the backend login session",
		UsageText: "tgbot-console auth <login|logout|whoami>",
		Commands: []*cli.Command{
			{
				Name:      "login",
				Usage:     "Sign in to the web console backend",
				UsageText: "tgbot-console auth login [options]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "username",
						Aliases:     []string{"u"},
						Usage:       "account username (prompted when omitted)",
						Destination: &cmd.username,
					},
					&cli.StringFlag{
						Name:        "password",
						Aliases:     []string{"p"},
						Usage:       "account password (prompted when omitted)",
						Destination: &cmd.password,
					},
					&cli.BoolFlag{
						Name:        "register",
						Usage:       "create a new account instead of signing in",
						Destination: &cmd.register,
					},
				},
				Action: cmd.runLogin,
			},
			{
				Name:   "logout",
				Usage:  "Drop the cached session",
				Action: cmd.runLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Show the authenticated user",
				Action: cmd.runWhoami,
			},
		},
	})

	return app
}

func (cmd *AuthCmd) runLogin(ctx context.Context, _ *cli.Command) error {
	if cmd.username == "" || cmd.password == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("missing credentials; pass --username and --password when stdin is not a terminal")
		}
		if err := cmd.promptCredentials(); err != nil {
			return err
		}
	}

	var (
		token string
		err   error
	)
	if cmd.register {
		token, err = cmd.flags.Client.Register(ctx, cmd.username, cmd.password)
	} else {
		token, err = cmd.flags.Client.Login(ctx, cmd.username, cmd.password)
	}
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := cmd.flags.Auth.Set(ctx, token, cmd.username); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	printer.Ctx(ctx).Successf("Signed in as %s", cmd.username)
	return nil
}

func (cmd *AuthCmd) promptCredentials() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&cmd.username).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("username is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&cmd.password).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("password is required")
					}
					return nil
				}),
		),
	).WithTheme(styles.FormTheme())

	return form.Run()
}

func (cmd *AuthCmd) runLogout(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	// Best effort on the backend side; the cached token is dropped anyway.
	if err := cmd.flags.Client.Logout(ctx); err != nil && !errors.Is(err, apiclient.ErrUnauthenticated) {
		p.Warnf("Backend logout failed: %s", err)
	}

	if err := cmd.flags.Auth.Delete(ctx); err != nil {
		return fmt.Errorf("drop session: %w", err)
	}

	p.Successf("Signed out")
	return nil
}

func (cmd *AuthCmd) runWhoami(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	user, err := cmd.flags.Client.Session(ctx)
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthenticated) {
			p.Infof("Not signed in")
			return nil
		}
		return fmt.Errorf("check session: %w", err)
	}

	if user.IsAdmin {
		p.Infof("%s (admin)", user.Username)
	} else {
		p.Infof("%s", user.Username)
	}
	return nil
}
