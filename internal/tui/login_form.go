package tui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/goddevils777/tgbot3-0-sub001/internal/styles"
)

// LoginForm wraps a huh.Form for backend authentication.
type LoginForm struct {
	form     *huh.Form
	username string
	password string
	register bool
}

// NewLoginForm creates a login form. When register is true the submission
// creates an account instead of signing in.
func NewLoginForm(register bool) *LoginForm {
	f := &LoginForm{register: register}

	title := "Sign in"
	if register {
		title = "Create account"
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title+" - username").
				Value(&f.username).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("username is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("password is required")
					}
					return nil
				}),
		),
	).WithTheme(styles.FormTheme())

	return f
}

// Form returns the underlying huh.Form for tea.Model integration.
func (f *LoginForm) Form() *huh.Form {
	return f.form
}

// SetForm replaces the wrapped form after an Update cycle.
func (f *LoginForm) SetForm(form *huh.Form) {
	f.form = form
}

// Register reports whether this submission creates an account.
func (f *LoginForm) Register() bool {
	return f.register
}

// Credentials returns the entered username and password.
func (f *LoginForm) Credentials() (username, password string) {
	return f.username, f.password
}
