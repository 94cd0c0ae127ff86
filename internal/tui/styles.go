// Package tui implements the Bubble Tea TUI for the console.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

// Tokyo Night color palette.
var (
	colorGreen  = lipgloss.Color("#9ece6a") // green
	colorYellow = lipgloss.Color("#e0af68") // yellow
	colorRed    = lipgloss.Color("#d75f6b") // red
	colorBlue   = lipgloss.Color("#7aa2f7") // blue
	colorGray   = lipgloss.Color("#565f89") // comment
	colorWhite  = lipgloss.Color("#c0caf5") // foreground
)

// Styles used for rendering the TUI (lipgloss v1 for bubbles compatibility).
var (
	// Title style for the list header.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			PaddingLeft(1)

	// Active category tab.
	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true).
			Padding(0, 1)

	// Inactive category tab.
	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				Padding(0, 1)

	// Selected item style (matches border color).
	selectedStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// Normal item style (no color, uses terminal default).
	normalStyle = lipgloss.NewStyle()

	// Timestamp style for subtle metadata text.
	timestampStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	// Placeholder style for empty categories.
	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				Italic(true).
				Padding(1, 2)

	// Guest/user indicator in the header.
	userStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	guestStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	// Help line at the bottom.
	helpStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			PaddingLeft(1)
)

// bannerStyle positions the shared ASCII art banner.
var bannerStyle = lipgloss.NewStyle().
	Foreground(colorBlue).
	Bold(true).
	PaddingLeft(1)

// Modal styles using lipgloss v2 for canvas/layer support.
var (
	modalStyle = lipglossv2.NewStyle().
			Border(lipglossv2.RoundedBorder()).
			BorderForeground(lipglossv2.Color("#7aa2f7")).
			Padding(1, 2)

	modalTitleStyle = lipglossv2.NewStyle().
			Bold(true).
			Foreground(lipglossv2.Color("#7aa2f7"))

	modalButtonStyle = lipglossv2.NewStyle().
				Foreground(lipglossv2.Color("#565f89")).
				Padding(0, 2)

	modalButtonSelectedStyle = lipglossv2.NewStyle().
					Foreground(lipglossv2.Color("#c0caf5")).
					Background(lipglossv2.Color("#7aa2f7")).
					Padding(0, 2)

	modalHelpStyle = lipglossv2.NewStyle().
			Foreground(lipglossv2.Color("#565f89")).
			MarginTop(1)
)

// Toast styles keyed by kind, lipgloss v2 for overlay layers.
var (
	toastSuccessStyle = lipglossv2.NewStyle().
				Border(lipglossv2.RoundedBorder()).
				BorderForeground(lipglossv2.Color("#9ece6a")).
				Foreground(lipglossv2.Color("#c0caf5")).
				Padding(0, 1)

	toastErrorStyle = lipglossv2.NewStyle().
			Border(lipglossv2.RoundedBorder()).
			BorderForeground(lipglossv2.Color("#d75f6b")).
			Foreground(lipglossv2.Color("#c0caf5")).
			Padding(0, 1)

	toastWarningStyle = lipglossv2.NewStyle().
				Border(lipglossv2.RoundedBorder()).
				BorderForeground(lipglossv2.Color("#e0af68")).
				Foreground(lipglossv2.Color("#c0caf5")).
				Padding(0, 1)

	toastInfoStyle = lipglossv2.NewStyle().
			Border(lipglossv2.RoundedBorder()).
			BorderForeground(lipglossv2.Color("#7aa2f7")).
			Foreground(lipglossv2.Color("#c0caf5")).
			Padding(0, 1)

	toastHidingStyle = lipglossv2.NewStyle().
				Border(lipglossv2.RoundedBorder()).
				BorderForeground(lipglossv2.Color("#565f89")).
				Foreground(lipglossv2.Color("#565f89")).
				Padding(0, 1)
)
