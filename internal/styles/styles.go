// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorRed    = lipgloss.Color("#d75f6b")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorGray   = lipgloss.Color("#565f89")
	ColorWhite  = lipgloss.Color("#c0caf5")
)

// Banner ASCII art for the header.
const Banner = `
 ╔╦╗╔═╗╔╗ ╔═╗╔╦╗
  ║ ║ ╦╠╩╗║ ║ ║
  ╩ ╚═╝╚═╝╚═╝ ╩`

// BannerStyle styles the ASCII art banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// HeaderStyle styles section headers.
var HeaderStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// SubtleStyle styles secondary text.
var SubtleStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// FormTheme returns the huh theme used by console forms.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(ColorBlue).Bold(true)
	t.Focused.Base = t.Focused.Base.BorderForeground(ColorBlue)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorGreen)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(ColorBlue).Foreground(ColorWhite)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(ColorGray)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorRed)

	t.Blurred.Title = t.Blurred.Title.Foreground(ColorGray)

	return t
}
