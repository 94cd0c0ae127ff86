package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
	"github.com/goddevils777/tgbot3-0-sub001/internal/styles"
)

// chromeHeight is the vertical space taken by the banner, tabs and help line.
const chromeHeight = 9

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(bannerStyle.Render(styles.Banner))
	b.WriteString("\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.state {
	case stateDetail:
		b.WriteString(m.detail.View())
	case stateStats:
		b.WriteString(m.stats.View())
	case stateLoading:
		b.WriteString("  " + m.spinner.View() + " " + m.loadingMessage + "...")
	case stateLoggingIn:
		if m.loginForm != nil {
			b.WriteString(m.loginForm.Form().View())
		}
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))

	out := b.String()

	if m.state == stateConfirming && m.width > 0 {
		out = m.modal.Overlay(out, m.width, m.height)
	}

	if toasts := m.center.Active(); len(toasts) > 0 && m.width > 0 {
		out = overlayToasts(out, toasts, m.width)
	}

	return out
}

// renderHeader draws the category tabs and the session indicator.
func (m Model) renderHeader() string {
	tabs := make([]string, 0, len(history.Categories()))
	for i, c := range history.Categories() {
		label := c.Title()
		if i == m.category {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	session := guestStyle.Render("guest")
	if m.user != nil {
		name := m.user.Username
		if m.user.IsAdmin {
			name += " (admin)"
		}
		session = userStyle.Render(name)
	}

	gap := m.width - lipgloss.Width(row) - lipgloss.Width(session) - 2
	if gap < 1 {
		gap = 1
	}

	return row + strings.Repeat(" ", gap) + session
}

// renderList draws the history list or the empty-category placeholder.
func (m Model) renderList() string {
	if len(m.histState.Entries(m.currentCategory())) == 0 {
		return placeholderStyle.Render(emptyPlaceholder(m.currentCategory()))
	}
	return m.list.View()
}

// emptyPlaceholder returns the per-category message for an empty list.
func emptyPlaceholder(c history.Category) string {
	switch c {
	case history.CategoryLivestream:
		return "No livestream reports yet."
	case history.CategoryAutosearch:
		return "No autosearch runs yet."
	default:
		return "No searches yet. Run a search from the bot to see it here."
	}
}

// helpLine returns the context help for the current state.
func (m Model) helpLine() string {
	switch m.state {
	case stateDetail:
		return "esc back  q quit"
	case stateStats:
		return "r reset  esc back  q quit"
	case stateLoggingIn:
		return "esc cancel"
	case stateConfirming:
		return ""
	case stateLoading:
		return "ctrl+c quit"
	}
	return "tab switch  enter detail  d delete  C clear  s stats  i sign in  r reload  q quit"
}
