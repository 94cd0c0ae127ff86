package tui

import (
	lipgloss "github.com/charmbracelet/lipgloss/v2"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/notify"
)

// Modal renders a pending notify.Confirmation as a dialog overlay.
type Modal struct {
	request         *notify.Confirmation
	confirmSelected bool // true = confirm button selected, false = cancel button selected
}

// NewModal creates a modal for the given confirmation request.
func NewModal(request *notify.Confirmation) Modal {
	return Modal{
		request:         request,
		confirmSelected: true, // default to confirm button
	}
}

// ConfirmSelected reports whether the confirm button is selected.
func (m Modal) ConfirmSelected() bool {
	return m.confirmSelected
}

// ToggleSelection switches the selected button.
func (m *Modal) ToggleSelection() {
	m.confirmSelected = !m.confirmSelected
}

// Resolve fires the selected button's callback on the underlying request.
func (m *Modal) Resolve() {
	if m.request == nil {
		return
	}
	if m.confirmSelected {
		m.request.Confirm()
	} else {
		m.request.Cancel()
	}
}

// Cancel resolves the request negatively, regardless of selection.
func (m *Modal) Cancel() {
	if m.request != nil {
		m.request.Cancel()
	}
}

// Overlay renders the modal as a layer over the given background content.
func (m Modal) Overlay(background string, width, height int) string {
	if m.request == nil {
		return background
	}

	// Render buttons with selection state
	var confirmBtn, cancelBtn string
	if m.confirmSelected {
		confirmBtn = modalButtonSelectedStyle.Render("Confirm")
		cancelBtn = modalButtonStyle.Render("Cancel")
	} else {
		confirmBtn = modalButtonStyle.Render("Confirm")
		cancelBtn = modalButtonSelectedStyle.Render("Cancel")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirmBtn, "  ", cancelBtn)
	buttonRow := lipgloss.NewStyle().MarginTop(1).Render(buttons)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		modalTitleStyle.Render("Confirm"),
		"",
		m.request.Message(),
		buttonRow,
		modalHelpStyle.Render("←/→ select  enter confirm  esc cancel"),
	)

	modal := modalStyle.Render(content)

	// Use Compositor/Layer for true overlay (background remains visible)
	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	// Center the modal
	modalW := lipgloss.Width(modal)
	modalH := lipgloss.Height(modal)
	centerX := (width - modalW) / 2
	centerY := (height - modalH) / 2
	modalLayer.X(centerX).Y(centerY).Z(1)

	compositor := lipgloss.NewCompositor(bgLayer, modalLayer)
	return compositor.Render()
}
