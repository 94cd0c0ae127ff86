package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
)

// timestampFormat is the locale-style timestamp shown on every row.
const timestampFormat = "Jan 2, 2006 15:04"

// EntryItem wraps a history entry for the list component.
type EntryItem struct {
	Entry history.Entry
}

// FilterValue returns the value used for filtering.
func (i EntryItem) FilterValue() string {
	return i.Entry.Summary()
}

// EntryDelegate handles rendering of history entries in the list.
type EntryDelegate struct{}

// Height returns the height of each item.
func (d EntryDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d EntryDelegate) Spacing() int {
	return 1
}

// Update handles item updates.
func (d EntryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders a single item.
func (d EntryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entryItem, ok := item.(EntryItem)
	if !ok {
		return
	}

	e := entryItem.Entry
	isSelected := index == m.Index()

	title := e.Summary()
	meta := fmt.Sprintf("%s  %s", e.Timestamp.Local().Format(timestampFormat), e.ID)

	var lines []string
	if isSelected {
		lines = []string{
			selectedStyle.Render("│ " + title),
			timestampStyle.Render("│ " + meta),
		}
	} else {
		lines = []string{
			normalStyle.Render("  " + title),
			timestampStyle.Render("  " + meta),
		}
	}

	_, _ = fmt.Fprint(w, strings.Join(lines, "\n"))
}
