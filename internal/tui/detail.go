package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
)

// DetailView renders one history entry, keyed by category and ID.
type DetailView struct {
	entry history.Entry
	width int
}

// NewDetailView creates a detail view for the given entry.
func NewDetailView(entry history.Entry, width int) DetailView {
	return DetailView{entry: entry, width: width}
}

// Entry returns the entry being shown.
func (v DetailView) Entry() history.Entry {
	return v.entry
}

// View renders the entry as glamour-formatted markdown.
func (v DetailView) View() string {
	md := v.markdown()

	width := v.width - 4
	if width < 20 {
		width = 20
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (v DetailView) markdown() string {
	e := v.entry

	var b strings.Builder
	fmt.Fprintf(&b, "# %s entry\n\n", e.Category.Title())
	fmt.Fprintf(&b, "**ID:** `%s`\n\n", e.ID)
	fmt.Fprintf(&b, "**When:** %s\n\n", e.Timestamp.Local().Format(timestampFormat))

	switch d := e.Details.(type) {
	case *history.SearchDetails:
		fmt.Fprintf(&b, "**Keywords:** %s\n\n", d.KeywordText())
		fmt.Fprintf(&b, "**Groups:** %d\n\n", d.GroupsCount)
		fmt.Fprintf(&b, "**Messages:** %d\n\n", d.MessagesCount)
	case *history.LivestreamDetails:
		fmt.Fprintf(&b, "**Channel:** %s\n\n", d.Channel())
		fmt.Fprintf(&b, "**Participants:** %d\n\n", d.ParticipantsCount)
	}

	fmt.Fprintf(&b, "---\n\nWeb console: `%s`\n", e.DetailURL())
	return b.String()
}
