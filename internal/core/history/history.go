// Package history defines the bot activity log: typed, categorized records
// with a bounded, newest-first sequence per category.
package history

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goddevils777/tgbot3-0-sub001/pkg/randid"
)

// MaxEntries is the number of records retained per category. Older records
// are silently discarded when a category grows past it.
const MaxEntries = 50

// Category identifies one of the fixed history feeds.
type Category string

const (
	CategorySearch     Category = "search"
	CategoryLivestream Category = "livestream"
	CategoryAutosearch Category = "autosearch"
)

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{CategorySearch, CategoryLivestream, CategoryAutosearch}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySearch, CategoryLivestream, CategoryAutosearch:
		return true
	}
	return false
}

// Title returns the human-readable name of the category.
func (c Category) Title() string {
	switch c {
	case CategorySearch:
		return "Search"
	case CategoryLivestream:
		return "Livestream"
	case CategoryAutosearch:
		return "Autosearch"
	}
	return string(c)
}

// ParseCategory converts user input into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q (want search, livestream, or autosearch)", s)
	}
	return c, nil
}

// Details is the category-specific payload of an entry. The two
// implementations cover the three categories: search and autosearch share
// SearchDetails, livestream uses LivestreamDetails.
type Details interface {
	// Summary returns a one-line description with fallbacks for missing
	// optional fields.
	Summary() string

	isDetails()
}

// SearchDetails is the payload for search and autosearch entries. All
// fields are optional on the wire.
type SearchDetails struct {
	Keywords      []string `json:"keywords,omitempty"`
	GroupsCount   int      `json:"groupsCount,omitempty"`
	MessagesCount int      `json:"messagesCount,omitempty"`
}

func (d *SearchDetails) isDetails() {}

// KeywordText returns the joined keyword list, or a fallback when empty.
func (d *SearchDetails) KeywordText() string {
	if len(d.Keywords) == 0 {
		return "no keywords"
	}
	return strings.Join(d.Keywords, ", ")
}

func (d *SearchDetails) Summary() string {
	return fmt.Sprintf("%s (%d groups, %d messages)", d.KeywordText(), d.GroupsCount, d.MessagesCount)
}

// LivestreamDetails is the payload for livestream entries.
type LivestreamDetails struct {
	ChannelName       string `json:"channelName,omitempty"`
	ParticipantsCount int    `json:"participantsCount,omitempty"`
}

func (d *LivestreamDetails) isDetails() {}

// Channel returns the channel name, or a fallback when unset.
func (d *LivestreamDetails) Channel() string {
	if d.ChannelName == "" {
		return "unknown channel"
	}
	return d.ChannelName
}

func (d *LivestreamDetails) Summary() string {
	return fmt.Sprintf("%s (%d participants)", d.Channel(), d.ParticipantsCount)
}

// Matches reports whether details d carry the payload shape category c
// stores.
func Matches(c Category, d Details) bool {
	switch d.(type) {
	case *SearchDetails:
		return c == CategorySearch || c == CategoryAutosearch
	case *LivestreamDetails:
		return c == CategoryLivestream
	}
	return false
}

// Entry is one recorded history event.
type Entry struct {
	ID        string
	Timestamp time.Time
	Category  Category
	Details   Details
}

// NewEntry creates an entry for category c with a fresh ID and the current
// time. A nil d gets the category's empty payload shape.
func NewEntry(c Category, d Details) Entry {
	if d == nil {
		if c == CategoryLivestream {
			d = &LivestreamDetails{}
		} else {
			d = &SearchDetails{}
		}
	}

	now := time.Now()
	return Entry{
		ID:        randid.TimeOrdered(now),
		Timestamp: now,
		Category:  c,
		Details:   d,
	}
}

// Summary returns the one-line description of the entry's payload.
func (e Entry) Summary() string {
	if e.Details == nil {
		return ""
	}
	return e.Details.Summary()
}

// DetailURL returns the web console path for this entry's detail view.
func (e Entry) DetailURL() string {
	v := url.Values{}
	v.Set("type", string(e.Category))
	v.Set("id", e.ID)
	return "/history/detail?" + v.Encode()
}

// State is the full history, one newest-first sequence per category.
type State struct {
	Search     []Entry
	Livestream []Entry
	Autosearch []Entry
}

// DefaultState returns the empty state with all known categories present.
func DefaultState() State {
	return State{
		Search:     []Entry{},
		Livestream: []Entry{},
		Autosearch: []Entry{},
	}
}

// Entries returns the sequence for category c, newest first.
func (s State) Entries(c Category) []Entry {
	switch c {
	case CategorySearch:
		return s.Search
	case CategoryLivestream:
		return s.Livestream
	case CategoryAutosearch:
		return s.Autosearch
	}
	return nil
}

// SetEntries replaces the sequence for category c.
func (s *State) SetEntries(c Category, entries []Entry) {
	switch c {
	case CategorySearch:
		s.Search = entries
	case CategoryLivestream:
		s.Livestream = entries
	case CategoryAutosearch:
		s.Autosearch = entries
	}
}

// Find returns the entry with the given ID in category c.
func (s State) Find(c Category, id string) (Entry, bool) {
	for _, e := range s.Entries(c) {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
