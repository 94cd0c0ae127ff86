// Package search filters history entries by keyword or channel patterns.
package search

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
)

// Match reports whether value matches the filter pattern. Patterns with
// glob metacharacters use doublestar matching; plain strings match as
// case-insensitive substrings.
func Match(pattern, value string) bool {
	if pattern == "" {
		return true
	}

	pattern = strings.ToLower(pattern)
	value = strings.ToLower(value)

	if strings.ContainsAny(pattern, "*?[{") {
		ok, err := doublestar.Match(pattern, value)
		return err == nil && ok
	}

	return strings.Contains(value, pattern)
}

// MatchEntry reports whether the entry matches the pattern: keywords for
// search and autosearch entries, channel name for livestream entries.
func MatchEntry(pattern string, e history.Entry) bool {
	if pattern == "" {
		return true
	}

	switch d := e.Details.(type) {
	case *history.SearchDetails:
		for _, kw := range d.Keywords {
			if Match(pattern, kw) {
				return true
			}
		}
	case *history.LivestreamDetails:
		return Match(pattern, d.ChannelName)
	}
	return false
}

// FilterEntries returns the entries matching the pattern, preserving order.
func FilterEntries(pattern string, entries []history.Entry) []history.Entry {
	if pattern == "" {
		return entries
	}

	out := make([]history.Entry, 0, len(entries))
	for _, e := range entries {
		if MatchEntry(pattern, e) {
			out = append(out, e)
		}
	}
	return out
}
