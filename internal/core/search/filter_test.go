package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   string
		want    bool
	}{
		{name: "empty pattern matches anything", pattern: "", value: "whatever", want: true},
		{name: "substring", pattern: "crypt", value: "cryptocurrency", want: true},
		{name: "substring case insensitive", pattern: "BTC", value: "btc news", want: true},
		{name: "substring miss", pattern: "eth", value: "btc news", want: false},
		{name: "glob star", pattern: "crypto*", value: "cryptonews", want: true},
		{name: "glob star miss", pattern: "crypto*", value: "the crypto", want: false},
		{name: "glob question mark", pattern: "bt?", value: "btc", want: true},
		{name: "glob alternatives", pattern: "{btc,eth}", value: "eth", want: true},
		{name: "glob case insensitive", pattern: "BTC*", value: "btc-usd", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.pattern, tt.value))
		})
	}
}

func TestMatchEntry(t *testing.T) {
	searchEntry := history.Entry{
		Category: history.CategorySearch,
		Details:  &history.SearchDetails{Keywords: []string{"bitcoin", "airdrop"}},
	}
	liveEntry := history.Entry{
		Category: history.CategoryLivestream,
		Details:  &history.LivestreamDetails{ChannelName: "cryptonews"},
	}

	assert.True(t, MatchEntry("airdrop", searchEntry))
	assert.True(t, MatchEntry("bit*", searchEntry))
	assert.False(t, MatchEntry("solana", searchEntry))

	assert.True(t, MatchEntry("crypto", liveEntry))
	assert.False(t, MatchEntry("bitcoin", liveEntry))

	assert.True(t, MatchEntry("", liveEntry))
}

func TestFilterEntries(t *testing.T) {
	entries := []history.Entry{
		{ID: "a", Details: &history.SearchDetails{Keywords: []string{"bitcoin"}}},
		{ID: "b", Details: &history.SearchDetails{Keywords: []string{"solana"}}},
		{ID: "c", Details: &history.SearchDetails{Keywords: []string{"bitdao"}}},
	}

	got := FilterEntries("bit*", entries)
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	assert.Len(t, FilterEntries("", entries), 3)
	assert.Empty(t, FilterEntries("doge", entries))
}
