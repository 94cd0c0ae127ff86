package history

import (
	"encoding/json"
	"time"
)

// Wire format: three arrays keyed by category, each record flattening its
// payload fields next to id and timestamp. This matches the layout the web
// console persisted under its "telegram_bot_history" storage key, so an
// exported blob from the browser loads unchanged.

type wireSearch struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	SearchDetails
}

type wireLivestream struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	LivestreamDetails
}

type wireState struct {
	Search     []wireSearch     `json:"search"`
	Livestream []wireLivestream `json:"livestream"`
	Autosearch []wireSearch     `json:"autosearch"`
}

// MarshalJSON implements json.Marshaler.
func (s State) MarshalJSON() ([]byte, error) {
	w := wireState{
		Search:     searchToWire(s.Search),
		Livestream: livestreamToWire(s.Livestream),
		Autosearch: searchToWire(s.Autosearch),
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. Missing categories come back
// as empty sequences.
func (s *State) UnmarshalJSON(data []byte) error {
	var w wireState
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	s.Search = searchFromWire(CategorySearch, w.Search)
	s.Livestream = livestreamFromWire(w.Livestream)
	s.Autosearch = searchFromWire(CategoryAutosearch, w.Autosearch)
	return nil
}

func searchToWire(entries []Entry) []wireSearch {
	out := make([]wireSearch, 0, len(entries))
	for _, e := range entries {
		d, ok := e.Details.(*SearchDetails)
		if !ok {
			d = &SearchDetails{}
		}
		out = append(out, wireSearch{ID: e.ID, Timestamp: e.Timestamp, SearchDetails: *d})
	}
	return out
}

func livestreamToWire(entries []Entry) []wireLivestream {
	out := make([]wireLivestream, 0, len(entries))
	for _, e := range entries {
		d, ok := e.Details.(*LivestreamDetails)
		if !ok {
			d = &LivestreamDetails{}
		}
		out = append(out, wireLivestream{ID: e.ID, Timestamp: e.Timestamp, LivestreamDetails: *d})
	}
	return out
}

func searchFromWire(c Category, recs []wireSearch) []Entry {
	out := make([]Entry, 0, len(recs))
	for _, r := range recs {
		d := r.SearchDetails
		out = append(out, Entry{ID: r.ID, Timestamp: r.Timestamp, Category: c, Details: &d})
	}
	return out
}

func livestreamFromWire(recs []wireLivestream) []Entry {
	out := make([]Entry, 0, len(recs))
	for _, r := range recs {
		d := r.LivestreamDetails
		out = append(out, Entry{ID: r.ID, Timestamp: r.Timestamp, Category: CategoryLivestream, Details: &d})
	}
	return out
}
