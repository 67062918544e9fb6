package results

import (
	"encoding/json"
	"slices"
)

// Search represents a search and its content, such as the MS runs that are
// part of the search.
type Search struct {
	searchUUID string
	msRunNames []string
}

type searchWire struct {
	SearchUUID string   `json:"search_uuid"`
	MSRunNames []string `json:"ms_run_names"`
}

// NewSearch creates a new Search. msRunNames is copied.
func NewSearch(searchUUID string, msRunNames []string) *Search {
	return &Search{
		searchUUID: searchUUID,
		msRunNames: slices.Clone(msRunNames),
	}
}

// EmptySearch creates a Search with no UUID and no MS runs.
func EmptySearch() *Search {
	return &Search{
		msRunNames: []string{},
	}
}

// SearchUUID returns the UUID identifying the search.
func (s *Search) SearchUUID() string {
	return s.searchUUID
}

// MSRunNames returns the names of the MS runs that are part of the search.
// The returned slice must not be modified.
func (s *Search) MSRunNames() []string {
	return s.msRunNames
}

// MarshalJSON implements json.Marshaler.
func (s *Search) MarshalJSON() ([]byte, error) {
	return json.Marshal(searchWire{
		SearchUUID: s.searchUUID,
		MSRunNames: s.msRunNames,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Search) UnmarshalJSON(data []byte) error {
	var wire searchWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	s.searchUUID = wire.SearchUUID
	s.msRunNames = wire.MSRunNames

	return nil
}
