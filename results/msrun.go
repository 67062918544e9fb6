package results

import (
	"encoding/json"
	"slices"
)

// MSRun represents an MS run and its content, such as the spectra that were
// measured during the run.
type MSRun struct {
	searchUUID string
	msRunName  string
	spectraIDs []string
}

type msRunWire struct {
	SearchUUID string   `json:"search_uuid"`
	MSRunName  string   `json:"ms_run_name"`
	SpectraIDs []string `json:"spectra_ids"`
}

// NewMSRun creates a new MSRun. spectraIDs is copied.
func NewMSRun(searchUUID, msRunName string, spectraIDs []string) *MSRun {
	return &MSRun{
		searchUUID: searchUUID,
		msRunName:  msRunName,
		spectraIDs: slices.Clone(spectraIDs),
	}
}

// EmptyMSRun creates an MSRun with no name and no spectra.
func EmptyMSRun() *MSRun {
	return &MSRun{
		spectraIDs: []string{},
	}
}

// SearchUUID returns the UUID of the search the run belongs to.
func (m *MSRun) SearchUUID() string {
	return m.searchUUID
}

// MSRunName returns the name of the MS run.
func (m *MSRun) MSRunName() string {
	return m.msRunName
}

// SpectraIDs returns the IDs of the spectra measured during the run.
// The returned slice must not be modified.
func (m *MSRun) SpectraIDs() []string {
	return m.spectraIDs
}

// MarshalJSON implements json.Marshaler.
func (m *MSRun) MarshalJSON() ([]byte, error) {
	return json.Marshal(msRunWire{
		SearchUUID: m.searchUUID,
		MSRunName:  m.msRunName,
		SpectraIDs: m.spectraIDs,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *MSRun) UnmarshalJSON(data []byte) error {
	var wire msRunWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	m.searchUUID = wire.SearchUUID
	m.msRunName = wire.MSRunName
	m.spectraIDs = wire.SpectraIDs

	return nil
}
