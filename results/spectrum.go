package results

import (
	"encoding/json"
	"iter"
	"slices"
)

// Spectrum represents a measured spectrum and its content, such as the
// identifications derived from it.
//
// The peak list is stored as two parallel arrays of equal length, one
// holding the m/z values and one the intensities.
type Spectrum struct {
	searchUUID      string
	msRunName       string
	spectrumID      string
	mz              []float64
	intensity       []float64
	identifications []*Identification
}

type spectrumWire struct {
	SearchUUID      string            `json:"search_uuid"`
	MSRunName       string            `json:"ms_run_name"`
	SpectrumID      string            `json:"spectrum_id"`
	MZ              []float64         `json:"mz"`
	Intensity       []float64         `json:"intensity"`
	Identifications []*Identification `json:"identifications"`
}

// NewSpectrum creates a new Spectrum. mz and intensity form the peak list
// and must have the same length; both are copied.
func NewSpectrum(searchUUID, msRunName, spectrumID string, mz, intensity []float64, identifications []*Identification) (*Spectrum, error) {
	if len(mz) != len(intensity) {
		return nil, &ErrPeakLengthMismatch{MZ: len(mz), Intensity: len(intensity)}
	}

	return &Spectrum{
		searchUUID:      searchUUID,
		msRunName:       msRunName,
		spectrumID:      spectrumID,
		mz:              slices.Clone(mz),
		intensity:       slices.Clone(intensity),
		identifications: slices.Clone(identifications),
	}, nil
}

// SearchUUID returns the UUID of the search the spectrum belongs to.
func (s *Spectrum) SearchUUID() string {
	return s.searchUUID
}

// MSRunName returns the name of the MS run the spectrum was measured in.
func (s *Spectrum) MSRunName() string {
	return s.msRunName
}

// SpectrumID returns the ID of the spectrum.
func (s *Spectrum) SpectrumID() string {
	return s.spectrumID
}

// MZ returns the m/z values of the peak list.
// The returned slice must not be modified.
func (s *Spectrum) MZ() []float64 {
	return s.mz
}

// Intensity returns the intensities of the peak list.
// The returned slice must not be modified.
func (s *Spectrum) Intensity() []float64 {
	return s.intensity
}

// Identifications returns the identifications derived from the spectrum.
// The returned slice must not be modified.
func (s *Spectrum) Identifications() []*Identification {
	return s.identifications
}

// NumPeaks returns the number of peaks in the peak list.
func (s *Spectrum) NumPeaks() int {
	return len(s.mz)
}

// Peaks returns an iterator over the peak list as (m/z, intensity) pairs.
func (s *Spectrum) Peaks() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i, mz := range s.mz {
			if !yield(mz, s.intensity[i]) {
				return
			}
		}
	}
}

// Release releases the tables retained by the spectrum's identifications.
// The identifications must not be used afterwards.
func (s *Spectrum) Release() {
	for _, id := range s.identifications {
		id.Release()
	}
}

// MarshalJSON implements json.Marshaler.
func (s *Spectrum) MarshalJSON() ([]byte, error) {
	return json.Marshal(spectrumWire{
		SearchUUID:      s.searchUUID,
		MSRunName:       s.msRunName,
		SpectrumID:      s.spectrumID,
		MZ:              s.mz,
		Intensity:       s.intensity,
		Identifications: s.identifications,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Spectrum) UnmarshalJSON(data []byte) error {
	var wire spectrumWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	if len(wire.MZ) != len(wire.Intensity) {
		for _, id := range wire.Identifications {
			id.Release()
		}
		return &ErrPeakLengthMismatch{MZ: len(wire.MZ), Intensity: len(wire.Intensity)}
	}

	s.searchUUID = wire.SearchUUID
	s.msRunName = wire.MSRunName
	s.spectrumID = wire.SpectrumID
	s.mz = wire.MZ
	s.intensity = wire.Intensity
	s.identifications = wire.Identifications

	return nil
}
