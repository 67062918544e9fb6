package results

import (
	"encoding/json"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/hupe1980/mzgo/frame"
)

// ScoreColumn is the PSM column holding the primary search engine score
// (xcorr, for Comet).
const ScoreColumn = "xcorr"

// Identification holds the PSMs and goodness of fit for one charge state of
// a spectrum's precursor.
//
// Both tables are optional. A nil table means the data was never produced,
// while a zero-row table means it was produced and came back empty; the
// accessors preserve that distinction. Non-nil tables are retained by the
// identification and stay valid until Release is called. Returned records
// are borrowed, not transferred; callers that keep one beyond the life of
// the identification must retain it themselves.
type Identification struct {
	goodnesses arrow.Record
	psms       arrow.Record
	precursor  float64
	charge     uint8
	released   bool
}

type identificationWire struct {
	Goodnesses []byte  `json:"goodnesses"`
	PSMs       []byte  `json:"psms"`
	Precursor  float64 `json:"precursor"`
	Charge     uint8   `json:"charge"`
}

// NewIdentification creates a new Identification for the precursor at the
// given charge state. goodnesses and psms may be nil when the corresponding
// table is absent.
func NewIdentification(goodnesses, psms arrow.Record, precursor float64, charge uint8) *Identification {
	if goodnesses != nil {
		goodnesses.Retain()
	}

	if psms != nil {
		psms.Retain()
	}

	return &Identification{
		goodnesses: goodnesses,
		psms:       psms,
		precursor:  precursor,
		charge:     charge,
	}
}

// Goodnesses returns the goodness of fit table. It reports false when the
// table is absent.
func (id *Identification) Goodnesses() (arrow.Record, bool) {
	if id.goodnesses == nil {
		return nil, false
	}
	return id.goodnesses, true
}

// PSMs returns the peptide spectrum match table. It reports false when the
// table is absent.
func (id *Identification) PSMs() (arrow.Record, bool) {
	if id.psms == nil {
		return nil, false
	}
	return id.psms, true
}

// Precursor returns the precursor mass to charge ratio.
func (id *Identification) Precursor() float64 {
	return id.precursor
}

// Charge returns the assumed charge state.
func (id *Identification) Charge() uint8 {
	return id.charge
}

// PSMRows returns a row iterator over the PSM table. It reports false when
// the table is absent.
func (id *Identification) PSMRows() (*frame.RowIter, bool) {
	if id.psms == nil {
		return nil, false
	}
	return frame.NewRowIter(id.psms), true
}

// GoodnessRows returns a row iterator over the goodness of fit table. It
// reports false when the table is absent.
func (id *Identification) GoodnessRows() (*frame.RowIter, bool) {
	if id.goodnesses == nil {
		return nil, false
	}
	return frame.NewRowIter(id.goodnesses), true
}

// ScoreHistogram bins the ScoreColumn of the PSM table into a number of
// bins determined by the rule of Sturges. It reports false when the PSM
// table is absent or empty.
func (id *Identification) ScoreHistogram() (frame.Histogram, bool) {
	return frame.NewHistogram(id.psms, ScoreColumn)
}

// Release releases the retained tables. Release is idempotent; the
// identification must not be used afterwards.
func (id *Identification) Release() {
	if id.released {
		return
	}
	id.released = true

	if id.goodnesses != nil {
		id.goodnesses.Release()
	}

	if id.psms != nil {
		id.psms.Release()
	}
}

// MarshalJSON implements json.Marshaler. Tables travel as Arrow IPC
// streams; absent tables stay null.
func (id *Identification) MarshalJSON() ([]byte, error) {
	wire := identificationWire{
		Precursor: id.precursor,
		Charge:    id.charge,
	}

	if id.goodnesses != nil {
		data, err := frame.MarshalRecord(id.goodnesses)
		if err != nil {
			return nil, err
		}
		wire.Goodnesses = data
	}

	if id.psms != nil {
		data, err := frame.MarshalRecord(id.psms)
		if err != nil {
			return nil, err
		}
		wire.PSMs = data
	}

	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler. Tables previously held by the
// identification are released.
func (id *Identification) UnmarshalJSON(data []byte) error {
	var wire identificationWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var goodnesses, psms arrow.Record

	if wire.Goodnesses != nil {
		rec, err := frame.UnmarshalRecord(wire.Goodnesses)
		if err != nil {
			return err
		}
		goodnesses = rec
	}

	if wire.PSMs != nil {
		rec, err := frame.UnmarshalRecord(wire.PSMs)
		if err != nil {
			if goodnesses != nil {
				goodnesses.Release()
			}
			return err
		}
		psms = rec
	}

	id.Release()
	*id = Identification{
		goodnesses: goodnesses,
		psms:       psms,
		precursor:  wire.Precursor,
		charge:     wire.Charge,
	}

	return nil
}
