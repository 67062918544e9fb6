package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Notes:
// - For result entities (searches, runs, spectra), JSON is stable and portable.
// - Identification tables are embedded as base64-encoded Arrow IPC streams by
//   the entities' own marshalers, so they survive any JSON-shaped codec.
// - Time, complex numbers, funcs, channels, etc may not be supported.
//
// If you need custom encoding (e.g. protobuf/msgpack), implement Codec and
// pass it to the store's export and import operations.
//
// Performance note:
//   - If you need the most portable/lowest-dependency option, use JSON.
//   - Mzgo's default codec may change over time; exports always record the
//     codec name in their envelope so it can be validated on load.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// NOTE: This affects newly-written exports. Existing exports are
// self-describing (they store the codec name in their envelope) and are opened
// by selecting the appropriate codec by name.
var Default Codec = GoJSON{}
