// Package results models the outcome of a proteomics search as a hierarchy
// of entities.
//
// A Search groups the MS runs it was performed over, an MSRun groups
// the spectra measured during the run, and a Spectrum carries its peak
// list together with the identifications derived from it. Entities
// reference their children by name or ID rather than by pointer, so each
// level can be fetched and serialized on its own.
//
// # Identifications
//
// An Identification pairs an optional PSM table and an optional goodness
// of fit table with the precursor and charge state they were computed
// for. Tables are Arrow records; row-wise access goes through the frame
// package:
//
//	if it, ok := ident.PSMRows(); ok {
//	    for row := range it.All() {
//	        score, _ := row.Value(results.ScoreColumn).AsFloat64()
//	        _ = score
//	    }
//	}
//
// The score distribution of the PSM table is available as a histogram
// binned by the rule of Sturges:
//
//	if h, ok := ident.ScoreHistogram(); ok {
//	    fmt.Println(h.Edges, h.Counts)
//	}
//
// # Serialization
//
// All entities marshal to JSON with snake_case keys. Identification
// tables travel inside the JSON document as base64-encoded Arrow IPC
// streams, preserving the difference between an absent table and an
// empty one.
package results
