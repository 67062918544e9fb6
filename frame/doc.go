// Package frame provides row-oriented access over Arrow records.
//
// Search results are stored column by column, which is the right shape
// for scans and aggregation but awkward for callers that want to walk
// result tables entry by entry. This package bridges the two layouts
// without materializing anything: a RowIter advances one cursor per
// column in lockstep and assembles a Row on demand.
//
// # Rows
//
// A Row is an ordered set of dynamically typed cells. Cells can be
// fetched by column name or by position:
//
//	it := frame.NewRowIter(rec)
//	for row := range it.All() {
//	    score, _ := row.Value("xcorr").AsFloat64()
//	    rank, _ := row.Field(0).AsInt64()
//	    _ = score + float64(rank)
//	}
//
// Iteration is lazy and single-pass. The iterator borrows the record
// it was built from; the record must stay valid while iterating.
//
// # Histograms
//
// NewHistogram bins a Float64 column into round(1+log2(n)) equal-width
// bins:
//
//	h, ok := frame.NewHistogram(rec, "xcorr")
//	if ok {
//	    fmt.Println(h.Edges, h.Counts)
//	}
//
// # Serialization
//
// MarshalRecord and UnmarshalRecord round-trip a record through the
// Arrow IPC stream format, which is how result tables travel inside
// exported entities.
package frame
