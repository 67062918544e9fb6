package frame

import (
	"fmt"
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Histogram is a fixed-width binning of a numeric column.
//
// Edges holds the bin boundaries in ascending order and has one more
// entry than Counts. The first edge is the column minimum and the last
// edge is the column maximum. Counts[i] is the number of values that
// fell between Edges[i] and Edges[i+1], and the counts sum to the
// number of rows that produced the histogram.
type Histogram struct {
	Edges  []float64
	Counts []int
}

// NumBins returns the number of bins.
func (h Histogram) NumBins() int {
	return len(h.Counts)
}

// NewHistogram bins the named Float64 column of rec into
// round(1+log2(n)) equal-width bins, where n is the row count.
// It returns false when rec is nil or has no rows.
//
// The column must exist, must be of type Float64 and must not contain
// nulls; NewHistogram panics otherwise.
func NewHistogram(rec arrow.Record, column string) (Histogram, bool) {
	if rec == nil {
		return Histogram{}, false
	}

	col, ok := Column(rec, column)
	if !ok {
		panic(fmt.Sprintf("frame: no column named %q", column))
	}

	scores, ok := col.(*array.Float64)
	if !ok {
		panic(fmt.Sprintf("frame: column %q has type %s, want float64", column, col.DataType().Name()))
	}

	if scores.NullN() > 0 {
		panic(fmt.Sprintf("frame: column %q contains nulls", column))
	}

	n := scores.Len()
	if n == 0 {
		return Histogram{}, false
	}

	// n > 0 and the column is null-free, so both bounds are defined.
	lo, _ := Min(scores)
	hi, _ := Max(scores)

	bins := int(math.Round(1 + math.Log2(float64(n))))
	width := (hi - lo) / float64(bins)

	edges := make([]float64, bins+1)
	for i := 0; i < bins; i++ {
		edges[i] = lo + float64(i)*width
	}
	// Pin the last edge to the maximum so float rounding cannot push
	// the largest value past the final bin.
	edges[bins] = hi

	counts := make([]int, bins)
	for i := 0; i < n; i++ {
		v := scores.Value(i)
		for e := 1; e < len(edges); e++ {
			if v <= edges[e] {
				counts[e-1]++
				break
			}
		}
	}

	return Histogram{Edges: edges, Counts: counts}, true
}
