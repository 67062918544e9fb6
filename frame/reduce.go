package frame

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Column returns the column of rec with the given name.
//
// It reports false if no column carries that name. If several columns share
// the name, the first one wins.
func Column(rec arrow.Record, name string) (arrow.Array, bool) {
	indices := rec.Schema().FieldIndices(name)
	if len(indices) == 0 {
		return nil, false
	}
	return rec.Column(indices[0]), true
}

// Count returns the number of non-null values in arr.
func Count(arr arrow.Array) int {
	return arr.Len() - arr.NullN()
}

// Min returns the smallest non-null value of a numeric (float64 or int64)
// column. It reports false if the column holds no non-null values or is not
// numeric.
func Min(arr arrow.Array) (float64, bool) {
	return reduce(arr, func(best, v float64) bool { return v < best })
}

// Max returns the largest non-null value of a numeric (float64 or int64)
// column. It reports false if the column holds no non-null values or is not
// numeric.
func Max(arr arrow.Array) (float64, bool) {
	return reduce(arr, func(best, v float64) bool { return v > best })
}

// reduce scans the full column and keeps the value preferred by better.
func reduce(arr arrow.Array, better func(best, v float64) bool) (float64, bool) {
	var (
		best  float64
		found bool
	)
	visit := func(v float64) {
		if !found || better(best, v) {
			best = v
			found = true
		}
	}

	switch c := arr.(type) {
	case *array.Float64:
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			visit(c.Value(i))
		}
	case *array.Int64:
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			visit(float64(c.Value(i)))
		}
	default:
		return 0, false
	}

	return best, found
}
