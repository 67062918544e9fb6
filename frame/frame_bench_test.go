package frame

import (
	"fmt"
	"testing"

	"github.com/hupe1980/mzgo/testutil"
)

func BenchmarkRowIter(b *testing.B) {
	const rows = 10_000

	rng := testutil.NewRNG(4711)
	rec := testutil.NewRecord(
		testutil.Float64Col("xcorr", rng.Scores(rows, 0, 10), nil),
		testutil.Float64Col("delta_cn", rng.Scores(rows, 0, 1), nil),
	)
	defer rec.Release()

	b.ReportAllocs()

	for b.Loop() {
		var n int
		for row := range NewRowIter(rec).All() {
			if _, ok := row.Field(0).AsFloat64(); ok {
				n++
			}
		}
		if n != rows {
			b.Fatalf("iterated %d rows, want %d", n, rows)
		}
	}
}

func BenchmarkNewHistogram(b *testing.B) {
	for _, rows := range []int{100, 10_000} {
		b.Run(fmt.Sprintf("rows_%d", rows), func(b *testing.B) {
			rng := testutil.NewRNG(4711)
			rec := testutil.NewRecord(
				testutil.Float64Col("xcorr", rng.Scores(rows, 0, 10), nil),
			)
			defer rec.Release()

			b.ReportAllocs()

			for b.Loop() {
				if _, ok := NewHistogram(rec, "xcorr"); !ok {
					b.Fatal("expected a histogram")
				}
			}
		})
	}
}
