// Package testutil provides testing utilities for Mzgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for assembling Arrow records column by column
// and for generating reproducible random score and peak data.
//
// # Record Assembly
//
//	rec := testutil.NewRecord(
//	    testutil.StringCol("sequence", []string{"PEPTIDE", "ELVISK"}, nil),
//	    testutil.Float64Col("xcorr", []float64{2.31, 1.08}, nil),
//	)
//	defer rec.Release()
//
// Pass a valid mask to mark individual cells as null:
//
//	testutil.Float64Col("xcorr", []float64{2.31, 0}, []bool{true, false})
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	scores := rng.Scores(100, 0, 10)  // uniform [0, 10)
//	mz, in := rng.Peaks(64)           // ascending m/z with intensities
package testutil
