package mzgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/mzgo"
	"github.com/hupe1980/mzgo/results"
	"github.com/hupe1980/mzgo/testutil"
)

// Example demonstrates registering a search hierarchy and walking PSM rows.
func Example() {
	ctx := context.Background()

	store := mzgo.New()
	defer store.Close()

	searchUUID := "b47f0b9c-8a3e-4f3a-9c6d-2f8a1d6e0b42"

	if err := store.PutSearch(ctx, results.NewSearch(searchUUID, []string{"run_1"})); err != nil {
		log.Fatal(err)
	}
	if err := store.PutMSRun(ctx, results.NewMSRun(searchUUID, "run_1", []string{"scan_001"})); err != nil {
		log.Fatal(err)
	}

	psms := testutil.NewRecord(
		testutil.StringCol("sequence", []string{"PEPTIDEK", "ELVISLIVESK"}, nil),
		testutil.Float64Col(results.ScoreColumn, []float64{2.31, 1.08}, nil),
	)
	ident := results.NewIdentification(nil, psms, 450.27, 2)
	psms.Release()

	spectrum, err := results.NewSpectrum(searchUUID, "run_1", "scan_001",
		[]float64{100.1, 200.2}, []float64{10.0, 20.0},
		[]*results.Identification{ident})
	if err != nil {
		log.Fatal(err)
	}
	if err := store.PutSpectrum(ctx, spectrum); err != nil {
		log.Fatal(err)
	}

	for spectrum, err := range store.Spectra(searchUUID, "run_1") {
		if err != nil {
			log.Fatal(err)
		}
		for _, ident := range spectrum.Identifications() {
			rows, ok := ident.PSMRows()
			if !ok {
				continue
			}
			for row := range rows.All() {
				sequence, _ := row.Value("sequence").AsString()
				score, _ := row.Value(results.ScoreColumn).AsFloat64()
				fmt.Printf("%s %.2f\n", sequence, score)
			}
		}
	}
	// Output:
	// PEPTIDEK 2.31
	// ELVISLIVESK 1.08
}

// ExampleStore_ScoreHistograms demonstrates concurrent score histograms.
func ExampleStore_ScoreHistograms() {
	ctx := context.Background()

	store := mzgo.New()
	defer store.Close()

	searchUUID := "b47f0b9c-8a3e-4f3a-9c6d-2f8a1d6e0b42"

	if err := store.PutSearch(ctx, results.NewSearch(searchUUID, []string{"run_1"})); err != nil {
		log.Fatal(err)
	}
	if err := store.PutMSRun(ctx, results.NewMSRun(searchUUID, "run_1", []string{"scan_001"})); err != nil {
		log.Fatal(err)
	}

	psms := testutil.NewRecord(
		testutil.Float64Col(results.ScoreColumn, []float64{1, 2, 3, 4, 5, 6, 7}, nil),
	)
	ident := results.NewIdentification(nil, psms, 450.27, 2)
	psms.Release()

	spectrum, err := results.NewSpectrum(searchUUID, "run_1", "scan_001",
		[]float64{100.1}, []float64{10.0},
		[]*results.Identification{ident})
	if err != nil {
		log.Fatal(err)
	}
	if err := store.PutSpectrum(ctx, spectrum); err != nil {
		log.Fatal(err)
	}

	histograms, err := store.ScoreHistograms(ctx, searchUUID, "run_1", "scan_001")
	if err != nil {
		log.Fatal(err)
	}

	h := histograms[0]
	fmt.Println(h.NumBins())
	fmt.Println(h.Edges)
	fmt.Println(h.Counts)
	// Output:
	// 4
	// [1 2.5 4 5.5 7]
	// [2 2 1 2]
}

// ExampleStore_ExportSearch demonstrates the self-describing export envelope.
func ExampleStore_ExportSearch() {
	ctx := context.Background()

	src := mzgo.New()
	defer src.Close()

	searchUUID := "b47f0b9c-8a3e-4f3a-9c6d-2f8a1d6e0b42"
	if err := src.PutSearch(ctx, results.NewSearch(searchUUID, []string{"run_1"})); err != nil {
		log.Fatal(err)
	}

	data, err := src.ExportSearch(ctx, searchUUID)
	if err != nil {
		log.Fatal(err)
	}

	dst := mzgo.New()
	defer dst.Close()

	search, err := dst.ImportSearch(ctx, data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(search.MSRunNames())
	// Output:
	// [run_1]
}
