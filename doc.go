// Package mzgo provides fast, structured access to mass-spectrometry search
// results for Go.
//
// Mzgo models the result hierarchy of a protein database search: a search
// (one engine invocation, keyed by UUID) spans MS runs, an MS run holds
// spectra, and a spectrum carries zero or more identifications. Peptide
// spectrum matches (PSMs) and goodness of fit values live in column-oriented
// Apache Arrow tables that are decoded lazily, row by row, instead of being
// copied into Go structs up front.
//
// # Quick Start
//
// Register a result hierarchy and walk it:
//
//	ctx := context.Background()
//	store := mzgo.New()
//	defer store.Close()
//
//	searchUUID := mzgo.NewSearchUUID()
//	store.PutSearch(ctx, results.NewSearch(searchUUID, []string{"run_1"}))
//	store.PutMSRun(ctx, results.NewMSRun(searchUUID, "run_1", []string{"scan_001"}))
//	store.PutSpectrum(ctx, spectrum)
//
//	for spectrum, err := range store.Spectra(searchUUID, "run_1") {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, ident := range spectrum.Identifications() {
//	        rows, ok := ident.PSMRows()
//	        if !ok {
//	            continue
//	        }
//	        for row := range rows.All() {
//	            seq, _ := row.Value("sequence").AsString()
//	            score, _ := row.Value(results.ScoreColumn).AsFloat64()
//	            fmt.Println(seq, score)
//	        }
//	    }
//	}
//
// # Score Histograms
//
// Score distributions use Sturges' rule for bin counts and are computed
// concurrently across a spectrum's identifications:
//
//	histograms, err := store.ScoreHistograms(ctx, searchUUID, "run_1", "scan_001")
//
// # Key Features
//
//   - Hierarchical registry: search -> MS run -> spectrum -> identification
//   - Columnar PSM and goodness tables (Apache Arrow), iterated lazily
//   - Concurrent per-identification score histograms (Sturges' rule)
//   - Self-describing exports with pluggable codecs (encoding/json, go-json)
//   - Structured logging (log/slog) and pluggable metrics collection
package mzgo
