package mzgo

import (
	"context"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/hupe1980/mzgo/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreClose(t *testing.T) {
	ctx := context.Background()

	s := New()
	require.NoError(t, s.PutSearch(ctx, results.NewSearch(testSearchUUID, []string{"run_1"})))
	require.NoError(t, s.PutMSRun(ctx, results.NewMSRun(testSearchUUID, "run_1", []string{"scan_001"})))
	require.NoError(t, s.PutSpectrum(ctx, newTestSpectrum(t, testSearchUUID, "run_1", "scan_001", []float64{2.31})))

	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.PutSearch(ctx, results.NewSearch(testSearchUUID2, nil)), ErrClosed)

	_, err := s.GetSearch(ctx, testSearchUUID)
	assert.ErrorIs(t, err, ErrClosed)

	_, err = s.GetMSRun(ctx, testSearchUUID, "run_1")
	assert.ErrorIs(t, err, ErrClosed)

	_, err = s.GetSpectrum(ctx, testSearchUUID, "run_1", "scan_001")
	assert.ErrorIs(t, err, ErrClosed)

	_, err = s.ScoreHistograms(ctx, testSearchUUID, "run_1", "scan_001")
	assert.ErrorIs(t, err, ErrClosed)

	_, err = s.ExportSearch(ctx, testSearchUUID)
	assert.ErrorIs(t, err, ErrClosed)

	var errs []error
	for _, err := range s.Spectra(testSearchUUID, "run_1") {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrClosed)

	assert.Empty(t, s.SearchUUIDs())
}

func TestStoreCloseIdempotent(t *testing.T) {
	s := New()
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	var nilStore *Store
	assert.NoError(t, nilStore.Close())
}

// TestStoreCloseReleasesTables builds an identification table on a checked
// allocator, hands it to the store, and verifies Close returns every byte.
func TestStoreCloseReleasesTables(t *testing.T) {
	ctx := context.Background()
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())

	b := array.NewFloat64Builder(mem)
	b.AppendValues([]float64{2.31, 1.08}, nil)
	scores := b.NewFloat64Array()
	b.Release()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: results.ScoreColumn, Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	}, nil)
	psms := array.NewRecord(schema, []arrow.Array{scores}, 2)
	scores.Release()

	ident := results.NewIdentification(nil, psms, 450.27, 2)
	psms.Release()

	spectrum, err := results.NewSpectrum(testSearchUUID, "run_1", "scan_001",
		[]float64{100.1}, []float64{10.0},
		[]*results.Identification{ident})
	require.NoError(t, err)

	s := New()
	require.NoError(t, s.PutSearch(ctx, results.NewSearch(testSearchUUID, []string{"run_1"})))
	require.NoError(t, s.PutMSRun(ctx, results.NewMSRun(testSearchUUID, "run_1", []string{"scan_001"})))
	require.NoError(t, s.PutSpectrum(ctx, spectrum))

	require.NoError(t, s.Close())

	mem.AssertSize(t, 0)
}
