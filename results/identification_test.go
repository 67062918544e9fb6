package results

import (
	"encoding/json"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/hupe1980/mzgo/frame"
	"github.com/hupe1980/mzgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func psmTable() arrow.Record {
	return testutil.NewRecord(
		testutil.StringCol("sequence", []string{"PEPTIDE", "ELVISK", "DEADBEEF", "LIVEK"}, nil),
		testutil.Float64Col("xcorr", []float64{1, 2, 3, 4}, nil),
	)
}

func goodnessTable() arrow.Record {
	return testutil.NewRecord(
		testutil.StringCol("test", []string{"chi2"}, nil),
		testutil.Float64Col("value", []float64{0.93}, nil),
	)
}

func rowValues(it *frame.RowIter) [][]frame.Value {
	var out [][]frame.Value
	for row := range it.All() {
		vals := make([]frame.Value, 0, row.Len())
		for v := range row.Values() {
			vals = append(vals, v)
		}
		out = append(out, vals)
	}
	return out
}

func TestNewIdentification(t *testing.T) {
	goodnesses := goodnessTable()
	defer goodnesses.Release()
	psms := psmTable()
	defer psms.Release()

	ident := NewIdentification(goodnesses, psms, 445.12, 2)
	defer ident.Release()

	assert.Equal(t, 445.12, ident.Precursor())
	assert.Equal(t, uint8(2), ident.Charge())

	g, ok := ident.Goodnesses()
	require.True(t, ok)
	assert.EqualValues(t, 1, g.NumRows())

	p, ok := ident.PSMs()
	require.True(t, ok)
	assert.EqualValues(t, 4, p.NumRows())
}

func TestIdentificationAbsentTables(t *testing.T) {
	ident := NewIdentification(nil, nil, 445.12, 2)
	defer ident.Release()

	_, ok := ident.Goodnesses()
	assert.False(t, ok)
	_, ok = ident.PSMs()
	assert.False(t, ok)
	_, ok = ident.PSMRows()
	assert.False(t, ok)
	_, ok = ident.GoodnessRows()
	assert.False(t, ok)
	_, ok = ident.ScoreHistogram()
	assert.False(t, ok)
}

func TestIdentificationEmptyPSMTable(t *testing.T) {
	psms := testutil.NewRecord(
		testutil.StringCol("sequence", nil, nil),
		testutil.Float64Col("xcorr", nil, nil),
	)
	defer psms.Release()

	ident := NewIdentification(nil, psms, 445.12, 2)
	defer ident.Release()

	// An empty table is present, unlike an absent one.
	_, ok := ident.PSMs()
	assert.True(t, ok)

	it, ok := ident.PSMRows()
	require.True(t, ok)
	assert.Empty(t, rowValues(it))

	_, ok = ident.ScoreHistogram()
	assert.False(t, ok)
}

func TestIdentificationPSMRows(t *testing.T) {
	psms := psmTable()
	defer psms.Release()

	ident := NewIdentification(nil, psms, 445.12, 2)
	defer ident.Release()

	it, ok := ident.PSMRows()
	require.True(t, ok)

	rows := rowValues(it)
	require.Len(t, rows, 4)
	assert.Equal(t, []frame.Value{frame.String("PEPTIDE"), frame.Float(1)}, rows[0])
	assert.Equal(t, []frame.Value{frame.String("LIVEK"), frame.Float(4)}, rows[3])
}

func TestIdentificationGoodnessRows(t *testing.T) {
	goodnesses := goodnessTable()
	defer goodnesses.Release()

	ident := NewIdentification(goodnesses, nil, 445.12, 2)
	defer ident.Release()

	it, ok := ident.GoodnessRows()
	require.True(t, ok)

	rows := rowValues(it)
	require.Len(t, rows, 1)
	assert.Equal(t, []frame.Value{frame.String("chi2"), frame.Float(0.93)}, rows[0])
}

func TestIdentificationScoreHistogram(t *testing.T) {
	psms := psmTable()
	defer psms.Release()

	ident := NewIdentification(nil, psms, 445.12, 2)
	defer ident.Release()

	h, ok := ident.ScoreHistogram()
	require.True(t, ok)

	assert.Equal(t, []float64{1, 2, 3, 4}, h.Edges)
	assert.Equal(t, []int{2, 1, 1}, h.Counts)
}

func TestIdentificationRetainsTables(t *testing.T) {
	psms := psmTable()

	ident := NewIdentification(nil, psms, 445.12, 2)
	defer ident.Release()

	// Dropping the caller's handle must not invalidate the
	// identification's view of the table.
	psms.Release()

	it, ok := ident.PSMRows()
	require.True(t, ok)
	assert.Len(t, rowValues(it), 4)
}

func TestIdentificationReleaseIdempotent(t *testing.T) {
	psms := psmTable()
	defer psms.Release()

	ident := NewIdentification(nil, psms, 445.12, 2)

	ident.Release()
	assert.NotPanics(t, ident.Release)
}

func TestIdentificationJSON(t *testing.T) {
	psms := psmTable()
	defer psms.Release()

	ident := NewIdentification(nil, psms, 445.12, 2)
	defer ident.Release()

	data, err := json.Marshal(ident)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))
	assert.Contains(t, keys, "precursor")
	assert.Contains(t, keys, "charge")
	assert.Nil(t, keys["goodnesses"])
	assert.NotNil(t, keys["psms"])

	var got Identification
	require.NoError(t, json.Unmarshal(data, &got))
	defer got.Release()

	assert.Equal(t, ident.Precursor(), got.Precursor())
	assert.Equal(t, ident.Charge(), got.Charge())

	_, ok := got.Goodnesses()
	assert.False(t, ok)

	want, ok := ident.PSMRows()
	require.True(t, ok)
	have, ok := got.PSMRows()
	require.True(t, ok)
	assert.Equal(t, rowValues(want), rowValues(have))
}

func TestIdentificationJSONEmptyTable(t *testing.T) {
	psms := testutil.NewRecord(
		testutil.Float64Col("xcorr", nil, nil),
	)
	defer psms.Release()

	ident := NewIdentification(nil, psms, 445.12, 2)
	defer ident.Release()

	data, err := json.Marshal(ident)
	require.NoError(t, err)

	var got Identification
	require.NoError(t, json.Unmarshal(data, &got))
	defer got.Release()

	// Empty stays empty, it does not collapse into absent.
	p, ok := got.PSMs()
	require.True(t, ok)
	assert.EqualValues(t, 0, p.NumRows())
}

func TestIdentificationUnmarshalInvalid(t *testing.T) {
	var got Identification

	err := json.Unmarshal([]byte(`{"psms":"bm90IGFuIGFycm93IHN0cmVhbQ==","precursor":1,"charge":2}`), &got)
	assert.Error(t, err)
}
