package frame

import (
	"testing"

	"github.com/hupe1980/mzgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRow(t *testing.T) Row {
	t.Helper()

	rec := testutil.NewRecord(
		testutil.StringCol("sequence", []string{"PEPTIDE"}, nil),
		testutil.Float64Col("xcorr", []float64{2.31}, nil),
		testutil.Int64Col("charge", []int64{2}, nil),
	)
	t.Cleanup(rec.Release)

	row, ok := NewRowIter(rec).Next()
	require.True(t, ok)

	return row
}

func TestRowValue(t *testing.T) {
	row := testRow(t)

	assert.Equal(t, String("PEPTIDE"), row.Value("sequence"))
	assert.Equal(t, Float(2.31), row.Value("xcorr"))
	assert.Equal(t, Int(2), row.Value("charge"))
}

func TestRowValueMatchesField(t *testing.T) {
	row := testRow(t)

	for i, name := range row.Columns() {
		assert.Equal(t, row.Field(i), row.Value(name))
	}
}

func TestRowValueUnknownColumn(t *testing.T) {
	row := testRow(t)

	assert.Panics(t, func() {
		row.Value("retention_time")
	})
}

func TestRowLookup(t *testing.T) {
	row := testRow(t)

	v, ok := row.Lookup("xcorr")
	assert.True(t, ok)
	assert.Equal(t, Float(2.31), v)

	_, ok = row.Lookup("retention_time")
	assert.False(t, ok)
}

func TestRowColumns(t *testing.T) {
	row := testRow(t)

	assert.Equal(t, []string{"sequence", "xcorr", "charge"}, row.Columns())
	assert.Equal(t, 3, row.Len())
}

func TestRowValues(t *testing.T) {
	row := testRow(t)

	var got []Value
	for v := range row.Values() {
		got = append(got, v)
	}

	assert.Equal(t, []Value{String("PEPTIDE"), Float(2.31), Int(2)}, got)
}
