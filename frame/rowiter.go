package frame

import (
	"fmt"
	"iter"

	"github.com/apache/arrow-go/v18/arrow"
)

// colCursor is a forward-only cursor over one column.
type colCursor struct {
	arr arrow.Array
	pos int
}

func (c *colCursor) next() (Value, bool) {
	if c.pos >= c.arr.Len() {
		return Value{}, false
	}
	v := cellValue(c.arr, c.pos)
	c.pos++
	return v, true
}

// RowIter produces the rows of a record one at a time by advancing one cursor
// per column in lockstep.
//
// The iterator is lazy (one Row is materialized per step), finite and
// single-pass: once exhausted it stays exhausted, and a new RowIter must be
// constructed to walk the record again. It borrows the record for its entire
// lifetime and must not be used after the record is released. Multiple
// RowIters over the same record do not interfere; the record is never mutated.
//
// Rows are yielded until the first column runs out of values. Records always
// carry equal-length columns when built through the usual Arrow constructors,
// but if column lengths ever disagree the iteration truncates to the shortest
// column rather than failing.
type RowIter struct {
	index   *colIndex
	cursors []colCursor
	done    bool
}

// NewRowIter returns a row iterator over rec.
//
// rec must be non-nil, and every column must be one of the supported types
// (float64, int64, string, bool); anything else is a schema precondition
// violation and panics.
func NewRowIter(rec arrow.Record) *RowIter {
	schema := rec.Schema()
	for i := 0; i < schema.NumFields(); i++ {
		f := schema.Field(i)
		if !supportedType(f.Type) {
			panic(fmt.Sprintf("frame: column %q has unsupported type %s", f.Name, f.Type.Name()))
		}
	}

	cursors := make([]colCursor, rec.NumCols())
	for i := range cursors {
		cursors[i] = colCursor{arr: rec.Column(i)}
	}

	return &RowIter{
		index:   newColIndex(schema),
		cursors: cursors,
	}
}

// Next advances every column cursor by one position and assembles the yielded
// cells into a fresh Row. It reports false as soon as any column is exhausted.
//
// A record with zero columns yields no rows.
func (it *RowIter) Next() (Row, bool) {
	if it.done || len(it.cursors) == 0 {
		it.done = true
		return Row{}, false
	}

	vals := make([]Value, len(it.cursors))
	for i := range it.cursors {
		v, ok := it.cursors[i].next()
		if !ok {
			it.done = true
			return Row{}, false
		}
		vals[i] = v
	}

	return Row{index: it.index, vals: vals}, true
}

// All adapts the iterator to a range-over-func sequence.
//
// The sequence shares the iterator's single pass: breaking out of the loop and
// ranging again resumes where the previous loop stopped.
func (it *RowIter) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for {
			row, ok := it.Next()
			if !ok {
				return
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Columns returns the column names the iterator yields values for, in column
// order. The returned slice must not be modified.
func (it *RowIter) Columns() []string {
	return it.index.names
}
