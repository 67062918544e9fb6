package frame

import (
	"fmt"
	"iter"

	"github.com/apache/arrow-go/v18/arrow"
)

// colIndex maps column names to their positions within one record.
//
// It is built once per iteration pass and shared by every Row of that pass.
// It is never mutated after construction, so concurrent reads are safe without
// synchronization.
type colIndex struct {
	names  []string
	byName map[string]int
}

func newColIndex(schema *arrow.Schema) *colIndex {
	n := schema.NumFields()
	ci := &colIndex{
		names:  make([]string, n),
		byName: make(map[string]int, n),
	}
	for i := 0; i < n; i++ {
		name := schema.Field(i).Name
		ci.names[i] = name
		// If several columns share a name, the first one wins, matching Column.
		if _, ok := ci.byName[name]; !ok {
			ci.byName[name] = i
		}
	}
	return ci
}

// Row is a read-only view over the values of one record row.
//
// Rows produced by the same RowIter share a single name lookup table; each Row
// owns only its extracted values. A Row must not be used after the source
// record has been released.
type Row struct {
	index *colIndex
	vals  []Value
}

// Value returns the cell for the named column.
//
// Requesting a name that is not part of the record's schema is a contract
// breach by the caller and panics; use Lookup to probe for optional columns.
func (r Row) Value(name string) Value {
	i, ok := r.index.byName[name]
	if !ok {
		panic(fmt.Sprintf("frame: no column named %q", name))
	}
	return r.vals[i]
}

// Lookup returns the cell for the named column and whether the column exists.
func (r Row) Lookup(name string) (Value, bool) {
	i, ok := r.index.byName[name]
	if !ok {
		return Value{}, false
	}
	return r.vals[i], true
}

// Field returns the cell at position i, in column order.
func (r Row) Field(i int) Value {
	return r.vals[i]
}

// Len returns the number of columns in the row.
func (r Row) Len() int {
	return len(r.vals)
}

// Columns returns the column names in column order.
//
// The returned slice is shared across all rows of the iteration pass and must
// not be modified.
func (r Row) Columns() []string {
	return r.index.names
}

// Values returns an iterator over the row's cells in column order.
func (r Row) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range r.vals {
			if !yield(v) {
				return
			}
		}
	}
}
