package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Col describes one column of a record assembled by NewRecord.
type Col struct {
	field arrow.Field
	build func(mem memory.Allocator) arrow.Array
}

// Float64Col returns a Float64 column. valid marks which entries are
// set; a nil valid marks all of them.
func Float64Col(name string, vals []float64, valid []bool) Col {
	return Col{
		field: arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		build: func(mem memory.Allocator) arrow.Array {
			b := array.NewFloat64Builder(mem)
			defer b.Release()

			b.AppendValues(vals, valid)

			return b.NewArray()
		},
	}
}

// Int64Col returns an Int64 column.
func Int64Col(name string, vals []int64, valid []bool) Col {
	return Col{
		field: arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		build: func(mem memory.Allocator) arrow.Array {
			b := array.NewInt64Builder(mem)
			defer b.Release()

			b.AppendValues(vals, valid)

			return b.NewArray()
		},
	}
}

// StringCol returns a String column.
func StringCol(name string, vals []string, valid []bool) Col {
	return Col{
		field: arrow.Field{Name: name, Type: arrow.BinaryTypes.String, Nullable: true},
		build: func(mem memory.Allocator) arrow.Array {
			b := array.NewStringBuilder(mem)
			defer b.Release()

			b.AppendValues(vals, valid)

			return b.NewArray()
		},
	}
}

// BoolCol returns a Boolean column.
func BoolCol(name string, vals []bool, valid []bool) Col {
	return Col{
		field: arrow.Field{Name: name, Type: arrow.FixedWidthTypes.Boolean, Nullable: true},
		build: func(mem memory.Allocator) arrow.Array {
			b := array.NewBooleanBuilder(mem)
			defer b.Release()

			b.AppendValues(vals, valid)

			return b.NewArray()
		},
	}
}

// Float32Col returns a Float32 column.
func Float32Col(name string, vals []float32, valid []bool) Col {
	return Col{
		field: arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float32, Nullable: true},
		build: func(mem memory.Allocator) arrow.Array {
			b := array.NewFloat32Builder(mem)
			defer b.Release()

			b.AppendValues(vals, valid)

			return b.NewArray()
		},
	}
}

// NewRecord assembles cols into a record. Columns may differ in
// length; the record reports the shortest column as its row count.
// The caller owns the returned record and must release it.
func NewRecord(cols ...Col) arrow.Record {
	mem := memory.NewGoAllocator()

	fields := make([]arrow.Field, len(cols))
	arrs := make([]arrow.Array, len(cols))

	var rows int64

	for i, c := range cols {
		fields[i] = c.field
		arrs[i] = c.build(mem)

		if n := int64(arrs[i].Len()); i == 0 || n < rows {
			rows = n
		}
	}

	rec := array.NewRecord(arrow.NewSchema(fields, nil), arrs, rows)

	for _, arr := range arrs {
		arr.Release()
	}

	return rec
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// Scores generates n random scores in range [minVal, maxVal).
func (r *RNG) Scores(n int, minVal, maxVal float64) []float64 {
	out := make([]float64, n)
	r.FillUniformRange(out, minVal, maxVal)
	return out
}

// Peaks generates n peaks with ascending m/z values in [100, 2000)
// and intensities in [0, 1e6).
func (r *RNG) Peaks(n int) (mz, intensity []float64) {
	mz = make([]float64, n)
	intensity = make([]float64, n)

	r.FillUniformRange(mz, 100, 2000)
	r.FillUniformRange(intensity, 0, 1e6)

	sort.Float64s(mz)

	return mz, intensity
}
