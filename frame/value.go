package frame

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null cell.
	KindNull
	// KindInt represents an integer cell.
	KindInt
	// KindFloat represents a float cell.
	KindFloat
	// KindString represents a string cell.
	KindString
	// KindBool represents a boolean cell.
	KindBool
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	default:
		return "Invalid"
	}
}

// Value is a small typed scalar extracted from one cell of a record column.
//
// The representation avoids reflection and interface boxing so that row
// iteration stays allocation-light. A Value is immutable; the zero Value has
// KindInvalid and reports false from every accessor.
type Value struct {
	kind Kind
	i64  int64
	f64  float64
	str  string
	b    bool
}

// Null returns a null Value.
func Null() Value { return Value{kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{kind: KindInt, i64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{kind: KindFloat, f64: v} }

// String returns a string Value.
func String(v string) Value { return Value{kind: KindString, str: v} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is a null cell.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Num returns the value as a float64 for numeric kinds (KindFloat on its own,
// KindInt widened). It is a convenience for score-style columns.
func (v Value) Num() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f64, true
	case KindInt:
		return float64(v.i64), true
	default:
		return 0, false
	}
}

// supportedType reports whether dt is one of the column types row access
// understands.
func supportedType(dt arrow.DataType) bool {
	switch dt.ID() {
	case arrow.FLOAT64, arrow.INT64, arrow.STRING, arrow.BOOL:
		return true
	default:
		return false
	}
}

// cellValue extracts the cell at position i of col.
//
// Columns of unsupported Arrow types are a schema precondition violation; the
// caller is expected to have rejected them up front via supportedType.
func cellValue(col arrow.Array, i int) Value {
	if col.IsNull(i) {
		return Null()
	}
	switch c := col.(type) {
	case *array.Float64:
		return Float(c.Value(i))
	case *array.Int64:
		return Int(c.Value(i))
	case *array.String:
		return String(c.Value(i))
	case *array.Boolean:
		return Bool(c.Value(i))
	default:
		panic(fmt.Sprintf("frame: unsupported column type %s", col.DataType().Name()))
	}
}
