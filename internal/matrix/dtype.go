// Package matrix provides a dense row-major matrix and the transpose
// strategies benchmarked by the transpose command.
package matrix

import (
	"fmt"
	"reflect"
	"strings"
)

// Element is a constraint for supported matrix element types.
type Element interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// DataType represents runtime type information for matrices.
type DataType int

// Supported data types for matrices.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	default:
		panic("unknown data type")
	}
}

// dataTypeNames holds the canonical name of every DataType, indexed by value.
var dataTypeNames = [...]string{
	Float32: "float32",
	Float64: "float64",
	Int32:   "int32",
	Int64:   "int64",
}

// dataTypeAliases are extra spellings accepted by ParseDataType.
var dataTypeAliases = map[string]DataType{
	"f32":    Float32,
	"float":  Float32,
	"f64":    Float64,
	"double": Float64,
	"i32":    Int32,
	"int":    Int32,
	"i64":    Int64,
}

// DataTypes returns every supported data type in declaration order.
func DataTypes() []DataType {
	types := make([]DataType, len(dataTypeNames))
	for i := range dataTypeNames {
		types[i] = DataType(i)
	}
	return types
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	if dt < 0 || int(dt) >= len(dataTypeNames) {
		return "unknown"
	}
	return dataTypeNames[dt]
}

// ParseDataType maps a name such as "float32" to its DataType.
// Every String result parses back to the same value.
func ParseDataType(name string) (DataType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range dataTypeNames {
		if n == key {
			return DataType(i), nil
		}
	}
	if dt, ok := dataTypeAliases[key]; ok {
		return dt, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDataType, name)
}

// DataTypeOf infers the DataType of T, including named types built on a
// supported kind.
func DataTypeOf[T Element]() DataType {
	var dummy T
	switch reflect.TypeOf(dummy).Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	default:
		panic("unsupported type")
	}
}
