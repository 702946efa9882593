package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Matrix is a dense 2-D matrix stored in row-major order.
// Element (i, j) lives at linear offset i*Cols + j.
//
// A Matrix owns its storage exclusively: constructors, Clone and every
// transpose allocate a fresh buffer. It is not safe for concurrent mutation.
type Matrix[T Element] struct {
	shape Shape
	data  []T
}

// New creates a rows×cols matrix populated by the given fill policy.
//
// Example:
//
//	rng := matrix.NewRand(42)
//	m, err := matrix.New[float32](1024, 1024, matrix.FillRandom, matrix.WithRand(rng))
func New[T Element](rows, cols int, fill Fill, opts ...Option) (*Matrix[T], error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	data, err := allocate[T](shape)
	if err != nil {
		return nil, err
	}
	m := &Matrix[T]{shape: shape, data: data}
	if err := applyFill(fill, m.data, o); err != nil {
		return nil, err
	}
	return m, nil
}

// allocate returns a zeroed buffer for shape. A request the runtime refuses
// (length or byte size beyond the allocator limit) comes back as ErrAllocation.
// A request the allocator accepts but the OS cannot back is still fatal.
func allocate[T Element](shape Shape) (data []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = fmt.Errorf("%w: shape %v (%d elements): %v", ErrAllocation, shape, shape.NumElements(), r)
		}
	}()
	return make([]T, shape.NumElements()), nil
}

// Zeros creates a zero-filled rows×cols matrix.
// Panics if the shape is invalid or cannot be allocated.
func Zeros[T Element](rows, cols int) *Matrix[T] {
	m, err := New[T](rows, cols, FillZero)
	if err != nil {
		panic(err)
	}
	return m
}

// FromSlice creates a matrix from a row-major Go slice.
// The slice is copied into the matrix's memory.
func FromSlice[T Element](rows, cols int, data []T) (*Matrix[T], error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrInvalidShape, shape, shape.NumElements(), len(data))
	}

	m := &Matrix[T]{shape: shape, data: make([]T, len(data))}
	copy(m.data, data)
	return m, nil
}

// Shape returns the matrix's shape.
func (m *Matrix[T]) Shape() Shape {
	return m.shape
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.shape.Rows
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.shape.Cols
}

// Len returns the total number of elements.
func (m *Matrix[T]) Len() int {
	return len(m.data)
}

// DType returns the matrix's data type.
func (m *Matrix[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Data returns the row-major backing slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (m *Matrix[T]) Data() []T {
	return m.data
}

// Ref returns a pointer to the element at linear index i.
// 2-D callers convert with Shape().Offset(i, j); only the linear index is checked.
func (m *Matrix[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= len(m.data) {
		return nil, fmt.Errorf("%w: index %d for shape %v (size %d)",
			ErrIndexOutOfRange, i, m.shape, len(m.data))
	}
	return &m.data[i], nil
}

// At returns the element at linear index i.
func (m *Matrix[T]) At(i int) (T, error) {
	p, err := m.Ref(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set stores v at linear index i.
func (m *Matrix[T]) Set(i int, v T) error {
	p, err := m.Ref(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ShapeEquals reports whether both matrices have identical dimensions.
func (m *Matrix[T]) ShapeEquals(other *Matrix[T]) bool {
	return m.shape.Equal(other.shape)
}

// Equal reports whether shapes match and every element compares equal.
// Comparison is exact, not tolerance based.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if !m.ShapeEquals(other) {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// Assign deep-copies other's elements into m.
//
// The shapes must match. A mismatch is a programming error and panics;
// Assign never changes m's shape.
func (m *Matrix[T]) Assign(other *Matrix[T]) {
	if m == other {
		return
	}
	if !m.ShapeEquals(other) {
		panic(fmt.Sprintf("assign: shape mismatch: %v vs %v", m.shape, other.shape))
	}
	copy(m.data, other.data)
}

// Clone returns a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{shape: m.shape, data: data}
}

// Format writes the matrix one row per line, each element followed by a space.
func (m *Matrix[T]) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.shape.Rows; i++ {
		row := m.data[i*m.shape.Cols : (i+1)*m.shape.Cols]
		for _, v := range row {
			if _, err := fmt.Fprintf(bw, "%v ", v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String returns the same text as Format.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_ = m.Format(&sb)
	return sb.String()
}
