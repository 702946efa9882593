package matrix

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a 2-D matrix.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns the total number of elements in the matrix.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks if the shape is valid: both dimensions > 0 and
// Rows*Cols representable as an int.
func (s Shape) Validate() error {
	if s.Rows <= 0 {
		return fmt.Errorf("%w: rows = %d (must be > 0)", ErrInvalidShape, s.Rows)
	}
	if s.Cols <= 0 {
		return fmt.Errorf("%w: cols = %d (must be > 0)", ErrInvalidShape, s.Cols)
	}
	if s.Rows > math.MaxInt/s.Cols {
		return fmt.Errorf("%w: %dx%d elements overflow int", ErrInvalidShape, s.Rows, s.Cols)
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// Transposed returns the shape with rows and columns swapped.
func (s Shape) Transposed() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}

// Offset converts a 2-D index to its row-major linear offset.
// Only the resulting offset is bounds checked, by the accessor that uses it.
func (s Shape) Offset(i, j int) int {
	return i*s.Cols + j
}

// String returns the shape as "RxC".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}
