package matrix

import (
	"fmt"
	"strings"
)

// DefaultBlockSize is the tile edge used by TransposeBlocked when the caller
// has no better figure. 16 float32 values fill one 64-byte cache line.
const DefaultBlockSize = 16

// Strategy selects a transpose algorithm. All strategies produce identical
// results and differ only in memory access pattern.
type Strategy int

// Supported transpose strategies.
const (
	// RowMajor reads the source sequentially and writes the result with a
	// stride of Rows.
	RowMajor Strategy = iota
	// Linear writes the result sequentially and reads the source with a
	// stride of Cols.
	Linear
	// Blocked walks the matrix in square tiles so both sides stay in cache.
	Blocked
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case RowMajor:
		return "row"
	case Linear:
		return "linear"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a name such as "blocked" to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "row", "rowmajor", "row-major", "naive", "t0":
		return RowMajor, nil
	case "linear", "t1":
		return Linear, nil
	case "blocked", "block", "tiled", "t2":
		return Blocked, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Transpose returns a new Cols×Rows matrix using the given strategy.
// block is only consulted by Blocked and must be >= 1 there.
func (m *Matrix[T]) Transpose(strategy Strategy, block int) (*Matrix[T], error) {
	switch strategy {
	case RowMajor:
		return m.TransposeRowMajor(), nil
	case Linear:
		return m.TransposeLinear(), nil
	case Blocked:
		if block < 1 {
			return nil, fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidBlockSize, block)
		}
		return m.TransposeBlocked(block), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
}

// TransposeRowMajor iterates source rows outer and columns inner.
func (m *Matrix[T]) TransposeRowMajor() *Matrix[T] {
	rows, cols := m.shape.Rows, m.shape.Cols
	result := m.newTransposed()
	src, dst := m.data, result.data

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
	return result
}

// TransposeLinear walks the result with a single counter n, deriving the
// result coordinates (n / Rows, n % Rows).
func (m *Matrix[T]) TransposeLinear() *Matrix[T] {
	rows, cols := m.shape.Rows, m.shape.Cols
	result := m.newTransposed()
	src, dst := m.data, result.data

	for n := range dst {
		i := n / rows
		j := n % rows
		dst[n] = src[cols*j+i]
	}
	return result
}

// TransposeBlocked transposes block×block tiles. Tiles on the right and
// bottom edges are clipped to the matrix bounds.
// Panics if block < 1.
func (m *Matrix[T]) TransposeBlocked(block int) *Matrix[T] {
	if block < 1 {
		panic(fmt.Sprintf("transpose: block size %d (must be >= 1)", block))
	}

	rows, cols := m.shape.Rows, m.shape.Cols
	result := m.newTransposed()
	src, dst := m.data, result.data

	for ii := 0; ii < rows; ii += block {
		iEnd := min(ii+block, rows)
		for jj := 0; jj < cols; jj += block {
			jEnd := min(jj+block, cols)
			for i := ii; i < iEnd; i++ {
				for j := jj; j < jEnd; j++ {
					dst[j*rows+i] = src[i*cols+j]
				}
			}
		}
	}
	return result
}

func (m *Matrix[T]) newTransposed() *Matrix[T] {
	shape := m.shape.Transposed()
	return &Matrix[T]{
		shape: shape,
		data:  make([]T, shape.NumElements()),
	}
}
