// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"math/rand"

	"github.com/born-ml/transpose/internal/matrix"
)

// Type aliases for public API

// Element is a constraint for matrix element types.
// Supported types: float32, float64, int32, int64 and named types over them.
type Element = matrix.Element

// DataType represents the element type of a matrix at runtime.
type DataType = matrix.DataType

// Data type constants.
const (
	Float32 DataType = matrix.Float32
	Float64 DataType = matrix.Float64
	Int32   DataType = matrix.Int32
	Int64   DataType = matrix.Int64
)

// Shape represents the (Rows, Cols) dimensions of a matrix.
type Shape = matrix.Shape

// Matrix is a dense row-major matrix that owns its storage.
type Matrix[T Element] = matrix.Matrix[T]

// Fill selects how a new matrix is populated.
type Fill = matrix.Fill

// Fill policies.
const (
	FillZero       Fill = matrix.FillZero
	FillRandom     Fill = matrix.FillRandom
	FillSequential Fill = matrix.FillSequential
)

// Strategy selects a transpose algorithm.
type Strategy = matrix.Strategy

// Transpose strategies.
const (
	RowMajor Strategy = matrix.RowMajor
	Linear   Strategy = matrix.Linear
	Blocked  Strategy = matrix.Blocked
)

// DefaultBlockSize is the default tile edge for Blocked.
const DefaultBlockSize = matrix.DefaultBlockSize

// Option configures matrix construction.
type Option = matrix.Option

// Errors returned by matrix operations.
var (
	ErrInvalidShape     = matrix.ErrInvalidShape
	ErrIndexOutOfRange  = matrix.ErrIndexOutOfRange
	ErrUnknownFill      = matrix.ErrUnknownFill
	ErrUnknownStrategy  = matrix.ErrUnknownStrategy
	ErrInvalidBlockSize = matrix.ErrInvalidBlockSize
	ErrUnknownDataType  = matrix.ErrUnknownDataType
	ErrAllocation       = matrix.ErrAllocation
)

// Creation functions

// New creates a rows×cols matrix populated by fill.
//
// Example:
//
//	m, err := matrix.New[float32](4, 4, matrix.FillSequential)
func New[T Element](rows, cols int, fill Fill, opts ...Option) (*Matrix[T], error) {
	return matrix.New[T](rows, cols, fill, opts...)
}

// Zeros creates a zero-filled matrix. Panics on non-positive dimensions.
func Zeros[T Element](rows, cols int) *Matrix[T] {
	return matrix.Zeros[T](rows, cols)
}

// FromSlice creates a matrix from a row-major slice, copying it.
//
// Example:
//
//	m, err := matrix.FromSlice(2, 3, []float32{1, 2, 3, 4, 5, 6})
func FromSlice[T Element](rows, cols int, data []T) (*Matrix[T], error) {
	return matrix.FromSlice(rows, cols, data)
}

// WithRand sets the generator used by FillRandom.
func WithRand(rng *rand.Rand) Option {
	return matrix.WithRand(rng)
}

// NewRand returns a generator for FillRandom. A zero seed means time-seeded.
func NewRand(seed int64) *rand.Rand {
	return matrix.NewRand(seed)
}

// Parsing helpers

// ParseStrategy maps a name such as "blocked" to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	return matrix.ParseStrategy(name)
}

// ParseFill maps a name such as "sequential" to its Fill.
func ParseFill(name string) (Fill, error) {
	return matrix.ParseFill(name)
}

// ParseDataType maps a name such as "float64" to its DataType.
func ParseDataType(name string) (DataType, error) {
	return matrix.ParseDataType(name)
}
