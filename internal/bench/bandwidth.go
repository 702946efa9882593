// Package bench times transpose trials and reports effective bandwidth.
package bench

import "github.com/born-ml/transpose/internal/matrix"

// BytesMoved returns the memory traffic of one transpose: every element is
// read once and written once. Cache reuse and tiling are not accounted for.
func BytesMoved(shape matrix.Shape, elemSize int) int64 {
	n := int64(shape.Rows) * int64(shape.Cols)
	return 2 * n * int64(elemSize)
}

// EffectiveBandwidth converts a transpose of shape taking elapsedMillis into
// GB/s (10^9 bytes per second). elapsedMillis must be positive.
//
// Example: 1024x1024 float32 in 10 ms moves 8388608 bytes, 0.8388608 GB/s.
func EffectiveBandwidth(shape matrix.Shape, elemSize int, elapsedMillis float64) float64 {
	seconds := elapsedMillis / 1000
	return float64(BytesMoved(shape, elemSize)) / (seconds * 1e9)
}
