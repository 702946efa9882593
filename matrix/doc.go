// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dense row-major matrices and the transpose
// strategies measured by the transpose benchmark.
//
// # Basic Usage
//
//	import "github.com/born-ml/transpose/matrix"
//
//	func main() {
//	    rng := matrix.NewRand(42)
//	    src, err := matrix.New[float32](1024, 1024, matrix.FillRandom, matrix.WithRand(rng))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    a := src.TransposeRowMajor()
//	    b := src.TransposeBlocked(matrix.DefaultBlockSize)
//	    fmt.Println(a.Equal(b)) // true
//	}
//
// # Strategies
//
// All strategies return a new Cols×Rows matrix and never modify the source:
//   - RowMajor: sequential reads, strided writes (the baseline)
//   - Linear: sequential writes, strided reads
//   - Blocked: square tiles of a caller-chosen edge, clipped at the borders
//
// # Errors
//
// Out-of-range element access and invalid shapes return errors that match
// ErrIndexOutOfRange and ErrInvalidShape with errors.Is. Assigning between
// matrices of different shapes is a programming error and panics.
package matrix
