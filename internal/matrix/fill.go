package matrix

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Fill selects how a new matrix is populated.
type Fill int

// Supported fill policies.
const (
	FillZero       Fill = iota // All elements are the additive identity.
	FillRandom                 // Uniform in [0, 1), cast to the element type.
	FillSequential             // 0, 1, 2, ... in row-major order.
)

// String returns a human-readable name for the fill policy.
func (f Fill) String() string {
	switch f {
	case FillZero:
		return "zero"
	case FillRandom:
		return "random"
	case FillSequential:
		return "sequential"
	default:
		return "unknown"
	}
}

// ParseFill maps a name such as "random" to its Fill.
func ParseFill(name string) (Fill, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "zero", "zeros":
		return FillZero, nil
	case "random", "rand":
		return FillRandom, nil
	case "sequential", "seq":
		return FillSequential, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFill, name)
	}
}

// Option configures matrix construction.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand sets the generator used by FillRandom.
// Without it a time-seeded generator is created for each construction.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// NewRand returns a generator for FillRandom. A zero seed means time-seeded.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // G404: benchmark data, not crypto
}

// applyFill populates data according to the policy.
func applyFill[T Element](f Fill, data []T, o *options) error {
	switch f {
	case FillZero:
		// Data is already zero-initialized by make().
		return nil
	case FillRandom:
		rng := o.rng
		if rng == nil {
			rng = NewRand(0)
		}
		fillRandom(data, rng)
		return nil
	case FillSequential:
		fillSequential(data)
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFill, int(f))
	}
}

// fillRandom draws one value in [0, 1) per element. float64 matrices get full
// precision; every other type goes through Float32 so that the conversion
// can never round up to 1. Integer types truncate to zero.
func fillRandom[T Element](data []T, rng *rand.Rand) {
	if d, ok := any(data).([]float64); ok {
		for i := range d {
			d[i] = rng.Float64()
		}
		return
	}
	for i := range data {
		data[i] = T(rng.Float32())
	}
}

func fillSequential[T Element](data []T) {
	for i := range data {
		data[i] = T(i)
	}
}
