package bench

import "errors"

// Benchmark errors.
var (
	ErrExponentRange   = errors.New("exponent must be > 1 and <30")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUsage           = errors.New("bad flag syntax")
	ErrVerifyFailed    = errors.New("transpose result does not match row-major baseline")
)
