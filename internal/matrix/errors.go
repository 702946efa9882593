package matrix

import "errors"

// Matrix errors.
var (
	ErrInvalidShape     = errors.New("invalid shape")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrUnknownFill      = errors.New("unknown fill policy")
	ErrUnknownStrategy  = errors.New("unknown transpose strategy")
	ErrInvalidBlockSize = errors.New("invalid block size")
	ErrUnknownDataType  = errors.New("unknown data type")
	ErrAllocation       = errors.New("cannot allocate matrix")
)
