package autodiff

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrDuplicateID = errors.New("duplicate node id")
	ErrEmptyID     = errors.New("empty node id")
	ErrTapeRange   = errors.New("tape index out of range")
)

// Try runs fn and returns the error it panicked with, if any.
//
// Forward operations panic when the backend rejects their operands (for example
// incompatible tensor shapes); Try converts such panics into errors:
//
//	err := autodiff.Try(func() {
//	    c = tape.Mul(a, b)
//	})
//
// Panics with values that are not errors are propagated.
func Try(fn func()) error {
	return exceptions.TryCatch[error](fn)
}
