package cpu

import (
	"fmt"
	"strings"

	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/pkg/errors"
)

// ShapeError reports operands whose shapes an operation cannot combine.
// The backend panics with it; the autodiff tape turns the panic into an error at
// its reverse-pass boundary.
type ShapeError struct {
	Op     string         // Operation name, e.g. "mul"
	Reason string         // What went wrong
	Shapes []tensor.Shape // Offending shapes, in operand order
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	shapes := make([]string, len(e.Shapes))
	for i, s := range e.Shapes {
		shapes[i] = s.String()
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Reason, strings.Join(shapes, " vs "))
}

func panicShape(op, reason string, shapes ...tensor.Shape) {
	panic(errors.WithStack(&ShapeError{Op: op, Reason: reason, Shapes: shapes}))
}

func panicDType(op string, a, b tensor.DataType) {
	panic(errors.Errorf("%s: dtype mismatch: %s vs %s", op, a, b))
}

func panicUnsupported(op string, dtype tensor.DataType) {
	panic(errors.Errorf("%s: unsupported dtype %s (only float32/float64 supported)", op, dtype))
}
