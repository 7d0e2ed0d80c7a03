// Package scalar implements the plain-number backend for the autodiff tape.
package scalar

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of Go numeric types the scalar backend operates on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Backend performs scalar arithmetic on values of type T.
type Backend[T Number] struct{}

// New creates a scalar backend for T.
//
// Example:
//
//	tape := autodiff.NewTape[float64](scalar.New[float64]())
func New[T Number]() *Backend[T] {
	return &Backend[T]{}
}

// Name returns the backend name, e.g. "Scalar(float64)".
func (b *Backend[T]) Name() string {
	var zero T
	return fmt.Sprintf("Scalar(%T)", zero)
}

// Add returns x + y.
func (b *Backend[T]) Add(x, y T) T {
	return x + y
}

// Mul returns x * y.
func (b *Backend[T]) Mul(x, y T) T {
	return x * y
}

// OnesLike returns the multiplicative identity.
func (b *Backend[T]) OnesLike(T) T {
	return 1
}

// Format renders x with %v.
func (b *Backend[T]) Format(x T) string {
	return fmt.Sprintf("%v", x)
}
