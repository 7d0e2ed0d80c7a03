// Package autodiff implements reverse-mode automatic differentiation with a gradient tape.
//
// Architecture:
//   - Tape: append-only log of recorded operations (a Wengert list) plus an id counter
//   - Node: an immutable value, its id and a gradient slot written by Grad
//   - Operation: one record per primitive, each implementing its backward rule
//   - Backend: the numeric payload arithmetic (scalars, CPU tensors, ...)
//
// Forward operations run eagerly. Backward rules are expressed with the tape's own
// forward operations, so running Grad appends new records and the gradients it
// returns can be differentiated again.
//
// Usage:
//
//	tape := autodiff.NewTape[float64](scalar.New[float64]())
//	a := tape.NamedVar(2, "a")
//	b := tape.NamedVar(3, "b")
//	l := tape.Mul(tape.Add(a, b), b)
//	if err := tape.Grad(l, a, b); err != nil {
//	    return err
//	}
//	da, _ := a.Grad() // 3
//	db, _ := b.Grad() // 8
package autodiff

import (
	"github.com/born-ml/gradtape/internal/tensor"
)

// Backend is the arithmetic the tape needs from a numeric payload type V.
type Backend[V any] interface {
	// Add returns a + b.
	Add(a, b V) V
	// Mul returns a * b.
	Mul(a, b V) V
	// OnesLike returns the multiplicative identity shaped like v.
	OnesLike(v V) V
	// Format renders v for trace lines.
	Format(v V) string
	// Name identifies the backend in logs.
	Name() string
}

// ReduceBackend is a Backend whose values have a shape and support reductions.
// Tapes over a ReduceBackend gain Sum, SumTo and Expand, and Add/Mul gradients
// are reduced back to their input shapes when broadcasting happened.
type ReduceBackend[V any] interface {
	Backend[V]

	// Sum reduces all elements of v to a rank-0 value.
	Sum(v V) V
	// SumTo reduces v to shape by summing broadcast dimensions.
	SumTo(v V, shape tensor.Shape) V
	// Expand broadcasts v to shape.
	Expand(v V, shape tensor.Shape) V
	// Dims returns the shape of v.
	Dims(v V) tensor.Shape
}
