// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation with a gradient
// tape.
//
// A Tape records every operation applied to its nodes and computes gradients by
// walking the records backwards. Backward rules are themselves recorded, so the
// gradients Grad returns can be differentiated again.
//
// Example:
//
//	import (
//	    "github.com/born-ml/gradtape/autodiff"
//	    "github.com/born-ml/gradtape/backend/scalar"
//	)
//
//	func main() {
//	    tape := autodiff.NewTape[float64](scalar.New[float64]())
//	    a := tape.NamedVar(2, "a")
//	    b := tape.NamedVar(3, "b")
//	    l := tape.Mul(tape.Add(a, b), b)
//
//	    if err := tape.Grad(l, a, b); err != nil {
//	        log.Fatal(err)
//	    }
//	    da, _ := a.Grad() // 3
//	    db, _ := b.Grad() // 8
//
//	    // Second order: differentiate the product of the gradients.
//	    _ = tape.Grad(tape.Mul(da, db), a, b) // 3, 14
//	}
package autodiff

import (
	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/telemetry"
	"github.com/born-ml/gradtape/tensor"
	"github.com/prometheus/client_golang/prometheus"
)

// Backend is the arithmetic a tape needs from its value type.
type Backend[V any] = autodiff.Backend[V]

// ReduceBackend is a Backend with shapes, reductions and broadcasting.
type ReduceBackend[V any] = autodiff.ReduceBackend[V]

// Tape records operations and computes gradients.
type Tape[V any, B Backend[V]] = autodiff.Tape[V, B]

// Node is a value recorded on a tape.
type Node[V any] = autodiff.Node[V]

// Operation is one record of a tape.
type Operation[V any, B Backend[V]] = autodiff.Operation[V, B]

// Option configures a Tape.
type Option = autodiff.Option

// Metrics collects tape metrics, see WithMetrics.
type Metrics = telemetry.Metrics

// Errors returned (or panicked with) by tapes.
var (
	ErrDuplicateID = autodiff.ErrDuplicateID
	ErrEmptyID     = autodiff.ErrEmptyID
	ErrTapeRange   = autodiff.ErrTapeRange
)

// NewTape creates a tape computing with backend.
func NewTape[V any, B Backend[V]](backend B, opts ...Option) *Tape[V, B] {
	return autodiff.NewTape[V](backend, opts...)
}

// Sum reduces a to a rank-0 value on a tape with a ReduceBackend.
func Sum[V any, B ReduceBackend[V]](t *Tape[V, B], a *Node[V], name ...string) *Node[V] {
	return autodiff.Sum(t, a, name...)
}

// SumTo reduces a to shape by summing its broadcast dimensions.
func SumTo[V any, B ReduceBackend[V]](t *Tape[V, B], a *Node[V], shape tensor.Shape) *Node[V] {
	return autodiff.SumTo(t, a, shape)
}

// Expand broadcasts a to shape.
func Expand[V any, B ReduceBackend[V]](t *Tape[V, B], a *Node[V], shape tensor.Shape) *Node[V] {
	return autodiff.Expand(t, a, shape)
}

// Try runs fn and returns the error it panicked with, if any.
func Try(fn func()) error {
	return autodiff.Try(fn)
}

// WithDuplicateIDs allows several nodes to share a name; their gradients are merged.
func WithDuplicateIDs(allow bool) Option {
	return autodiff.WithDuplicateIDs(allow)
}

// WithRecording sets the initial recording state.
func WithRecording(recording bool) Option {
	return autodiff.WithRecording(recording)
}

// WithMetrics reports tape activity to m.
func WithMetrics(m *Metrics) Option {
	return autodiff.WithMetrics(m)
}

// NewMetrics creates tape metrics registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return telemetry.NewMetrics(reg)
}
