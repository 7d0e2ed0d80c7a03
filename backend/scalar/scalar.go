// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides backends computing on plain Go numbers, for tapes that
// differentiate scalar expressions.
//
// Example:
//
//	tape := autodiff.NewTape[float64](scalar.New[float64]())
//	a := tape.NamedVar(2, "a")
//	l := tape.Mul(a, a)
package scalar

import (
	"github.com/born-ml/gradtape/autodiff"
	"github.com/born-ml/gradtape/internal/backend/scalar"
	"github.com/x448/float16"
)

// Number is the set of numeric types a scalar backend operates on.
type Number = scalar.Number

// Backend performs scalar arithmetic on values of type T.
type Backend[T Number] = scalar.Backend[T]

// Half performs IEEE 754 half-precision arithmetic.
type Half = scalar.Half

var (
	_ autodiff.Backend[float64]         = (*Backend[float64])(nil)
	_ autodiff.Backend[float16.Float16] = (*Half)(nil)
)

// New creates a scalar backend for T.
func New[T Number]() *Backend[T] {
	return scalar.New[T]()
}

// NewHalf creates a half-precision backend over float16.Float16 values.
func NewHalf() *Half {
	return scalar.NewHalf()
}
