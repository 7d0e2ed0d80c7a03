// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/born-ml/gradtape/autodiff"
	internalcpu "github.com/born-ml/gradtape/internal/backend/cpu"
	"github.com/born-ml/gradtape/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// ShapeError reports operands whose shapes an operation cannot combine.
type ShapeError = internalcpu.ShapeError

// Compile-time check that Backend supports tensor gradients.
var _ autodiff.ReduceBackend[*tensor.RawTensor] = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	tape := autodiff.NewTape[*tensor.RawTensor](cpu.New())
func New() *Backend {
	return internalcpu.New()
}
