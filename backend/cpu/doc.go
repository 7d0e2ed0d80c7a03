// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for the autodiff tape.
//
// # Overview
//
// This package implements the arithmetic a gradient tape needs on dense tensors:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support
//   - NumPy-compatible broadcasting for Add and Mul
//   - Reductions (Sum, SumTo) and broadcasting (Expand) for gradients
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gradtape/autodiff"
//	    "github.com/born-ml/gradtape/backend/cpu"
//	    "github.com/born-ml/gradtape/tensor"
//	)
//
//	func main() {
//	    tape := autodiff.NewTape[*tensor.RawTensor](cpu.New())
//	    x := tape.NamedVar(tensor.Scalar[float32](2), "x")
//	    y := tape.Mul(x, x)
//	    _ = tape.Grad(y, x)
//	}
//
// # Errors
//
// Operations on incompatible shapes panic with a *ShapeError. Use autodiff.Try to
// turn such panics into errors.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each operation allocates its result
// and does not share mutable state.
package cpu
