// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense tensor values differentiated by the gradtape
// CPU backend.
//
// # Overview
//
// A RawTensor is a contiguous, row-major buffer of float32 or float64 values with
// a Shape. Rank-0 tensors (Shape{}) hold a single value and are what reductions
// return.
//
// # Basic Usage
//
//	import "github.com/born-ml/gradtape/tensor"
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(x) // [[1 2 3] [4 5 6]]
//
// # Broadcasting
//
// Binary operations of the CPU backend follow NumPy broadcasting rules: shapes are
// aligned from the right and each dimension pair must be equal or contain a 1.
//
//	tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{4}) // (3, 4)
package tensor
