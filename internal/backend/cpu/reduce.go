package cpu

import (
	"github.com/born-ml/gradtape/internal/tensor"
)

// Sum computes the total sum of all elements in the tensor (rank-0 result).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.alloc("sum", tensor.Shape{}, x.DType())

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = sumAll(x.AsFloat32())
	case tensor.Float64:
		result.AsFloat64()[0] = sumAll(x.AsFloat64())
	default:
		panicUnsupported("sum", x.DType())
	}

	return result
}

// SumTo reduces x down to shape by summing over the dimensions that broadcasting
// would have expanded. It is the adjoint of Expand: shape must broadcast to x's shape.
//
// Example:
//
//	x := [[1 2 3] [4 5 6]]      // (2, 3)
//	backend.SumTo(x, Shape{3})  // [5 7 9]
//	backend.SumTo(x, Shape{2, 1}) // [[6] [15]]
func (cpu *CPUBackend) SumTo(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if !shape.CanBroadcastTo(x.Shape()) {
		panicShape("sumto", "target shape does not broadcast to input", x.Shape(), shape)
	}
	if shape.Equal(x.Shape()) {
		return x.Clone()
	}

	result := cpu.alloc("sumto", shape, x.DType())
	switch x.DType() {
	case tensor.Float32:
		reduceInto(result.AsFloat32(), x.AsFloat32(), shape, x.Shape())
	case tensor.Float64:
		reduceInto(result.AsFloat64(), x.AsFloat64(), shape, x.Shape())
	default:
		panicUnsupported("sumto", x.DType())
	}
	return result
}

func sumAll[T tensor.Float](data []T) T {
	var sum T
	for _, v := range data {
		sum += v
	}
	return sum
}
