package cpu

import (
	"github.com/born-ml/gradtape/internal/tensor"
)

// Expand broadcasts the tensor to a new shape.
//
// Shapes are aligned from the right; every input dimension must either equal the
// target dimension or be 1.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if !x.Shape().CanBroadcastTo(newShape) {
		panicShape("expand", "cannot broadcast", x.Shape(), newShape)
	}

	result := cpu.alloc("expand", newShape, x.DType())
	switch x.DType() {
	case tensor.Float32:
		expandInto(result.AsFloat32(), x.AsFloat32(), x.Shape(), newShape)
	case tensor.Float64:
		expandInto(result.AsFloat64(), x.AsFloat64(), x.Shape(), newShape)
	default:
		panicUnsupported("expand", x.DType())
	}

	return result
}

// Dims returns the shape of x.
func (cpu *CPUBackend) Dims(x *tensor.RawTensor) tensor.Shape {
	return x.Shape().Clone()
}

// OnesLike returns a tensor of x's shape and dtype filled with ones.
func (cpu *CPUBackend) OnesLike(x *tensor.RawTensor) *tensor.RawTensor {
	ones, err := tensor.Ones(x.Shape(), x.DType())
	if err != nil {
		panicUnsupported("ones_like", x.DType())
	}
	return ones
}

// Format renders x for trace output.
func (cpu *CPUBackend) Format(x *tensor.RawTensor) string {
	return tensor.Format(x)
}
