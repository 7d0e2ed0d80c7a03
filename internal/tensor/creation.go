package tensor

import "github.com/pkg/errors"

// FromSlice creates a tensor holding a copy of data with the given shape.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice[T Float](data []T, shape Shape) (*RawTensor, error) {
	if len(data) != shape.NumElements() {
		return nil, errors.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	raw, err := NewRaw(shape, DataTypeOf[T](), CPU)
	if err != nil {
		return nil, err
	}
	copy(elements[T](raw), data)
	return raw, nil
}

// Full creates a tensor of the given shape filled with value.
func Full[T Float](shape Shape, value T) (*RawTensor, error) {
	raw, err := NewRaw(shape, DataTypeOf[T](), CPU)
	if err != nil {
		return nil, err
	}
	data := elements[T](raw)
	for i := range data {
		data[i] = value
	}
	return raw, nil
}

// Scalar creates a rank-0 tensor holding value.
func Scalar[T Float](value T) *RawTensor {
	raw, err := Full(Shape{}, value)
	if err != nil {
		panic(err) // A rank-0 shape is always valid
	}
	return raw
}

// Ones creates a tensor of the given shape and dtype filled with ones.
func Ones(shape Shape, dtype DataType) (*RawTensor, error) {
	switch dtype {
	case Float32:
		return Full[float32](shape, 1)
	case Float64:
		return Full[float64](shape, 1)
	default:
		return nil, errors.Errorf("ones: unsupported dtype %s", dtype)
	}
}

// elements returns the typed view of raw for the element type T.
func elements[T Float](raw *RawTensor) []T {
	switch raw.DType() {
	case Float32:
		return any(raw.AsFloat32()).([]T)
	default:
		return any(raw.AsFloat64()).([]T)
	}
}
