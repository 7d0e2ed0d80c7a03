package tensor

import (
	"strconv"
	"strings"
)

// Format renders the tensor values as nested brackets, e.g. "[[1 2] [3 4]]".
// A rank-0 tensor renders as its bare value.
func Format(r *RawTensor) string {
	bits := 64
	if r.DType() == Float32 {
		bits = 32
	}
	values := r.Float64s()

	var sb strings.Builder
	formatDim(&sb, values, r.Shape(), r.Strides(), 0, 0, bits)
	return sb.String()
}

// String implements fmt.Stringer.
func (r *RawTensor) String() string {
	return Format(r)
}

func formatDim(sb *strings.Builder, values []float64, shape Shape, strides []int, dim, offset, bits int) {
	if dim == len(shape) {
		sb.WriteString(strconv.FormatFloat(values[offset], 'g', -1, bits))
		return
	}
	sb.WriteByte('[')
	for i := 0; i < shape[dim]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		formatDim(sb, values, shape, strides, dim+1, offset+i*strides[dim], bits)
	}
	sb.WriteByte(']')
}
