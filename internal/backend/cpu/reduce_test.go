package cpu

import (
	"testing"

	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/stretchr/testify/assert"
)

func TestCPUBackend_Sum(t *testing.T) {
	backend := newTestBackend()

	x := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	result := backend.Sum(x)
	assert.True(t, result.Shape().IsScalar())
	assert.Equal(t, []float64{21}, result.AsFloat64())

	x32 := fromSlice(t, []float32{0.5, 0.25}, tensor.Shape{2})
	assert.Equal(t, []float32{0.75}, backend.Sum(x32).AsFloat32())
}

func TestCPUBackend_SumTo(t *testing.T) {
	backend := newTestBackend()
	x := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	tests := []struct {
		name   string
		target tensor.Shape
		want   []float64
	}{
		{"Identity", tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6}},
		{"LeadingDim", tensor.Shape{3}, []float64{5, 7, 9}},
		{"KeepRows", tensor.Shape{2, 1}, []float64{6, 15}},
		{"KeepCols", tensor.Shape{1, 3}, []float64{5, 7, 9}},
		{"Scalar", tensor.Shape{}, []float64{21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := backend.SumTo(x, tt.target)
			assert.True(t, result.Shape().Equal(tt.target), "shape %v", result.Shape())
			assert.Equal(t, tt.want, result.AsFloat64())
		})
	}

	t.Run("Incompatible", func(t *testing.T) {
		requireShapePanic(t, "sumto", func() { backend.SumTo(x, tensor.Shape{2}) })
	})
}
