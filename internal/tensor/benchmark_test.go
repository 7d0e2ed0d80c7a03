package tensor

import (
	"testing"
)

func BenchmarkTensorCreation(b *testing.B) {
	shape := Shape{100, 100}
	data := make([]float32, shape.NumElements())

	b.Run("FromSlice", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = FromSlice(data, shape)
		}
	})

	b.Run("Full", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Full(shape, float32(1))
		}
	})

	b.Run("Ones", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Ones(shape, Float64)
		}
	})
}

func BenchmarkShapeOperations(b *testing.B) {
	shape1 := Shape{100, 100}
	shape2 := Shape{100}

	b.Run("NumElements", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape1.NumElements()
		}
	})

	b.Run("ComputeStrides", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape1.ComputeStrides()
		}
	})

	b.Run("BroadcastShapes", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _, _ = BroadcastShapes(shape1, shape2)
		}
	})
}
