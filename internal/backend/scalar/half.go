package scalar

import (
	"strconv"

	"github.com/x448/float16"
)

// Half performs IEEE 754 half-precision arithmetic. Every operation is computed in
// float32 and rounded to the nearest float16.
type Half struct{}

// NewHalf creates a half-precision scalar backend.
func NewHalf() *Half {
	return &Half{}
}

// Name returns the backend name.
func (h *Half) Name() string {
	return "Scalar(float16)"
}

// Add returns x + y rounded to float16.
func (h *Half) Add(x, y float16.Float16) float16.Float16 {
	return float16.Fromfloat32(x.Float32() + y.Float32())
}

// Mul returns x * y rounded to float16.
func (h *Half) Mul(x, y float16.Float16) float16.Float16 {
	return float16.Fromfloat32(x.Float32() * y.Float32())
}

// OnesLike returns float16 one.
func (h *Half) OnesLike(float16.Float16) float16.Float16 {
	return float16.Fromfloat32(1)
}

// Format renders x using its float32 value.
func (h *Half) Format(x float16.Float16) string {
	return strconv.FormatFloat(float64(x.Float32()), 'g', -1, 32)
}
