package autodiff_test

import (
	"testing"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/backend/cpu"
	"github.com/born-ml/gradtape/internal/backend/scalar"
	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type (
	scalarTape = autodiff.Tape[float64, *scalar.Backend[float64]]
	tensorTape = autodiff.Tape[*tensor.RawTensor, *cpu.CPUBackend]
)

func newScalarTape(opts ...autodiff.Option) *scalarTape {
	return autodiff.NewTape[float64](scalar.New[float64](), opts...)
}

func newTensorTape(opts ...autodiff.Option) *tensorTape {
	return autodiff.NewTape[*tensor.RawTensor](cpu.New(), opts...)
}

// gradOf returns the value of n's gradient, failing the test when the slot is empty.
func gradOf[V any](t *testing.T, n *autodiff.Node[V]) V {
	t.Helper()
	g, ok := n.Grad()
	require.True(t, ok, "node %s has no gradient", n.ID())
	return g.Value()
}

// fromSlice builds a tensor or fails the test.
func fromSlice[T tensor.Float](t *testing.T, data []T, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return raw
}

// flakyBackend is a float64 scalar backend whose Mul can be switched to fail.
type flakyBackend struct {
	*scalar.Backend[float64]
	failMul bool
}

func (b *flakyBackend) Mul(x, y float64) float64 {
	if b.failMul {
		panic(errors.New("mul: backend failure"))
	}
	return b.Backend.Mul(x, y)
}
