package cli

import (
	"testing"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/backend/scalar"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
)

func runScalar(t *testing.T, a, b float64) []gradRow {
	t.Helper()
	tape := autodiff.NewTape[float64](scalar.New[float64]())
	result := must.M1(composite(tape, a, b, identity[float64]))
	assert.Positive(t, result.Records)
	return result.Rows
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2.0, cfg.A)
	assert.Equal(t, 3.0, cfg.B)
	assert.NoError(t, cfg.Validate())

	cfg.Shape = []int{3, -1}
	assert.Error(t, cfg.Validate())
}

func TestComposite_ZeroInput(t *testing.T) {
	// b = 0 makes da = 0, but the gradient node still exists.
	rows := runScalar(t, 2, 0)
	assert.Equal(t, "0", rows[0].Value)
	assert.NotEmpty(t, rows[0].GradID)
	assert.Equal(t, "2", rows[1].Value)
}
