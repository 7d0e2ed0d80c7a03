package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCmd("v1.2.3")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestScalarCmd(t *testing.T) {
	out, err := execute(t, "scalar")
	require.NoError(t, err)
	assert.Contains(t, out, "Scalar(float64), a=2 b=3")
	assert.Contains(t, out, "dl/da")
	assert.Contains(t, out, "dl2/db")
	assert.Contains(t, out, "14")
	assert.Contains(t, out, "records")
	assert.NotContains(t, out, "gradtape_records_total")
}

func TestScalarCmd_Inputs(t *testing.T) {
	out, err := execute(t, "scalar", "-a", "1", "-b", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "a=1 b=5")
	assert.Contains(t, out, "11") // db = a + 2b
	assert.Contains(t, out, "21") // dl2/db = a + 4b
}

func TestTensorCmd(t *testing.T) {
	out, err := execute(t, "tensor", "--shape", "2,2")
	require.NoError(t, err)
	assert.Contains(t, out, "CPU, shape=(2, 2) a=2 b=3")
	assert.Contains(t, out, "[[3 3] [3 3]]")
	assert.Contains(t, out, "[[14 14] [14 14]]")
	assert.Contains(t, out, "of gradients")
}

func TestTensorCmd_InvalidShape(t *testing.T) {
	_, err := execute(t, "tensor", "--shape", "2,0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --shape")
}

func TestHalfCmd(t *testing.T) {
	out, err := execute(t, "half", "-a", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Scalar(float16), a=0.5 b=3")
	assert.Contains(t, out, "6.5") // db = a + 2b
}

func TestMetricsFlag(t *testing.T) {
	out, err := execute(t, "scalar", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `gradtape_records_total{op="add"}`)
	assert.Contains(t, out, "gradtape_reverse_passes_total 2")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gradtape v1.2.3\n", out)
}

func TestComposite_Rows(t *testing.T) {
	rows := runScalar(t, 2, 3)
	require.Len(t, rows, 4)
	assert.Equal(t, gradRow{Order: 1, Node: "a", GradID: "v3", Value: "3"}, rows[0])
	assert.Equal(t, gradRow{Order: 1, Node: "b", GradID: "v5", Value: "8"}, rows[1])
	assert.Equal(t, "3", rows[2].Value)
	assert.Equal(t, "14", rows[3].Value)
}
