package autodiff_test

import (
	"strings"
	"testing"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/telemetry"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTape(t *testing.T) {
	tape := newScalarTape()
	assert.True(t, tape.IsRecording())
	assert.Equal(t, 0, tape.Len())
	assert.NotEqual(t, uuid.Nil, tape.ID())
	assert.NotEqual(t, tape.ID(), newScalarTape().ID())
	assert.Equal(t, "Scalar(float64)", tape.Backend().Name())
}

func TestTape_GeneratedIDs(t *testing.T) {
	tape := newScalarTape()
	v0 := tape.Var(1)
	named := tape.NamedVar(2, "x")
	v1 := tape.Var(3)

	assert.Equal(t, "v0", v0.ID())
	assert.Equal(t, "x", named.ID())
	assert.Equal(t, "v1", v1.ID(), "NamedVar does not consume a generated id")
	assert.Equal(t, "v0=1", v0.String())
	assert.Equal(t, 0, tape.Len(), "leaves are not recorded")
}

func TestTape_GeneratedIDsSkipNames(t *testing.T) {
	tape := newScalarTape()
	tape.NamedVar(1, "v0")
	tape.NamedVar(2, "v1")

	assert.Equal(t, "v2", tape.Var(3).ID())
	assert.Equal(t, "v3", tape.Var(4).ID())
}

func TestTape_DuplicateID(t *testing.T) {
	tape := newScalarTape()
	tape.NamedVar(1, "a")

	err := autodiff.Try(func() { tape.NamedVar(2, "a") })
	require.Error(t, err)
	assert.True(t, errors.Is(err, autodiff.ErrDuplicateID))
	assert.Contains(t, err.Error(), `"a"`)

	// A generated id cannot be claimed either.
	v := tape.Var(3)
	err = autodiff.Try(func() { tape.NamedVar(4, v.ID()) })
	assert.True(t, errors.Is(err, autodiff.ErrDuplicateID))

	err = autodiff.Try(func() { tape.NamedVar(5, "") })
	assert.True(t, errors.Is(err, autodiff.ErrEmptyID))
}

// TestTape_DuplicateIDsMerge checks that nodes sharing an id share a gradient.
func TestTape_DuplicateIDsMerge(t *testing.T) {
	tape := newScalarTape(autodiff.WithDuplicateIDs(true))
	x1 := tape.NamedVar(2, "x")
	x2 := tape.NamedVar(5, "x")
	l := tape.Mul(x1, x2)

	require.NoError(t, tape.Grad(l, x1, x2))
	assert.Equal(t, 7.0, gradOf(t, x1)) // 5 + 2
	_, ok := x2.Grad()
	assert.False(t, ok)
}

func TestTape_Recording(t *testing.T) {
	tape := newScalarTape()
	a := tape.NamedVar(2, "a")
	b := tape.NamedVar(3, "b")

	tape.StopRecording()
	assert.False(t, tape.IsRecording())
	c := tape.Mul(a, b)
	assert.Equal(t, 6.0, c.Value(), "values are still computed")
	assert.Equal(t, 0, tape.Len())

	require.NoError(t, tape.Grad(c, a))
	_, ok := a.Grad()
	assert.False(t, ok, "no gradient flows through unrecorded operations")

	tape.StartRecording()
	d := tape.Mul(a, b)
	assert.Equal(t, 1, tape.Len())
	require.NoError(t, tape.Grad(d, a))
	assert.Equal(t, 3.0, gradOf(t, a))
}

func TestTape_WithRecordingOff(t *testing.T) {
	tape := newScalarTape(autodiff.WithRecording(false))
	assert.False(t, tape.IsRecording())
	tape.Add(tape.Var(1), tape.Var(2))
	assert.Equal(t, 0, tape.Len())
}

func TestTape_Records(t *testing.T) {
	tape := newScalarTape()
	a := tape.NamedVar(2, "a")
	b := tape.NamedVar(3, "b")
	sum := tape.Add(a, b)
	l := tape.Mul(sum, b)

	records := tape.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "add", records[0].Name())
	assert.Equal(t, []string{"a", "b"}, records[0].Inputs())
	assert.Equal(t, sum.ID(), records[0].Output())
	assert.Equal(t, "mul", records[1].Name())
	assert.Equal(t, []string{sum.ID(), "b"}, records[1].Inputs())
	assert.Equal(t, l.ID(), records[1].Output())

	// The returned slice is a copy.
	records[0] = nil
	assert.NotNil(t, tape.Records()[0])
}

func TestTape_Truncate(t *testing.T) {
	tape := newScalarTape()
	a := tape.NamedVar(2, "a")
	b := tape.NamedVar(3, "b")
	sum := tape.Add(a, b)
	l := tape.Mul(sum, b)
	require.Equal(t, 2, tape.Len())

	err := tape.Truncate(3)
	assert.True(t, errors.Is(err, autodiff.ErrTapeRange))
	err = tape.Truncate(-1)
	assert.True(t, errors.Is(err, autodiff.ErrTapeRange))

	require.NoError(t, tape.Truncate(1))
	assert.Equal(t, 1, tape.Len())

	// Only the add record survives: l is now a leaf for the reverse pass.
	require.NoError(t, tape.Grad(l, a, b))
	_, ok := a.Grad()
	assert.False(t, ok)
	require.NoError(t, tape.Grad(sum, a, b))
	assert.Equal(t, 1.0, gradOf(t, a))
	assert.Equal(t, 1.0, gradOf(t, b))
}

func TestTape_Clear(t *testing.T) {
	tape := newScalarTape()
	a := tape.NamedVar(2, "a")
	tape.Mul(a, a)
	last := tape.Var(0)

	tape.Clear()
	assert.Equal(t, 0, tape.Len())
	assert.True(t, tape.IsRecording())

	// Ids keep counting and names stay claimed.
	next := tape.Var(0)
	assert.NotEqual(t, last.ID(), next.ID())
	assert.True(t, errors.Is(autodiff.Try(func() { tape.NamedVar(1, "a") }), autodiff.ErrDuplicateID))
}

func TestTape_Metrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	tape := newScalarTape(autodiff.WithMetrics(telemetry.NewMetrics(reg)))

	a := tape.NamedVar(2, "a")
	b := tape.NamedVar(3, "b")
	l := tape.Mul(tape.Add(a, b), b)
	require.NoError(t, tape.Grad(l, a, b))

	expected := `
# HELP gradtape_records_total Operations appended to autodiff tapes, by operation.
# TYPE gradtape_records_total counter
gradtape_records_total{op="add"} 2
gradtape_records_total{op="mul"} 3
# HELP gradtape_reverse_passes_total Reverse passes run by autodiff tapes.
# TYPE gradtape_reverse_passes_total counter
gradtape_reverse_passes_total 1
# HELP gradtape_tape_length Records on the tape at the start of the latest reverse pass.
# TYPE gradtape_tape_length gauge
gradtape_tape_length 2
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"gradtape_records_total", "gradtape_reverse_passes_total", "gradtape_tape_length")
	assert.NoError(t, err)
}
