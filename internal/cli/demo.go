package cli

import (
	"time"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/pkg/errors"
)

// gradRow is one line of a gradient table.
type gradRow struct {
	Order  int    // 1 for dl/dx, 2 for dl2/dx
	Node   string // Differentiated node
	GradID string // Id of the gradient node, empty when the gradient is zero
	Value  string // Formatted gradient value
}

// demoResult summarizes a composite run.
type demoResult struct {
	Rows    []gradRow
	Records int
	Elapsed time.Duration
}

// reduceFn turns an expression into the tape output to differentiate: identity for
// scalars, a full Sum for tensors.
type reduceFn[V any] func(n *autodiff.Node[V], name string) *autodiff.Node[V]

// composite runs l = (a + b) * b and l2 = da * db on tape and collects the gradients
// of both with respect to a and b.
func composite[V any, B autodiff.Backend[V]](tape *autodiff.Tape[V, B], av, bv V, reduce reduceFn[V]) (*demoResult, error) {
	start := time.Now()
	a := tape.NamedVar(av, "a")
	b := tape.NamedVar(bv, "b")

	l := reduce(tape.Mul(tape.Add(a, b), b), "l")
	if err := tape.Grad(l, a, b); err != nil {
		return nil, err
	}
	rows := gradRows(tape, 1, a, b)

	da, okA := a.Grad()
	db, okB := b.Grad()
	if !okA || !okB {
		return nil, errors.Errorf("%s does not depend on both inputs", l.ID())
	}
	l2 := reduce(tape.Mul(da, db), "l2")
	if err := tape.Grad(l2, a, b); err != nil {
		return nil, err
	}
	rows = append(rows, gradRows(tape, 2, a, b)...)

	return &demoResult{
		Rows:    rows,
		Records: tape.Len(),
		Elapsed: time.Since(start),
	}, nil
}

func gradRows[V any, B autodiff.Backend[V]](tape *autodiff.Tape[V, B], order int, nodes ...*autodiff.Node[V]) []gradRow {
	rows := make([]gradRow, 0, len(nodes))
	for _, n := range nodes {
		row := gradRow{Order: order, Node: n.ID(), Value: "0"}
		if g, ok := n.Grad(); ok {
			row.GradID = g.ID()
			row.Value = tape.Backend().Format(g.Value())
		}
		rows = append(rows, row)
	}
	return rows
}

// identity is the reduceFn of scalar tapes. The name is only used by tensor
// reductions.
func identity[V any](n *autodiff.Node[V], _ string) *autodiff.Node[V] {
	return n
}
