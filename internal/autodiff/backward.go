package autodiff

import (
	"maps"
	"slices"
	"time"

	"github.com/born-ml/gradtape/internal/telemetry"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
)

// Grad computes the gradient of output with respect to each wanted node and stores
// it in that node's gradient slot (see Node.Grad), replacing any previous value.
//
// A wanted node that output does not depend on ends up with an empty slot. Each
// accumulated gradient is moved into the first wanted node carrying its id: listing
// the same node twice leaves the second occurrence empty.
//
// The backward rules run through the tape, so Grad appends records and the gradients
// can be passed to Grad again for higher-order derivatives.
//
// A backend failure during the pass is returned as an error and no slot is written.
func (t *Tape[V, B]) Grad(output *Node[V], wanted ...*Node[V]) error {
	grads, err := t.Gradients(output)
	if err != nil {
		return err
	}
	for _, n := range wanted {
		grad, ok := grads[n.id]
		if ok {
			delete(grads, n.id)
		}
		n.grad = grad
	}
	return nil
}

// MustGrad is like Grad but panics on error.
func (t *Tape[V, B]) MustGrad(output *Node[V], wanted ...*Node[V]) {
	must.M(t.Grad(output, wanted...))
}

// Gradients runs the reverse pass from output and returns the gradient of output
// with respect to every node it depends on, keyed by node id. No gradient slot is
// written.
func (t *Tape[V, B]) Gradients(output *Node[V]) (map[string]*Node[V], error) {
	start := time.Now()
	var (
		grads   map[string]*Node[V]
		visited int
	)
	err := Try(func() {
		grads, visited = t.backward(output)
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "grad of %s", output.id)
	}
	t.opts.metrics.ObservePass(time.Since(start), visited)
	return grads, nil
}

// backward computes gradients for all nodes output depends on by walking the tape
// in reverse.
//
// Algorithm:
//  1. Seed the output gradient with ones shaped like the output
//  2. Snapshot the tape, so records appended by backward rules are not walked
//  3. Walk the snapshot backwards, skipping records whose output got no gradient
//  4. Accumulate with Add when a node receives gradients from several consumers
func (t *Tape[V, B]) backward(output *Node[V]) (map[string]*Node[V], int) {
	grads := map[string]*Node[V]{
		output.id: t.Var(t.backend.OnesLike(output.value)),
	}
	operations := t.snapshot()
	telemetry.Dumpf("tape %s: d%s over %d records", t.id, output.id, len(operations))

	for i := len(operations) - 1; i >= 0; i-- {
		op := operations[i]
		outputGrad, ok := grads[op.Output()]
		if !ok {
			continue
		}
		telemetry.Dumpf("%v -> %s", op.Inputs(), op.Output())

		inputGrads := op.Backward(t, outputGrad)
		for j, input := range op.Inputs() {
			if existing, ok := grads[input]; ok {
				grads[input] = t.Add(existing, inputGrads[j])
			} else {
				grads[input] = inputGrads[j]
			}
		}
	}

	if telemetry.DumpEnabled() {
		for _, id := range slices.Sorted(maps.Keys(grads)) {
			telemetry.Dumpf("d%s_d%s = %s", output.id, id, grads[id].id)
		}
	}
	return grads, len(operations)
}
