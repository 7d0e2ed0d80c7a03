package autodiff

// addOp represents an element-wise addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
//
// Both inputs receive the same gradient node. On a ReduceBackend an input that was
// broadcast in the forward pass receives the gradient summed back to its shape.
type addOp[V any, B Backend[V]] struct {
	a, b   *Node[V]
	output string
}

// Add performs element-wise addition and records the operation.
func (t *Tape[V, B]) Add(a, b *Node[V]) *Node[V] {
	r := t.Var(t.backend.Add(a.value, b.value))
	t.record(&addOp[V, B]{a: a, b: b, output: r.id})
	t.trace(r.id, "+", a.id, b.id)
	return r
}

func (op *addOp[V, B]) Name() string { return "add" }

func (op *addOp[V, B]) Inputs() []string { return ids(op.a, op.b) }

func (op *addOp[V, B]) Output() string { return op.output }

// Backward computes input gradients for addition.
func (op *addOp[V, B]) Backward(t *Tape[V, B], outputGrad *Node[V]) []*Node[V] {
	return []*Node[V]{
		t.unbroadcast(outputGrad, op.a),
		t.unbroadcast(outputGrad, op.b),
	}
}
