package autodiff

// mulOp represents an element-wise multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
//
// Both products are computed with Tape.Mul, which records them: the gradients are
// part of the graph and can be differentiated again.
type mulOp[V any, B Backend[V]] struct {
	a, b   *Node[V]
	output string
}

// Mul performs element-wise multiplication and records the operation.
func (t *Tape[V, B]) Mul(a, b *Node[V]) *Node[V] {
	r := t.Var(t.backend.Mul(a.value, b.value))
	t.record(&mulOp[V, B]{a: a, b: b, output: r.id})
	t.trace(r.id, "*", a.id, b.id)
	return r
}

func (op *mulOp[V, B]) Name() string { return "mul" }

func (op *mulOp[V, B]) Inputs() []string { return ids(op.a, op.b) }

func (op *mulOp[V, B]) Output() string { return op.output }

// Backward computes input gradients for multiplication.
func (op *mulOp[V, B]) Backward(t *Tape[V, B], outputGrad *Node[V]) []*Node[V] {
	gradA := t.unbroadcast(t.Mul(outputGrad, op.b), op.a)
	gradB := t.unbroadcast(t.Mul(outputGrad, op.a), op.b)
	return []*Node[V]{gradA, gradB}
}
