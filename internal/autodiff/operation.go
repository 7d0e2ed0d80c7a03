package autodiff

// Operation is one tape record: a differentiable primitive applied to recorded nodes.
//
// Operations keep their input nodes, so Backward can build gradients from the
// original values with the tape's own forward operations.
type Operation[V any, B Backend[V]] interface {
	// Name returns the primitive name ("add", "mul", "sum", "sumto", "expand").
	Name() string

	// Inputs returns the ids of the input nodes, in operand order.
	Inputs() []string

	// Output returns the id of the node this operation produced.
	Output() string

	// Backward maps the gradient of the output to one gradient per input, in the
	// same order as Inputs. It may append new records to t.
	//
	// Example for add:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)]
	Backward(t *Tape[V, B], outputGrad *Node[V]) []*Node[V]
}

// ids returns the ids of nodes.
func ids[V any](nodes ...*Node[V]) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.id
	}
	return out
}
