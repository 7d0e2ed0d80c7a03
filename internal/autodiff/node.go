package autodiff

import "fmt"

// Node is a value recorded in the computation graph.
//
// The value and id never change after creation. The gradient slot is written by
// Tape.Grad each time the node is requested, overwriting any previous gradient.
type Node[V any] struct {
	id    string
	value V
	grad  *Node[V]
}

// ID returns the node identifier ("v0", "v1", ... or the name given to NamedVar).
func (n *Node[V]) ID() string {
	return n.id
}

// Value returns the forward value.
func (n *Node[V]) Value() V {
	return n.value
}

// Grad returns the gradient deposited by the latest Tape.Grad call naming this node.
// It returns false when the node did not influence that output (the gradient is zero)
// or when no Grad call requested it yet.
func (n *Node[V]) Grad() (*Node[V], bool) {
	return n.grad, n.grad != nil
}

// String implements fmt.Stringer.
func (n *Node[V]) String() string {
	return fmt.Sprintf("%s=%v", n.id, n.value)
}
