package autodiff

import (
	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/gomlx/exceptions"
)

// Sum reduces all elements of a to a rank-0 value and records the operation.
// An optional name makes the output a named node (see Tape.NamedVar).
//
// Backward: grad_a = Expand(outputGrad, dims(a)).
func Sum[V any, B ReduceBackend[V]](t *Tape[V, B], a *Node[V], name ...string) *Node[V] {
	return t.sum(t.backend, a, name...)
}

// SumTo reduces a to shape by summing the dimensions broadcasting would expand,
// and records the operation. shape must broadcast to a's shape.
//
// Backward: grad_a = Expand(outputGrad, dims(a)).
func SumTo[V any, B ReduceBackend[V]](t *Tape[V, B], a *Node[V], shape tensor.Shape) *Node[V] {
	return t.sumTo(t.backend, a, shape)
}

// Expand broadcasts a to shape and records the operation.
//
// Backward: grad_a = SumTo(outputGrad, dims(a)), which is a full Sum when a is rank-0.
func Expand[V any, B ReduceBackend[V]](t *Tape[V, B], a *Node[V], shape tensor.Shape) *Node[V] {
	return t.expand(t.backend, a, shape)
}

// sumOp represents a full reduction: output = sum(a).
type sumOp[V any, B Backend[V]] struct {
	a      *Node[V]
	output string
}

func (t *Tape[V, B]) sum(rb ReduceBackend[V], a *Node[V], name ...string) *Node[V] {
	r := t.newNode(rb.Sum(a.value), name...)
	t.record(&sumOp[V, B]{a: a, output: r.id})
	t.trace(r.id, "sum", a.id)
	return r
}

func (op *sumOp[V, B]) Name() string { return "sum" }

func (op *sumOp[V, B]) Inputs() []string { return ids(op.a) }

func (op *sumOp[V, B]) Output() string { return op.output }

// Backward broadcasts the gradient back to the input shape.
func (op *sumOp[V, B]) Backward(t *Tape[V, B], outputGrad *Node[V]) []*Node[V] {
	rb := t.reducer()
	return []*Node[V]{t.expand(rb, outputGrad, rb.Dims(op.a.value))}
}

// sumToOp represents a reduction to a broadcast-compatible shape.
type sumToOp[V any, B Backend[V]] struct {
	a      *Node[V]
	output string
}

func (t *Tape[V, B]) sumTo(rb ReduceBackend[V], a *Node[V], shape tensor.Shape) *Node[V] {
	r := t.Var(rb.SumTo(a.value, shape))
	t.record(&sumToOp[V, B]{a: a, output: r.id})
	t.trace(r.id, "sumto", a.id+", "+shape.String())
	return r
}

func (op *sumToOp[V, B]) Name() string { return "sumto" }

func (op *sumToOp[V, B]) Inputs() []string { return ids(op.a) }

func (op *sumToOp[V, B]) Output() string { return op.output }

// Backward broadcasts the gradient back to the input shape.
func (op *sumToOp[V, B]) Backward(t *Tape[V, B], outputGrad *Node[V]) []*Node[V] {
	rb := t.reducer()
	return []*Node[V]{t.expand(rb, outputGrad, rb.Dims(op.a.value))}
}

// expandOp represents a broadcast: output = expand(a, shape).
type expandOp[V any, B Backend[V]] struct {
	a      *Node[V]
	output string
}

func (t *Tape[V, B]) expand(rb ReduceBackend[V], a *Node[V], shape tensor.Shape) *Node[V] {
	r := t.Var(rb.Expand(a.value, shape))
	t.record(&expandOp[V, B]{a: a, output: r.id})
	t.trace(r.id, "expand", a.id+", "+shape.String())
	return r
}

func (op *expandOp[V, B]) Name() string { return "expand" }

func (op *expandOp[V, B]) Inputs() []string { return ids(op.a) }

func (op *expandOp[V, B]) Output() string { return op.output }

// Backward sums the gradient back down to the input shape.
func (op *expandOp[V, B]) Backward(t *Tape[V, B], outputGrad *Node[V]) []*Node[V] {
	rb := t.reducer()
	dims := rb.Dims(op.a.value)
	if dims.IsScalar() {
		return []*Node[V]{t.sum(rb, outputGrad)}
	}
	return []*Node[V]{t.sumTo(rb, outputGrad, dims)}
}

// reducer returns the backend as a ReduceBackend. Reduction records only exist on
// tapes whose backend is one.
func (t *Tape[V, B]) reducer() ReduceBackend[V] {
	rb, ok := any(t.backend).(ReduceBackend[V])
	if !ok {
		exceptions.Panicf("backend %s does not support reductions", t.backend.Name())
	}
	return rb
}

// unbroadcast returns grad reduced to the shape of like when the backend has shapes
// and they differ; otherwise grad itself.
func (t *Tape[V, B]) unbroadcast(grad, like *Node[V]) *Node[V] {
	rb, ok := any(t.backend).(ReduceBackend[V])
	if !ok {
		return grad
	}
	dims := rb.Dims(like.value)
	if rb.Dims(grad.value).Equal(dims) {
		return grad
	}
	return t.sumTo(rb, grad, dims)
}
