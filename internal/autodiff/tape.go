package autodiff

import (
	"strconv"
	"sync"

	"github.com/born-ml/gradtape/internal/telemetry"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Tape records operations during the forward pass and computes gradients during
// the backward pass using reverse-mode automatic differentiation.
//
// V is the numeric payload type and B the backend computing on it.
//
// Records are only ever appended, in creation order, so the log is always a valid
// topological order of the forward graph. History is kept for the lifetime of the
// tape: Grad relies on earlier records, including the ones appended by previous
// Grad calls, to differentiate gradients again. Truncate and Clear are opt-in.
//
// The mutex makes record append, id allocation and snapshots atomic. Gradient slots
// are written without locking: concurrent Grad calls must not share target nodes.
type Tape[V any, B Backend[V]] struct {
	mu         sync.Mutex
	id         uuid.UUID
	backend    B
	operations []Operation[V, B] // Recorded operations (in execution order)
	counter    uint64            // Next anonymous id suffix, never reset
	ids        map[string]struct{}
	recording  bool
	opts       options
}

// NewTape creates a tape computing with backend.
//
// Example:
//
//	tape := autodiff.NewTape[*tensor.RawTensor](cpu.New())
func NewTape[V any, B Backend[V]](backend B, opts ...Option) *Tape[V, B] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tape[V, B]{
		id:         uuid.New(),
		backend:    backend,
		operations: make([]Operation[V, B], 0, 64), // Pre-allocate for common case
		ids:        make(map[string]struct{}),
		recording:  o.recording,
		opts:       o,
	}
}

// ID returns the tape's session identifier, used in log lines.
func (t *Tape[V, B]) ID() uuid.UUID {
	return t.id
}

// Backend returns the numeric backend.
func (t *Tape[V, B]) Backend() B {
	return t.backend
}

// Var creates an anonymous leaf node holding value, with the next generated id.
// No record is appended.
func (t *Tape[V, B]) Var(value V) *Node[V] {
	return &Node[V]{id: t.nextID(), value: value}
}

// NamedVar creates a leaf node with a caller-supplied id. It does not consume a
// generated id.
//
// It panics with ErrEmptyID for an empty name and with ErrDuplicateID when the name
// is already in use, unless the tape was created WithDuplicateIDs(true).
func (t *Tape[V, B]) NamedVar(value V, name string) *Node[V] {
	t.claimID(name)
	if telemetry.TraceEnabled() {
		telemetry.Tracef("%s = %s", name, t.backend.Format(value))
	}
	return &Node[V]{id: name, value: value}
}

// nextID allocates "v<counter>", skipping ids already claimed by NamedVar.
func (t *Tape[V, B]) nextID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	for {
		id := "v" + strconv.FormatUint(t.counter, 10)
		t.counter++
		if _, taken := t.ids[id]; !taken {
			t.ids[id] = struct{}{}
			return id
		}
	}
}

func (t *Tape[V, B]) claimID(name string) {
	if name == "" {
		panic(errors.WithStack(ErrEmptyID))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, taken := t.ids[name]; taken && !t.opts.duplicateIDs {
		panic(errors.Wrapf(ErrDuplicateID, "%q", name))
	}
	t.ids[name] = struct{}{}
}

// newNode creates the output node of an operation: named when a name is given,
// anonymous otherwise.
func (t *Tape[V, B]) newNode(value V, name ...string) *Node[V] {
	if len(name) > 0 && name[0] != "" {
		t.claimID(name[0])
		return &Node[V]{id: name[0], value: value}
	}
	return t.Var(value)
}

// record appends op to the tape. Only records if the tape is currently recording.
func (t *Tape[V, B]) record(op Operation[V, B]) {
	t.mu.Lock()
	recording := t.recording
	if recording {
		t.operations = append(t.operations, op)
	}
	t.mu.Unlock()

	if recording {
		t.opts.metrics.ObserveRecord(op.Name())
	}
}

// trace logs an operation line such as "v3 = v1 * b".
func (t *Tape[V, B]) trace(output, op string, inputs ...string) {
	if !telemetry.TraceEnabled() {
		return
	}
	switch len(inputs) {
	case 1:
		telemetry.Tracef("%s = %s(%s)", output, op, inputs[0])
	case 2:
		telemetry.Tracef("%s = %s %s %s", output, inputs[0], op, inputs[1])
	}
}

// snapshot returns a copy of the log, so that records appended while walking it
// (by backward rules) are not visited by the walk.
func (t *Tape[V, B]) snapshot() []Operation[V, B] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Operation[V, B](nil), t.operations...)
}

// StartRecording enables operation recording.
func (t *Tape[V, B]) StartRecording() {
	t.mu.Lock()
	t.recording = true
	t.mu.Unlock()
}

// StopRecording disables operation recording. Operations still compute their
// values but nothing is appended, so no gradient flows through them.
func (t *Tape[V, B]) StopRecording() {
	t.mu.Lock()
	t.recording = false
	t.mu.Unlock()
}

// IsRecording returns true if the tape is currently recording operations.
func (t *Tape[V, B]) IsRecording() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recording
}

// Len returns the number of recorded operations.
func (t *Tape[V, B]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.operations)
}

// Records returns a copy of the recorded operations, oldest first.
func (t *Tape[V, B]) Records() []Operation[V, B] {
	return t.snapshot()
}

// Truncate drops every record after the first n. Gradients can no longer flow
// through the dropped operations. The id counter is not reset.
func (t *Tape[V, B]) Truncate(n int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n < 0 || n > len(t.operations) {
		return errors.Wrapf(ErrTapeRange, "truncate to %d with %d records", n, len(t.operations))
	}
	clear(t.operations[n:])
	t.operations = t.operations[:n]
	return nil
}

// Clear removes all recorded operations. Recording state and ids are preserved.
func (t *Tape[V, B]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.operations)
	t.operations = t.operations[:0]
}
