package qsim

import "time"

// Operation names recorded in the history ledger.
const (
	OpRegister = "register"
	OpApply    = "apply"
	OpMeasure  = "measure"
	OpRelease  = "release"
)

/*
StateChange is an immutable record of one mutation of the state tensor.
State holds the textual dump of the system right after the mutation.
Outcome is only meaningful for measurements.
*/
type StateChange struct {
	Sequence  uint64
	Timestamp time.Time
	Operation string
	Qubits    []int
	Outcome   Result
	State     string
}

/*
history is the ordered ledger of state changes. The ledger is only kept when
the engine was built WithHistory; the handler fires either way.
*/
type history struct {
	enabled  bool
	next     uint64
	ledger   []StateChange
	onChange func(StateChange)
}

func (h *history) record(op string, qubits []*Qubit, outcome Result, state func() string) {
	if !h.enabled && h.onChange == nil {
		return
	}

	indices := make([]int, len(qubits))
	for i, q := range qubits {
		indices[i] = q.index
	}

	change := StateChange{
		Sequence:  h.next,
		Timestamp: time.Now(),
		Operation: op,
		Qubits:    indices,
		Outcome:   outcome,
		State:     state(),
	}

	h.next++

	if h.enabled {
		h.ledger = append(h.ledger, change)
	}
	if h.onChange != nil {
		h.onChange(change)
	}
}

// since returns the changes recorded from sequence number seq onwards.
func (h *history) since(seq uint64) []StateChange {
	if seq >= uint64(len(h.ledger)) {
		return []StateChange{}
	}
	out := make([]StateChange, len(h.ledger)-int(seq))
	copy(out, h.ledger[seq:])
	return out
}
