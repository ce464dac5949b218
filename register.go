package qsim

import "fmt"

/*
Register is the guard for a group of qubits allocated together by
QuantumSystem.Register. Releasing it checks that every one of its qubits is
back in |0⟩ and shrinks the state tensor. A failed release leaves the
register open and the tensor untouched, so the caller may reset the qubits
and try again.
*/
type Register struct {
	system   *QuantumSystem
	qubits   []*Qubit
	released bool
}

// Qubits returns the register's handles in allocation order.
func (r *Register) Qubits() []*Qubit {
	return append([]*Qubit(nil), r.qubits...)
}

// Qubit returns the i-th handle of the register.
func (r *Register) Qubit(i int) *Qubit {
	return r.qubits[i]
}

func (r *Register) Len() int {
	return len(r.qubits)
}

func (r *Register) Released() bool {
	return r.released
}

func (r *Register) Release() error {
	if r.released {
		return ErrRegisterReleased
	}

	open := r.system.open
	if len(open) == 0 || open[len(open)-1] != r {
		return fmt.Errorf("%w: register %v", ErrReleaseOrder, r.indices())
	}

	if err := r.system.release(r); err != nil {
		return err
	}

	r.released = true
	return nil
}

func (r *Register) indices() []int {
	out := make([]int, len(r.qubits))
	for i, q := range r.qubits {
		out[i] = q.index
	}
	return out
}
