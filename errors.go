package qsim

import (
	"errors"
	"fmt"
)

var (
	ErrReleasedQubit    = errors.New("operation on released qubit is not allowed")
	ErrNonUnitary       = errors.New("matrix is not unitary")
	ErrReleaseInvariant = errors.New("qubits must be set to zero before release")
	ErrArityMismatch    = errors.New("number of qubits does not match operator arity")
	ErrInvalidMatrix    = errors.New("matrix must be square with a power of two dimension")
	ErrQubitOutOfRange  = errors.New("qubit index out of range")
	ErrDuplicateQubit   = errors.New("qubit passed more than once")
	ErrReleaseOrder     = errors.New("registers must be released innermost first")
	ErrRegisterReleased = errors.New("register already released")
	ErrNegativeCount    = errors.New("qubit count must not be negative")
	ErrDegenerateState  = errors.New("state has zero or non-finite norm")
)

/*
ReleaseError reports a register whose qubits were not back in |0…0⟩ when it
was released. Probability is the mass that was found on the all-zero subspace.
*/
type ReleaseError struct {
	Qubits      []int
	Probability float64
}

func (e *ReleaseError) Error() string {
	return fmt.Sprintf("%v: qubits %v, prob: %g", ErrReleaseInvariant, e.Qubits, e.Probability)
}

func (e *ReleaseError) Unwrap() error {
	return ErrReleaseInvariant
}
