package qsim

// Result is the outcome of measuring a qubit in the computational basis.
type Result int

const (
	Zero Result = iota
	One
)

func (r Result) String() string {
	if r == One {
		return "One"
	}
	return "Zero"
}

/*
The functions below act on the process-wide system returned by GetSystem.
Code that owns its own QuantumSystem should call the methods instead.
*/

func Measure(q *Qubit) (Result, error) {
	return GetSystem().Measure(q)
}

func Set(q *Qubit, desired Result) error {
	return GetSystem().Set(q, desired)
}

func Reset(q *Qubit) error {
	return GetSystem().Reset(q)
}

func ResetAll(qubits []*Qubit) error {
	return GetSystem().ResetAll(qubits)
}

// Apply applies op to qubits on the process-wide system.
func Apply(op *Operator, qubits ...*Qubit) error {
	return op.Apply(GetSystem(), qubits...)
}
