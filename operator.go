package qsim

import "fmt"

// Target is anything an Operator can be applied to.
type Target interface {
	ApplyOperator(matrix Matrix, qubits []*Qubit) error
}

/*
Operator is an immutable complex matrix acting on a fixed number of qubits.
Operators built with unitary set have been checked to satisfy M·M† = I.
Derived operators (Adjoint, Controlled) are new values; the receiver is never
modified.
*/
type Operator struct {
	name    string
	matrix  Matrix
	arity   int
	unitary bool
}

/*
NewOperator validates matrix and wraps it. When unitary is true the matrix
must satisfy M·M† = I within the default unitary tolerance.
*/
func NewOperator(matrix Matrix, unitary bool) (*Operator, error) {
	return newOperator("", matrix, unitary, NewConfig().UnitaryTolerance)
}

func newOperator(name string, matrix Matrix, unitary bool, tol float64) (*Operator, error) {
	arity, err := matrix.arity()
	if err != nil {
		return nil, err
	}

	if unitary && !matrix.Mul(matrix.Adjoint()).IsIdentity(tol) {
		if name == "" {
			return nil, ErrNonUnitary
		}
		return nil, fmt.Errorf("%w: %s", ErrNonUnitary, name)
	}

	return &Operator{
		name:    name,
		matrix:  matrix.Clone(),
		arity:   arity,
		unitary: unitary,
	}, nil
}

// mustOperator is for the predefined gates, whose matrices are known good.
func mustOperator(name string, matrix Matrix) *Operator {
	op, err := newOperator(name, matrix, true, NewConfig().UnitaryTolerance)
	if err != nil {
		panic(err)
	}
	return op
}

/*
Apply applies the operator to qubits on target. The order of qubits decides
which tensor axis each row/column bit of the matrix addresses, the first
qubit being the most significant.
*/
func (op *Operator) Apply(target Target, qubits ...*Qubit) error {
	if len(qubits) != op.arity {
		return fmt.Errorf(
			"%w: %s takes %d qubits, got %d",
			ErrArityMismatch, op.Name(), op.arity, len(qubits),
		)
	}
	return target.ApplyOperator(op.matrix, qubits)
}

// Adjoint returns the conjugate transpose of the operator.
func (op *Operator) Adjoint() *Operator {
	return &Operator{
		name:    op.Name() + "†",
		matrix:  op.matrix.Adjoint(),
		arity:   op.arity,
		unitary: op.unitary,
	}
}

/*
Controlled returns the operator extended by one leading control qubit: the
wrapped operator acts on the remaining qubits only when the control is |1⟩.
*/
func (op *Operator) Controlled() *Operator {
	dim := op.matrix.Dim()
	return &Operator{
		name:    "C" + op.Name(),
		matrix:  BlockDiag(Identity(dim), op.matrix),
		arity:   op.arity + 1,
		unitary: op.unitary,
	}
}

// Matrix returns a copy of the operator's matrix.
func (op *Operator) Matrix() Matrix {
	return op.matrix.Clone()
}

func (op *Operator) Arity() int {
	return op.arity
}

func (op *Operator) IsUnitary() bool {
	return op.unitary
}

func (op *Operator) Name() string {
	if op.name == "" {
		return fmt.Sprintf("U%d", op.arity)
	}
	return op.name
}

func (op *Operator) String() string {
	return op.Name()
}
