package qsim

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/theapemachine/errnie"
)

/*
QuantumSystem owns the amplitude tensor of every qubit currently registered
and is the only thing allowed to mutate it. A system is meant to be driven by
a single goroutine; it does no locking of its own.
*/
type QuantumSystem struct {
	config  *Config
	state   *tensor
	rng     *rand.Rand
	open    []*Register
	metrics *Metrics
	history *history
}

// SystemOption configures a QuantumSystem at construction.
type SystemOption func(*QuantumSystem)

func WithConfig(config *Config) SystemOption {
	return func(qs *QuantumSystem) {
		if config != nil {
			qs.config = config
		}
	}
}

// WithSeed makes measurement outcomes reproducible.
func WithSeed(seed uint64) SystemOption {
	return func(qs *QuantumSystem) {
		qs.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func WithRand(rng *rand.Rand) SystemOption {
	return func(qs *QuantumSystem) {
		qs.rng = rng
	}
}

// WithHistory keeps a ledger of every state change, see History.
func WithHistory() SystemOption {
	return func(qs *QuantumSystem) {
		qs.history.enabled = true
	}
}

// WithStateChangeHandler calls fn after every mutation of the tensor.
func WithStateChangeHandler(fn func(StateChange)) SystemOption {
	return func(qs *QuantumSystem) {
		qs.history.onChange = fn
	}
}

/*
NewQuantumSystem returns a system with no qubits, whose state is the scalar
amplitude 1.
*/
func NewQuantumSystem(opts ...SystemOption) *QuantumSystem {
	qs := &QuantumSystem{
		config:  NewConfig(),
		state:   newTensor(),
		metrics: newMetrics(),
		history: &history{},
	}

	for _, opt := range opts {
		opt(qs)
	}

	errnie.Info(
		"NewQuantumSystem - tolerance %v, seeded %v, history %v",
		qs.config.Tolerance,
		qs.rng != nil,
		qs.history.enabled,
	)

	return qs
}

/*
Register adds n qubits to the system, each in |0⟩, as new trailing axes of the
tensor. The returned register must be released, innermost first, once its
qubits have been driven back to |0⟩.
*/
func (qs *QuantumSystem) Register(n int) (*Register, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	qubits := make([]*Qubit, n)
	for i := range qubits {
		qs.state.extend()
		qubits[i] = newQubit(qs.state.rank - 1)
	}

	reg := &Register{system: qs, qubits: qubits}
	qs.open = append(qs.open, reg)

	qs.metrics.recordRegister(qs.state.rank)
	qs.history.record(OpRegister, qubits, Zero, qs.String)
	errnie.Debug("Register - %d qubits, %d active", n, qs.state.rank)

	return reg, nil
}

/*
Scope registers n qubits, hands them to fn and releases them afterwards, even
when fn fails. Errors from fn and from the release are both returned.
*/
func (qs *QuantumSystem) Scope(n int, fn func(qubits []*Qubit) error) error {
	reg, err := qs.Register(n)
	if err != nil {
		return err
	}

	fnErr := fn(reg.Qubits())
	relErr := reg.Release()

	switch {
	case fnErr != nil && relErr != nil:
		return fmt.Errorf("%w; release: %w", fnErr, relErr)
	case fnErr != nil:
		return fnErr
	default:
		return relErr
	}
}

// release is called by Register.Release once the ordering has been checked.
func (qs *QuantumSystem) release(reg *Register) error {
	n := len(reg.qubits)
	mask := 1<<n - 1
	prob := qs.state.mass(mask, 0)

	if !(math.Abs(prob-1) <= qs.config.Tolerance) {
		qs.metrics.recordRelease(false)
		err := &ReleaseError{Qubits: reg.indices(), Probability: prob}
		errnie.Warn("Release - %v", err)
		return err
	}

	qs.state.truncate(n, prob)
	qs.open = qs.open[:len(qs.open)-1]
	for _, q := range reg.qubits {
		q.release()
	}

	qs.metrics.recordRelease(true)
	qs.history.record(OpRelease, reg.qubits, Zero, qs.String)
	errnie.Debug("Release - %d qubits, %d active", n, qs.state.rank)

	return nil
}

/*
ApplyOperator applies matrix to the given qubits. The first qubit addresses
the most significant bit of the matrix's row index. The tensor is renormalized
afterwards; an operator that leaves it with zero or non-finite norm fails with
ErrDegenerateState and the state is not changed.
*/
func (qs *QuantumSystem) ApplyOperator(matrix Matrix, qubits []*Qubit) error {
	if err := qs.checkQubits(qubits...); err != nil {
		return err
	}

	arity, err := matrix.arity()
	if err != nil {
		return err
	}
	if arity != len(qubits) {
		return fmt.Errorf("%w: operator acts on %d qubits, got %d", ErrArityMismatch, arity, len(qubits))
	}

	axes := make([]int, len(qubits))
	for i, q := range qubits {
		axes[i] = q.index
	}

	if err := qs.state.apply(matrix, axes); err != nil {
		errnie.Warn("ApplyOperator - %v", err)
		return err
	}

	qs.metrics.recordApplication()
	qs.history.record(OpApply, qubits, Zero, qs.String)

	return nil
}

/*
Measure samples q in the computational basis following the Born rule and
collapses the state onto the outcome.
*/
func (qs *QuantumSystem) Measure(q *Qubit) (Result, error) {
	if err := qs.checkQubits(q); err != nil {
		return Zero, err
	}

	mask := qs.state.mask(q.index)
	p := qs.state.mass(mask, mask)

	result := Zero
	if p > 0 && qs.sample() <= p {
		result = One
	}

	if err := qs.collapse(q, result); err != nil {
		return Zero, err
	}

	qs.metrics.recordMeasurement(result)
	qs.history.record(OpMeasure, []*Qubit{q}, result, qs.String)
	errnie.Debug("Measure - %v: p(1)=%.6f -> %v", q, p, result)

	return result, nil
}

// collapse keeps only the slice of the tensor consistent with result.
func (qs *QuantumSystem) collapse(q *Qubit, result Result) error {
	mask := qs.state.mask(q.index)
	value := 0
	if result == One {
		value = mask
	}
	return qs.state.project(mask, value, qs.state.mass(mask, value))
}

// Set measures q and flips it with X when it did not land on desired.
func (qs *QuantumSystem) Set(q *Qubit, desired Result) error {
	result, err := qs.Measure(q)
	if err != nil {
		return err
	}
	if result != desired {
		return X.Apply(qs, q)
	}
	return nil
}

func (qs *QuantumSystem) Reset(q *Qubit) error {
	return qs.Set(q, Zero)
}

// ResetAll resets each qubit in order, stopping at the first failure.
func (qs *QuantumSystem) ResetAll(qubits []*Qubit) error {
	for _, q := range qubits {
		if err := qs.Reset(q); err != nil {
			return err
		}
	}
	return nil
}

/*
Probability returns the chance of measuring q as One, without disturbing the
state.
*/
func (qs *QuantumSystem) Probability(q *Qubit) (float64, error) {
	if err := qs.checkQubits(q); err != nil {
		return 0, err
	}
	mask := qs.state.mask(q.index)
	return qs.state.mass(mask, mask), nil
}

func (qs *QuantumSystem) checkQubits(qubits ...*Qubit) error {
	seen := make(map[int]bool, len(qubits))
	for _, q := range qubits {
		if q.released {
			return fmt.Errorf("%w: qubit %d", ErrReleasedQubit, q.index)
		}
		if q.index < 0 || q.index >= qs.state.rank {
			return fmt.Errorf("%w: qubit %d of %d", ErrQubitOutOfRange, q.index, qs.state.rank)
		}
		if seen[q.index] {
			return fmt.Errorf("%w: qubit %d", ErrDuplicateQubit, q.index)
		}
		seen[q.index] = true
	}
	return nil
}

// sample draws a uniform value in [0, 1).
func (qs *QuantumSystem) sample() float64 {
	if qs.rng != nil {
		return qs.rng.Float64()
	}
	return rand.Float64()
}

// NumQubits is the number of currently registered qubits.
func (qs *QuantumSystem) NumQubits() int {
	return qs.state.rank
}

func (qs *QuantumSystem) NumStates() int {
	return len(qs.state.amps)
}

// Amplitudes returns a copy of the flattened state tensor.
func (qs *QuantumSystem) Amplitudes() []complex128 {
	return append([]complex128(nil), qs.state.amps...)
}

// Norm is the square root of the total probability; 1 for a valid state.
func (qs *QuantumSystem) Norm() float64 {
	return qs.state.norm()
}

// States lists the basis states whose probability exceeds the display threshold.
func (qs *QuantumSystem) States() []BasisState {
	states := make([]BasisState, 0)
	for i, amp := range qs.state.amps {
		if probability(amp) <= qs.config.DisplayThreshold {
			continue
		}
		states = append(states, newBasisState(i, qs.state.rank, amp))
	}
	return states
}

// Metrics returns a snapshot of the system's counters.
func (qs *QuantumSystem) Metrics() Metrics {
	return *qs.metrics
}

// History returns the recorded state changes from sequence number seq onwards.
func (qs *QuantumSystem) History(seq uint64) []StateChange {
	return qs.history.since(seq)
}

func (qs *QuantumSystem) String() string {
	states := qs.States()
	lines := make([]string, len(states))
	for i, s := range states {
		lines[i] = s.Format(qs.config.DisplayPrecision)
	}
	return strings.Join(lines, "\n")
}
