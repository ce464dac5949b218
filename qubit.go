package qsim

import "fmt"

/*
Qubit is a handle onto one axis of the state tensor. It is only valid between
the Register call that created it and the Release of that register; after
that it stays released forever.
*/
type Qubit struct {
	index    int
	released bool
}

func newQubit(index int) *Qubit {
	return &Qubit{index: index}
}

// Index is the tensor axis the qubit occupies.
func (q *Qubit) Index() int {
	return q.index
}

func (q *Qubit) IsReleased() bool {
	return q.released
}

func (q *Qubit) release() {
	q.released = true
}

func (q *Qubit) String() string {
	if q.released {
		return fmt.Sprintf("q%d(released)", q.index)
	}
	return fmt.Sprintf("q%d", q.index)
}
