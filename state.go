package qsim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

/*
BasisState is one computational basis state of the system together with its
amplitude. Label is the basis value written in binary, one digit per qubit,
qubit 0 first.
*/
type BasisState struct {
	Index       int
	Label       string
	Amplitude   complex128
	Probability float64
}

func newBasisState(index, width int, amp complex128) BasisState {
	return BasisState{
		Index:       index,
		Label:       basisLabel(index, width),
		Amplitude:   amp,
		Probability: probability(amp),
	}
}

// basisLabel is index in binary, zero-padded to width; the empty system is "0".
func basisLabel(index, width int) string {
	digits := strconv.FormatInt(int64(index), 2)
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

// Format renders the amplitude the way the state dump prints it, e.g. 0.707+0.000j.
func (b BasisState) Format(precision int) string {
	return fmt.Sprintf("\t|%s>\t|\t%.*f%+.*fj",
		b.Label,
		precision, clampZero(real(b.Amplitude), precision),
		precision, clampZero(imag(b.Amplitude), precision),
	)
}

// clampZero maps values that would print as -0.000 to zero.
func clampZero(v float64, precision int) float64 {
	if math.Abs(v) < 0.5*math.Pow10(-precision) {
		return 0
	}
	return v
}
