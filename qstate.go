package qsim

import (
	"fmt"
	"math"
)

/*
tensor is the rank-N amplitude tensor flattened into 2^N complex values.
Axis 0 is the most significant bit of the flat index, so appending an axis
appends a least significant bit.
*/
type tensor struct {
	amps []complex128
	rank int
}

func newTensor() *tensor {
	return &tensor{amps: []complex128{1}}
}

// mask is the bit of the flat index that carries the given axis.
func (t *tensor) mask(axis int) int {
	return 1 << (t.rank - 1 - axis)
}

// extend takes the tensor product with |0⟩ on a new trailing axis.
func (t *tensor) extend() {
	amps := make([]complex128, len(t.amps)*2)
	for i, a := range t.amps {
		amps[i<<1] = a
	}
	t.amps = amps
	t.rank++
}

/*
truncate drops the n trailing axes, keeping only their all-zero slice, and
divides the result by sqrt(prob).
*/
func (t *tensor) truncate(n int, prob float64) {
	scale := complex(1/math.Sqrt(prob), 0)
	amps := make([]complex128, len(t.amps)>>n)
	for i := range amps {
		amps[i] = t.amps[i<<n] * scale
	}
	t.amps = amps
	t.rank -= n
}

// mass sums |a|² over the indices i with i&mask == value.
func (t *tensor) mass(mask, value int) float64 {
	var p float64
	for i, a := range t.amps {
		if i&mask == value {
			p += probability(a)
		}
	}
	return p
}

func (t *tensor) norm() float64 {
	return math.Sqrt(t.mass(0, 0))
}

/*
project zeroes every amplitude whose masked bits differ from value and
rescales what is left by 1/sqrt(kept). The tensor is left untouched when kept
cannot be renormalized.
*/
func (t *tensor) project(mask, value int, kept float64) error {
	scale, err := rescale(kept)
	if err != nil {
		return err
	}
	for i := range t.amps {
		if i&mask == value {
			t.amps[i] *= scale
		} else {
			t.amps[i] = 0
		}
	}
	return nil
}

// rescale is 1/sqrt(mass), for a mass that is positive and finite.
func rescale(mass float64) (complex128, error) {
	if !(mass > 0) || math.IsInf(mass, 1) {
		return 0, fmt.Errorf("%w: probability %g", ErrDegenerateState, mass)
	}
	return complex(1/math.Sqrt(mass), 0), nil
}

/*
apply left-multiplies the axes in order by m and renormalizes. The targets are
transposed into a leading block, the tensor is viewed as a 2^k × 2^(N-k)
matrix, multiplied, and transposed back. The result is built in a separate
buffer and only replaces the tensor when its norm is positive and finite.
*/
func (t *tensor) apply(m Matrix, axes []int) error {
	perm := leadingPermutation(t.rank, axes)
	block := t.permute(t.amps, perm)
	block = blockMultiply(m, block, len(axes))
	amps := t.permute(block, inversePermutation(perm))

	var mass float64
	for _, a := range amps {
		mass += probability(a)
	}

	scale, err := rescale(mass)
	if err != nil {
		return err
	}
	for i := range amps {
		amps[i] *= scale
	}

	t.amps = amps
	return nil
}

/*
permute transposes amps so that new axis p is old axis perm[p].
*/
func (t *tensor) permute(amps []complex128, perm []int) []complex128 {
	out := make([]complex128, len(amps))
	for j := range out {
		src := 0
		for p, axis := range perm {
			if j>>(t.rank-1-p)&1 == 1 {
				src |= t.mask(axis)
			}
		}
		out[j] = amps[src]
	}
	return out
}

// leadingPermutation moves axes to the front, in order, followed by the rest.
func leadingPermutation(rank int, axes []int) []int {
	perm := make([]int, 0, rank)
	perm = append(perm, axes...)
	used := make([]bool, rank)
	for _, a := range axes {
		used[a] = true
	}
	for a := 0; a < rank; a++ {
		if !used[a] {
			perm = append(perm, a)
		}
	}
	return perm
}

func inversePermutation(perm []int) []int {
	inv := make([]int, len(perm))
	for p, axis := range perm {
		inv[axis] = p
	}
	return inv
}

/*
blockMultiply treats amps as a row-major matrix of 2^k rows and returns m·amps.
*/
func blockMultiply(m Matrix, amps []complex128, k int) []complex128 {
	rows := 1 << k
	cols := len(amps) / rows
	out := make([]complex128, len(amps))
	for r := 0; r < rows; r++ {
		for s, coeff := range m[r] {
			if coeff == 0 {
				continue
			}
			src := amps[s*cols : (s+1)*cols]
			dst := out[r*cols : (r+1)*cols]
			for c, a := range src {
				dst[c] += coeff * a
			}
		}
	}
	return out
}

// probability is the squared magnitude of an amplitude.
func probability(a complex128) float64 {
	return real(a)*real(a) + imag(a)*imag(a)
}
