// SPDX-License-Identifier: MIT

package quartal

import (
	"fmt"

	"github.com/katalvlaran/quartal/numeral"
)

const (
	opAnd      = "And"
	opOr       = "Or"
	opXor      = "Xor"
	opMinus    = "Minus"
	opConvolve = "Convolve"
	opExpand   = "Expand"
	opEquiv    = "EquivalentUnderSynchronizedRotation"
)

// bitOp combines two equal-width group bit-vectors.
type bitOp func(a, b *numeral.Binary) (*numeral.Binary, error)

// elementwise applies op group by group over the longer operand; the shorter
// one is read cyclically (index mod its own length), so a one-group pattern
// is repeated across a four-group one.
//
// Implementation:
//   - Stage 1: validate alphabets and non-empty operands.
//   - Stage 2: for i in 0..max(len)-1 lower a[i mod len(a)] and b[i mod len(b)]
//     to bits, combine, lift back into a Quartal.
//
// Complexity:
//   - Time O(max(len)·width), Space O(max(len)·width).
func elementwise(tag string, a, b *Sequence, op bitOp) (*Sequence, error) {
	if !a.abc.Equal(b.abc) {
		return nil, fmt.Errorf("%s: %w", tag, ErrAlphabetMismatch)
	}
	if a.Len() == 0 || b.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", tag, ErrEmptySequence)
	}

	n := max(a.Len(), b.Len())
	out := make([]numeral.Quartal, n)
	for i := 0; i < n; i++ {
		x := a.digits[i%a.Len()].ToBinary()
		y := b.digits[i%b.Len()].ToBinary()
		r, err := op(x, y)
		if err != nil {
			return nil, fmt.Errorf("%s: group %d: %w", tag, i, err)
		}
		q, err := numeral.QuartalFromNatural(r.ToNatural(a.abc))
		if err != nil {
			return nil, fmt.Errorf("%s: group %d: %w", tag, i, err)
		}
		out[i] = q
	}

	return &Sequence{abc: a.abc, digits: out}, nil
}

// And intersects a and b with circular broadcast of the shorter operand.
func And(a, b *Sequence) (*Sequence, error) {
	return elementwise(opAnd, a, b, (*numeral.Binary).And)
}

// Or unites a and b with circular broadcast of the shorter operand.
func Or(a, b *Sequence) (*Sequence, error) {
	return elementwise(opOr, a, b, (*numeral.Binary).Or)
}

// Xor is the symmetric difference of a and b with circular broadcast.
func Xor(a, b *Sequence) (*Sequence, error) {
	return elementwise(opXor, a, b, (*numeral.Binary).Xor)
}

// Minus keeps the onsets of a that are rests in b, with circular broadcast.
func Minus(a, b *Sequence) (*Sequence, error) {
	return elementwise(opMinus, a, b, (*numeral.Binary).Minus)
}

// Not swaps onsets and rests over the whole rhythm.
func Not(a *Sequence) *Sequence {
	return a.relift(a.ToBinary().Invert())
}

// Rotate rotates the underlying rhythm by t steps (see numeral.Binary.Rotate)
// and regroups.
func Rotate(a *Sequence, t int) *Sequence {
	return a.relift(a.ToBinary().Rotate(t))
}

// Convolve places a copy of impulse at every onset of carrier, on a cycle
// as long as the carrier: result[(i+j) mod n] |= carrier[i] && impulse[j].
// Overlapping hits saturate.
func Convolve(carrier, impulse *Sequence) (*Sequence, error) {
	if !carrier.abc.Equal(impulse.abc) {
		return nil, fmt.Errorf("%s: %w", opConvolve, ErrAlphabetMismatch)
	}
	c, p := carrier.ToBinary(), impulse.ToBinary()
	out := numeral.NewBinary(c.Len())
	if c.Len() == 0 {
		return carrier.relift(out), nil
	}
	hits := p.Onsets()
	for _, i := range c.Onsets() {
		for _, j := range hits {
			out.Set((i+j)%c.Len(), true)
		}
	}

	return carrier.relift(out), nil
}

// Expand dilates the rhythm by factor: every step becomes a block of factor
// steps in a rhythm factor times longer. An onset opens its block, which in
// printed order is bit p·factor+factor−1. With fill the whole block is set
// (sustain); otherwise the rest of it stays silent.
func Expand(a *Sequence, factor int, fill bool) (*Sequence, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%s: factor %d: %w", opExpand, factor, ErrInvalidArgument)
	}
	b := a.ToBinary()
	out := numeral.NewBinary(b.Len() * factor)
	for _, p := range b.Onsets() {
		if !fill {
			out.Set(p*factor+factor-1, true)
			continue
		}
		for j := 0; j < factor; j++ {
			out.Set(p*factor+j, true)
		}
	}

	return a.relift(out), nil
}

// EquivalentUnderSynchronizedRotation reports whether some rotation of other
// by a whole number of groups prints, group by group, the same digits as s.
// Rotations by a fraction of a group are never tried.
//
// Errors:
//   - ErrAlphabetMismatch when the alphabets differ.
func (s *Sequence) EquivalentUnderSynchronizedRotation(other *Sequence) (bool, error) {
	if !s.abc.Equal(other.abc) {
		return false, fmt.Errorf("%s: %w", opEquiv, ErrAlphabetMismatch)
	}
	if s.Len() != other.Len() {
		return false, nil
	}
	if s.Len() == 0 {
		return true, nil
	}

	for i := 0; i < s.Len(); i++ {
		rotated := Rotate(other, i*s.Width())
		if sameDigits(s, rotated) {
			return true, nil
		}
	}

	return false, nil
}

func sameDigits(a, b *Sequence) bool {
	for j := range a.digits {
		if a.digits[j].String() != b.digits[j].String() {
			return false
		}
	}

	return true
}

// relift regroups a bit-vector produced from s. Widths produced by the
// algebra are always multiples of the group width.
func (s *Sequence) relift(b *numeral.Binary) *Sequence {
	out, err := FromBinary(s.abc, b)
	if err != nil {
		panic(fmt.Sprintf("quartal: regrouping %d bits: %v", b.Len(), err))
	}

	return out
}
