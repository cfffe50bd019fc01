// SPDX-License-Identifier: MIT

// Package quartal writes whole rhythms as sequences of four-digit groups and
// provides the algebra and clustering that operate on them.
//
// What & Why:
//
//	A Sequence is an ordered list of numeral.Quartal values sharing one
//	alphabet. Element 0 covers the lowest bit range of the rhythm; the
//	printed form lists the most significant group first, so the text
//	"88 88 A0 A0" (hexadecimal) is two groups, "88 88" printed first.
//
//	Every operation lowers to numeral.Binary, does the bit work there and
//	lifts the result back into quartal groups.
//
// Complexity:
//
//	Parse, String, ToBinary and the element-wise algebra are linear in the
//	number of bits. Convolve is O(n·m), the synchronized-rotation test is
//	O(len²·width).
package quartal

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/quartal/alphabet"
	"github.com/katalvlaran/quartal/numeral"
)

var (
	// ErrInvalidLength re-exports numeral.ErrInvalidLength: text or bit
	// counts that are not a multiple of the group width.
	ErrInvalidLength = numeral.ErrInvalidLength

	// ErrAlphabetMismatch re-exports numeral.ErrAlphabetMismatch.
	ErrAlphabetMismatch = numeral.ErrAlphabetMismatch

	// ErrInvalidArgument re-exports numeral.ErrInvalidArgument.
	ErrInvalidArgument = numeral.ErrInvalidArgument

	// ErrEmptySequence indicates an operand without groups where the
	// circular broadcast needs at least one.
	ErrEmptySequence = errors.New("quartal: empty sequence")

	// ErrNonBinaryAlphabet indicates an alphabet whose base is not a power of
	// two, so its digits cannot be cut from a bit-vector.
	ErrNonBinaryAlphabet = errors.New("quartal: alphabet base is not a power of two")
)

const (
	opParse       = "Parse"
	opFromBinary  = "FromBinary"
	opFromNatural = "FromNatural"
	opNew         = "New"
)

// Sequence is a rhythm written as quartal groups; digits[0] is the least
// significant group. Sequences are immutable.
type Sequence struct {
	abc    *alphabet.Alphabet
	digits []numeral.Quartal
}

// New builds a Sequence from groups listed least significant first.
// All groups must use abc.
func New(abc *alphabet.Alphabet, digits ...numeral.Quartal) (*Sequence, error) {
	for i, d := range digits {
		if !abc.Equal(d.Alphabet()) {
			return nil, fmt.Errorf("%s: group %d: %w", opNew, i, ErrAlphabetMismatch)
		}
	}

	return &Sequence{abc: abc, digits: append([]numeral.Quartal(nil), digits...)}, nil
}

// Parse reads groups of four characters, most significant group first.
// Whitespace anywhere in text is ignored.
func Parse(abc *alphabet.Alphabet, text string) (*Sequence, error) {
	compact := []rune(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, text))
	if len(compact)%numeral.QuartalDigits != 0 {
		return nil, fmt.Errorf("%s: %d digits: %w", opParse, len(compact), ErrInvalidLength)
	}

	groups := len(compact) / numeral.QuartalDigits
	digits := make([]numeral.Quartal, groups)
	for g := 0; g < groups; g++ {
		chunk := string(compact[g*numeral.QuartalDigits : (g+1)*numeral.QuartalDigits])
		q, err := numeral.ParseQuartal(abc, chunk)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opParse, err)
		}
		digits[groups-1-g] = q
	}

	return &Sequence{abc: abc, digits: digits}, nil
}

// FromBinary cuts b into groups of 4·DigitBits bits; group i covers bits
// [i·w, (i+1)·w).
//
// Errors:
//   - ErrNonBinaryAlphabet if abc's base is not a power of two.
//   - ErrInvalidLength if b.Len() is not a multiple of the group width.
func FromBinary(abc *alphabet.Alphabet, b *numeral.Binary) (*Sequence, error) {
	if !abc.IsInformationBinary() {
		return nil, fmt.Errorf("%s: %w", opFromBinary, ErrNonBinaryAlphabet)
	}
	w := numeral.QuartalDigits * abc.DigitBits()
	if b.Len()%w != 0 {
		return nil, fmt.Errorf("%s: %d bits by %d: %w", opFromBinary, b.Len(), w, ErrInvalidLength)
	}

	digits := make([]numeral.Quartal, b.Len()/w)
	for g := range digits {
		chunk := numeral.NewBinary(w)
		for i := 0; i < w; i++ {
			if b.Get(g*w + i) {
				chunk.Set(i, true)
			}
		}
		q, err := numeral.QuartalFromNatural(chunk.ToNatural(abc))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opFromBinary, err)
		}
		digits[g] = q
	}

	return &Sequence{abc: abc, digits: digits}, nil
}

// FromBinaries converts every rhythm of list with FromBinary.
func FromBinaries(abc *alphabet.Alphabet, list []*numeral.Binary) ([]*Sequence, error) {
	out := make([]*Sequence, 0, len(list))
	for i, b := range list {
		s, err := FromBinary(abc, b)
		if err != nil {
			return nil, fmt.Errorf("rhythm %d: %w", i, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// FromNatural groups the digits of n; n.Len() must be a multiple of four.
func FromNatural(n *numeral.Natural) (*Sequence, error) {
	if n.Len()%numeral.QuartalDigits != 0 {
		return nil, fmt.Errorf("%s: %d digits: %w", opFromNatural, n.Len(), ErrInvalidLength)
	}

	all := n.Digits()
	digits := make([]numeral.Quartal, n.Len()/numeral.QuartalDigits)
	for g := range digits {
		q, err := numeral.QuartalFromDigits(n.Alphabet(), all[g*numeral.QuartalDigits:(g+1)*numeral.QuartalDigits])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opFromNatural, err)
		}
		digits[g] = q
	}

	return &Sequence{abc: n.Alphabet(), digits: digits}, nil
}

// Alphabet returns the digit alphabet.
func (s *Sequence) Alphabet() *alphabet.Alphabet { return s.abc }

// Len returns the number of groups.
func (s *Sequence) Len() int { return len(s.digits) }

// Digit returns group i (0 = least significant).
func (s *Sequence) Digit(i int) numeral.Quartal { return s.digits[i] }

// Digits returns the groups, least significant first.
func (s *Sequence) Digits() []numeral.Quartal {
	return append([]numeral.Quartal(nil), s.digits...)
}

// Width is the number of bits one group covers.
func (s *Sequence) Width() int { return numeral.QuartalDigits * s.abc.DigitBits() }

// ToNatural joins all groups into one Natural.
func (s *Sequence) ToNatural() *numeral.Natural {
	all := make([]int, 0, len(s.digits)*numeral.QuartalDigits)
	for _, d := range s.digits {
		all = append(all, d.Digits()...)
	}
	n, _ := numeral.NaturalFromDigits(s.abc, all) // digits come from valid groups

	return n
}

// ToBinary lowers the whole sequence to its bit-vector.
func (s *Sequence) ToBinary() *numeral.Binary { return s.ToNatural().ToBinary() }

// String prints the groups most significant first, each as two beats:
// "88 88 A0 A0".
func (s *Sequence) String() string { return s.render(true) }

// Compact prints the groups without the inner beat space: "8888 A0A0".
func (s *Sequence) Compact() string { return s.render(false) }

func (s *Sequence) render(insertSpace bool) string {
	parts := make([]string, len(s.digits))
	for i := range s.digits {
		parts[len(s.digits)-1-i] = s.digits[i].Text(insertSpace)
	}

	return strings.Join(parts, " ")
}

// Equal compares the rhythms bit-vector-wise; alphabets must be equal.
func (s *Sequence) Equal(other *Sequence) bool {
	return other != nil && s.abc.Equal(other.abc) && s.ToBinary().Equal(other.ToBinary())
}

// Compare orders sequences by their printed text.
func Compare(a, b *Sequence) int { return strings.Compare(a.String(), b.String()) }
