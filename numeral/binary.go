// SPDX-License-Identifier: MIT

package numeral

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/quartal/alphabet"
	"github.com/katalvlaran/quartal/permutation"
)

// Binary is a cyclic rhythm of fixed size n: bit i set means an onset at
// step i. The size never changes after construction.
type Binary struct {
	n    int            // rhythm size in steps
	bits *bitset.BitSet // backing vector, Len() == n
}

// NewBinary returns an all-rest rhythm of n steps. It panics if n < 0.
func NewBinary(n int) *Binary {
	if n < 0 {
		panic(fmt.Sprintf("numeral: negative rhythm size %d", n))
	}

	return &Binary{n: n, bits: bitset.New(uint(n))}
}

// BinaryFromBitSet copies bs into a rhythm of bs.Len() steps.
func BinaryFromBitSet(bs *bitset.BitSet) *Binary {
	return &Binary{n: int(bs.Len()), bits: bs.Clone()}
}

// BinaryFromBools builds a rhythm with bit i = bits[i].
func BinaryFromBools(bits []bool) *Binary {
	b := NewBinary(len(bits))
	for i, v := range bits {
		if v {
			b.bits.Set(uint(i))
		}
	}

	return b
}

// ParseBinary parses a binary string written most-significant first:
// the first character is bit n-1, the last is bit 0.
func ParseBinary(text string) (*Binary, error) {
	runes := []rune(text)
	b := NewBinary(len(runes))
	for i, r := range runes {
		switch r {
		case '1':
			b.bits.Set(uint(len(runes) - 1 - i))
		case '0':
		default:
			return nil, numeralErrorf(opParseBinary, fmt.Errorf("%q at %d: %w", r, i, ErrInvalidDigit))
		}
	}

	return b, nil
}

// BinaryFromInt writes the low n bits of a non-negative value.
func BinaryFromInt(value *big.Int, n int) (*Binary, error) {
	if value == nil || value.Sign() < 0 || n < 0 {
		return nil, numeralErrorf(opBinaryFromInt, ErrInvalidArgument)
	}
	b := NewBinary(n)
	for i := 0; i < n; i++ {
		if value.Bit(i) == 1 {
			b.bits.Set(uint(i))
		}
	}

	return b, nil
}

// Len returns the rhythm size.
func (b *Binary) Len() int { return b.n }

// Get reports whether step i is an onset. No wraparound: i must be in [0, n).
func (b *Binary) Get(i int) bool {
	b.mustIndex(i)

	return b.bits.Test(uint(i))
}

// Set marks step i as onset (v) or rest (!v). No wraparound.
func (b *Binary) Set(i int, v bool) {
	b.mustIndex(i)
	b.bits.SetTo(uint(i), v)
}

func (b *Binary) mustIndex(i int) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("numeral: index %d out of range [0,%d)", i, b.n))
	}
}

// Cardinality returns the number of onsets.
func (b *Binary) Cardinality() int { return int(b.bits.Count()) }

// Onsets returns the onset positions in increasing order.
func (b *Binary) Onsets() []int {
	out := make([]int, 0, b.bits.Count())
	for i, ok := b.bits.NextSet(0); ok; i, ok = b.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// Bools returns the rhythm as a []bool indexed by step.
func (b *Binary) Bools() []bool {
	out := make([]bool, b.n)
	for _, i := range b.Onsets() {
		out[i] = true
	}

	return out
}

// BitSet returns a copy of the backing vector.
func (b *Binary) BitSet() *bitset.BitSet { return b.bits.Clone() }

// Clone returns an independent copy.
func (b *Binary) Clone() *Binary { return &Binary{n: b.n, bits: b.bits.Clone()} }

// Equal reports equal size and equal onsets.
func (b *Binary) Equal(other *Binary) bool {
	return other != nil && b.n == other.n && b.bits.Equal(other.bits)
}

// String renders the rhythm most-significant bit first.
func (b *Binary) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := b.n - 1; i >= 0; i-- {
		if b.bits.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// BigInt returns Σ bit_i·2^i.
func (b *Binary) BigInt() *big.Int {
	v := new(big.Int)
	for _, i := range b.Onsets() {
		v.SetBit(v, i, 1)
	}

	return v
}

// ToNatural writes the rhythm in abc with ceil(n / DigitBits) digits.
func (b *Binary) ToNatural(abc *alphabet.Alphabet) *Natural {
	w := abc.DigitBits()
	if w < 1 {
		w = 1
	}
	nat, _ := NaturalFromInt(abc, b.BigInt(), (b.n+w-1)/w) // non-negative by construction

	return nat
}

// Reverse mirrors the timeline: result[i] = b[n-1-i].
func (b *Binary) Reverse() *Binary {
	out := NewBinary(b.n)
	for _, i := range b.Onsets() {
		out.bits.Set(uint(b.n - 1 - i))
	}

	return out
}

// Invert swaps onsets and rests.
func (b *Binary) Invert() *Binary {
	return &Binary{n: b.n, bits: b.bits.Complement()}
}

// Rotate shifts the rhythm t steps forward around the cycle:
// result[(i+t) mod n] = b[i]. Negative t shifts backward.
func (b *Binary) Rotate(t int) *Binary {
	return BinaryFromBools(permutation.Rotate(b.Bools(), t))
}

// ScaleModulo relabels every block of m consecutive steps by multiplying
// positions by k modulo m.
//
// Implementation:
//   - Stage 1: require n % m == 0 (block boundaries stay fixed).
//   - Stage 2: result[i] = b[(i·k mod m) + m·floor(i/m)].
//
// Behavior highlights:
//   - When gcd(k, m) == 1 each block is permuted; otherwise several target
//     steps read the same source step.
//
// Errors:
//   - ErrInvalidArgument if m ≤ 0 or m does not divide n.
//
// Complexity:
//   - Time O(n), Space O(n).
func (b *Binary) ScaleModulo(k, m int) (*Binary, error) {
	if m <= 0 || b.n%m != 0 {
		return nil, numeralErrorf(opScaleModulo, fmt.Errorf("modulus %d for size %d: %w", m, b.n, ErrInvalidArgument))
	}
	out := NewBinary(b.n)
	for i := 0; i < b.n; i++ {
		src := mod(i*k, m) + m*(i/m)
		if b.bits.Test(uint(src)) {
			out.bits.Set(uint(i))
		}
	}

	return out, nil
}

// And returns the intersection of two equal-size rhythms.
func (b *Binary) And(other *Binary) (*Binary, error) {
	if err := b.sameSize(other); err != nil {
		return nil, err
	}

	return &Binary{n: b.n, bits: b.bits.Intersection(other.bits)}, nil
}

// Or returns the union of two equal-size rhythms.
func (b *Binary) Or(other *Binary) (*Binary, error) {
	if err := b.sameSize(other); err != nil {
		return nil, err
	}

	return &Binary{n: b.n, bits: b.bits.Union(other.bits)}, nil
}

// Xor returns the symmetric difference of two equal-size rhythms.
func (b *Binary) Xor(other *Binary) (*Binary, error) {
	if err := b.sameSize(other); err != nil {
		return nil, err
	}

	return &Binary{n: b.n, bits: b.bits.SymmetricDifference(other.bits)}, nil
}

// Minus returns the onsets of b that are rests in other.
func (b *Binary) Minus(other *Binary) (*Binary, error) {
	if err := b.sameSize(other); err != nil {
		return nil, err
	}

	return &Binary{n: b.n, bits: b.bits.Difference(other.bits)}, nil
}

func (b *Binary) sameSize(other *Binary) error {
	if b.n != other.n {
		return numeralErrorf(opBitwise, fmt.Errorf("%d vs %d: %w", b.n, other.n, ErrDimensionMismatch))
	}

	return nil
}

// mod is the non-negative remainder used for every circular index.
func mod(i, n int) int {
	return ((i % n) + n) % n
}
