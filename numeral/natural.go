// SPDX-License-Identifier: MIT

package numeral

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/quartal/alphabet"
	"github.com/katalvlaran/quartal/permutation"
)

// Natural is a fixed-length positional numeral in a registered alphabet.
//   - abc is the digit alphabet (base = abc.Len()).
//   - digits holds digit values, least significant first.
//
// A Natural is immutable; every method returning a Natural allocates.
type Natural struct {
	abc    *alphabet.Alphabet // digit alphabet, never nil for constructed values
	digits []int              // digit values in 0..base-1, index 0 least significant
}

// ParseNatural builds a Natural from text written most-significant first.
//
// Implementation:
//   - Stage 1: map every character to its index in abc.
//   - Stage 2: store right-to-left so that digits[0] is the last character.
//
// Errors:
//   - ErrInvalidDigit if a character is not in abc.
//
// Complexity:
//   - Time O(L), Space O(L).
func ParseNatural(abc *alphabet.Alphabet, text string) (*Natural, error) {
	runes := []rune(text)
	digits := make([]int, len(runes))
	for i, r := range runes {
		d, ok := abc.Index(r)
		if !ok {
			return nil, numeralErrorf(opParseNatural, fmt.Errorf("%q at %d: %w", r, i, ErrInvalidDigit))
		}
		digits[len(runes)-1-i] = d
	}

	return &Natural{abc: abc, digits: digits}, nil
}

// NaturalFromInt writes value in abc using exactly length digits.
//
// Implementation:
//   - Stage 1: validate value ≥ 0 and length ≥ 0.
//   - Stage 2: length rounds of (value mod base, value div base).
//
// Behavior highlights:
//   - Fixed width: when value ≥ base^length the high-order digits are
//     dropped. This is not an error.
//
// Errors:
//   - ErrInvalidArgument for a negative value or length.
//
// Complexity:
//   - Time O(L·M(bits)), Space O(L).
func NaturalFromInt(abc *alphabet.Alphabet, value *big.Int, length int) (*Natural, error) {
	if value == nil || value.Sign() < 0 || length < 0 {
		return nil, numeralErrorf(opNaturalFromInt, ErrInvalidArgument)
	}

	base := big.NewInt(int64(abc.Len()))
	q := new(big.Int).Set(value)
	r := new(big.Int)
	digits := make([]int, length)
	for k := 0; k < length; k++ {
		q.QuoRem(q, base, r)
		digits[k] = int(r.Int64())
	}

	return &Natural{abc: abc, digits: digits}, nil
}

// NaturalFromDigits builds a Natural from digit values, least significant first.
// The slice is copied.
func NaturalFromDigits(abc *alphabet.Alphabet, digits []int) (*Natural, error) {
	for i, d := range digits {
		if d < 0 || d >= abc.Len() {
			return nil, numeralErrorf(opFromDigits, fmt.Errorf("digit %d=%d: %w", i, d, ErrInvalidDigit))
		}
	}

	return &Natural{abc: abc, digits: append([]int(nil), digits...)}, nil
}

// NaturalFromBitString parses a binary string and re-expresses it in abc.
func NaturalFromBitString(abc *alphabet.Alphabet, bits string) (*Natural, error) {
	b, err := ParseBinary(bits)
	if err != nil {
		return nil, err
	}

	return b.ToNatural(abc), nil
}

// Clone returns an independent copy of n.
func (n *Natural) Clone() *Natural {
	return &Natural{abc: n.abc, digits: append([]int(nil), n.digits...)}
}

// Alphabet returns the digit alphabet of n.
func (n *Natural) Alphabet() *alphabet.Alphabet { return n.abc }

// Len returns the number of digits.
func (n *Natural) Len() int { return len(n.digits) }

// Digit returns the value of digit k (0 = least significant).
func (n *Natural) Digit(k int) int { return n.digits[k] }

// Digits returns a copy of the digit values, least significant first.
func (n *Natural) Digits() []int { return append([]int(nil), n.digits...) }

// BigInt evaluates Σ digits[k]·base^k.
func (n *Natural) BigInt() *big.Int {
	base := big.NewInt(int64(n.abc.Len()))
	sum := new(big.Int)
	for k := len(n.digits) - 1; k >= 0; k-- {
		sum.Mul(sum, base)
		sum.Add(sum, big.NewInt(int64(n.digits[k])))
	}

	return sum
}

// String renders the digits most significant first.
func (n *Natural) String() string {
	var sb strings.Builder
	sb.Grow(len(n.digits))
	for k := len(n.digits) - 1; k >= 0; k-- {
		sb.WriteRune(n.abc.Symbol(n.digits[k]))
	}

	return sb.String()
}

// BitWidth is the minimal number of bits able to hold any L-digit value:
// bitlen(base^L − 1). An empty Natural has width 0.
func (n *Natural) BitWidth() int {
	limit := new(big.Int).Exp(big.NewInt(int64(n.abc.Len())), big.NewInt(int64(len(n.digits))), nil)
	limit.Sub(limit, big.NewInt(1))

	return limit.BitLen()
}

// ToBinary re-expresses n in base 2 with exactly BitWidth bits.
func (n *Natural) ToBinary() *Binary {
	b, _ := BinaryFromInt(n.BigInt(), n.BitWidth()) // value is non-negative by construction

	return b
}

// BitString is the binary string of ToBinary.
func (n *Natural) BitString() string { return n.ToBinary().String() }

// Contour of the rhythm encoded by n; see Binary.Contour.
func (n *Natural) Contour() []int { return n.ToBinary().Contour() }

// ShadowContour of the rhythm encoded by n; see Binary.ShadowContour.
func (n *Natural) ShadowContour() []int { return n.ToBinary().ShadowContour() }

// Equal reports whether n and other have equal alphabets and digits.
func (n *Natural) Equal(other *Natural) bool {
	if other == nil || !n.abc.Equal(other.abc) || len(n.digits) != len(other.digits) {
		return false
	}
	for k := range n.digits {
		if n.digits[k] != other.digits[k] {
			return false
		}
	}

	return true
}

// Rotate moves every digit t places towards the most significant end,
// wrapping around: result digit (k+t) mod L is digit k. Negative t rotates
// towards the least significant end.
func (n *Natural) Rotate(t int) *Natural {
	return &Natural{abc: n.abc, digits: permutation.Rotate(n.digits, t)}
}

// Agglutinate concatenates two numerals; first becomes the high-order part,
// so Agglutinate(x, y).String() == x.String() + y.String().
func Agglutinate(first, second *Natural) (*Natural, error) {
	if !first.abc.Equal(second.abc) {
		return nil, numeralErrorf(opAgglutinate, ErrAlphabetMismatch)
	}
	digits := make([]int, 0, len(first.digits)+len(second.digits))
	digits = append(digits, second.digits...)
	digits = append(digits, first.digits...)

	return &Natural{abc: first.abc, digits: digits}, nil
}

// EquivalentUnderRotation reports whether some digit rotation of b equals a.
// Numerals of different length are never equivalent.
func EquivalentUnderRotation(a, b *Natural) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return a.Equal(b)
	}
	for i := 0; i < a.Len(); i++ {
		if a.Equal(b.Rotate(i)) {
			return true
		}
	}

	return false
}
