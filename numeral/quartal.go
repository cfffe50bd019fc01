// SPDX-License-Identifier: MIT

package numeral

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quartal/alphabet"
)

// QuartalDigits is the digit count of a Quartal.
const QuartalDigits = 4

// Quartal is a four-digit Natural: the chunk used to print long rhythms.
// It is displayed as two beats of two digits each ("88 A0").
type Quartal struct {
	*Natural
}

// ParseQuartal parses four digit characters, most significant first.
func ParseQuartal(abc *alphabet.Alphabet, text string) (Quartal, error) {
	n, err := ParseNatural(abc, text)
	if err != nil {
		return Quartal{}, err
	}

	return QuartalFromNatural(n)
}

// QuartalFromNatural wraps n, which must have exactly four digits.
func QuartalFromNatural(n *Natural) (Quartal, error) {
	if n.Len() != QuartalDigits {
		return Quartal{}, numeralErrorf(opQuartal, fmt.Errorf("%d digits: %w", n.Len(), ErrInvalidLength))
	}

	return Quartal{Natural: n.Clone()}, nil
}

// QuartalFromDigits builds a Quartal from four digit values, least
// significant first.
func QuartalFromDigits(abc *alphabet.Alphabet, digits []int) (Quartal, error) {
	n, err := NaturalFromDigits(abc, digits)
	if err != nil {
		return Quartal{}, err
	}

	return QuartalFromNatural(n)
}

// Text prints digits 3, 2, then 1, 0, with a space between the two pairs
// when insertSpace is set.
func (q Quartal) Text(insertSpace bool) string {
	var sb strings.Builder
	sb.WriteRune(q.abc.Symbol(q.digits[3]))
	sb.WriteRune(q.abc.Symbol(q.digits[2]))
	if insertSpace {
		sb.WriteByte(' ')
	}
	sb.WriteRune(q.abc.Symbol(q.digits[1]))
	sb.WriteRune(q.abc.Symbol(q.digits[0]))

	return sb.String()
}

// String is Text(false).
func (q Quartal) String() string { return q.Text(false) }

// Width is the number of bits a Quartal covers: 4·DigitBits.
func (q Quartal) Width() int { return QuartalDigits * q.abc.DigitBits() }
