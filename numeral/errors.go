// SPDX-License-Identifier: MIT

package numeral

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigit is returned when a text character is not a symbol of
	// the target alphabet, or a digit index is outside 0..base-1.
	ErrInvalidDigit = errors.New("numeral: invalid digit")

	// ErrInvalidLength indicates a digit count that violates a required
	// grouping width (a Quartal needs exactly four digits).
	ErrInvalidLength = errors.New("numeral: invalid length")

	// ErrAlphabetMismatch indicates operands written in different alphabets.
	ErrAlphabetMismatch = errors.New("numeral: alphabets must match")

	// ErrDimensionMismatch indicates bit-vectors of different sizes where
	// equal sizes are required.
	ErrDimensionMismatch = errors.New("numeral: dimension mismatch")

	// ErrInvalidArgument indicates a structurally malformed argument, e.g. a
	// modulus that does not divide the rhythm size or a negative value.
	ErrInvalidArgument = errors.New("numeral: invalid argument")
)

// Operation tags used by numeralErrorf.
const (
	opParseNatural   = "ParseNatural"
	opNaturalFromInt = "NaturalFromInt"
	opFromDigits     = "NaturalFromDigits"
	opAgglutinate    = "Agglutinate"
	opParseBinary    = "ParseBinary"
	opBinaryFromInt  = "BinaryFromInt"
	opFromComp       = "BinaryFromComposition"
	opScaleModulo    = "ScaleModulo"
	opBitwise        = "Bitwise"
	opIntervalVector = "IntervalVector"
	opQuartal        = "Quartal"
)

// numeralErrorf prefixes err with the operation tag; errors.Is still matches
// the sentinel.
func numeralErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
