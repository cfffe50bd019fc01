// Package numeral encodes cyclic rhythms as positional numerals.
//
// 🚀 What lives here?
//
//	Natural: a fixed-length digit string in a registered alphabet
//	         (binary, octal, hexadecimal) standing for a non-negative
//	         big integer. Digit 0 is the least significant one.
//	Binary : a cyclic bit-vector of fixed size n; bit i set means an
//	         onset at step i. It owns the structural analyses:
//	         interval vector, spectrum, composition, homogeneity
//	         regions and contours, plus the bit-level transforms
//	         (reverse, invert, rotate, modular rescale).
//	Quartal: a Natural of exactly four digits, the unit used to print
//	         long rhythms compactly ("88 A0").
//
// ✨ Text conventions:
//
//	Text is always written most-significant digit first and stored
//	least-significant first, so for any alphabet a and valid text s:
//
//	  n, _ := ParseNatural(a, s)
//	  n.String() == s
//
//	and for a Binary, ParseBinary(b.String()) equals b. In the binary
//	string "0110" bits 1 and 2 are onsets.
//
// ⚙️ Circular vs. bounded indexing:
//
//	Get/Set never wrap and panic out of range. Rotation, modular
//	scaling, the composition walk and the interval vector reduce
//	indices modulo the rhythm size explicitly.
//
// Every transform returns a fresh value; a Binary and the Natural built
// from it share no storage.
//
// Errors are package sentinels (ErrInvalidDigit, ErrInvalidLength,
// ErrAlphabetMismatch, ErrDimensionMismatch, ErrInvalidArgument), wrapped
// with an operation prefix and matched with errors.Is.
package numeral
