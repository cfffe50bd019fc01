// Package quartal reads cyclic binary rhythms as positional numerals and
// computes with them.
//
// A rhythm is a ring of n steps, each either an onset or a rest. Written as a
// bit string it is a number; grouped four digits at a time in a binary, octal
// or hexadecimal alphabet it is a quartal sequence, the compact form rhythm
// catalogues use ("80 01" is a 16-step rhythm with onsets on steps 0 and 15).
//
// Everything is organized under sibling packages:
//
//	alphabet/    the binary, octal and hexadecimal digit alphabets
//	numeral/     positional naturals, binary rhythms and their descriptors,
//	             quartal digits
//	quartal/     quartal sequences, their bitwise algebra and
//	             rotation-equivalence clustering
//	permutation/ cycle notation, permutation order, GCD/LCM, slice rotation
//	matrix/      dense float64 matrices: product, transpose, Kronecker,
//	             determinant
//	hadamard/    Sylvester Hadamard matrices and Walsh ordering
//	dtw/         dynamic time warping and a gap-based rhythm distance
//
// The quartal command (cmd/quartal) exposes the same operations on the
// command line.
//
// Quick example, the tresillo on eight steps:
//
//	b, _ := numeral.ParseBinary("10010010")
//	b.Composition()    // [3 3 2]
//	b.IntervalVector() // [0 1 2 0]
//	s, _ := quartal.FromBinary(alphabet.MustLookup(alphabet.Binary), b)
//	s.String()         // "10 01 00 10"
//
//	go install github.com/katalvlaran/quartal/cmd/quartal@latest
package quartal
