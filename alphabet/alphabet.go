// SPDX-License-Identifier: MIT

// Package alphabet is the registry of named digit alphabets used to write
// rhythms as positional numerals.
//
// Three alphabets are registered once at package initialisation:
//
//	Binary       0 1
//	Octal        0 1 2 3 4 5 6 7
//	Hexadecimal  0 1 2 3 4 5 6 7 8 9 A B C D E F
//
// The registry is read-only after init, so lookups are safe from any
// goroutine without locking.
package alphabet

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownAlphabet is returned by ParseName for names outside the registry.
var ErrUnknownAlphabet = errors.New("alphabet: unknown alphabet")

// Name identifies a registered alphabet.
type Name int

const (
	// Hexadecimal is the base-16 alphabet 0-9A-F.
	Hexadecimal Name = iota
	// Octal is the base-8 alphabet 0-7.
	Octal
	// Binary is the base-2 alphabet 0-1.
	Binary
)

// String returns the lower-case registry name.
func (n Name) String() string {
	switch n {
	case Hexadecimal:
		return "hexadecimal"
	case Octal:
		return "octal"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("alphabet(%d)", int(n))
	}
}

// Alphabet is an ordered, immutable table of digit symbols.
// The index of a symbol is its digit value.
type Alphabet struct {
	name    Name
	symbols []rune
	index   map[rune]int
}

var registry = map[Name]*Alphabet{}

func init() {
	register(Binary, "01")
	register(Octal, "01234567")
	register(Hexadecimal, "0123456789ABCDEF")
}

func register(name Name, symbols string) {
	a := &Alphabet{name: name, symbols: []rune(symbols), index: make(map[rune]int, len(symbols))}
	for i, r := range a.symbols {
		a.index[r] = i
	}
	registry[name] = a
}

// Lookup returns the registered alphabet for name.
func Lookup(name Name) (*Alphabet, bool) {
	a, ok := registry[name]

	return a, ok
}

// MustLookup is Lookup for names known at compile time; it panics on an
// unregistered name.
func MustLookup(name Name) *Alphabet {
	a, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("alphabet: %v is not registered", name))
	}

	return a
}

// ParseName maps user-facing spellings ("hex", "16", "Binary", ...) to a Name.
func ParseName(s string) (Name, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "bin", "2":
		return Binary, nil
	case "octal", "oct", "8":
		return Octal, nil
	case "hexadecimal", "hex", "16":
		return Hexadecimal, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlphabet, s)
}

// Name returns the registry name of a.
func (a *Alphabet) Name() Name { return a.name }

// Len returns the base of the alphabet.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbol returns the character for digit value i.
// It panics if i is not a valid digit.
func (a *Alphabet) Symbol(i int) rune { return a.symbols[i] }

// Index returns the digit value of r, and false if r is not in the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]

	return i, ok
}

// InformationBits is log2 of the base: the number of bits one digit carries.
func (a *Alphabet) InformationBits() float64 {
	return math.Log2(float64(len(a.symbols)))
}

// IsInformationBinary reports whether the base is an exact power of two.
func (a *Alphabet) IsInformationBinary() bool {
	return math.Pow(2, math.Round(a.InformationBits())) == float64(len(a.symbols))
}

// DigitBits is InformationBits rounded to the nearest integer.
func (a *Alphabet) DigitBits() int {
	return int(math.Round(a.InformationBits()))
}

// Equal reports whether a and b have the same symbols in the same order.
func (a *Alphabet) Equal(b *Alphabet) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || len(a.symbols) != len(b.symbols) {
		return false
	}
	for i := range a.symbols {
		if a.symbols[i] != b.symbols[i] {
			return false
		}
	}

	return true
}

// String returns the symbols in digit order.
func (a *Alphabet) String() string { return string(a.symbols) }
