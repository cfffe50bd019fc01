// SPDX-License-Identifier: MIT

// Package permutation holds small combinatorial helpers shared by the rhythm
// packages: permutations in one-line and cycle notation, permutation order,
// GCD/LCM and slice rotation.
//
// A permutation of size n is a []int p where p[i] is the image of i and
// {p[0..n-1]} == {0..n-1}.
package permutation

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a cycle list or permutation that is
// not a bijection on a contiguous 0-based range.
var ErrInvalidArgument = errors.New("permutation: invalid argument")

// FromDisjointCycles converts cycle notation to one-line notation.
//
// Every element of 0..n-1 (n = total number of elements across cycles) must
// appear exactly once; fixed points are written as 1-cycles.
//
// Example:
//
//	p, _ := FromDisjointCycles([][]int{{0, 2}, {1}}) // p == [2 1 0]
func FromDisjointCycles(cycles [][]int) ([]int, error) {
	size := 0
	for _, c := range cycles {
		size += len(c)
	}
	seen := make([]bool, size)
	for _, c := range cycles {
		for _, v := range c {
			if v < 0 || v >= size || seen[v] {
				return nil, fmt.Errorf("FromDisjointCycles: element %d: %w", v, ErrInvalidArgument)
			}
			seen[v] = true
		}
	}

	out := make([]int, size)
	for _, c := range cycles {
		for i, v := range c {
			out[v] = c[(i+1)%len(c)]
		}
	}

	return out, nil
}

// Validate reports ErrInvalidArgument when p is not a permutation of 0..len(p)-1.
func Validate(p []int) error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return fmt.Errorf("p[%d]=%d: %w", i, v, ErrInvalidArgument)
		}
		seen[v] = true
	}

	return nil
}

// DisjointCycles decomposes p into cycles, each starting at its smallest
// element, ordered by that element. Fixed points are returned as 1-cycles.
func DisjointCycles(p []int) ([][]int, error) {
	if err := Validate(p); err != nil {
		return nil, fmt.Errorf("DisjointCycles: %w", err)
	}

	visited := make([]bool, len(p))
	var cycles [][]int
	for start := range p {
		if visited[start] {
			continue
		}
		var c []int
		for cur := start; !visited[cur]; cur = p[cur] {
			visited[cur] = true
			c = append(c, cur)
		}
		cycles = append(cycles, c)
	}

	return cycles, nil
}

// Order returns the smallest k > 0 with p^k = identity: the LCM of the cycle
// lengths. The empty permutation has order 1.
func Order(p []int) (int, error) {
	cycles, err := DisjointCycles(p)
	if err != nil {
		return 0, fmt.Errorf("Order: %w", err)
	}
	o := 1
	for _, c := range cycles {
		o = LCM(o, len(c))
	}

	return o, nil
}

// GCD returns the greatest common divisor of |a| and |b|; GCD(0, 0) == 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of |a| and |b|; zero if either is zero.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		l = -l
	}

	return l
}

// Rotate returns a copy of s rotated right by n: out[(i+n) mod len] = s[i].
// Negative n rotates left. The input is never modified.
func Rotate[T any](s []T, n int) []T {
	out := make([]T, len(s))
	if len(s) == 0 {
		return out
	}
	m := ((n % len(s)) + len(s)) % len(s)
	copy(out[m:], s[:len(s)-m])
	copy(out[:m], s[len(s)-m:])

	return out
}

// Count returns how many elements of s equal k.
func Count[T comparable](k T, s []T) int {
	n := 0
	for _, v := range s {
		if v == k {
			n++
		}
	}

	return n
}
