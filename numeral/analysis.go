// SPDX-License-Identifier: MIT

package numeral

import (
	"fmt"
	"slices"
)

// IntervalVector counts, per interval class i = 1..floor(n/2), the ordered
// pairs (j, (i+j) mod n) with both steps set, scanning j over 0..n-1.
//
// For even n the class n/2 is halved, since every such pair is met twice by
// the circular scan.
//
// Errors:
//   - ErrDimensionMismatch if n < 0 or len(bits) < n.
//
// Complexity:
//   - Time O(n²/2), Space O(n/2).
func IntervalVector(bits []bool, n int) ([]int, error) {
	if n < 0 || len(bits) < n {
		return nil, numeralErrorf(opIntervalVector, fmt.Errorf("n=%d, len=%d: %w", n, len(bits), ErrDimensionMismatch))
	}
	m := n / 2
	out := make([]int, 0, m)
	for i := 1; i <= m; i++ {
		count := 0
		for j := 0; j < n; j++ {
			if bits[j] && bits[(i+j)%n] {
				count++
			}
		}
		if i == m && n%2 == 0 {
			count /= 2
		}
		out = append(out, count)
	}

	return out, nil
}

// IntervalVector of the whole rhythm.
func (b *Binary) IntervalVector() []int {
	iv, _ := IntervalVector(b.Bools(), b.n) // len(bits) == n

	return iv
}

// Spectrum is the interval vector of b, copied verbatim. It is kept as a
// separate entry point so call sites can label the descriptor they want.
func Spectrum(b *Binary) []int {
	return slices.Clone(b.IntervalVector())
}

// Composition returns the circular gap sequence between consecutive onsets,
// starting at the lowest onset: gap k runs from onset k to onset k+1, and the
// last gap wraps around to the first onset. A rhythm without onsets has an
// empty composition; a single onset yields [n].
func (b *Binary) Composition() []int {
	onsets := b.Onsets()
	if len(onsets) == 0 {
		return []int{}
	}
	gaps := make([]int, len(onsets))
	for k := 0; k < len(onsets)-1; k++ {
		gaps[k] = onsets[k+1] - onsets[k]
	}
	gaps[len(onsets)-1] = onsets[0] + b.n - onsets[len(onsets)-1]

	return gaps
}

// BinaryFromComposition places onsets gaps[k] steps apart starting at step 0.
// The rhythm size is the sum of the gaps. Every gap must be positive.
func BinaryFromComposition(gaps []int) (*Binary, error) {
	n := 0
	for k, g := range gaps {
		if g <= 0 {
			return nil, numeralErrorf(opFromComp, fmt.Errorf("gap %d=%d: %w", k, g, ErrInvalidArgument))
		}
		n += g
	}
	b := NewBinary(n)
	pos := 0
	for _, g := range gaps {
		b.bits.Set(uint(pos))
		pos += g
	}

	return b, nil
}

// HomogeneityRegions assigns a group id to every composition element so that
// each maximal circular run of equal gaps shares one id.
//
// Implementation:
//   - Stage 1: align. Walk backward from the end of the composition while the
//     gap equals the first gap; the run that wraps around the end is
//     thereby started at its true beginning.
//   - Stage 2: scan. From the aligned start walk the whole cycle forward,
//     bumping the group counter whenever the gap changes.
//
// Returns:
//   - ids[k] is the group of composition element k; ids are 0-based and
//     assigned in scan order.
//
// Complexity:
//   - Time O(k), Space O(k) for k onsets.
func (b *Binary) HomogeneityRegions() []int {
	return homogeneityRegions(b.Composition())
}

func homogeneityRegions(comp []int) []int {
	size := len(comp)
	ids := make([]int, size)
	if size == 0 {
		return ids
	}
	start := regionStart(comp)
	group, prev := 0, comp[start]
	for step := 0; step < size; step++ {
		idx := (start + step) % size
		if comp[idx] != prev {
			group++
			prev = comp[idx]
		}
		ids[idx] = group
	}

	return ids
}

// regionStart is the composition index where the scan begins: the first
// element of the run containing comp[0]. Bounded so that an all-equal
// composition terminates.
func regionStart(comp []int) int {
	size := len(comp)
	k := 0
	for k > -(size-1) && comp[mod(k-1, size)] == comp[0] {
		k--
	}

	return mod(k, size)
}

// RegionGaps collapses the composition into one gap value per homogeneity
// region, in group id order.
func (b *Binary) RegionGaps() []int {
	comp := b.Composition()
	if len(comp) == 0 {
		return []int{}
	}
	start := regionStart(comp)
	out := []int{comp[start]}
	for step := 1; step < len(comp); step++ {
		if g := comp[(start+step)%len(comp)]; g != out[len(out)-1] {
			out = append(out, g)
		}
	}

	return out
}

// DecomposeHomogeneousRegions splits b into one rhythm per homogeneity
// region. Each part holds the onsets that open a gap of its region.
//
// Implementation:
//   - Stage 1: compute the composition, group ids and the gap per group.
//   - Stage 2: start a cursor on the onset that opens the aligned start and
//     walk the cycle: mark the cursor in the current group's part and
//     advance by the group's gap.
//
// Behavior highlights:
//   - OR of all parts == b.
//   - len(parts) == number of circular runs of equal gaps.
//   - A rhythm without onsets yields no parts.
//
// Complexity:
//   - Time O(n + k·n/64) for k onsets, Space O(groups·n).
func (b *Binary) DecomposeHomogeneousRegions() []*Binary {
	comp := b.Composition()
	if len(comp) == 0 {
		return nil
	}
	ids := homogeneityRegions(comp)
	gaps := b.RegionGaps()
	parts := make([]*Binary, len(gaps))
	for i := range parts {
		parts[i] = NewBinary(b.n)
	}

	start := regionStart(comp)
	cursor := b.Onsets()[start]
	for step := 0; step < len(comp); step++ {
		g := ids[(start+step)%len(comp)]
		parts[g].bits.Set(uint(cursor))
		cursor = (cursor + gaps[g]) % b.n
	}

	return parts
}

// Contour returns the signs (-1, 0, +1) of the cyclical difference of the
// reversed composition: how each gap compares with the one before it when
// the rhythm is read backwards. Empty for a rhythm without onsets.
func (b *Binary) Contour() []int {
	comp := b.Composition()
	slices.Reverse(comp)

	return cyclicalSigns(comp)
}

// ShadowContour is the contour of the sums of adjacent gaps of the reversed
// composition (the rhythm's "shadow" of skipped onsets).
func (b *Binary) ShadowContour() []int {
	comp := b.Composition()
	slices.Reverse(comp)
	mid := make([]int, len(comp))
	for i := range comp {
		mid[i] = comp[i] + comp[(i+1)%len(comp)]
	}

	return cyclicalSigns(mid)
}

// cyclicalSigns returns sign(a[(i+1) mod k] − a[i]) for every i.
func cyclicalSigns(a []int) []int {
	out := make([]int, len(a))
	for i := range a {
		d := a[(i+1)%len(a)] - a[i]
		switch {
		case d > 0:
			out[i] = 1
		case d < 0:
			out[i] = -1
		}
	}

	return out
}
