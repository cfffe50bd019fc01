// SPDX-License-Identifier: MIT

package quartal

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/quartal/alphabet"
	"github.com/katalvlaran/quartal/numeral"
)

// ErrNilPartition is returned by ClusterRhythmPartition for a nil partition.
var ErrNilPartition = errors.New("quartal: partition is nil")

// class is one rotation-equivalence class. members[0] is the representative.
// seen maps the xxHash64 of a member's printed text to member indices.
type class struct {
	members []*Sequence
	seen    map[uint64][]int
}

func newClass(rep *Sequence) *class {
	c := &class{seen: make(map[uint64][]int)}
	c.insert(rep)

	return c
}

// insert adds s unless a member with identical text is already present.
func (c *class) insert(s *Sequence) {
	text := s.String()
	key := xxhash.Sum64String(text)
	for _, idx := range c.seen[key] {
		if c.members[idx].String() == text {
			return
		}
	}
	c.seen[key] = append(c.seen[key], len(c.members))
	c.members = append(c.members, s)
}

// Clusterer groups sequences into classes under synchronized rotation.
//
// Classes live in an arena ordered by creation. Add scans every class: an
// item equivalent to several representatives joins each of them; an item
// equivalent to none seeds a new class. The zero value is ready to use.
//
// Complexity: Add is O(classes·len²·width).
type Clusterer struct {
	classes []*class
}

// NewClusterer returns an empty Clusterer.
func NewClusterer() *Clusterer { return &Clusterer{} }

// Add files item into every class whose representative it is equivalent to,
// or opens a new class.
func (c *Clusterer) Add(item *Sequence) error {
	found := false
	for _, cl := range c.classes {
		ok, err := cl.members[0].EquivalentUnderSynchronizedRotation(item)
		if err != nil {
			return err
		}
		if ok {
			found = true
			cl.insert(item)
		}
	}
	if !found {
		c.classes = append(c.classes, newClass(item))
	}

	return nil
}

// Len returns the number of classes.
func (c *Clusterer) Len() int { return len(c.classes) }

// Classes returns the members of every class in creation order.
func (c *Clusterer) Classes() [][]*Sequence {
	out := make([][]*Sequence, len(c.classes))
	for i, cl := range c.classes {
		out[i] = slices.Clone(cl.members)
	}

	return out
}

// Emit OR-merges the members of each class into one sequence and returns
// the merged sequences in reverse class-creation order.
//
// The merge is seeded from a copy of the first member's text, so alphabet
// and length are those of the representative.
func (c *Clusterer) Emit() ([]*Sequence, error) {
	out := make([]*Sequence, 0, len(c.classes))
	for _, cl := range c.classes {
		merged, err := Parse(cl.members[0].abc, cl.members[0].String())
		if err != nil {
			return nil, err
		}
		for _, m := range cl.members {
			if merged, err = Or(merged, m); err != nil {
				return nil, err
			}
		}
		out = append(out, merged)
	}
	slices.Reverse(out)

	return out, nil
}

// ClusterRhythmPartition writes every rhythm of partition as a Sequence in
// abc, clusters them under synchronized rotation and returns one merged
// sequence per class (see Clusterer.Emit). A single rhythm is returned as is.
func ClusterRhythmPartition(abc *alphabet.Alphabet, partition []*numeral.Binary) ([]*Sequence, error) {
	if partition == nil {
		return nil, ErrNilPartition
	}
	seqs, err := FromBinaries(abc, partition)
	if err != nil {
		return nil, fmt.Errorf("ClusterRhythmPartition: %w", err)
	}
	if len(seqs) == 1 {
		return seqs, nil
	}

	c := NewClusterer()
	for _, s := range seqs {
		if err = c.Add(s); err != nil {
			return nil, fmt.Errorf("ClusterRhythmPartition: %w", err)
		}
	}

	return c.Emit()
}
