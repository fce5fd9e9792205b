// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only structural accessors. Returned big integers, slices and
// maps are copies; mutating them never affects the tree.

package part

import (
	"fmt"
	"math/big"
	"strings"
)

// Kind reports the part variant.
func (p *Part) Kind() Kind { return p.kind }

// Key returns the part's identifier among its siblings.
func (p *Part) Key() string { return p.key }

// Index returns the part's position among its parent's subparts, or -1 for a root.
func (p *Part) Index() int { return p.index }

// Parent returns the owning part, or nil for a root.
func (p *Part) Parent() *Part { return p.parent }

// IsRoot reports whether the part has no parent.
func (p *Part) IsRoot() bool { return p.parent == nil }

// Root walks parent links to the top of the tree.
// Complexity: O(depth).
func (p *Part) Root() *Part {
	r := p
	for r.parent != nil {
		r = r.parent
	}

	return r
}

// Path returns the dot-joined keys from the root to p. An unnamed root
// contributes no segment.
// Complexity: O(depth).
func (p *Part) Path() string {
	var keys []string
	for q := p; q != nil; q = q.parent {
		if q.key != "" {
			keys = append(keys, q.key)
		}
	}
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}

	return strings.Join(keys, ".")
}

// Cardinality returns the number of distinct models of p.
func (p *Part) Cardinality() *big.Int { return new(big.Int).Set(p.cardinality) }

// Domain returns the value space of an Atomic part, nil otherwise.
func (p *Part) Domain() Domain { return p.domain }

// Subparts returns the children in declaration order; nil for Atomic parts.
func (p *Part) Subparts() []*Part {
	if p.kind == KindAtomic {
		return nil
	}

	return append([]*Part(nil), p.subparts...)
}

// Subpart returns the direct child with the given key.
func (p *Part) Subpart(key string) (*Part, bool) {
	sp, ok := p.byKey[key]

	return sp, ok
}

// Offsets maps each alternative of a Choice to the start of its index
// range. Returns nil for other kinds.
func (p *Part) Offsets() map[*Part]*big.Int {
	if p.kind != KindChoice {
		return nil
	}

	return p.tableMap()
}

// Offset returns the offset of the i-th alternative of a Choice, or nil if
// p is not a Choice or i is out of range.
func (p *Part) Offset(i int) *big.Int {
	if p.kind != KindChoice {
		return nil
	}

	return p.tableAt(i)
}

// PlaceValues maps each component of a Tuple to its positional weight.
// Returns nil for other kinds.
func (p *Part) PlaceValues() map[*Part]*big.Int {
	if p.kind != KindTuple {
		return nil
	}

	return p.tableMap()
}

// PlaceValue returns the weight of the i-th component of a Tuple, or nil if
// p is not a Tuple or i is out of range.
func (p *Part) PlaceValue(i int) *big.Int {
	if p.kind != KindTuple {
		return nil
	}

	return p.tableAt(i)
}

func (p *Part) tableMap() map[*Part]*big.Int {
	m := make(map[*Part]*big.Int, len(p.subparts))
	for i, sp := range p.subparts {
		m[sp] = new(big.Int).Set(p.table[i])
	}

	return m
}

func (p *Part) tableAt(i int) *big.Int {
	if i < 0 || i >= len(p.table) {
		return nil
	}

	return new(big.Int).Set(p.table[i])
}

// Lookup resolves a dot-joined path relative to p. The empty path is p.
// Complexity: O(segments).
func (p *Part) Lookup(path string) (*Part, error) {
	if path == "" {
		return p, nil
	}
	q := p
	for _, seg := range strings.Split(path, ".") {
		sp, ok := q.byKey[seg]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no subpart %q", ErrUnknownPath, q.Path(), seg)
		}
		q = sp
	}

	return q, nil
}

// String describes the part for debugging, e.g. `tuple "clock" [86400]`.
func (p *Part) String() string {
	return fmt.Sprintf("%s %q [%s]", p.kind, p.Path(), p.cardinality)
}
