// SPDX-License-Identifier: MIT

package part

import "math/big"

// Kind tags the closed set of part variants.
type Kind uint8

const (
	// KindAtomic is a leaf over a Domain.
	KindAtomic Kind = iota
	// KindChoice is a sum of alternatives; exactly one is present.
	KindChoice
	// KindTuple is a product of components; all are present.
	KindTuple
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindAtomic:
		return "atomic"
	case KindChoice:
		return "choice"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// Selection is a Choice model that names its alternative explicitly.
// Unhash on a Choice always returns a Selection.
type Selection struct {
	// Key is the key of the chosen subpart.
	Key string

	// Value is the model of the chosen subpart.
	Value any
}

// Part is a node of a configuration tree. The zero value is not usable;
// build parts with NewAtomic, NewChoice and NewTuple.
//
// A Part is frozen once it has been adopted by a parent (or, for the root,
// once it is built). All methods are safe for concurrent use afterwards.
type Part struct {
	kind Kind
	key  string

	// Structure. parent is a back-reference; ownership flows parent → child.
	parent   *Part
	index    int // position in parent.subparts; -1 for the root
	subparts []*Part
	byKey    map[string]*Part

	domain      Domain   // KindAtomic only
	cardinality *big.Int // ≥ 1

	// table holds offsets (KindChoice) or place values (KindTuple),
	// aligned with subparts.
	table []*big.Int

	opts options
}
