// SPDX-License-Identifier: MIT

// Package part maps every value of a finite, structured configuration space
// to a unique non-negative integer and back.
//
// What:
//
//   - A space is described by an immutable tree of *Part nodes of three kinds:
//     Atomic (a leaf over a Domain), Choice (exactly one alternative is
//     present, a sum type) and Tuple (all components are present, a product
//     type).
//   - Hash walks the tree top-down, matching the model against each node, and
//     folds child indices into one *big.Int in [0, Cardinality).
//   - Unhash is the exact inverse: it splits a global index into per-node
//     local indices and rebuilds the model.
//   - HashString / UnhashString wrap the integer in a radix token.
//
// Index layout:
//
//	Choice  offsets[i]     = Σ_{j<i} card(sub_j)     global = offsets[i] + local
//	Tuple   placeValues[i] = Π_{j>i} card(sub_j)     global = Σ local_i·placeValues[i]
//
// Example (Choice of Range(10) and Range(5), then Tuple of Range(3) and Range(4)):
//
//	choice: card=15, offsets={0,10}; Selection{"second", 3} → 13
//	tuple:  card=12, placeValues={4,1}; {first:2, second:3} → 2·4+3·1 = 11
//
// Models:
//
//   - Atomic: whatever the Domain accepts (int for Range/Interval, *big.Int
//     for BigRange, the listed values for Enum, bool for Bool).
//   - Choice: Selection{Key, Value}, or an untagged value matched
//     structurally against the alternatives (see MatchPolicy).
//   - Tuple: map[string]any keyed by subpart key, or []any in declared order.
//     Unhash always returns map[string]any.
//
// Complexity:
//
//   - Construction: O(n) big-integer operations per composite with n subparts.
//   - Hash:   O(N·M) for a tree of N nodes with M-word cardinalities, plus the
//     structural matching cost of untagged Choice models.
//   - Unhash: O(N·M²); a Choice locates its alternative by binary search.
//
// Concurrency:
//
//   - A tree is frozen once its root is built. Every read operation is a pure
//     function of the tree and its arguments and may run concurrently.
//
// Errors:
//
//   - ErrNotConforming: model does not fit the part (ErrAmbiguous is wrapped
//     under it for multi-match Choice models).
//   - ErrOutOfRange: index is negative or ≥ Cardinality.
//   - radix.ErrInvalidSymbol / radix.ErrEmpty: UnhashString token is malformed.
//   - Construction: ErrNilPart, ErrNilDomain, ErrEmptyDomain, ErrBadEnum,
//     ErrInvalidKey, ErrDuplicateKey, ErrAttached, ErrNoSubparts.
package part
