// SPDX-License-Identifier: MIT
// Package part: sentinel error set.
// Errors are created once, at the part where the failure is detected, with
// that part's path as context (fmt.Errorf("%w: ...")). Composites return the
// first child failure unchanged. Callers match with errors.Is.

package part

import "errors"

var (
	// ErrNotConforming indicates a model does not match the part's declared shape.
	ErrNotConforming = errors.New("part: model does not conform")

	// ErrAmbiguous indicates an untagged model matched more than one Choice
	// alternative. It is always reported together with ErrNotConforming.
	ErrAmbiguous = errors.New("part: ambiguous alternative")

	// ErrOutOfRange indicates an index outside [0, Cardinality).
	ErrOutOfRange = errors.New("part: index out of range")

	// ErrNilPart indicates a nil *Part was given as a subpart.
	ErrNilPart = errors.New("part: nil part")

	// ErrNilDomain indicates NewAtomic was given a nil Domain.
	ErrNilDomain = errors.New("part: nil domain")

	// ErrEmptyDomain indicates a Domain whose cardinality is below 1.
	ErrEmptyDomain = errors.New("part: domain cardinality must be >= 1")

	// ErrBadEnum indicates an Enum value that is repeated or not comparable.
	ErrBadEnum = errors.New("part: invalid enum value")

	// ErrInvalidKey indicates an empty subpart key or a key containing '.'.
	ErrInvalidKey = errors.New("part: invalid key")

	// ErrDuplicateKey indicates two sibling subparts share a key.
	ErrDuplicateKey = errors.New("part: duplicate key")

	// ErrAttached indicates a subpart that already belongs to a parent.
	ErrAttached = errors.New("part: subpart already attached")

	// ErrNoSubparts indicates a Choice without alternatives.
	ErrNoSubparts = errors.New("part: choice needs at least one alternative")

	// ErrUnknownPath indicates Lookup could not resolve a path.
	ErrUnknownPath = errors.New("part: unknown path")
)
