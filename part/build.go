// SPDX-License-Identifier: MIT

package part

import (
	"fmt"
	"math/big"
	"strings"
)

// NewAtomic builds a leaf part over d. The domain's cardinality is copied
// at construction.
// Returns ErrNilDomain, ErrEmptyDomain, ErrBadEnum or ErrInvalidKey.
// Complexity: O(1).
func NewAtomic(key string, d Domain, opts ...Option) (*Part, error) {
	if err := checkOwnKey(key); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNilDomain
	}
	if v, ok := d.(validator); ok {
		if err := v.validate(); err != nil {
			return nil, err
		}
	}
	card := d.Cardinality()
	if card == nil || card.Sign() < 1 {
		return nil, fmt.Errorf("%w: atomic %q", ErrEmptyDomain, key)
	}

	return &Part{
		kind:        KindAtomic,
		key:         key,
		index:       -1,
		domain:      d,
		cardinality: new(big.Int).Set(card),
		opts:        gatherOptions(opts),
	}, nil
}

// NewChoice builds a sum part whose value is exactly one of subparts.
// Cardinality is the sum of the subpart cardinalities; offsets[i] is the sum
// over subparts before i.
// Returns ErrNoSubparts for an empty list, or any adoption error.
// Complexity: O(n) additions.
func NewChoice(key string, subparts []*Part, opts ...Option) (*Part, error) {
	if len(subparts) == 0 {
		return nil, fmt.Errorf("%w: choice %q", ErrNoSubparts, key)
	}
	p, err := newComposite(KindChoice, key, subparts, opts)
	if err != nil {
		return nil, err
	}

	sum := new(big.Int)
	for i, sp := range p.subparts {
		p.table[i] = new(big.Int).Set(sum)
		sum.Add(sum, sp.cardinality)
	}
	p.cardinality = sum

	return p, nil
}

// NewTuple builds a product part whose value holds every subpart at once.
// Cardinality is the product of the subpart cardinalities; placeValues[i] is
// the product over subparts after i, so the last place value is 1. An empty
// tuple is the unit space of cardinality 1.
// Complexity: O(n) multiplications.
func NewTuple(key string, subparts []*Part, opts ...Option) (*Part, error) {
	p, err := newComposite(KindTuple, key, subparts, opts)
	if err != nil {
		return nil, err
	}

	prod := big.NewInt(1)
	for i := len(p.subparts) - 1; i >= 0; i-- {
		p.table[i] = new(big.Int).Set(prod)
		prod.Mul(prod, p.subparts[i].cardinality)
	}
	p.cardinality = prod

	return p, nil
}

// newComposite validates subparts and adopts them. Nothing is mutated
// unless every check passes.
func newComposite(kind Kind, key string, subparts []*Part, opts []Option) (*Part, error) {
	if err := checkOwnKey(key); err != nil {
		return nil, err
	}
	byKey := make(map[string]*Part, len(subparts))
	for i, sp := range subparts {
		if sp == nil {
			return nil, fmt.Errorf("%w: %s %q subpart %d", ErrNilPart, kind, key, i)
		}
		if sp.parent != nil {
			return nil, fmt.Errorf("%w: %q is owned by %q", ErrAttached, sp.key, sp.parent.Path())
		}
		if sp.key == "" {
			return nil, fmt.Errorf("%w: %s %q subpart %d has empty key", ErrInvalidKey, kind, key, i)
		}
		if _, dup := byKey[sp.key]; dup {
			return nil, fmt.Errorf("%w: %q in %s %q", ErrDuplicateKey, sp.key, kind, key)
		}
		byKey[sp.key] = sp
	}

	p := &Part{
		kind:     kind,
		key:      key,
		index:    -1,
		subparts: append([]*Part(nil), subparts...),
		byKey:    byKey,
		table:    make([]*big.Int, len(subparts)),
		opts:     gatherOptions(opts),
	}
	for i, sp := range p.subparts {
		sp.parent = p
		sp.index = i
	}

	return p, nil
}

// checkOwnKey rejects keys that would break dot-joined paths. An empty key
// is allowed here (unnamed root) and rejected on adoption.
func checkOwnKey(key string) error {
	if strings.Contains(key, ".") {
		return fmt.Errorf("%w: %q contains '.'", ErrInvalidKey, key)
	}

	return nil
}
