// SPDX-License-Identifier: MIT

package part

import (
	"fmt"
	"math/big"
)

// Hash returns the index of model in [0, Cardinality).
// Returns an error wrapping ErrNotConforming if model does not fit p; the
// error names the deepest part that rejected it.
func (p *Part) Hash(model any) (*big.Int, error) {
	return p.hash(model)
}

// HashString returns Hash(model) as a radix token.
func (p *Part) HashString(model any) (string, error) {
	h, err := p.hash(model)
	if err != nil {
		return "", err
	}

	return p.opts.codec.Encode(h)
}

// Unhash rebuilds the model at index h.
// Returns an error wrapping ErrOutOfRange if h is nil, negative or
// ≥ Cardinality.
func (p *Part) Unhash(h *big.Int) (any, error) {
	if h == nil || h.Sign() < 0 || h.Cmp(p.cardinality) >= 0 {
		return nil, fmt.Errorf("%w: %v not in [0, %s) at %q", ErrOutOfRange, h, p.cardinality, p.Path())
	}

	return p.unhash(h)
}

// UnhashString decodes token and rebuilds the model it denotes.
// Malformed tokens fail with the codec's errors (radix.ErrInvalidSymbol,
// radix.ErrEmpty).
func (p *Part) UnhashString(token string) (any, error) {
	h, err := p.opts.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	return p.Unhash(h)
}

// Conforms reports whether Hash(model) would succeed.
func (p *Part) Conforms(model any) bool {
	return p.conforms(model)
}

// hash dispatches on the variant. Results are always freshly allocated so
// callers may accumulate into them.
func (p *Part) hash(model any) (*big.Int, error) {
	switch p.kind {
	case KindChoice:
		return p.hashChoice(model)
	case KindTuple:
		return p.hashTuple(model)
	default:
		return p.hashAtomic(model)
	}
}

// unhash dispatches on the variant; h is already known to be in range.
func (p *Part) unhash(h *big.Int) (any, error) {
	switch p.kind {
	case KindChoice:
		return p.unhashChoice(h)
	case KindTuple:
		return p.unhashTuple(h)
	default:
		return p.unhashAtomic(h)
	}
}

func (p *Part) conforms(model any) bool {
	switch p.kind {
	case KindChoice:
		_, _, err := p.selectAlternative(model)
		if err != nil {
			return false
		}
		// selectAlternative trusts explicit Selections; check the value too.
		if sel, ok := model.(Selection); ok {
			if alt, ok := p.byKey[sel.Key]; ok {
				return alt.conforms(sel.Value)
			}
		}
		return true
	case KindTuple:
		parts, err := p.components(model)
		if err != nil {
			return false
		}
		for i, sp := range p.subparts {
			if !sp.conforms(parts[i]) {
				return false
			}
		}
		return true
	default:
		_, err := p.hashAtomic(model)
		return err == nil
	}
}
