// SPDX-License-Identifier: MIT

package part

import (
	"fmt"
	"math/big"
	"sort"
)

// hashTuple computes Σ h_i · placeValues[i] over components in order.
func (p *Part) hashTuple(model any) (*big.Int, error) {
	parts, err := p.components(model)
	if err != nil {
		return nil, err
	}
	sum := new(big.Int)
	for i, sp := range p.subparts {
		local, err := sp.hash(parts[i])
		if err != nil {
			return nil, err
		}
		sum.Add(sum, local.Mul(local, p.table[i]))
	}

	return sum, nil
}

// components lines a tuple model up with the subparts. Maps must carry
// exactly the subpart keys; slices must have one element per subpart.
func (p *Part) components(model any) ([]any, error) {
	switch m := model.(type) {
	case map[string]any:
		out := make([]any, len(p.subparts))
		for i, sp := range p.subparts {
			v, ok := m[sp.key]
			if !ok {
				return nil, fmt.Errorf("%w: %q: missing component %q", ErrNotConforming, p.Path(), sp.key)
			}
			out[i] = v
		}
		if len(m) != len(p.subparts) {
			var extra []string
			for k := range m {
				if _, ok := p.byKey[k]; !ok {
					extra = append(extra, k)
				}
			}
			sort.Strings(extra)
			return nil, fmt.Errorf("%w: %q: unexpected components %q", ErrNotConforming, p.Path(), extra)
		}
		return out, nil
	case []any:
		if len(m) != len(p.subparts) {
			return nil, fmt.Errorf("%w: %q: %d components, want %d", ErrNotConforming, p.Path(), len(m), len(p.subparts))
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %q: tuple model must be map[string]any or []any, got %T", ErrNotConforming, p.Path(), model)
	}
}

// unhashTuple splits h as a mixed-radix numeral, most significant first:
// local_i = (h / placeValues[i]) mod card_i.
func (p *Part) unhashTuple(h *big.Int) (any, error) {
	out := make(map[string]any, len(p.subparts))
	q := new(big.Int)
	for i, sp := range p.subparts {
		q.Quo(h, p.table[i])
		local := new(big.Int).Mod(q, sp.cardinality)
		value, err := sp.unhash(local)
		if err != nil {
			return nil, err
		}
		out[sp.key] = value
	}

	return out, nil
}
