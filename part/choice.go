// SPDX-License-Identifier: MIT

package part

import (
	"fmt"
	"math/big"
	"sort"
)

// hashChoice computes offsets[alt] + alt.hash(value).
func (p *Part) hashChoice(model any) (*big.Int, error) {
	alt, value, err := p.selectAlternative(model)
	if err != nil {
		return nil, err
	}
	local, err := alt.hash(value)
	if err != nil {
		return nil, err
	}

	return local.Add(local, p.table[alt.index]), nil
}

// selectAlternative resolves the subpart a model belongs to.
//
// A Selection whose Key names a direct subpart is taken as given. Any other
// model, including a Selection meant for a nested Choice, is matched
// structurally in declaration order under the part's MatchPolicy.
func (p *Part) selectAlternative(model any) (*Part, any, error) {
	if sel, ok := model.(Selection); ok {
		if alt, ok := p.byKey[sel.Key]; ok {
			return alt, sel.Value, nil
		}
	}

	var match *Part
	for _, sp := range p.subparts {
		if !sp.conforms(model) {
			continue
		}
		if p.opts.match == MatchFirst {
			return sp, model, nil
		}
		if match != nil {
			return nil, nil, fmt.Errorf("%w: %w: %q: model matches both %q and %q",
				ErrNotConforming, ErrAmbiguous, p.Path(), match.key, sp.key)
		}
		match = sp
	}
	if match == nil {
		return nil, nil, fmt.Errorf("%w: %q: %T matches no alternative", ErrNotConforming, p.Path(), model)
	}

	return match, model, nil
}

// unhashChoice finds the alternative whose range [offset, offset+card)
// holds h. Offsets start at 0 and strictly increase, so the last offset
// not above h identifies it.
func (p *Part) unhashChoice(h *big.Int) (any, error) {
	i := sort.Search(len(p.table), func(i int) bool { return p.table[i].Cmp(h) > 0 }) - 1
	alt := p.subparts[i]
	local := new(big.Int).Sub(h, p.table[i])
	value, err := alt.unhash(local)
	if err != nil {
		return nil, err
	}

	return Selection{Key: alt.key, Value: value}, nil
}
