// SPDX-License-Identifier: MIT

package part

import (
	"fmt"
	"math/big"
)

func (p *Part) hashAtomic(model any) (*big.Int, error) {
	i, ok := p.domain.Index(model)
	if !ok {
		return nil, fmt.Errorf("%w: %q: %v (%T) is outside the domain", ErrNotConforming, p.Path(), model, model)
	}
	// Domains may return shared values; also guard against a domain that
	// answers outside its own cardinality.
	if i == nil || i.Sign() < 0 || i.Cmp(p.cardinality) >= 0 {
		return nil, fmt.Errorf("%w: %q: domain index %v not in [0, %s)", ErrNotConforming, p.Path(), i, p.cardinality)
	}

	return new(big.Int).Set(i), nil
}

func (p *Part) unhashAtomic(h *big.Int) (any, error) {
	return p.domain.Value(h), nil
}
