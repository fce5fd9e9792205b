// SPDX-License-Identifier: MIT

package part

import (
	"fmt"
	"math/big"
	"reflect"
)

// Domain is the value space of an Atomic part. Implementations must be
// immutable and satisfy, for every i in [0, Cardinality()):
//
//	Index(Value(i)) == (i, true)
//
// Value is only called with indices in range.
type Domain interface {
	// Cardinality returns the number of values, which must be ≥ 1.
	Cardinality() *big.Int

	// Index returns the position of v, or false if v is not in the domain.
	Index(v any) (*big.Int, bool)

	// Value returns the value at position i.
	Value(i *big.Int) any
}

// validator is implemented by domains that can reject their own declaration.
type validator interface {
	validate() error
}

// Interval returns the domain of ints lo..hi inclusive. The model type is
// int; any Go integer type or *big.Int is accepted by Hash. hi < lo yields an
// empty domain, which NewAtomic rejects.
func Interval(lo, hi int) Domain {
	card := new(big.Int).Sub(big.NewInt(int64(hi)), big.NewInt(int64(lo)))
	card.Add(card, big.NewInt(1))
	if card.Sign() < 0 {
		card.SetInt64(0)
	}

	return &interval{lo: big.NewInt(int64(lo)), hi: big.NewInt(int64(hi)), card: card}
}

// Range returns the domain of ints 0..n-1.
func Range(n int) Domain { return Interval(0, n-1) }

type interval struct {
	lo, hi *big.Int
	card   *big.Int
}

func (d *interval) Cardinality() *big.Int { return d.card }

func (d *interval) Index(v any) (*big.Int, bool) {
	n, ok := toBig(v)
	if !ok || n.Cmp(d.lo) < 0 || n.Cmp(d.hi) > 0 {
		return nil, false
	}

	return n.Sub(n, d.lo), true
}

func (d *interval) Value(i *big.Int) any {
	return int(new(big.Int).Add(i, d.lo).Int64())
}

// BigRange returns the domain of integers 0..n-1 with no size limit. The
// model type is *big.Int; Go integer types are accepted by Hash.
func BigRange(n *big.Int) Domain {
	card := new(big.Int)
	if n != nil && n.Sign() > 0 {
		card.Set(n)
	}

	return &bigRange{card: card}
}

type bigRange struct {
	card *big.Int
}

func (d *bigRange) Cardinality() *big.Int { return d.card }

func (d *bigRange) Index(v any) (*big.Int, bool) {
	n, ok := toBig(v)
	if !ok || n.Sign() < 0 || n.Cmp(d.card) >= 0 {
		return nil, false
	}

	return n, true
}

func (d *bigRange) Value(i *big.Int) any { return new(big.Int).Set(i) }

// Enum returns the domain of the listed values in order. Values must be
// distinct and comparable; matching uses ==, so int(1) and int64(1) differ.
func Enum(values ...any) Domain {
	e := &enum{
		values: append([]any(nil), values...),
		index:  make(map[any]int, len(values)),
		card:   big.NewInt(int64(len(values))),
	}
	for i, v := range e.values {
		if !hashable(v) {
			e.err = fmt.Errorf("%w: %T at %d is not comparable", ErrBadEnum, v, i)
			break
		}
		// NaN, or a value holding one, can never be found again.
		if v != v {
			e.err = fmt.Errorf("%w: %v at %d is not equal to itself", ErrBadEnum, v, i)
			break
		}
		if j, dup := e.index[v]; dup {
			e.err = fmt.Errorf("%w: %v repeated at %d and %d", ErrBadEnum, v, j, i)
			break
		}
		e.index[v] = i
	}

	return e
}

// Bool returns the domain {false, true}.
func Bool() Domain { return Enum(false, true) }

type enum struct {
	values []any
	index  map[any]int
	card   *big.Int
	err    error // declaration error, surfaced by NewAtomic
}

func (d *enum) validate() error { return d.err }

func (d *enum) Cardinality() *big.Int { return d.card }

func (d *enum) Index(v any) (*big.Int, bool) {
	if !hashable(v) {
		return nil, false
	}
	i, ok := d.index[v]
	if !ok {
		return nil, false
	}

	return big.NewInt(int64(i)), true
}

func (d *enum) Value(i *big.Int) any { return d.values[i.Int64()] }

// hashable reports whether v can be used as a map key without panicking.
func hashable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

// toBig converts integer models to a fresh *big.Int.
func toBig(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case *big.Int:
		if n == nil {
			return nil, false
		}
		return new(big.Int).Set(n), true
	default:
		return nil, false
	}
}
