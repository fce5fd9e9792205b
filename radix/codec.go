// SPDX-License-Identifier: MIT

package radix

import (
	"fmt"
	"math/big"
)

// Alphabet is the default symbol set, ordered by symbol value.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// noSymbol marks bytes outside the alphabet in Codec.values.
const noSymbol = -1

// Codec converts between non-negative integers and positional numerals
// over a fixed alphabet.
type Codec struct {
	alphabet string
	base     *big.Int
	values   [256]int16 // byte → symbol value, noSymbol if absent
}

var std = mustNew(Alphabet)

// Standard returns the shared codec over Alphabet.
func Standard() *Codec { return std }

// New builds a Codec over alphabet, where alphabet[i] denotes digit i.
// Returns ErrBadAlphabet if alphabet has fewer than two symbols, repeats a
// symbol, or contains a non-ASCII byte.
// Complexity: O(len(alphabet)).
func New(alphabet string) (*Codec, error) {
	if len(alphabet) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 symbols, got %d", ErrBadAlphabet, len(alphabet))
	}
	c := &Codec{
		alphabet: alphabet,
		base:     big.NewInt(int64(len(alphabet))),
	}
	for i := range c.values {
		c.values[i] = noSymbol
	}
	for i := 0; i < len(alphabet); i++ {
		b := alphabet[i]
		if b >= 0x80 {
			return nil, fmt.Errorf("%w: non-ASCII byte 0x%02x at %d", ErrBadAlphabet, b, i)
		}
		if c.values[b] != noSymbol {
			return nil, fmt.Errorf("%w: symbol %q repeated at %d", ErrBadAlphabet, b, i)
		}
		c.values[b] = int16(i)
	}

	return c, nil
}

func mustNew(alphabet string) *Codec {
	c, err := New(alphabet)
	if err != nil {
		panic(err)
	}

	return c
}

// Alphabet returns the codec's symbols ordered by value.
func (c *Codec) Alphabet() string { return c.alphabet }

// Base returns the number of symbols in the alphabet.
func (c *Codec) Base() int { return len(c.alphabet) }

// Encode returns the shortest numeral denoting n. Zero encodes as the
// single zero symbol; the result is never empty.
// Complexity: O(k²) for a k-symbol result.
func (c *Codec) Encode(n *big.Int) (string, error) {
	if n == nil {
		return "", ErrNilInt
	}
	if n.Sign() < 0 {
		return "", ErrNegative
	}
	if n.Sign() == 0 {
		return c.alphabet[:1], nil
	}

	// Digits come out least significant first; fill buf from the right.
	buf := make([]byte, 0, 8)
	q := new(big.Int).Set(n)
	r := new(big.Int)
	for q.Sign() > 0 {
		q.QuoRem(q, c.base, r)
		buf = append(buf, c.alphabet[r.Int64()])
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf), nil
}

// EncodeUint64 is Encode for machine-sized values; it cannot fail.
func (c *Codec) EncodeUint64(u uint64) string {
	s, _ := c.Encode(new(big.Int).SetUint64(u))

	return s
}

// Decode parses s as a numeral, most significant symbol first.
// Leading zero symbols are accepted and do not change the value.
// Returns ErrEmpty for "" and ErrInvalidSymbol (wrapped with the byte
// offset) for any character outside the alphabet.
// Complexity: O(k²) for a k-symbol input.
func (c *Codec) Decode(s string) (*big.Int, error) {
	if s == "" {
		return nil, ErrEmpty
	}
	result := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < len(s); i++ {
		v := c.values[s[i]]
		if v == noSymbol {
			// Report the full rune so multi-byte input reads sensibly.
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, []rune(s[i:])[0], i)
		}
		result.Mul(result, c.base)
		result.Add(result, digit.SetInt64(int64(v)))
	}

	return result, nil
}

// Encode encodes n with the Standard codec.
func Encode(n *big.Int) (string, error) { return std.Encode(n) }

// EncodeUint64 encodes u with the Standard codec.
func EncodeUint64(u uint64) string { return std.EncodeUint64(u) }

// Decode decodes s with the Standard codec.
func Decode(s string) (*big.Int, error) { return std.Decode(s) }
