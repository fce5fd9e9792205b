// SPDX-License-Identifier: MIT
// Package part: functional options.
//
// Option constructors validate and panic on programmer error; hashing never
// panics on user input.

package part

import "github.com/katalvlaran/cardinal/radix"

// MatchPolicy decides how a Choice resolves an untagged model that
// structurally matches several alternatives.
type MatchPolicy uint8

const (
	// MatchExclusive rejects a model unless exactly one alternative matches.
	MatchExclusive MatchPolicy = iota

	// MatchFirst picks the first matching alternative in declaration order.
	MatchFirst
)

// DefaultMatchPolicy is used when WithMatchPolicy is not given.
const DefaultMatchPolicy = MatchExclusive

const (
	panicNilCodec    = "part: WithCodec(nil)"
	panicMatchPolicy = "part: WithMatchPolicy: unknown policy"
)

// Option configures a Part at construction.
type Option func(*options)

type options struct {
	codec *radix.Codec // token codec for HashString/UnhashString
	match MatchPolicy  // Choice only
}

// WithCodec sets the codec used by HashString and UnhashString.
// Panics on nil.
func WithCodec(c *radix.Codec) Option {
	if c == nil {
		panic(panicNilCodec)
	}

	return func(o *options) { o.codec = c }
}

// WithMatchPolicy sets how a Choice resolves untagged models.
// It has no effect on Atomic and Tuple parts. Panics on an unknown policy.
func WithMatchPolicy(m MatchPolicy) Option {
	if m != MatchExclusive && m != MatchFirst {
		panic(panicMatchPolicy)
	}

	return func(o *options) { o.match = m }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{
		codec: radix.Standard(),
		match: DefaultMatchPolicy,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
