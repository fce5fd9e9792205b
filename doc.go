// Package cardinal gives every value of a structured, finite configuration
// space a unique, reversible integer, and turns that integer into a short
// URL-safe token and back.
//
// What is cardinal?
//
//	A small, dependency-light library built on two subpackages:
//		• part:  Atomic, Choice (sum) and Tuple (product) nodes, exact
//		         cardinality arithmetic, Hash / Unhash over *big.Int
//		• radix: base-64 URL-safe codec for arbitrary-precision integers
//
// Why choose cardinal?
//
//   - Bijective – every index in [0, Cardinality) names exactly one model
//   - Exact – math/big throughout, no fixed-width overflow
//   - Immutable – trees are frozen once built; reads need no locks
//   - Deterministic – no hidden state, sentinel errors matched with errors.Is
//
// Quick example:
//
//	            device (tuple, 2·100 = 200)
//	           /                          \
//	   power (bool, ×100)          level (1..100, ×1)
//
//	{power: true, level: 42}  →  1·100 + 41  =  141  →  "CN"
//
//	go get github.com/katalvlaran/cardinal
package cardinal
