// SPDX-License-Identifier: MIT

// Package radix converts arbitrary-precision non-negative integers to and
// from short, URL-safe text tokens.
//
// What:
//
//   - Encode writes n as a base-64 numeral, most significant symbol first,
//     over the RFC 4648 URL-safe alphabet (A–Z, a–z, 0–9, '-', '_').
//   - Decode reads such a numeral back: result = result*64 + value(c).
//   - Codec offers the same contract over any alphabet of ≥2 distinct
//     ASCII symbols.
//
// Why:
//
//   - Hash values of large configuration spaces overflow uint64 quickly;
//     tokens must stay exact, canonical, and safe inside URLs and file names.
//
// Guarantees:
//
//   - Decode(Encode(n)) == n for every n ≥ 0.
//   - Encode is injective and canonical: 0 encodes as "A", and no other
//     output starts with the zero symbol.
//
// Complexity:
//
//   - Encode: O(k²) word operations for a k-symbol result.
//   - Decode: O(k²) word operations for a k-symbol input.
//
// Errors:
//
//   - ErrNegative: Encode was given n < 0.
//   - ErrNilInt: Encode was given a nil *big.Int.
//   - ErrInvalidSymbol: Decode met a character outside the alphabet.
//   - ErrEmpty: Decode was given the empty string.
//   - ErrBadAlphabet: New was given fewer than two symbols, a repeated
//     symbol, or a non-ASCII byte.
//
// Codecs are immutable after construction and safe for concurrent use.
package radix
