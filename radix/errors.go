// SPDX-License-Identifier: MIT

package radix

import "errors"

// Sentinel errors for radix operations. Decode wraps ErrInvalidSymbol with
// the offending position; callers match with errors.Is.
var (
	// ErrNegative indicates Encode was given a negative integer.
	ErrNegative = errors.New("radix: integer must be non-negative")

	// ErrNilInt indicates Encode was given a nil *big.Int.
	ErrNilInt = errors.New("radix: nil integer")

	// ErrInvalidSymbol indicates a character outside the codec alphabet.
	ErrInvalidSymbol = errors.New("radix: invalid symbol")

	// ErrEmpty indicates Decode was given an empty string.
	ErrEmpty = errors.New("radix: empty input")

	// ErrBadAlphabet indicates an alphabet that cannot form a positional numeral system.
	ErrBadAlphabet = errors.New("radix: invalid alphabet")
)
