// SPDX-License-Identifier: MIT
// Package part_test contains shared fixtures for part tests.

package part_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cardinal/part"
)

// Common keys used across tests.
const (
	KeyFirst  = "first"
	KeySecond = "second"
)

// mustAtomic builds an Atomic part or fails the test.
func mustAtomic(t testing.TB, key string, d part.Domain) *part.Part {
	t.Helper()
	p, err := part.NewAtomic(key, d)
	require.NoError(t, err)

	return p
}

func mustChoice(t testing.TB, key string, opts []part.Option, subs ...*part.Part) *part.Part {
	t.Helper()
	p, err := part.NewChoice(key, subs, opts...)
	require.NoError(t, err)

	return p
}

func mustTuple(t testing.TB, key string, subs ...*part.Part) *part.Part {
	t.Helper()
	p, err := part.NewTuple(key, subs)
	require.NoError(t, err)

	return p
}

// machine builds a nested space used by round-trip tests:
//
//	machine (tuple)
//	├── power  bool
//	├── mode   choice
//	│   ├── idle   enum{"cold","warm"}
//	│   ├── run    tuple{speed 1..3, dir enum{"cw","ccw"}}
//	│   └── fault  range 4
//	└── slot   range 3
//
// Cardinality: 2 · (2 + 3·2 + 4) · 3 = 72.
func machine(t testing.TB) *part.Part {
	t.Helper()
	idle := mustAtomic(t, "idle", part.Enum("cold", "warm"))
	run := mustTuple(t, "run",
		mustAtomic(t, "speed", part.Interval(1, 3)),
		mustAtomic(t, "dir", part.Enum("cw", "ccw")),
	)
	fault := mustAtomic(t, "fault", part.Range(4))
	mode := mustChoice(t, "mode", nil, idle, run, fault)

	return mustTuple(t, "machine",
		mustAtomic(t, "power", part.Bool()),
		mode,
		mustAtomic(t, "slot", part.Range(3)),
	)
}

func bi(v int64) *big.Int { return big.NewInt(v) }
