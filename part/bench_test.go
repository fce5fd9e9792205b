package part_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/cardinal/part"
)

// wideSpace builds a Choice of 64 alternatives, each a Tuple of 16 Range(1000)
// components (about 2^166 models).
func wideSpace(b *testing.B) *part.Part {
	b.Helper()
	alts := make([]*part.Part, 64)
	for i := range alts {
		comps := make([]*part.Part, 16)
		for j := range comps {
			comps[j] = mustAtomic(b, string(rune('a'+j)), part.Range(1000))
		}
		alts[i] = mustTuple(b, "alt"+string(rune('A'+i%26))+string(rune('a'+i/26)), comps...)
	}

	return mustChoice(b, "space", nil, alts...)
}

// BenchmarkHash measures hashing an explicit selection in the last alternative.
func BenchmarkHash(b *testing.B) {
	space := wideSpace(b)
	last := space.Subparts()[63]
	model := make([]any, 16)
	for i := range model {
		model[i] = 999 - i
	}
	sel := part.Selection{Key: last.Key(), Value: model}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = space.Hash(sel)
	}
}

// BenchmarkUnhash measures unhashing near the top of the index range.
func BenchmarkUnhash(b *testing.B) {
	space := wideSpace(b)
	h := new(big.Int).Sub(space.Cardinality(), big.NewInt(12345))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = space.Unhash(h)
	}
}
