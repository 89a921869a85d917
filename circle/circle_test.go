package circle_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/berger/circle"
	"github.com/katalvlaran/berger/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairKey renders an unordered pairing as a canonical "lo-hi" key.
func pairKey(p circle.PositionalPairing) string {
	a, b := p.A.Value, p.B.Value
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}

// TestGenerate_TooFew verifies the participant floor.
func TestGenerate_TooFew(t *testing.T) {
	_, err := circle.Generate(1)
	assert.ErrorIs(t, err, circle.ErrTooFewParticipants)

	_, err = circle.Generate(0)
	assert.ErrorIs(t, err, circle.ErrTooFewParticipants)
}

// TestGenerate_EvenCounts verifies the even-n round/pairing shape for a
// range of sizes: n-1 rounds of n/2 pairings, every pair exactly once.
func TestGenerate_EvenCounts(t *testing.T) {
	for n := 2; n <= 12; n += 2 {
		ps, err := circle.Generate(n)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n-1, ps.RoundCount(), "n=%d rounds", n)

		seen := make(map[string]int)
		for _, r := range ps.Rounds {
			assert.Len(t, r.Pairings, n/2, "n=%d round %d width", n, r.Number)
			for _, p := range r.Pairings {
				seen[pairKey(p)]++
			}
		}

		assert.Len(t, seen, n*(n-1)/2, "n=%d distinct pairs", n)
		for k, c := range seen {
			assert.Equal(t, 1, c, "n=%d pair %s multiplicity", n, k)
		}
	}
}

// TestGenerate_OddCounts verifies the odd-n shape: n rounds of (n-1)/2
// pairings, every position byes exactly once overall.
func TestGenerate_OddCounts(t *testing.T) {
	for n := 3; n <= 11; n += 2 {
		ps, err := circle.Generate(n)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n, ps.RoundCount(), "n=%d rounds", n)

		appearances := make(map[int]int)
		for _, r := range ps.Rounds {
			assert.Len(t, r.Pairings, (n-1)/2, "n=%d round %d width", n, r.Number)
			for _, p := range r.Pairings {
				appearances[p.A.Value]++
				appearances[p.B.Value]++
			}
		}

		// Every position appears in n-1 pairings, i.e. sits out exactly once.
		require.Len(t, appearances, n)
		for seed, c := range appearances {
			assert.Equal(t, n-1, c, "n=%d seed %d plays n-1 times (one bye)", n, seed)
		}
	}
}

// TestGenerate_PairingTotal verifies the closed-form n(n-1)/2 total.
func TestGenerate_PairingTotal(t *testing.T) {
	for n := 2; n <= 13; n++ {
		ps, err := circle.Generate(n)
		require.NoError(t, err)
		assert.Equal(t, n*(n-1)/2, ps.PairingCount(), "n=%d", n)
	}
}

// TestGenerate_Deterministic verifies two generations for the same n are
// structurally identical.
func TestGenerate_Deterministic(t *testing.T) {
	first, err := circle.Generate(7)
	require.NoError(t, err)
	second, err := circle.Generate(7)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical n must yield the identical structure")
}

// TestGenerate_SeedPositionsOnly verifies every emitted position is a valid
// 1-based seed.
func TestGenerate_SeedPositionsOnly(t *testing.T) {
	ps, err := circle.Generate(6)
	require.NoError(t, err)

	for _, r := range ps.Rounds {
		for _, p := range r.Pairings {
			assert.Equal(t, core.KindSeed, p.A.Kind)
			assert.Equal(t, core.KindSeed, p.B.Kind)
			assert.GreaterOrEqual(t, p.A.Value, 1)
			assert.LessOrEqual(t, p.A.Value, 6)
			assert.GreaterOrEqual(t, p.B.Value, 1)
			assert.LessOrEqual(t, p.B.Value, 6)
			assert.NotEqual(t, p.A.Value, p.B.Value, "no self-pairings")
		}
	}
}

// TestGenerate_Metadata verifies the structure facts stamped by Generate.
func TestGenerate_Metadata(t *testing.T) {
	even, err := circle.Generate(4)
	require.NoError(t, err)
	assert.Equal(t, 4, even.Metadata[circle.MetaParticipants])
	assert.Equal(t, 3, even.Metadata[circle.MetaRounds])
	assert.Equal(t, false, even.Metadata[circle.MetaHasBye])

	odd, err := circle.Generate(5)
	require.NoError(t, err)
	assert.Equal(t, 5, odd.Metadata[circle.MetaRounds])
	assert.Equal(t, true, odd.Metadata[circle.MetaHasBye])
}
