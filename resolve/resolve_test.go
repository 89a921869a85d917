package resolve_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/berger/circle"
	"github.com/katalvlaran/berger/core"
	"github.com/katalvlaran/berger/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roster builds n participants P1..Pn in order.
func roster(n int) []core.Participant {
	ps := make([]core.Participant, n)
	for i := range ps {
		ps[i] = core.Participant{ID: fmt.Sprintf("P%d", i+1), Seed: i + 1}
	}
	return ps
}

// TestSeedResolver_Resolve verifies 1-based seed lookup.
func TestSeedResolver_Resolve(t *testing.T) {
	r := resolve.NewSeedResolver(roster(4))

	pos, err := core.SeedPosition(3)
	require.NoError(t, err)

	p, ok := r.Resolve(pos)
	assert.True(t, ok)
	assert.Equal(t, "P3", p.ID, "seed(3) is the third roster entry")
}

// TestSeedResolver_OutOfRange verifies out-of-range seeds return none.
func TestSeedResolver_OutOfRange(t *testing.T) {
	r := resolve.NewSeedResolver(roster(4))

	pos, err := core.SeedPosition(5)
	require.NoError(t, err)

	_, ok := r.Resolve(pos)
	assert.False(t, ok, "seed beyond roster must not resolve")
	assert.False(t, r.CanResolve(pos))
}

// TestSeedResolver_WrongKind verifies standing positions never resolve.
func TestSeedResolver_WrongKind(t *testing.T) {
	r := resolve.NewSeedResolver(roster(4))

	standing, err := core.StandingPosition(1)
	require.NoError(t, err)
	anchored, err := core.StandingAfterRoundPosition(1, 2)
	require.NoError(t, err)

	assert.False(t, r.CanResolve(standing), "live standings are not resolvable here")
	assert.False(t, r.CanResolve(anchored), "anchored standings are not resolvable here")
}

// TestSeedResolver_CopiesRoster verifies caller mutations do not leak in.
func TestSeedResolver_CopiesRoster(t *testing.T) {
	rs := roster(3)
	r := resolve.NewSeedResolver(rs)
	rs[0] = core.Participant{ID: "X"}

	pos, _ := core.SeedPosition(1)
	p, ok := r.Resolve(pos)
	require.True(t, ok)
	assert.Equal(t, "P1", p.ID, "resolver owns a private roster copy")
}

// TestResolveSchedule_PureRelabeling verifies resolving a blueprint yields
// the same identities as applying the circle rotation directly: every
// blueprint pairing appears, in order, with seed(k) ⇒ the k-th participant.
func TestResolveSchedule_PureRelabeling(t *testing.T) {
	const n = 6
	ps, err := circle.Generate(n)
	require.NoError(t, err)

	rs := roster(n)
	pairings, err := resolve.ResolveSchedule(ps, resolve.NewSeedResolver(rs))
	require.NoError(t, err)
	require.Len(t, pairings, ps.PairingCount(), "one resolved pairing per blueprint pairing")

	idx := 0
	for _, round := range ps.Rounds {
		for _, bp := range round.Pairings {
			got := pairings[idx]
			assert.Equal(t, round.Number, got.Round)
			assert.Equal(t, rs[bp.A.Value-1].ID, got.Participants[0].ID, "A relabels without loss")
			assert.Equal(t, rs[bp.B.Value-1].ID, got.Participants[1].ID, "B relabels without loss")
			idx++
		}
	}
}

// TestResolveSchedule_Unresolvable verifies the all-or-nothing contract:
// a roster smaller than the blueprint fails with ErrUnresolvedPosition.
func TestResolveSchedule_Unresolvable(t *testing.T) {
	ps, err := circle.Generate(6)
	require.NoError(t, err)

	_, err = resolve.ResolveSchedule(ps, resolve.NewSeedResolver(roster(4)))
	assert.ErrorIs(t, err, resolve.ErrUnresolvedPosition)

	_, err = resolve.ResolveSchedule(ps, nil)
	assert.ErrorIs(t, err, resolve.ErrUnresolvedPosition, "nil resolver is unresolvable")
}
