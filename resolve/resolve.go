package resolve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/berger/circle"
	"github.com/katalvlaran/berger/core"
)

// ErrUnresolvedPosition is returned by ResolveSchedule when any position in
// a blueprint cannot be materialized by the given resolver.
var ErrUnresolvedPosition = errors.New("resolve: position cannot be resolved")

// Resolver maps an abstract position onto a concrete participant.
//
// Resolve returns the participant and true on success, or a zero participant
// and false when the position is outside this resolver's competence.
// CanResolve answers the same question without materializing.
// Implementations must be pure: no side effects, stable answers.
type Resolver interface {
	Resolve(pos core.Position) (core.Participant, bool)
	CanResolve(pos core.Position) bool
}

// SeedResolver resolves seed positions against an ordered roster:
// seed(k) ⇒ the k-th (1-based) participant of the slice handed to
// NewSeedResolver. Standing positions are never resolvable.
type SeedResolver struct {
	roster []core.Participant
}

// NewSeedResolver builds a SeedResolver over the given ordered roster.
// The slice is copied, so later caller mutations do not leak in.
//
// Complexity: O(n) time and space.
func NewSeedResolver(roster []core.Participant) *SeedResolver {
	rs := make([]core.Participant, len(roster))
	copy(rs, roster)

	return &SeedResolver{roster: rs}
}

// Resolve maps seed(k) to the k-th roster entry.
// Wrong kind or out-of-range values yield (zero, false), never an error.
//
// Complexity: O(1).
func (r *SeedResolver) Resolve(pos core.Position) (core.Participant, bool) {
	if !r.CanResolve(pos) {
		return core.Participant{}, false
	}
	return r.roster[pos.Value-1], true
}

// CanResolve reports whether pos is a seed position within the roster range.
//
// Complexity: O(1).
func (r *SeedResolver) CanResolve(pos core.Position) bool {
	return pos.Kind == core.KindSeed && pos.Value >= 1 && pos.Value <= len(r.roster)
}

// ResolvedPairing is one blueprint pairing materialized onto participants,
// in blueprint order (A first, B second), before any ordering strategy runs.
type ResolvedPairing struct {
	// Round is the blueprint's 1-based round number.
	Round int

	// Participants holds the resolved pair in blueprint order.
	Participants []core.Participant
}

// ResolveSchedule materializes every pairing of a positional schedule via
// the given resolver, preserving round order and pairing-index order.
//
// Resolution is a pure relabeling: the output contains exactly one resolved
// pairing per blueprint pairing, or ErrUnresolvedPosition naming the first
// position that failed — never a partial result.
//
// Complexity: O(total pairings).
func ResolveSchedule(ps circle.PositionalSchedule, r Resolver) ([]ResolvedPairing, error) {
	if r == nil {
		return nil, fmt.Errorf("resolve: nil resolver: %w", ErrUnresolvedPosition)
	}

	out := make([]ResolvedPairing, 0, ps.PairingCount())

	var (
		a, b core.Participant
		ok   bool
	)
	for _, round := range ps.Rounds {
		for _, pairing := range round.Pairings {
			if a, ok = r.Resolve(pairing.A); !ok {
				return nil, fmt.Errorf("resolve: round %d, %s: %w", round.Number, pairing.A, ErrUnresolvedPosition)
			}
			if b, ok = r.Resolve(pairing.B); !ok {
				return nil, fmt.Errorf("resolve: round %d, %s: %w", round.Number, pairing.B, ErrUnresolvedPosition)
			}
			out = append(out, ResolvedPairing{
				Round:        round.Number,
				Participants: []core.Participant{a, b},
			})
		}
	}

	return out, nil
}
