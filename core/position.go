// Package core - abstract positions.
//
// A Position names a slot in a tournament blueprint ("seed 3", "standing 1",
// "standing 2 after round 4") without committing to a real participant.
// Positions are materialized later by a resolve.Resolver; only seed positions
// are resolvable by this core's seed-based resolver.
package core

import "fmt"

// PositionKind discriminates the Position tagged variant.
//
//   - KindSeed              — pre-tournament seeding rank.
//   - KindStanding          — current standing at materialization time.
//   - KindStandingAfterRound — standing as of a specific completed round.
type PositionKind int

const (
	// KindSeed refers to the pre-tournament seeding order.
	KindSeed PositionKind = iota

	// KindStanding refers to the live standings at resolution time.
	KindStanding

	// KindStandingAfterRound refers to the standings after a given round.
	KindStandingAfterRound
)

// String returns a stable lowercase name for the kind.
func (k PositionKind) String() string {
	switch k {
	case KindSeed:
		return "seed"
	case KindStanding:
		return "standing"
	case KindStandingAfterRound:
		return "standing-after-round"
	default:
		return "unknown"
	}
}

// Position is a tagged variant naming an abstract slot.
//
// Value is 1-based for every kind. Round is meaningful only for
// KindStandingAfterRound. Construct positions through the factory
// functions below; zero values are not valid positions.
type Position struct {
	// Kind selects the variant.
	Kind PositionKind

	// Value is the 1-based rank within the variant's ordering.
	Value int

	// Round is the completed round the standing refers to
	// (KindStandingAfterRound only).
	Round int
}

// SeedPosition builds a seed position with 1-based rank n.
// Returns ErrPositionValue for n < 1.
func SeedPosition(n int) (Position, error) {
	if n < 1 {
		return Position{}, ErrPositionValue
	}
	return Position{Kind: KindSeed, Value: n}, nil
}

// StandingPosition builds a live-standing position with 1-based rank n.
// Returns ErrPositionValue for n < 1.
func StandingPosition(n int) (Position, error) {
	if n < 1 {
		return Position{}, ErrPositionValue
	}
	return Position{Kind: KindStanding, Value: n}, nil
}

// StandingAfterRoundPosition builds a standing position anchored to a
// completed round. Returns ErrPositionValue for n < 1 and
// ErrPositionNeedsRound for round < 1.
func StandingAfterRoundPosition(n, round int) (Position, error) {
	if n < 1 {
		return Position{}, ErrPositionValue
	}
	if round < 1 {
		return Position{}, ErrPositionNeedsRound
	}
	return Position{Kind: KindStandingAfterRound, Value: n, Round: round}, nil
}

// String renders the position for diagnostics, e.g. "seed(3)" or
// "standing-after-round(2, r4)".
func (p Position) String() string {
	if p.Kind == KindStandingAfterRound {
		return fmt.Sprintf("%s(%d, r%d)", p.Kind, p.Value, p.Round)
	}
	return fmt.Sprintf("%s(%d)", p.Kind, p.Value)
}
