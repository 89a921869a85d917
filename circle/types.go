package circle

import (
	"errors"

	"github.com/katalvlaran/berger/core"
)

// ErrTooFewParticipants is returned when a structure is requested for
// fewer than 2 participants.
var ErrTooFewParticipants = errors.New("circle: at least 2 participants required")

// Metadata keys stamped into a PositionalSchedule by Generate.
const (
	// MetaParticipants is the participant count the structure was built for (int).
	MetaParticipants = "participants"

	// MetaRounds is the number of rounds in the structure (int).
	MetaRounds = "rounds"

	// MetaHasBye reports whether a virtual bye slot was introduced (bool).
	MetaHasBye = "has_bye"
)

// PositionalPairing is one abstract pairing of two seed positions.
// A is the slot that would occupy the primary ("home") side before any
// ordering strategy is applied.
type PositionalPairing struct {
	A core.Position
	B core.Position
}

// PositionalRound is one round of a positional schedule: a 1-based round
// number and its pairings in circle-method emission order.
type PositionalRound struct {
	// Number is the 1-based round number.
	Number int

	// Pairings holds the round's pairings in fixed pairing-index order.
	Pairings []PositionalPairing
}

// PositionalSchedule is a complete abstract tournament blueprint: ordered
// rounds of seed-position pairings, independent of any real participants.
// It can be inspected, printed or validated before resolution.
type PositionalSchedule struct {
	// Rounds holds the rounds in increasing round-number order.
	Rounds []PositionalRound

	// Metadata carries structure facts (see Meta* keys).
	Metadata core.Metadata
}

// RoundCount returns the number of rounds in the structure.
func (s PositionalSchedule) RoundCount() int { return len(s.Rounds) }

// PairingCount returns the total number of pairings across all rounds.
func (s PositionalSchedule) PairingCount() int {
	var total int
	for _, r := range s.Rounds {
		total += len(r.Pairings)
	}
	return total
}
