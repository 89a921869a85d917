package order

import "github.com/katalvlaran/berger/core"

// Context carries everything an ordering decision may depend on.
//
// EventIndex is the 0-based position of the event within its round; inputs
// need not be contiguous — strategies normalize on parity or derivation, not
// on sequence.
type Context struct {
	// Round is the 1-based global round number.
	Round int

	// EventIndex is the 0-based event position within the round.
	EventIndex int

	// Leg is the 1-based leg number.
	Leg int

	// Scheduling is the historical snapshot; may be nil for strategies that
	// do not consult history.
	Scheduling *core.SchedulingContext
}

// Orderer decides the primary/secondary order of a resolved pair.
//
// Implementations must be pure: the input slice is never mutated, the
// returned slice is always fresh, and identical inputs yield identical
// output. Pairs of length ≠ 2 are passed through as a copy.
type Orderer interface {
	// Name returns a stable display name for diagnostics.
	Name() string

	// Order returns the pair in primary-first order.
	Order(pair []core.Participant, octx Context) []core.Participant
}

// copyPair returns a fresh copy of the pair, preserving order.
func copyPair(pair []core.Participant) []core.Participant {
	out := make([]core.Participant, len(pair))
	copy(out, pair)
	return out
}

// reversePair returns a fresh copy of the pair in reversed order.
func reversePair(pair []core.Participant) []core.Participant {
	out := copyPair(pair)
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

// Static keeps the blueprint order untouched.
type Static struct{}

// NewStatic returns the identity orderer.
func NewStatic() Static { return Static{} }

// Name implements Orderer.
func (Static) Name() string { return "static" }

// Order returns a copy of the pair in its original order.
//
// Complexity: O(1).
func (Static) Order(pair []core.Participant, _ Context) []core.Participant {
	return copyPair(pair)
}

// Alternating reverses the pair on odd event indices within a round, so
// primary-slot duty alternates along each round's pairing list.
type Alternating struct{}

// NewAlternating returns the parity-based orderer.
func NewAlternating() Alternating { return Alternating{} }

// Name implements Orderer.
func (Alternating) Name() string { return "alternating" }

// Order reverses the pair when the event index is odd. Parity is taken on
// the index value itself, so non-contiguous indices still alternate
// deterministically.
//
// Complexity: O(1).
func (Alternating) Order(pair []core.Participant, octx Context) []core.Participant {
	if octx.EventIndex%2 != 0 {
		return reversePair(pair)
	}
	return copyPair(pair)
}

// Balanced puts the participant with fewer prior primary-slot appearances
// first, evening out home duty over the run. Ties preserve blueprint order.
// Only 2-participant pairs are acted on; anything else passes through.
type Balanced struct{}

// NewBalanced returns the history-balancing orderer.
func NewBalanced() Balanced { return Balanced{} }

// Name implements Orderer.
func (Balanced) Name() string { return "balanced" }

// Order counts each participant's primary-slot occurrences in the context's
// recorded events and puts the rarer one first.
//
// Complexity: O(events).
func (Balanced) Order(pair []core.Participant, octx Context) []core.Participant {
	if len(pair) != 2 || octx.Scheduling == nil {
		return copyPair(pair)
	}

	var aCount, bCount int
	for _, e := range octx.Scheduling.Events() {
		switch e.Primary().ID {
		case pair[0].ID:
			aCount++
		case pair[1].ID:
			bCount++
		}
	}

	if bCount < aCount {
		return reversePair(pair)
	}
	return copyPair(pair)
}

// SeededRandom makes a deterministic pseudo-random primary choice.
//
// The decision is a pure function of the orderer's seed and the ordering
// context: the seed is mixed with (round, eventIndex, leg) through the
// SplitMix64 derivation, so a fixed seed reproduces the full decision
// sequence while any change of round, event index or leg flips streams.
type SeededRandom struct {
	seed int64
}

// NewSeededRandom returns a seeded pseudo-random orderer.
// Seed 0 falls back to the package's stable default seed.
func NewSeededRandom(seed int64) SeededRandom { return SeededRandom{seed: seed} }

// Name implements Orderer.
func (SeededRandom) Name() string { return "seeded-random" }

// Order flips the pair when the derived stream's first coin lands odd.
//
// Complexity: O(1).
func (o SeededRandom) Order(pair []core.Participant, octx Context) []core.Participant {
	parent := o.seed
	if parent == 0 {
		parent = defaultRNGSeed
	}

	rng := DeriveRand(parent, mixContext(octx.Round, octx.EventIndex, octx.Leg))
	if rng.Intn(2) == 1 {
		return reversePair(pair)
	}
	return copyPair(pair)
}
