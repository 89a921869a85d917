// Package circle - the circle-method structure generator.
//
// Design notes:
//   - The rotating ring is modelled as a plain slice of 0-based slot values
//     with the bye encoded as a sentinel value; rotation computes a fresh
//     next-state slice instead of mutating in place, keeping every round's
//     emission independent of later state.
//   - Slot values map 1:1 onto seed positions: value v ⇒ seed(v+1).
//   - Strict determinism: no randomness, no map iteration, no time.
package circle

import "github.com/katalvlaran/berger/core"

// byeSlot marks the virtual slot appended for odd participant counts.
// Any value outside 0..n-1 would do; n keeps the ring contiguous.
func byeSlot(n int) int { return n }

// Generate builds the positional round-robin structure for n participants.
//
// Contracts:
//   - n ≥ 2, otherwise ErrTooFewParticipants.
//   - Output is identical for identical n (pure function).
//
// Complexity: O(n²) time and space (n-1 rounds × n/2 pairings).
func Generate(n int) (PositionalSchedule, error) {
	if n < 2 {
		return PositionalSchedule{}, ErrTooFewParticipants
	}

	// Ring size: append a virtual bye slot for odd n.
	var (
		hasBye   = n%2 != 0
		ringSize = n
	)
	if hasBye {
		ringSize = n + 1
	}

	// Initial ring: slot i holds value i; for odd n the last value is the bye.
	ring := make([]int, ringSize)
	for i := range ring {
		ring[i] = i
	}

	var (
		roundTotal = ringSize - 1
		rounds     = make([]PositionalRound, 0, roundTotal)
		half       = ringSize / 2
	)

	for roundNum := 1; roundNum <= roundTotal; roundNum++ {
		pairings := make([]PositionalPairing, 0, half)

		// Pair slot[i] against slot[ringSize-1-i]; skip bye pairings.
		var i int
		for i = 0; i < half; i++ {
			a := ring[i]
			b := ring[ringSize-1-i]
			if hasBye && (a == byeSlot(n) || b == byeSlot(n)) {
				continue
			}
			pairings = append(pairings, PositionalPairing{
				A: core.Position{Kind: core.KindSeed, Value: a + 1},
				B: core.Position{Kind: core.KindSeed, Value: b + 1},
			})
		}

		rounds = append(rounds, PositionalRound{Number: roundNum, Pairings: pairings})
		ring = rotate(ring)
	}

	return PositionalSchedule{
		Rounds: rounds,
		Metadata: core.Metadata{
			MetaParticipants: n,
			MetaRounds:       roundTotal,
			MetaHasBye:       hasBye,
		},
	}, nil
}

// rotate computes the next ring state: slot 0 is fixed, slots 1..len-1
// rotate by one position (the last value moves to slot 1). A fresh slice is
// returned; the input is left untouched.
//
// Complexity: O(n) time and space.
func rotate(ring []int) []int {
	size := len(ring)
	next := make([]int, size)

	next[0] = ring[0]
	if size > 1 {
		next[1] = ring[size-1]
		for i := 2; i < size; i++ {
			next[i] = ring[i-1]
		}
	}

	return next
}
