package constraint

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/berger/core"
)

// SeedProtect keeps the strongest seeds apart during the early tournament:
// while the candidate's round lies within the protected window, at most one
// of the top-N seeded participants may appear per event.
//
// The protected window is round ≤ floor(estimatedTotalRounds × fraction).
// The total-rounds estimate is a heuristic: twice the largest round observed
// so far, or n-1 when no event exists yet. It is approximate by design —
// in particular its behavior for runs with more than two legs or exotic leg
// strategies is unverified; treat the window as advisory, not exact.
type SeedProtect struct {
	topN     int
	fraction float64
}

// SeedProtection returns the seed-protection constraint.
// topN < 0 clamps to 0 (nothing protected); fraction clamps into [0, 1].
func SeedProtection(topN int, fraction float64) SeedProtect {
	if topN < 0 {
		topN = 0
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return SeedProtect{topN: topN, fraction: fraction}
}

// Name implements Constraint.
func (c SeedProtect) Name() string {
	return fmt.Sprintf("SeedProtection(top=%d, fraction=%.2f)", c.topN, c.fraction)
}

// IsSatisfied rejects the candidate when two or more protected seeds meet
// inside the protected window.
//
// Complexity: O(roster log roster) for the seed threshold + O(events).
func (c SeedProtect) IsSatisfied(e core.Event, ctx *core.SchedulingContext) bool {
	if ctx == nil || c.topN == 0 || c.fraction == 0 {
		return true
	}

	// Protected window check first; outside it everything passes.
	window := int(float64(c.estimatedTotalRounds(ctx)) * c.fraction)
	if e.Round > window {
		return true
	}

	threshold, ok := c.seedThreshold(ctx.Participants())
	if !ok {
		return true // no seeded participants at all
	}

	var protected int
	for _, p := range e.Participants {
		if p.Seeded() && p.Seed <= threshold {
			protected++
		}
	}

	return protected <= 1
}

// estimatedTotalRounds is the documented heuristic: observed max round × 2,
// or n-1 when no rounds have been observed yet.
func (c SeedProtect) estimatedTotalRounds(ctx *core.SchedulingContext) int {
	if maxRound := ctx.MaxRound(); maxRound > 0 {
		return maxRound * 2
	}
	return len(ctx.Participants()) - 1
}

// seedThreshold returns the N-th lowest seed value on the roster (ascending
// seed = strongest first). When fewer than N participants are seeded, every
// seeded participant is protected. Returns (0, false) with no seeds at all.
func (c SeedProtect) seedThreshold(roster []core.Participant) (int, bool) {
	seeds := make([]int, 0, len(roster))
	for _, p := range roster {
		if p.Seeded() {
			seeds = append(seeds, p.Seed)
		}
	}
	if len(seeds) == 0 {
		return 0, false
	}

	sort.Ints(seeds)
	if len(seeds) <= c.topN {
		return seeds[len(seeds)-1], true
	}
	return seeds[c.topN-1], true
}
