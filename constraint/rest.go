package constraint

import (
	"fmt"

	"github.com/katalvlaran/berger/core"
)

// MinimumRest enforces a minimum number of rounds between repeat meetings
// of the same pair: a candidate at round r is rejected when any of its
// pairs last met at round r0 with r - r0 < k. Pairs that have never met
// pass automatically.
type MinimumRest struct {
	periods int
}

// MinimumRestPeriods returns the rest-period constraint for k rounds.
// Negative k is clamped to 0 (constraint always satisfied).
func MinimumRestPeriods(k int) MinimumRest {
	if k < 0 {
		k = 0
	}
	return MinimumRest{periods: k}
}

// Name implements Constraint.
func (c MinimumRest) Name() string { return fmt.Sprintf("MinimumRestPeriods(%d)", c.periods) }

// IsSatisfied rejects the candidate when any pair met too recently.
//
// Complexity: O(pairs × events).
func (c MinimumRest) IsSatisfied(e core.Event, ctx *core.SchedulingContext) bool {
	if ctx == nil || c.periods == 0 {
		return true
	}

	ps := e.Participants
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			last, met := ctx.LastMeetingRound(ps[i].ID, ps[j].ID)
			if met && e.Round-last < c.periods {
				return false
			}
		}
	}

	return true
}
