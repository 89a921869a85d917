package constraint

import "github.com/katalvlaran/berger/core"

// NoRepeat rejects any candidate whose unordered participant pairs include
// one that has already met, across all legs recorded in the context.
//
// The check is pairwise across all event participants, so it generalizes
// beyond arity 2 unchanged.
type NoRepeat struct{}

// NoRepeatPairings returns the no-repeat-pairings constraint.
func NoRepeatPairings() NoRepeat { return NoRepeat{} }

// Name implements Constraint.
func (NoRepeat) Name() string { return "NoRepeatPairings" }

// IsSatisfied rejects the candidate when any pair within it has met before.
//
// Complexity: O(pairs × events).
func (NoRepeat) IsSatisfied(e core.Event, ctx *core.SchedulingContext) bool {
	if ctx == nil {
		return true
	}

	ps := e.Participants
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if ctx.HaveMet(ps[i].ID, ps[j].ID) {
				return false
			}
		}
	}

	return true
}
