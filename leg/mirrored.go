package leg

import (
	"github.com/katalvlaran/berger/constraint"
	"github.com/katalvlaran/berger/core"
)

// Mirrored is the classic double-round-robin strategy: leg 1 keeps the
// resolved pairing order, every later leg reverses it (home/away swap).
type Mirrored struct{}

// NewMirrored returns the mirrored leg strategy.
func NewMirrored() Mirrored { return Mirrored{} }

// Name implements Strategy.
func (Mirrored) Name() string { return "mirrored" }

// PlanGeneration implements Strategy with the shared round-robin estimate.
func (s Mirrored) PlanGeneration(participants []core.Participant, totalLegs, arity int, cs []constraint.Constraint) (GenerationPlan, error) {
	return basePlan(s.Name(), participants, totalLegs, arity, cs)
}

// GenerateEventForLeg keeps leg-1 pairings untouched and reverses all later
// legs. Pairings of the wrong arity are skipped.
//
// Complexity: O(1).
func (Mirrored) GenerateEventForLeg(pair []core.Participant, legNumber, globalRound int, _ *core.SchedulingContext) (core.Event, bool) {
	if len(pair) != SupportedArity {
		return core.Event{}, false
	}

	ordered := pair
	if legNumber > 1 {
		ordered = []core.Participant{pair[1], pair[0]}
	}

	e, err := core.NewEvent(ordered, globalRound)
	if err != nil {
		return core.Event{}, false
	}

	return e, true
}

// CanSatisfyConstraints implements Strategy with the shared structural check.
func (Mirrored) CanSatisfyConstraints(participants []core.Participant, totalLegs, arity int, _ []constraint.Constraint) (Satisfiability, error) {
	return baseSatisfiability(participants, totalLegs, arity), nil
}
