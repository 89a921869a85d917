package leg

import (
	"github.com/katalvlaran/berger/constraint"
	"github.com/katalvlaran/berger/core"
)

// Repeated generates every leg identical to leg 1: same pairings, same
// home/away order, only the global round numbers advance.
type Repeated struct{}

// NewRepeated returns the repeated leg strategy.
func NewRepeated() Repeated { return Repeated{} }

// Name implements Strategy.
func (Repeated) Name() string { return "repeated" }

// PlanGeneration implements Strategy with the shared round-robin estimate.
func (s Repeated) PlanGeneration(participants []core.Participant, totalLegs, arity int, cs []constraint.Constraint) (GenerationPlan, error) {
	return basePlan(s.Name(), participants, totalLegs, arity, cs)
}

// GenerateEventForLeg emits the pairing unchanged for every leg.
//
// Complexity: O(1).
func (Repeated) GenerateEventForLeg(pair []core.Participant, _, globalRound int, _ *core.SchedulingContext) (core.Event, bool) {
	if len(pair) != SupportedArity {
		return core.Event{}, false
	}

	e, err := core.NewEvent(pair, globalRound)
	if err != nil {
		return core.Event{}, false
	}

	return e, true
}

// CanSatisfyConstraints implements Strategy with the shared structural check.
func (Repeated) CanSatisfyConstraints(participants []core.Participant, totalLegs, arity int, _ []constraint.Constraint) (Satisfiability, error) {
	return baseSatisfiability(participants, totalLegs, arity), nil
}
