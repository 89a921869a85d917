package leg

import (
	"math/rand"

	"github.com/katalvlaran/berger/constraint"
	"github.com/katalvlaran/berger/core"
)

// Shuffled keeps leg 1 untouched and independently randomizes each later
// event's home/away order through an injected random engine.
//
// The engine is stateful: every decision advances it, so results are
// reproducible only when the caller seeds the engine and the generation
// call sequence is replayed identically. Do not share the engine across
// goroutines.
type Shuffled struct {
	rng *rand.Rand
}

// NewShuffled returns the shuffled leg strategy over the given engine.
// A nil engine falls back to a fixed-seed deterministic stream.
func NewShuffled(rng *rand.Rand) *Shuffled {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Shuffled{rng: rng}
}

// Name implements Strategy.
func (*Shuffled) Name() string { return "shuffled" }

// PlanGeneration implements Strategy; the plan is flagged as randomized.
func (s *Shuffled) PlanGeneration(participants []core.Participant, totalLegs, arity int, cs []constraint.Constraint) (GenerationPlan, error) {
	plan, err := basePlan(s.Name(), participants, totalLegs, arity, cs)
	if err != nil {
		return GenerationPlan{}, err
	}
	plan.Randomized = true

	return plan, nil
}

// GenerateEventForLeg keeps leg 1 as resolved and flips later pairings on a
// coin drawn from the injected engine.
//
// Complexity: O(1); consumes one engine draw per later-leg pairing.
func (s *Shuffled) GenerateEventForLeg(pair []core.Participant, legNumber, globalRound int, _ *core.SchedulingContext) (core.Event, bool) {
	if len(pair) != SupportedArity {
		return core.Event{}, false
	}

	ordered := pair
	if legNumber > 1 && s.rng.Intn(2) == 1 {
		ordered = []core.Participant{pair[1], pair[0]}
	}

	e, err := core.NewEvent(ordered, globalRound)
	if err != nil {
		return core.Event{}, false
	}

	return e, true
}

// CanSatisfyConstraints implements Strategy with the shared structural check.
func (*Shuffled) CanSatisfyConstraints(participants []core.Participant, totalLegs, arity int, _ []constraint.Constraint) (Satisfiability, error) {
	return baseSatisfiability(participants, totalLegs, arity), nil
}
