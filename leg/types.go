package leg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/berger/constraint"
	"github.com/katalvlaran/berger/core"
)

// ErrPlanInput is returned by PlanGeneration for structurally invalid input
// (fewer than 2 participants, non-positive legs, unsupported arity).
var ErrPlanInput = errors.New("leg: invalid generation input")

// SupportedArity is the only per-event participant count this core's
// strategies can generate.
const SupportedArity = 2

// GenerationPlan is an advisory pre-flight estimate of what a strategy
// expects to produce. It is never authoritative: the scheduler's
// completeness validation decides success, not the plan.
type GenerationPlan struct {
	// ExpectedEvents is the anticipated event total across all legs.
	ExpectedEvents int

	// ExpectedRounds is the anticipated round total across all legs.
	ExpectedRounds int

	// Randomized reports whether generation consults a random engine.
	Randomized bool

	// Strategy is the display name of the planning strategy.
	Strategy string

	// Warnings lists advisory concerns detected during planning.
	Warnings []string
}

// Satisfiability is the result of a structural pre-flight check.
// Satisfiable=false means generation is provably pointless; true means
// "no structural objection", not a proof of success.
type Satisfiability struct {
	// Satisfiable is false only for provably impossible configurations.
	Satisfiable bool

	// Reasons explains each structural objection.
	Reasons []string
}

// Strategy plans and generates events for every leg of a run.
type Strategy interface {
	// Name returns a stable display name for plans and schedule metadata.
	Name() string

	// PlanGeneration estimates totals and surfaces advisory warnings.
	PlanGeneration(participants []core.Participant, totalLegs, arity int, cs []constraint.Constraint) (GenerationPlan, error)

	// GenerateEventForLeg produces one event from a leg-1 resolved pairing,
	// given the full cross-leg history. A false return means "skip this
	// slot" — the strategy has nothing to schedule there.
	GenerateEventForLeg(pair []core.Participant, legNumber, globalRound int, ctx *core.SchedulingContext) (core.Event, bool)

	// CanSatisfyConstraints performs early structural rejection.
	CanSatisfyConstraints(participants []core.Participant, totalLegs, arity int, cs []constraint.Constraint) (Satisfiability, error)
}

// RoundsPerLeg returns the single-leg round count of a circle-method
// round robin: n-1 for even n, n for odd n; 0 below two participants.
func RoundsPerLeg(participants int) int {
	if participants < 2 {
		return 0
	}
	if participants%2 == 0 {
		return participants - 1
	}
	return participants
}

// basePlan computes the shared estimate every reference strategy starts
// from, including the repeat-pairing warning for multi-leg runs.
func basePlan(name string, participants []core.Participant, totalLegs, arity int, cs []constraint.Constraint) (GenerationPlan, error) {
	n := len(participants)
	if n < 2 || totalLegs < 1 || arity != SupportedArity {
		return GenerationPlan{}, fmt.Errorf("leg: %s: n=%d legs=%d arity=%d: %w", name, n, totalLegs, arity, ErrPlanInput)
	}

	plan := GenerationPlan{
		ExpectedEvents: core.RoundRobinEventCount(n) * totalLegs,
		ExpectedRounds: RoundsPerLeg(n) * totalLegs,
		Strategy:       name,
	}

	if totalLegs > 1 {
		for _, c := range cs {
			if c != nil && c.Name() == constraint.NoRepeatPairings().Name() {
				plan.Warnings = append(plan.Warnings,
					"NoRepeatPairings rejects every pairing of legs beyond the first; multi-leg runs repeat pairings by definition")
				break
			}
		}
	}

	return plan, nil
}

// baseSatisfiability collects the structural objections shared by every
// reference strategy.
func baseSatisfiability(participants []core.Participant, totalLegs, arity int) Satisfiability {
	var reasons []string
	if len(participants) < 2 {
		reasons = append(reasons, fmt.Sprintf("at least 2 participants required, got %d", len(participants)))
	}
	if totalLegs < 1 {
		reasons = append(reasons, fmt.Sprintf("at least 1 leg required, got %d", totalLegs))
	}
	if arity != SupportedArity {
		reasons = append(reasons, fmt.Sprintf("only arity %d is supported, got %d", SupportedArity, arity))
	}

	return Satisfiability{Satisfiable: len(reasons) == 0, Reasons: reasons}
}
