// Package scheduler - the orchestrator.
//
// Design contract (strict):
//   - One public operation: Schedule(participants, opts). Validate first,
//     generate second, assemble last; every failure is a typed error raised
//     immediately — nothing is logged and swallowed.
//   - No backtracking: a rejected candidate is recorded and skipped, never
//     retried with alternate partners. A single rejection therefore aborts
//     the run at the leg boundary even if a different assignment would have
//     succeeded. Intentional simplicity trade-off; do not bolt search onto
//     this path without re-specifying the failure semantics.
//   - Determinism: candidates are visited in round order, then pairing-index
//     order; legs strictly in order 1..N.
package scheduler

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/berger/circle"
	"github.com/katalvlaran/berger/constraint"
	"github.com/katalvlaran/berger/core"
	"github.com/katalvlaran/berger/leg"
	"github.com/katalvlaran/berger/order"
	"github.com/katalvlaran/berger/resolve"
)

// Scheduler composes the berger pipeline. Construct via New; a zero value
// behaves like New() with no options.
//
// A Scheduler is cheap and reusable across calls. The random engine
// injected via WithRand is the only cross-call state: it advances with use
// (see ShuffledRoster), so reuse implies sequential coupling between calls.
type Scheduler struct {
	constraints    []constraint.Constraint
	orderer        order.Orderer
	rng            *rand.Rand
	expectedEvents ExpectedEventsFunc
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithConstraints sets the constraint set every candidate must satisfy.
// Order affects performance only; put the most-restrictive first.
func WithConstraints(cs ...constraint.Constraint) Option {
	return func(s *Scheduler) { s.constraints = cs }
}

// WithOrderer sets the participant orderer deciding home/away slots.
// Default is the static (identity) orderer.
func WithOrderer(o order.Orderer) Option {
	return func(s *Scheduler) { s.orderer = o }
}

// WithRand injects the scheduler's random engine, used by ShuffledRoster
// for pre-shuffled seeding. The engine carries sequential state across
// calls when reused.
func WithRand(rng *rand.Rand) Option {
	return func(s *Scheduler) { s.rng = rng }
}

// WithExpectedEvents overrides the completeness formula, letting future
// algorithm variants reuse the validation machinery with their own count.
func WithExpectedEvents(fn ExpectedEventsFunc) Option {
	return func(s *Scheduler) { s.expectedEvents = fn }
}

// New builds a Scheduler with the given options.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ordererOrDefault resolves the configured orderer, defaulting to static.
func (s *Scheduler) ordererOrDefault() order.Orderer {
	if s.orderer == nil {
		return order.NewStatic()
	}
	return s.orderer
}

// expectedOrDefault resolves the completeness formula, defaulting to
// the round-robin count.
func (s *Scheduler) expectedOrDefault() ExpectedEventsFunc {
	if s.expectedEvents == nil {
		return RoundRobinExpectedEvents
	}
	return s.expectedEvents
}

// ShuffledRoster returns a copy of the roster in random order, drawn from
// the engine injected via WithRand (fixed-seed default stream otherwise).
// Feeding the result to Schedule randomizes the seed assignment — the
// pre-shuffling extension point of seed-based resolution.
//
// Complexity: O(n).
func (s *Scheduler) ShuffledRoster(roster []core.Participant) []core.Participant {
	out := make([]core.Participant, len(roster))
	copy(out, roster)

	rng := s.rng
	if rng == nil {
		rng = order.RandFromSeed(0)
	}
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Plan runs the strategy's advisory pre-flight estimate for the given
// configuration without generating anything. The plan is advisory only;
// Schedule's completeness validation remains authoritative.
func (s *Scheduler) Plan(participants []core.Participant, opts Options) (leg.GenerationPlan, error) {
	strategy := opts.Strategy
	if strategy == nil {
		strategy = leg.NewMirrored()
	}
	return strategy.PlanGeneration(participants, opts.Legs, opts.Arity, s.constraints)
}

// Schedule computes the complete multi-leg schedule for the roster.
//
// Contracts:
//   - roster ≥ 2 participants with unique, non-empty IDs;
//   - opts.Arity == 2, opts.Legs ≥ 1, opts.Algorithm == AlgorithmCircle;
//   - a Schedule is only ever returned fully complete.
//
// Errors: ErrConfiguration, ErrUnsupportedOperation,
// ErrImpossibleConstraints, and *IncompleteScheduleError (matching
// ErrIncompleteSchedule via errors.Is) carrying full diagnostics.
//
// Complexity: O(legs × rounds × pairs-per-round × constraints).
func (s *Scheduler) Schedule(participants []core.Participant, opts Options) (core.Schedule, error) {
	// Stage 1 - algorithm routing.
	switch opts.Algorithm {
	case AlgorithmCircle:
		// Implemented below.
	case AlgorithmSwiss, AlgorithmPool:
		return core.Schedule{}, fmt.Errorf("scheduler: %s requires round-by-round generation: %w",
			opts.Algorithm, ErrUnsupportedOperation)
	default:
		return core.Schedule{}, fmt.Errorf("scheduler: unknown algorithm %d: %w", opts.Algorithm, ErrUnsupportedOperation)
	}

	// Stage 2 - configuration validation; abort before any generation work.
	n := len(participants)
	if n < 2 {
		return core.Schedule{}, fmt.Errorf("scheduler: at least 2 participants required, got %d: %w", n, ErrConfiguration)
	}
	if opts.Arity != leg.SupportedArity {
		return core.Schedule{}, fmt.Errorf("scheduler: arity %d is not supported (only 2): %w", opts.Arity, ErrConfiguration)
	}
	if opts.Legs < 1 {
		return core.Schedule{}, fmt.Errorf("scheduler: legs must be >= 1, got %d: %w", opts.Legs, ErrConfiguration)
	}
	if id, dup := core.DuplicateParticipantID(participants); dup {
		return core.Schedule{}, fmt.Errorf("scheduler: duplicate or empty participant ID %q: %w", id, ErrConfiguration)
	}

	strategy := opts.Strategy
	if strategy == nil {
		strategy = leg.NewMirrored()
	}

	// Stage 3 - structural pre-flight (best-effort impossibility detection).
	sat, err := strategy.CanSatisfyConstraints(participants, opts.Legs, opts.Arity, s.constraints)
	if err != nil {
		return core.Schedule{}, fmt.Errorf("scheduler: pre-flight failed: %w", err)
	}
	if !sat.Satisfiable {
		return core.Schedule{}, fmt.Errorf("scheduler: %s: %w", strings.Join(sat.Reasons, "; "), ErrImpossibleConstraints)
	}

	// Stage 4 - leg-1 blueprint and resolution.
	blueprint, err := circle.Generate(n)
	if err != nil {
		return core.Schedule{}, fmt.Errorf("scheduler: structure generation: %w", err)
	}
	pairings, err := resolve.ResolveSchedule(blueprint, resolve.NewSeedResolver(participants))
	if err != nil {
		return core.Schedule{}, fmt.Errorf("scheduler: resolution: %w", err)
	}

	var (
		roundsPerLeg = blueprint.RoundCount()
		expectPerLeg = s.expectedOrDefault()(n, 1)
		orderer      = s.ordererOrDefault()
		collector    = NewViolationCollector()
		events       = make([]core.Event, 0, expectPerLeg*opts.Legs)
		ctx          = core.NewSchedulingContext(participants, opts.Legs,
			core.WithRoundsPerLeg(roundsPerLeg), core.WithArity(opts.Arity))
	)

	// Stage 5 - leg 1: order, validate, commit; record rejections.
	var (
		leg1Events []core.Event
		eventIndex int
		prevRound  int
	)
	for _, p := range pairings {
		if p.Round != prevRound {
			eventIndex = 0
			prevRound = p.Round
		}

		ordered := orderer.Order(p.Participants, order.Context{
			Round:      p.Round,
			EventIndex: eventIndex,
			Leg:        1,
			Scheduling: ctx,
		})
		eventIndex++

		candidate, err := core.NewEvent(ordered, p.Round)
		if err != nil {
			return core.Schedule{}, fmt.Errorf("scheduler: orderer %q broke the pair contract: %w", orderer.Name(), ErrConfiguration)
		}

		if failed, ok := constraint.FirstUnsatisfied(s.constraints, candidate, ctx); !ok {
			collector.AddRejection(failed, candidate)
			continue
		}

		leg1Events = append(leg1Events, candidate)
		ctx = ctx.WithEvents(candidate)
	}

	if len(leg1Events) < expectPerLeg {
		return core.Schedule{}, s.incomplete(1, expectPerLeg, len(leg1Events), collector)
	}
	events = append(events, leg1Events...)

	// Stage 6 - legs 2..N over leg-1's final (ordered) events, validated
	// against the complete cross-leg history.
	for legNum := 2; legNum <= opts.Legs; legNum++ {
		ctx = ctx.WithNextLeg()

		var legCount int
		for _, first := range leg1Events {
			globalRound := (legNum-1)*roundsPerLeg + first.Round

			candidate, ok := strategy.GenerateEventForLeg(first.Participants, legNum, globalRound, ctx)
			if !ok {
				continue // strategy skipped the slot; the shortfall check below decides
			}

			if failed, pass := constraint.FirstUnsatisfied(s.constraints, candidate, ctx); !pass {
				collector.AddRejection(failed, candidate)
				continue
			}

			events = append(events, candidate)
			ctx = ctx.WithEvents(candidate)
			legCount++
		}

		if legCount < expectPerLeg {
			return core.Schedule{}, s.incomplete(legNum, expectPerLeg, legCount, collector)
		}
	}

	// Stage 7 - all-or-nothing assembly.
	return core.Schedule{
		Events: events,
		Metadata: core.Metadata{
			core.MetaAlgorithm:    opts.Algorithm.String(),
			core.MetaParticipants: n,
			core.MetaLegs:         opts.Legs,
			core.MetaRoundsPerLeg: roundsPerLeg,
			core.MetaTotalRounds:  roundsPerLeg * opts.Legs,
			core.MetaScheduleID:   uuid.NewString(),
		},
	}, nil
}

// incomplete assembles the diagnosable shortfall error for one leg.
func (s *Scheduler) incomplete(legNum, expected, actual int, vc *ViolationCollector) error {
	return &IncompleteScheduleError{
		Leg:            legNum,
		ExpectedEvents: expected,
		ActualEvents:   actual,
		Violations:     vc.Violations(),
		Report:         BuildRemediationReport(vc),
	}
}
