// Package core - the immutable scheduling context.
//
// SchedulingContext is the historical snapshot every constraint, orderer and
// leg strategy evaluates against. It is copy-on-write: WithEvents and
// WithNextLeg build fresh instances, never touching the receiver, so a
// snapshot handed to a constraint can never change underneath it.
package core

// SchedulingContext is an append-only view of a scheduling run: the roster,
// every event generated so far (across all legs), and the leg bookkeeping
// needed to interpret global round numbers.
//
// Construct via NewSchedulingContext; derive successors via WithEvents /
// WithNextLeg. The zero value is not usable.
type SchedulingContext struct {
	participants []Participant
	events       []Event
	currentLeg   int
	totalLegs    int
	arity        int
	roundsPerLeg int // 0 ⇒ inferred from observed rounds
	metadata     Metadata
}

// ContextOption configures a SchedulingContext at construction time.
type ContextOption func(*SchedulingContext)

// WithRoundsPerLeg threads the exact rounds-per-leg value through the
// context, replacing the fragile inference from observed round numbers.
// Values < 1 are ignored (inference stays active).
func WithRoundsPerLeg(rounds int) ContextOption {
	return func(c *SchedulingContext) {
		if rounds >= 1 {
			c.roundsPerLeg = rounds
		}
	}
}

// WithArity overrides the per-event participant count recorded in the
// context. The scheduling core itself only supports 2.
func WithArity(arity int) ContextOption {
	return func(c *SchedulingContext) {
		if arity >= 2 {
			c.arity = arity
		}
	}
}

// WithContextMetadata attaches caller metadata to the context.
func WithContextMetadata(md Metadata) ContextOption {
	return func(c *SchedulingContext) { c.metadata = md }
}

// NewSchedulingContext builds the leg-1 context for the given roster.
// The roster slice is copied; totalLegs < 1 is clamped to 1.
//
// Complexity: O(n) over the roster.
func NewSchedulingContext(roster []Participant, totalLegs int, opts ...ContextOption) *SchedulingContext {
	if totalLegs < 1 {
		totalLegs = 1
	}

	ps := make([]Participant, len(roster))
	copy(ps, roster)

	c := &SchedulingContext{
		participants: ps,
		currentLeg:   1,
		totalLegs:    totalLegs,
		arity:        2,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Participants returns the roster snapshot. The returned slice is shared;
// callers must not mutate it.
func (c *SchedulingContext) Participants() []Participant { return c.participants }

// Events returns every event recorded so far, across all legs, in
// generation order. The returned slice is shared; callers must not mutate it.
func (c *SchedulingContext) Events() []Event { return c.events }

// CurrentLeg returns the 1-based leg currently being generated.
func (c *SchedulingContext) CurrentLeg() int { return c.currentLeg }

// TotalLegs returns the total leg count of the run.
func (c *SchedulingContext) TotalLegs() int { return c.totalLegs }

// Arity returns the per-event participant count (2 in this core).
func (c *SchedulingContext) Arity() int { return c.arity }

// Metadata returns the caller metadata attached at construction, may be nil.
func (c *SchedulingContext) Metadata() Metadata { return c.metadata }

// MaxRound returns the largest round number observed so far, 0 when empty.
func (c *SchedulingContext) MaxRound() int {
	var maxRound int
	for _, e := range c.events {
		if e.Round > maxRound {
			maxRound = e.Round
		}
	}
	return maxRound
}

// RoundsPerLeg returns the explicit rounds-per-leg when one was threaded
// through construction. Otherwise it falls back to inferring
// MaxRound() / TotalLegs() — an approximation that under-reports before a
// full leg has been observed and assumes uniform legs; prefer
// WithRoundsPerLeg whenever the value is known.
func (c *SchedulingContext) RoundsPerLeg() int {
	if c.roundsPerLeg >= 1 {
		return c.roundsPerLeg
	}
	return c.MaxRound() / c.totalLegs
}

// LegOfRound maps a global round number onto its 1-based leg using
// RoundsPerLeg. Rounds ≤ 0 or an unknown rounds-per-leg map to leg 1.
func (c *SchedulingContext) LegOfRound(round int) int {
	rpl := c.RoundsPerLeg()
	if rpl < 1 || round < 1 {
		return 1
	}
	return (round-1)/rpl + 1
}

// EventsForLeg returns the events whose round numbers fall inside the given
// 1-based leg, in generation order.
func (c *SchedulingContext) EventsForLeg(legNumber int) []Event {
	var out []Event
	for _, e := range c.events {
		if c.LegOfRound(e.Round) == legNumber {
			out = append(out, e)
		}
	}
	return out
}

// EventsForParticipant returns the events involving the given participant ID.
func (c *SchedulingContext) EventsForParticipant(id string) []Event {
	var out []Event
	for _, e := range c.events {
		if e.Involves(id) {
			out = append(out, e)
		}
	}
	return out
}

// EventsInRound returns the events of the given global round number.
func (c *SchedulingContext) EventsInRound(round int) []Event {
	var out []Event
	for _, e := range c.events {
		if e.Round == round {
			out = append(out, e)
		}
	}
	return out
}

// HaveMet reports whether participants a and b share at least one recorded
// event. Self-comparison is always false.
func (c *SchedulingContext) HaveMet(a, b string) bool {
	if a == b {
		return false
	}
	for _, e := range c.events {
		if e.Involves(a) && e.Involves(b) {
			return true
		}
	}
	return false
}

// LastMeetingRound returns the most recent round in which a and b met, and
// true; (0, false) when they have not met. Self-comparison never meets.
func (c *SchedulingContext) LastMeetingRound(a, b string) (int, bool) {
	if a == b {
		return 0, false
	}

	var (
		last  int
		found bool
	)
	for _, e := range c.events {
		if e.Involves(a) && e.Involves(b) && e.Round >= last {
			last = e.Round
			found = true
		}
	}

	return last, found
}

// HasEventWith reports whether an event with exactly the given unordered
// participant ID set has been recorded.
func (c *SchedulingContext) HasEventWith(ids []string) bool {
	for _, e := range c.events {
		if sameIDSet(e.ParticipantIDs(), ids) {
			return true
		}
	}
	return false
}

// ExpectedTotalEvents returns the round-robin event total for the full run:
// n(n-1)/2 × totalLegs.
func (c *SchedulingContext) ExpectedTotalEvents() int {
	return RoundRobinEventCount(len(c.participants)) * c.totalLegs
}

// WithEvents returns a new context with the given events appended.
// The receiver is never modified; the new context owns a fresh event slice.
//
// Complexity: O(existing + added) time and space.
func (c *SchedulingContext) WithEvents(events ...Event) *SchedulingContext {
	next := *c
	next.events = make([]Event, 0, len(c.events)+len(events))
	next.events = append(next.events, c.events...)
	next.events = append(next.events, events...)

	return &next
}

// WithNextLeg returns a new context positioned at the next leg.
// The receiver is never modified; events carry over untouched.
func (c *SchedulingContext) WithNextLeg() *SchedulingContext {
	next := *c
	next.currentLeg = c.currentLeg + 1

	return &next
}

// sameIDSet compares two ID slices as unordered sets with multiplicity.
func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[string]int, len(a))
	for _, id := range a {
		counts[id]++
	}
	for _, id := range b {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}

	return true
}
