// Package core - the assembled schedule record.
package core

// Metadata keys stamped into a Schedule by the orchestrator on success.
// Values are plain ints/strings so callers can read them without casts
// beyond the interface{} assertion.
const (
	// MetaAlgorithm names the generation algorithm ("circle").
	MetaAlgorithm = "algorithm"

	// MetaParticipants is the roster size (int).
	MetaParticipants = "participants"

	// MetaLegs is the number of legs generated (int).
	MetaLegs = "legs"

	// MetaRoundsPerLeg is the round count of a single leg (int).
	MetaRoundsPerLeg = "rounds_per_leg"

	// MetaTotalRounds is legs × rounds-per-leg (int).
	MetaTotalRounds = "total_rounds"

	// MetaScheduleID is the unique identity of this assembly (string, UUID).
	MetaScheduleID = "schedule_id"
)

// Schedule is the complete result of one successful scheduling run: every
// event of every leg, in increasing round order, with assembly metadata.
//
// A Schedule is only ever returned fully complete; a run that cannot produce
// the mathematically required event count fails with a typed error instead.
type Schedule struct {
	// Events holds all events in generation order
	// (round-major, pairing-index order within a round).
	Events []Event

	// Metadata carries the assembly facts (see Meta* keys).
	Metadata Metadata
}

// EventCount returns the total number of events.
func (s Schedule) EventCount() int { return len(s.Events) }

// EventsInRound returns the events of the given global round, in order.
func (s Schedule) EventsInRound(round int) []Event {
	var out []Event
	for _, e := range s.Events {
		if e.Round == round {
			out = append(out, e)
		}
	}
	return out
}

// RoundCount returns the highest round number present, 0 when empty.
func (s Schedule) RoundCount() int {
	var maxRound int
	for _, e := range s.Events {
		if e.Round > maxRound {
			maxRound = e.Round
		}
	}
	return maxRound
}

// EventsFor returns the events involving the participant with the given ID.
func (s Schedule) EventsFor(id string) []Event {
	var out []Event
	for _, e := range s.Events {
		if e.Involves(id) {
			out = append(out, e)
		}
	}
	return out
}

// RoundRobinEventCount is the closed-form event total of a single-leg
// round robin over n participants: n(n-1)/2. Negative n yields 0.
func RoundRobinEventCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}
