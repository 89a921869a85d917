// Package core - events and constraint violations.
package core

// Event is one scheduled meeting of exactly two resolved participants.
//
// Participant order is meaningful: index 0 is the primary ("home") slot and
// index 1 the secondary ("away") slot. Round is the 1-based global round
// number; 0 means unassigned. Events are immutable once built.
type Event struct {
	// Participants is the ordered pair occupying this event.
	Participants []Participant

	// Round is the 1-based global round number (continuous across legs).
	Round int

	// Metadata stores arbitrary user data attached to the event.
	Metadata Metadata
}

// NewEvent builds an event from an ordered pair and a round number.
// The pair slice is copied; callers may reuse their buffer.
// Returns ErrEventArity unless len(pair) == 2.
func NewEvent(pair []Participant, round int) (Event, error) {
	if len(pair) != 2 {
		return Event{}, ErrEventArity
	}
	ps := make([]Participant, 2)
	copy(ps, pair)

	return Event{Participants: ps, Round: round}, nil
}

// Primary returns the participant in the primary ("home") slot.
// Zero value if the event is malformed.
func (e Event) Primary() Participant {
	if len(e.Participants) == 0 {
		return Participant{}
	}
	return e.Participants[0]
}

// Secondary returns the participant in the secondary ("away") slot.
// Zero value if the event is malformed.
func (e Event) Secondary() Participant {
	if len(e.Participants) < 2 {
		return Participant{}
	}
	return e.Participants[1]
}

// Involves reports whether the participant with the given ID takes part.
func (e Event) Involves(id string) bool {
	for _, p := range e.Participants {
		if p.ID == id {
			return true
		}
	}
	return false
}

// SlotOf returns the 0-based slot index of the participant with the given
// ID, or -1 when the participant is not part of the event.
func (e Event) SlotOf(id string) int {
	for i, p := range e.Participants {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// SameParticipants reports whether e and other involve the same unordered
// participant set (home/away order ignored).
func (e Event) SameParticipants(other Event) bool {
	if len(e.Participants) != len(other.Participants) {
		return false
	}

	var p Participant
	for _, p = range e.Participants {
		if !other.Involves(p.ID) {
			return false
		}
	}

	return true
}

// ParticipantIDs returns the event's participant IDs in slot order.
func (e Event) ParticipantIDs() []string {
	ids := make([]string, len(e.Participants))
	for i, p := range e.Participants {
		ids[i] = p.ID
	}
	return ids
}

// ConstraintViolation records one rejected candidate event: which constraint
// rejected it, why, and who was affected. Violations are collected by the
// scheduler's diagnostics and grouped into remediation reports.
type ConstraintViolation struct {
	// Constraint is the display name of the rejecting constraint.
	Constraint string

	// Event is the rejected candidate.
	Event Event

	// Reason is a human-readable explanation of the rejection.
	Reason string

	// Participants lists the IDs affected by the rejection.
	Participants []string

	// Round is the candidate's global round number (0 when unassigned).
	Round int
}
