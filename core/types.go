// Package core - central records and sentinel errors.
//
// This file declares Participant, the shared metadata map alias, and the
// sentinel errors used across the core package.
package core

import "errors"

// Sentinel errors for core record construction and context building.
var (
	// ErrPositionValue indicates a position value below 1.
	ErrPositionValue = errors.New("core: position value must be >= 1")

	// ErrPositionNeedsRound indicates StandingAfterRound without a round number.
	ErrPositionNeedsRound = errors.New("core: standing-after-round position requires a round")

	// ErrEventArity indicates an event whose participant count is not exactly 2.
	ErrEventArity = errors.New("core: event requires exactly 2 participants")

	// ErrEmptyParticipantID indicates a participant with an empty ID.
	ErrEmptyParticipantID = errors.New("core: participant ID is empty")
)

// Metadata stores arbitrary caller-supplied key-value data. It is shared,
// not deep-copied, when records are cloned; treat values as read-only.
type Metadata map[string]interface{}

// Participant represents one competitor in a tournament.
//
// ID uniquely identifies the participant within a scheduling run.
// Seed is a 1-based rank; 0 means unseeded. Participants are created by the
// caller and never mutated by this library.
type Participant struct {
	// ID is the unique identifier for this participant.
	ID string

	// Label is a human-readable display name.
	Label string

	// Seed is the 1-based seeding rank; 0 means unseeded.
	Seed int

	// Metadata stores arbitrary user data (club, region, group, ...).
	Metadata Metadata
}

// Seeded reports whether the participant carries a seeding rank.
func (p Participant) Seeded() bool { return p.Seed >= 1 }

// DuplicateParticipantID scans roster for the first duplicated or empty ID.
// It returns the offending ID and true, or ("", false) when all IDs are
// unique and non-empty.
//
// Complexity: O(n) time, O(n) space.
func DuplicateParticipantID(roster []Participant) (string, bool) {
	seen := make(map[string]struct{}, len(roster))

	var p Participant
	for _, p = range roster {
		if p.ID == "" {
			return "", true
		}
		if _, ok := seen[p.ID]; ok {
			return p.ID, true
		}
		seen[p.ID] = struct{}{}
	}

	return "", false
}
