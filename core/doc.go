// Package core defines the central data records of the berger scheduling
// library — Participant, Position, Event, Schedule — together with the
// immutable SchedulingContext consumed by constraints, orderers and leg
// strategies.
//
// Design contract (strict):
//   - Records are plain values created by the caller and never mutated by
//     this library; helpers return copies or derived values only.
//   - SchedulingContext is copy-on-write: WithEvents and WithNextLeg return
//     fresh snapshots, so a constraint mid-evaluation always observes a
//     stable history.
//   - No I/O, no logging, no global state; every failure is a sentinel error.
//
// Errors:
//
//	ErrPositionValue       - position value below 1.
//	ErrPositionNeedsRound  - StandingAfterRound built without a round.
//	ErrEventArity          - event constructed with a participant count ≠ 2.
//	ErrEmptyParticipantID  - participant with an empty ID reached a context.
package core
