// Package scheduler composes the berger pipeline — structure generation,
// position resolution, participant ordering, constraint validation and
// multi-leg generation — into a single fail-fast Schedule operation.
//
// Pipeline, per call:
//  1. Validate the configuration (roster size, unique IDs, arity, legs);
//     any failure aborts with ErrConfiguration before any work is done.
//  2. Run the leg strategy's structural pre-flight; a provably impossible
//     configuration aborts with ErrImpossibleConstraints.
//  3. Generate leg 1: circle-method blueprint → seed resolution → ordering
//     → constraint validation per candidate, in round order then
//     pairing-index order. Rejected candidates are recorded, never retried
//     with alternate partners — there is no backtracking, by design.
//  4. Abort with *IncompleteScheduleError (full diagnostics and a
//     remediation report) whenever a leg produces fewer events than the
//     mathematically required total. A truncated schedule is never returned.
//  5. Generate legs 2..N through the leg strategy, validating every
//     candidate against the complete cross-leg history.
//  6. On full success, assemble the Schedule with its metadata and a fresh
//     schedule ID. Success is all-or-nothing across the whole tournament.
//
// Determinism: for a fixed (roster, constraints, orderer, strategy,
// random-engine state) the event sequence is fully deterministic. The only
// cross-call state a Scheduler may hold is the random engine injected via
// WithRand, which advances with use; see ShuffledRoster.
//
// Complexity: O(legs × rounds × pairs-per-round × constraints); hundreds of
// events complete well under a second.
package scheduler
