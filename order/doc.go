// Package order decides which resolved participant occupies the primary
// ("home") slot of an event.
//
// An Orderer is a pure function over a resolved pair and an ordering
// context (round, event index within the round, leg, scheduling history):
// it returns a fresh ordered slice and never mutates its input.
//
// Variants:
//   - Static        — identity; blueprint order is kept as-is.
//   - Alternating   — reverses the pair on odd event indices within a round.
//   - Balanced      — the participant with fewer prior primary-slot
//     appearances in the scheduling history goes first; ties keep order.
//   - SeededRandom  — a deterministic pseudo-random choice derived from a
//     caller seed mixed with (round, eventIndex, leg); reproducible for a
//     fixed seed, varying with every context component.
//
// Determinism policy: randomness only enters through explicit seeds; the
// SplitMix64-style derivation in rng.go guarantees identical decisions for
// identical (seed, round, eventIndex, leg) on every platform.
package order
