// Package leg plans and generates events for tournament legs beyond the
// first.
//
// A leg is one full pass through all pairings; multi-leg tournaments repeat
// the leg-1 pairings with a per-leg transformation. Strategies operate on
// leg-1's resolved pairings (real participants, not raw positions), so they
// can reorder who is primary. Round numbering is continuous: leg L occupies
// global rounds (L-1)·roundsPerLeg+1 .. L·roundsPerLeg.
//
// Reference strategies:
//   - Mirrored — leg 1 unchanged; every later leg reverses every pairing's
//     order (the classic home/away swap of a double round robin).
//   - Repeated — every leg identical to leg 1.
//   - Shuffled — leg 1 unchanged; later legs independently randomize each
//     event's order via an injected *rand.Rand. The engine carries
//     sequential state across calls: results are reproducible only when the
//     caller seeds the engine and replays the identical call sequence.
//
// PlanGeneration is advisory pre-flight only — the scheduler's completeness
// validation remains authoritative. CanSatisfyConstraints performs cheap
// structural rejection (arity ≠ 2, empty roster) and never proves
// satisfiability.
package leg
