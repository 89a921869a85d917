// Package constraint implements the predicate engine that validates
// candidate events against the scheduling history.
//
// A Constraint is a named, pure predicate: IsSatisfied(candidate, context)
// reports whether the candidate may be scheduled. Constraints never panic
// and never error — a false result only marks the candidate rejected;
// escalating rejections into failures is the scheduler's responsibility.
//
// A constraint set is a conjunction: every member must be satisfied.
// Evaluation order affects performance only, never correctness — put the
// most-restrictive constraints first so rejections short-circuit early.
//
// Reference constraints:
//   - NoRepeatPairings        — no unordered pair may meet twice.
//   - MinimumRestPeriods(k)   — at least k rounds between repeat meetings.
//   - SeedProtection(n, f)    — top-n seeds kept apart through the first
//     fraction f of the (estimated) rounds.
//   - ConsecutiveRole(max, x) — caps identical-role runs (home/away, slot).
//   - Metadata(key, v)        — participant-metadata predicates with shipped
//     validators (same, distinct, max-unique, adjacent numeric values).
//   - Custom                  — wraps any named predicate.
//
// Sets are assembled through the fluent builder in set.go:
//
//	cs := constraint.NewSet().
//		NoRepeatPairings().
//		MinimumRestPeriods(2).
//		Build()
package constraint
