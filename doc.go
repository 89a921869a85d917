// Package berger is your in-memory toolkit for building, validating and
// diagnosing pairwise tournament schedules — from the abstract circle-method
// blueprint down to fully resolved, constraint-checked multi-leg calendars.
//
// 🚀 What is berger?
//
//	A deterministic, dependency-light scheduling library that brings together:
//		• Positional structures: circle-method ("Berger table") round-robin plans
//		• Resolution: map abstract seeds onto a concrete participant roster
//		• Ordering: static, alternating, balanced and seeded-random home/away rules
//		• Constraints: no-repeat pairings, rest periods, seed protection,
//		  consecutive-role limits, metadata predicates, custom rules
//		• Multi-leg strategies: mirrored, repeated and shuffled return legs
//		• Diagnostics: violation collection, grouped failure reports and
//		  constraint-specific remediation suggestions
//
// ✨ Why choose berger?
//
//   - All-or-nothing guarantees — you receive a mathematically complete
//     schedule or a fully diagnosable typed error, never a truncated calendar
//   - Deterministic by construction — randomness only enters through explicit
//     engine handles you control; identical inputs yield identical output
//   - Pure Go — no cgo, no I/O, no global state
//   - Extensible — plug in your own Orderer, Constraint or leg Strategy
//
// Everything is organized under focused subpackages:
//
//	core/       — Participant, Position, Event, Schedule, SchedulingContext
//	circle/     — the abstract positional round-robin generator
//	resolve/    — position → participant resolution (seed-based)
//	order/      — home/away ordering strategies + deterministic RNG helpers
//	constraint/ — the predicate engine and its fluent set builder
//	leg/        — mirrored / repeated / shuffled multi-leg strategies
//	scheduler/  — the orchestrator with fail-fast validation and diagnostics
//
// Quick sketch (4 participants, single leg):
//
//	R1: A─D  B─C
//	R2: A─C  D─B
//	R3: A─B  C─D
//
// six events, three rounds, every pair exactly once.
//
// Dive into each package's doc.go for algorithm outlines, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/berger
package berger
