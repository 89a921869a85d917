package scheduler

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/berger/core"
	"github.com/katalvlaran/berger/leg"
)

// Sentinel errors of the scheduling taxonomy. Branch with errors.Is; the
// incomplete case additionally carries diagnostics via *IncompleteScheduleError.
var (
	// ErrConfiguration indicates invalid inputs: roster too small, duplicate
	// or empty IDs, unsupported arity, non-positive legs. No generation work
	// is performed; the caller must fix the inputs.
	ErrConfiguration = errors.New("scheduler: invalid configuration")

	// ErrIncompleteSchedule indicates generation produced fewer events than
	// the mathematically required total. Recover by relaxing constraints,
	// changing the roster or leg count, and re-invoking the whole operation.
	ErrIncompleteSchedule = errors.New("scheduler: incomplete schedule")

	// ErrImpossibleConstraints indicates pre-flight detection of a provably
	// unsatisfiable configuration. Detection is best-effort: absence of this
	// error is no guarantee of success.
	ErrImpossibleConstraints = errors.New("scheduler: constraints cannot be satisfied")

	// ErrUnsupportedOperation indicates a capability the selected algorithm
	// variant cannot provide.
	ErrUnsupportedOperation = errors.New("scheduler: unsupported operation")
)

// Algorithm selects the pairing algorithm family.
type Algorithm int

const (
	// AlgorithmCircle is the circle-method round robin — the only algorithm
	// implemented by this core.
	AlgorithmCircle Algorithm = iota

	// AlgorithmSwiss is reserved; selecting it yields ErrUnsupportedOperation.
	AlgorithmSwiss

	// AlgorithmPool is reserved; selecting it yields ErrUnsupportedOperation.
	AlgorithmPool
)

// String returns a stable lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmCircle:
		return "circle"
	case AlgorithmSwiss:
		return "swiss"
	case AlgorithmPool:
		return "pool"
	default:
		return "unknown"
	}
}

// ExpectedEventsFunc computes the event total a complete run must reach for
// n participants over the given legs. Completeness validation is pluggable
// so future algorithms can reuse the machinery with their own formula.
type ExpectedEventsFunc func(participants, legs int) int

// RoundRobinExpectedEvents is the circle-method formula: n(n-1)/2 × legs.
func RoundRobinExpectedEvents(participants, legs int) int {
	return core.RoundRobinEventCount(participants) * legs
}

// Options configures one Schedule call.
//
// Zero values are not usable; start from DefaultOptions and override.
type Options struct {
	// Arity is the per-event participant count. Only 2 is supported.
	Arity int

	// Legs is the number of full passes through all pairings (≥ 1).
	Legs int

	// Strategy plans and generates legs beyond the first; nil falls back
	// to the mirrored strategy.
	Strategy leg.Strategy

	// Algorithm selects the pairing algorithm family.
	Algorithm Algorithm
}

// DefaultOptions returns the canonical configuration: arity 2, a single
// leg, the mirrored strategy and the circle algorithm.
func DefaultOptions() Options {
	return Options{
		Arity:     2,
		Legs:      1,
		Strategy:  leg.NewMirrored(),
		Algorithm: AlgorithmCircle,
	}
}

// IncompleteScheduleError carries the full failure diagnosis of a shortfall:
// which leg fell short, by how much, every recorded violation, and a
// remediation report. Unwrap yields ErrIncompleteSchedule.
type IncompleteScheduleError struct {
	// Leg is the 1-based leg that fell short.
	Leg int

	// ExpectedEvents is the event total the leg had to reach.
	ExpectedEvents int

	// ActualEvents is the event count the leg actually produced.
	ActualEvents int

	// Violations holds every rejection recorded up to the abort.
	Violations []core.ConstraintViolation

	// Report groups the violations and suggests remediations.
	Report RemediationReport
}

// Error implements error.
func (e *IncompleteScheduleError) Error() string {
	return fmt.Sprintf("scheduler: incomplete schedule: leg %d produced %d of %d required events (%d violations)",
		e.Leg, e.ActualEvents, e.ExpectedEvents, len(e.Violations))
}

// Unwrap lets errors.Is match ErrIncompleteSchedule.
func (e *IncompleteScheduleError) Unwrap() error { return ErrIncompleteSchedule }
