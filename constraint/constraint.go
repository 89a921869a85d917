package constraint

import "github.com/katalvlaran/berger/core"

// Constraint is a named predicate over a candidate event and the scheduling
// history it would join.
//
// Implementations must be pure and total: no side effects, no panics, no
// errors — unsatisfiable input is simply "not satisfied".
type Constraint interface {
	// Name returns a stable display name used in violations and reports.
	Name() string

	// IsSatisfied reports whether the candidate may be scheduled given the
	// history snapshot. A nil context is treated as empty history.
	IsSatisfied(e core.Event, ctx *core.SchedulingContext) bool
}

// Predicate is the function form of a constraint body.
type Predicate func(e core.Event, ctx *core.SchedulingContext) bool

// Custom wraps an arbitrary named predicate as a Constraint.
type Custom struct {
	name string
	fn   Predicate
}

// NewCustom builds a constraint from a display name and a predicate.
// A nil predicate is satisfied by everything (vacuous constraint).
func NewCustom(name string, fn Predicate) Custom {
	return Custom{name: name, fn: fn}
}

// Name implements Constraint.
func (c Custom) Name() string { return c.name }

// IsSatisfied implements Constraint by delegating to the wrapped predicate.
func (c Custom) IsSatisfied(e core.Event, ctx *core.SchedulingContext) bool {
	if c.fn == nil {
		return true
	}
	return c.fn(e, ctx)
}

// FirstUnsatisfied evaluates the conjunction over cs in order and returns
// the first failing constraint, or (nil, true) when every member passes.
// Nil entries are skipped.
//
// Complexity: O(len(cs)) × per-constraint cost; short-circuits on failure.
func FirstUnsatisfied(cs []Constraint, e core.Event, ctx *core.SchedulingContext) (Constraint, bool) {
	for _, c := range cs {
		if c == nil {
			continue
		}
		if !c.IsSatisfied(e, ctx) {
			return c, false
		}
	}
	return nil, true
}
