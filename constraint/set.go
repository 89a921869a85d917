// Package constraint - fluent constraint-set assembly.
//
// Design contract (strict):
//   - One builder: NewSet() collects constraints in call order and Build()
//     returns the finished slice; the builder is single-use glue, not state.
//   - Determinism: Build() preserves insertion order exactly — callers
//     control evaluation order (most-restrictive first is the performant
//     choice; correctness never depends on it).
//   - Safety: Add ignores nil constraints; no panics.
package constraint

// SetBuilder assembles a constraint slice fluently. The zero value is not
// usable; construct via NewSet.
type SetBuilder struct {
	cs []Constraint
}

// NewSet starts a fresh constraint-set builder.
func NewSet() *SetBuilder {
	return &SetBuilder{}
}

// Add appends an arbitrary constraint. Nil is ignored.
func (b *SetBuilder) Add(c Constraint) *SetBuilder {
	if c != nil {
		b.cs = append(b.cs, c)
	}
	return b
}

// NoRepeatPairings appends the no-repeat-pairings constraint.
func (b *SetBuilder) NoRepeatPairings() *SetBuilder {
	return b.Add(NoRepeatPairings())
}

// MinimumRestPeriods appends a rest-period constraint of k rounds.
func (b *SetBuilder) MinimumRestPeriods(k int) *SetBuilder {
	return b.Add(MinimumRestPeriods(k))
}

// SeedProtection appends a seed-protection constraint.
func (b *SetBuilder) SeedProtection(topN int, fraction float64) *SetBuilder {
	return b.Add(SeedProtection(topN, fraction))
}

// ConsecutiveRole appends a role-run constraint.
func (b *SetBuilder) ConsecutiveRole(maxRun int, extractor RoleExtractor) *SetBuilder {
	return b.Add(ConsecutiveRole(maxRun, extractor))
}

// Metadata appends a metadata constraint.
func (b *SetBuilder) Metadata(key string, validator ValuesValidator) *SetBuilder {
	return b.Add(Metadata(key, validator))
}

// Custom appends a named predicate constraint.
func (b *SetBuilder) Custom(name string, fn Predicate) *SetBuilder {
	return b.Add(NewCustom(name, fn))
}

// Build returns the assembled constraints in insertion order.
// The returned slice is fresh; the builder may be discarded afterwards.
func (b *SetBuilder) Build() []Constraint {
	out := make([]Constraint, len(b.cs))
	copy(out, b.cs)
	return out
}
