// Package scheduler - violation collection and grouping.
//
// The collector is append-only bookkeeping: every rejected candidate is
// recorded as a ConstraintViolation, and the grouping queries are pure reads
// consumed by the remediation report and by callers inspecting a failure.
package scheduler

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/berger/constraint"
	"github.com/katalvlaran/berger/core"
)

// ViolationCollector accumulates constraint violations during one
// scheduling run. The zero value is ready for use.
type ViolationCollector struct {
	violations []core.ConstraintViolation
}

// NewViolationCollector returns an empty collector.
func NewViolationCollector() *ViolationCollector {
	return &ViolationCollector{}
}

// Add records one violation verbatim.
func (vc *ViolationCollector) Add(v core.ConstraintViolation) {
	vc.violations = append(vc.violations, v)
}

// AddRejection records the rejection of a candidate by a constraint,
// deriving the violation fields from the pair.
func (vc *ViolationCollector) AddRejection(c constraint.Constraint, e core.Event) {
	vc.Add(core.ConstraintViolation{
		Constraint:   c.Name(),
		Event:        e,
		Reason:       fmt.Sprintf("candidate rejected by %s", c.Name()),
		Participants: e.ParticipantIDs(),
		Round:        e.Round,
	})
}

// Count returns the number of recorded violations.
func (vc *ViolationCollector) Count() int { return len(vc.violations) }

// Violations returns a copy of all recorded violations in insertion order.
func (vc *ViolationCollector) Violations() []core.ConstraintViolation {
	out := make([]core.ConstraintViolation, len(vc.violations))
	copy(out, vc.violations)
	return out
}

// ByConstraint groups the violations by constraint name.
func (vc *ViolationCollector) ByConstraint() map[string][]core.ConstraintViolation {
	out := make(map[string][]core.ConstraintViolation)
	for _, v := range vc.violations {
		out[v.Constraint] = append(out[v.Constraint], v)
	}
	return out
}

// ByParticipant groups the violations by affected participant ID.
func (vc *ViolationCollector) ByParticipant() map[string][]core.ConstraintViolation {
	out := make(map[string][]core.ConstraintViolation)
	for _, v := range vc.violations {
		for _, id := range v.Participants {
			out[id] = append(out[id], v)
		}
	}
	return out
}

// Impact is one "how often was X involved in a rejection" tally.
type Impact struct {
	// Key is the participant ID or the round number rendered as text.
	Key string

	// Count is the number of violations X was involved in.
	Count int
}

// MostAffectedParticipants returns up to k participants ordered by
// descending violation involvement; ties break on ascending ID so the
// result is deterministic.
func (vc *ViolationCollector) MostAffectedParticipants(k int) []Impact {
	counts := make(map[string]int)
	for _, v := range vc.violations {
		for _, id := range v.Participants {
			counts[id]++
		}
	}
	return topImpacts(counts, k)
}

// MostAffectedRounds returns up to k rounds ordered by descending violation
// count; ties break on ascending round number.
func (vc *ViolationCollector) MostAffectedRounds(k int) []Impact {
	counts := make(map[int]int)
	for _, v := range vc.violations {
		counts[v.Round]++
	}

	rounds := make([]int, 0, len(counts))
	for r := range counts {
		rounds = append(rounds, r)
	}
	sort.Slice(rounds, func(i, j int) bool {
		if counts[rounds[i]] != counts[rounds[j]] {
			return counts[rounds[i]] > counts[rounds[j]]
		}
		return rounds[i] < rounds[j]
	})

	if k >= 0 && len(rounds) > k {
		rounds = rounds[:k]
	}

	out := make([]Impact, len(rounds))
	for i, r := range rounds {
		out[i] = Impact{Key: fmt.Sprintf("round %d", r), Count: counts[r]}
	}
	return out
}

// topImpacts flattens a count map into a sorted, truncated Impact list.
func topImpacts(counts map[string]int, k int) []Impact {
	out := make([]Impact, 0, len(counts))
	for key, c := range counts {
		out = append(out, Impact{Key: key, Count: c})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})

	if k >= 0 && len(out) > k {
		out = out[:k]
	}

	return out
}
