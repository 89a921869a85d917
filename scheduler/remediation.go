// Package scheduler - remediation reporting.
//
// A remediation report turns a pile of violations into actionable advice:
// per rejecting constraint, what configuration change would most likely let
// the run complete. Advice is keyed on the well-known constraint name
// prefixes; unknown constraints receive a generic fallback.
package scheduler

import (
	"fmt"
	"sort"
	"strings"
)

// Suggestion is one per-constraint remediation entry.
type Suggestion struct {
	// Constraint is the rejecting constraint's display name.
	Constraint string

	// Violations is how many rejections that constraint caused.
	Violations int

	// Advice is the suggested configuration change.
	Advice string
}

// RemediationReport groups a failed run's violations into suggestions plus
// the most affected participants and rounds.
type RemediationReport struct {
	// Suggestions holds one entry per rejecting constraint, ordered by
	// descending violation count (ties on constraint name).
	Suggestions []Suggestion

	// MostAffectedParticipants lists the participants most often involved
	// in rejections.
	MostAffectedParticipants []Impact

	// MostAffectedRounds lists the rounds with the most rejections.
	MostAffectedRounds []Impact
}

// reportTopK bounds the most-affected lists; enough to spot a pattern
// without drowning the reader.
const reportTopK = 3

// BuildRemediationReport derives a report from the collector's state.
//
// Complexity: O(violations + constraints log constraints).
func BuildRemediationReport(vc *ViolationCollector) RemediationReport {
	grouped := vc.ByConstraint()

	suggestions := make([]Suggestion, 0, len(grouped))
	for name, vs := range grouped {
		suggestions = append(suggestions, Suggestion{
			Constraint: name,
			Violations: len(vs),
			Advice:     adviceFor(name),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Violations != suggestions[j].Violations {
			return suggestions[i].Violations > suggestions[j].Violations
		}
		return suggestions[i].Constraint < suggestions[j].Constraint
	})

	return RemediationReport{
		Suggestions:              suggestions,
		MostAffectedParticipants: vc.MostAffectedParticipants(reportTopK),
		MostAffectedRounds:       vc.MostAffectedRounds(reportTopK),
	}
}

// adviceFor maps a constraint name onto constraint-specific remediation
// advice, falling back to generic guidance for unrecognized names.
func adviceFor(name string) string {
	switch {
	case strings.HasPrefix(name, "NoRepeatPairings"):
		return "allow repeat pairings, or reduce the leg count so each pair meets only once"
	case strings.HasPrefix(name, "MinimumRestPeriods"):
		return "reduce the rest-period requirement, or spread the run over more legs"
	case strings.HasPrefix(name, "SeedProtection"):
		return "lower the protected fraction or the number of protected seeds"
	case strings.HasPrefix(name, "ConsecutiveRole"):
		return "relax the consecutive-role limit, or switch to a balancing participant orderer"
	case strings.HasPrefix(name, "Metadata"):
		return "relax the metadata rule or regroup the roster so compatible participants can meet"
	default:
		return "review this constraint's configuration and relax it, or remove it and re-run"
	}
}

// String renders the report as a deterministic multi-line summary.
func (r RemediationReport) String() string {
	if len(r.Suggestions) == 0 {
		return "no constraint violations recorded"
	}

	var b strings.Builder
	b.WriteString("remediation suggestions:\n")
	for _, s := range r.Suggestions {
		fmt.Fprintf(&b, "  - %s (%d rejections): %s\n", s.Constraint, s.Violations, s.Advice)
	}

	if len(r.MostAffectedParticipants) > 0 {
		b.WriteString("most affected participants:")
		for _, im := range r.MostAffectedParticipants {
			fmt.Fprintf(&b, " %s(%d)", im.Key, im.Count)
		}
		b.WriteString("\n")
	}
	if len(r.MostAffectedRounds) > 0 {
		b.WriteString("most affected rounds:")
		for _, im := range r.MostAffectedRounds {
			fmt.Fprintf(&b, " %s(%d)", im.Key, im.Count)
		}
		b.WriteString("\n")
	}

	return b.String()
}
