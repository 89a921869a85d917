package scheduler_test

import (
	"testing"

	"github.com/katalvlaran/berger/constraint"
	"github.com/katalvlaran/berger/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildRemediationReport_PerConstraintAdvice verifies one suggestion per
// rejecting constraint, ordered by descending violation count, each carrying
// constraint-specific advice.
func TestBuildRemediationReport_PerConstraintAdvice(t *testing.T) {
	vc := scheduler.NewViolationCollector()
	rest := constraint.MinimumRestPeriods(3)

	rejection(t, vc, rest, "A", "B", 4)
	rejection(t, vc, rest, "A", "C", 5)
	rejection(t, vc, constraint.NoRepeatPairings(), "B", "C", 5)

	report := scheduler.BuildRemediationReport(vc)
	require.Len(t, report.Suggestions, 2)

	assert.Equal(t, rest.Name(), report.Suggestions[0].Constraint, "heaviest offender first")
	assert.Equal(t, 2, report.Suggestions[0].Violations)
	assert.Contains(t, report.Suggestions[0].Advice, "rest-period")

	assert.Equal(t, "NoRepeatPairings", report.Suggestions[1].Constraint)
	assert.Contains(t, report.Suggestions[1].Advice, "repeat pairings")

	require.NotEmpty(t, report.MostAffectedParticipants)
	assert.Equal(t, "A", report.MostAffectedParticipants[0].Key)
}

// TestBuildRemediationReport_GenericFallback verifies unknown constraint
// names still receive actionable advice.
func TestBuildRemediationReport_GenericFallback(t *testing.T) {
	vc := scheduler.NewViolationCollector()
	rejection(t, vc, constraint.NewCustom("VenueCapacity", nil), "A", "B", 1)

	report := scheduler.BuildRemediationReport(vc)
	require.Len(t, report.Suggestions, 1)
	assert.Equal(t, "VenueCapacity", report.Suggestions[0].Constraint)
	assert.Contains(t, report.Suggestions[0].Advice, "relax it, or remove it")
}

// TestRemediationReport_String verifies the rendered summary is stable and
// mentions every section.
func TestRemediationReport_String(t *testing.T) {
	vc := scheduler.NewViolationCollector()
	rejection(t, vc, constraint.NoRepeatPairings(), "A", "B", 2)

	report := scheduler.BuildRemediationReport(vc)
	text := report.String()

	assert.Contains(t, text, "remediation suggestions:")
	assert.Contains(t, text, "NoRepeatPairings (1 rejections)")
	assert.Contains(t, text, "most affected participants: A(1) B(1)")
	assert.Contains(t, text, "most affected rounds: round 2(1)")

	assert.Equal(t, text, report.String(), "rendering is deterministic")
}

// TestRemediationReport_StringEmpty covers the no-violations rendering.
func TestRemediationReport_StringEmpty(t *testing.T) {
	report := scheduler.BuildRemediationReport(scheduler.NewViolationCollector())
	assert.Equal(t, "no constraint violations recorded", report.String())
}
