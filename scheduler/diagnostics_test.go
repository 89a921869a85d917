package scheduler_test

import (
	"testing"

	"github.com/katalvlaran/berger/constraint"
	"github.com/katalvlaran/berger/core"
	"github.com/katalvlaran/berger/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rejection builds one recorded rejection of pair (a,b) at round r by c.
func rejection(t *testing.T, vc *scheduler.ViolationCollector, c constraint.Constraint, a, b string, r int) {
	t.Helper()
	e, err := core.NewEvent([]core.Participant{{ID: a}, {ID: b}}, r)
	require.NoError(t, err)
	vc.AddRejection(c, e)
}

// TestViolationCollector_Grouping verifies the constraint and participant
// groupings over a mixed set of rejections.
func TestViolationCollector_Grouping(t *testing.T) {
	vc := scheduler.NewViolationCollector()
	noRepeat := constraint.NoRepeatPairings()
	rest := constraint.MinimumRestPeriods(2)

	rejection(t, vc, noRepeat, "A", "B", 1)
	rejection(t, vc, noRepeat, "A", "C", 2)
	rejection(t, vc, rest, "B", "C", 2)

	require.Equal(t, 3, vc.Count())

	byConstraint := vc.ByConstraint()
	assert.Len(t, byConstraint["NoRepeatPairings"], 2)
	assert.Len(t, byConstraint[rest.Name()], 1)

	byParticipant := vc.ByParticipant()
	assert.Len(t, byParticipant["A"], 2)
	assert.Len(t, byParticipant["B"], 2)
	assert.Len(t, byParticipant["C"], 2)
}

// TestViolationCollector_ViolationsCopy verifies the read surface returns
// an insertion-ordered copy, not the internal slice.
func TestViolationCollector_ViolationsCopy(t *testing.T) {
	vc := scheduler.NewViolationCollector()
	rejection(t, vc, constraint.NoRepeatPairings(), "A", "B", 1)
	rejection(t, vc, constraint.NoRepeatPairings(), "C", "D", 3)

	got := vc.Violations()
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Round)
	assert.Equal(t, 3, got[1].Round)

	got[0].Constraint = "tampered"
	assert.Equal(t, "NoRepeatPairings", vc.Violations()[0].Constraint)
}

// TestViolationCollector_MostAffected verifies the impact rankings:
// descending count, deterministic tie-break on key.
func TestViolationCollector_MostAffected(t *testing.T) {
	vc := scheduler.NewViolationCollector()
	c := constraint.NoRepeatPairings()

	rejection(t, vc, c, "A", "B", 1)
	rejection(t, vc, c, "A", "C", 1)
	rejection(t, vc, c, "A", "D", 2)
	rejection(t, vc, c, "B", "C", 2)

	participants := vc.MostAffectedParticipants(2)
	require.Len(t, participants, 2)
	assert.Equal(t, scheduler.Impact{Key: "A", Count: 3}, participants[0])
	assert.Equal(t, scheduler.Impact{Key: "B", Count: 2}, participants[1], "B before C on the tie")

	rounds := vc.MostAffectedRounds(5)
	require.Len(t, rounds, 2)
	assert.Equal(t, 2, rounds[0].Count)
	assert.Equal(t, "round 1", rounds[0].Key, "equal counts break on ascending key")
}

// TestViolationCollector_RoundTiesBreakNumerically verifies equal-count
// rounds rank in round order even past single digits.
func TestViolationCollector_RoundTiesBreakNumerically(t *testing.T) {
	vc := scheduler.NewViolationCollector()
	c := constraint.NoRepeatPairings()

	rejection(t, vc, c, "A", "B", 10)
	rejection(t, vc, c, "C", "D", 2)

	rounds := vc.MostAffectedRounds(5)
	require.Len(t, rounds, 2)
	assert.Equal(t, scheduler.Impact{Key: "round 2", Count: 1}, rounds[0])
	assert.Equal(t, scheduler.Impact{Key: "round 10", Count: 1}, rounds[1])
}

// TestViolationCollector_Empty verifies the zero-activity reads.
func TestViolationCollector_Empty(t *testing.T) {
	vc := scheduler.NewViolationCollector()

	assert.Zero(t, vc.Count())
	assert.Empty(t, vc.Violations())
	assert.Empty(t, vc.ByConstraint())
	assert.Empty(t, vc.MostAffectedParticipants(3))
	assert.Empty(t, vc.MostAffectedRounds(3))
}
