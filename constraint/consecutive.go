package constraint

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/berger/core"
)

// RoleExtractor derives a participant's role label from an event.
//
// Label names the role dimension for diagnostics ("home/away", "position");
// Extract returns the participant's role in the given event. Extractors must
// be pure.
type RoleExtractor struct {
	// Label names the role dimension.
	Label string

	// Extract returns the role of the participant with the given ID.
	Extract func(e core.Event, id string) string
}

// HomeAwayRole labels the primary slot "home" and every other slot "away".
func HomeAwayRole() RoleExtractor {
	return RoleExtractor{
		Label: "home/away",
		Extract: func(e core.Event, id string) string {
			if e.SlotOf(id) == 0 {
				return "home"
			}
			return "away"
		},
	}
}

// SlotIndexRole labels each participant with its literal slot index.
func SlotIndexRole() RoleExtractor {
	return RoleExtractor{
		Label: "position",
		Extract: func(e core.Event, id string) string {
			return strconv.Itoa(e.SlotOf(id))
		},
	}
}

// ConsecutiveRoleLimit caps runs of identical roles in each participant's
// chronological event sequence, candidate included: a candidate is rejected
// when accepting it would give any of its participants more than maxRun
// identical roles in a row.
type ConsecutiveRoleLimit struct {
	maxRun    int
	extractor RoleExtractor
}

// ConsecutiveRole returns the role-run constraint.
// maxRun < 1 clamps to 1 (no two identical roles in a row).
func ConsecutiveRole(maxRun int, extractor RoleExtractor) ConsecutiveRoleLimit {
	if maxRun < 1 {
		maxRun = 1
	}
	return ConsecutiveRoleLimit{maxRun: maxRun, extractor: extractor}
}

// Name implements Constraint.
func (c ConsecutiveRoleLimit) Name() string {
	return fmt.Sprintf("ConsecutiveRole(%s, max=%d)", c.extractor.Label, c.maxRun)
}

// IsSatisfied rejects the candidate when any of its participants would
// exceed maxRun identical roles in a row.
//
// Complexity: O(participants × events log events).
func (c ConsecutiveRoleLimit) IsSatisfied(e core.Event, ctx *core.SchedulingContext) bool {
	if c.extractor.Extract == nil {
		return true
	}

	for _, p := range e.Participants {
		if c.longestRun(c.roleSequence(p.ID, e, ctx)) > c.maxRun {
			return false
		}
	}

	return true
}

// roleSequence builds the participant's chronological role labels: all
// recorded events involving them, sorted by round (stable on generation
// order), with the candidate's role appended.
func (c ConsecutiveRoleLimit) roleSequence(id string, candidate core.Event, ctx *core.SchedulingContext) []string {
	var history []core.Event
	if ctx != nil {
		history = ctx.EventsForParticipant(id)
	}

	ordered := make([]core.Event, len(history))
	copy(ordered, history)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Round < ordered[j].Round })

	roles := make([]string, 0, len(ordered)+1)
	for _, ev := range ordered {
		roles = append(roles, c.extractor.Extract(ev, id))
	}
	roles = append(roles, c.extractor.Extract(candidate, id))

	return roles
}

// longestRun returns the length of the longest run of identical labels.
func (c ConsecutiveRoleLimit) longestRun(roles []string) int {
	var (
		best, run int
		prev      string
	)
	for i, role := range roles {
		if i == 0 || role != prev {
			run = 1
		} else {
			run++
		}
		if run > best {
			best = run
		}
		prev = role
	}

	return best
}
