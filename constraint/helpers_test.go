package constraint_test

import (
	"testing"

	"github.com/katalvlaran/berger/core"
	"github.com/stretchr/testify/require"
)

// participant builds a participant with an optional seed rank.
func participant(id string, seed int) core.Participant {
	return core.Participant{ID: id, Label: id, Seed: seed}
}

// roster builds an unseeded roster from IDs.
func roster(ids ...string) []core.Participant {
	ps := make([]core.Participant, len(ids))
	for i, id := range ids {
		ps[i] = participant(id, 0)
	}
	return ps
}

// event builds a two-participant event, failing the test on bad arity.
func event(t *testing.T, a, b core.Participant, round int) core.Event {
	t.Helper()
	e, err := core.NewEvent([]core.Participant{a, b}, round)
	require.NoError(t, err)
	return e
}

// eventIDs is event() over bare IDs without seeds or metadata.
func eventIDs(t *testing.T, a, b string, round int) core.Event {
	t.Helper()
	return event(t, participant(a, 0), participant(b, 0), round)
}
