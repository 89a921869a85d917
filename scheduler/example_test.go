// Package scheduler_test provides runnable, deterministic examples for the
// end-to-end Schedule pipeline. Every example uses the default static
// ordering so the printed rounds are identical on every run.
//
// Contents:
//  1. ExampleScheduler_Schedule            (single leg, four participants)
//  2. ExampleScheduler_Schedule_mirrored   (two legs, odd roster with a bye)
//  3. ExampleScheduler_Schedule_incomplete (all-or-nothing failure surface)
package scheduler_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/berger/constraint"
	"github.com/katalvlaran/berger/core"
	"github.com/katalvlaran/berger/scheduler"
)

// printRounds renders a schedule round by round in event order.
func printRounds(s core.Schedule) {
	for r := 1; r <= s.RoundCount(); r++ {
		fmt.Printf("Round %d:", r)
		for _, e := range s.EventsInRound(r) {
			fmt.Printf(" %s-%s", e.Primary().ID, e.Secondary().ID)
		}
		fmt.Println()
	}
}

// ExampleScheduler_Schedule generates a complete single round robin for four
// participants: three rounds, every pair exactly once.
func ExampleScheduler_Schedule() {
	roster := []core.Participant{
		{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"},
	}

	s, err := scheduler.New().Schedule(roster, scheduler.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("events:", s.EventCount())
	printRounds(s)
	// Output:
	// events: 6
	// Round 1: A-D B-C
	// Round 2: A-C D-B
	// Round 3: A-B C-D
}

// ExampleScheduler_Schedule_mirrored runs a double round robin over an odd
// roster: each round one participant sits out, and the second leg replays
// the first with the pair order reversed.
func ExampleScheduler_Schedule_mirrored() {
	roster := []core.Participant{
		{ID: "A"}, {ID: "B"}, {ID: "C"},
	}

	opts := scheduler.DefaultOptions()
	opts.Legs = 2

	s, err := scheduler.New().Schedule(roster, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	printRounds(s)
	// Output:
	// Round 1: B-C
	// Round 2: A-C
	// Round 3: A-B
	// Round 4: C-B
	// Round 5: C-A
	// Round 6: B-A
}

// ExampleScheduler_Schedule_incomplete shows the fail-fast contract: when a
// constraint makes completion impossible, no partial schedule is returned
// and the error carries the shortfall plus remediation diagnostics.
func ExampleScheduler_Schedule_incomplete() {
	roster := []core.Participant{
		{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"},
	}

	opts := scheduler.DefaultOptions()
	opts.Legs = 2

	// Repeats are inherent to a second leg, so this run cannot complete.
	sch := scheduler.New(scheduler.WithConstraints(constraint.NoRepeatPairings()))
	_, err := sch.Schedule(roster, opts)

	var inc *scheduler.IncompleteScheduleError
	if errors.As(err, &inc) {
		fmt.Println(inc)
		fmt.Println("top advice:", inc.Report.Suggestions[0].Advice)
	}
	// Output:
	// scheduler: incomplete schedule: leg 2 produced 0 of 6 required events (6 violations)
	// top advice: allow repeat pairings, or reduce the leg count so each pair meets only once
}
