package scheduler

import (
	"github.com/brightwell-health/care-scheduler/pkg/core/model"
	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
)

// groupingWindowMinutes is the start-to-start neighbourhood the grouping
// bonus considers (pinned to a two-hour neighborhood).
const groupingWindowMinutes = 120

// activityLookup resolves an activity ID to its record, letting the scorer
// inspect the type and location of already-placed slots that belong to
// other activities. The driver builds one map per run and threads it
// through; the scorer carries no state of its own.
type activityLookup map[string]model.Activity

// score implements the additive soft-constraint formula.
// It is only ever called on candidates that already passed validate.
func score(c Candidate, activity model.Activity, state *State, activities activityLookup) int {
	total := 10 // base

	if activity.Window != nil {
		switch {
		case c.Start >= timeutil.NewClock(6, 0) && c.Start < timeutil.NewClock(9, 0):
			total += 30
		case c.Start >= timeutil.NewClock(12, 0) && c.Start < timeutil.NewClock(16, 0):
			total += 20
		case c.Start >= timeutil.NewClock(17, 0) && c.Start < timeutil.NewClock(21, 0):
			total += 10
		}
	}

	total += consistencyBonus(c, activity, state)
	total += groupingBonus(c, activity, state, activities)

	return total
}

// consistencyBonus rewards repeating an activity at the same clock time it
// has already been placed at.
func consistencyBonus(c Candidate, activity model.Activity, state *State) int {
	for _, placed := range state.SlotsForActivity(activity.ID) {
		if placed.Start != c.Start {
			continue
		}
		if activity.Frequency.Pattern == model.Daily {
			return 20
		}
		return 15
	}
	return 0
}

// groupingBonus rewards placing a candidate near (start-to-start, within
// groupingWindowMinutes) another already-placed slot of the same activity
// type, with an extra condition on sharing the location tag.
func groupingBonus(c Candidate, activity model.Activity, state *State, activities activityLookup) int {
	for _, placed := range state.SlotsOnDate(c.Date) {
		other, ok := activities[placed.ActivityID]
		if !ok || other.Type != activity.Type {
			continue
		}
		delta := int(c.Start) - int(placed.Start)
		if delta < 0 {
			delta = -delta
		}
		if delta <= groupingWindowMinutes && other.Location == activity.Location {
			return 15
		}
	}
	return 0
}
