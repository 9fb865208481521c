package scheduler

import (
	"sort"

	"github.com/brightwell-health/care-scheduler/pkg/core/model"
	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
)

// failedActivity pairs an activity with its current missing-occurrence
// count, used to order the backfill pass.
type failedActivity struct {
	activity model.Activity
	missing  int
}

// runPhase2 is the backfill driver: it retries Phase 1's
// failures against light days only, never displacing already-placed slots.
// A daily occurrence is bound to its own date and is only retried there;
// occurrences of other patterns may land on any light day.
func runPhase2(activities []model.Activity, cfg Config, idx *ResourceIndex, state *State, lookup activityLookup) {
	for _, fa := range sortFailedActivities(state, lookup) {
		// Snapshot the failure records: successful backfills remove entries
		// from state's live failure map as we go.
		records := append([]FailureRecord(nil), state.Failures()[fa.activity.ID]...)
		for _, rec := range records {
			lightDays := computeLightDays(cfg, state)
			if fa.activity.Frequency.Pattern == model.Daily {
				own := cfg.StartDate.AddDays(rec.OccurrenceIndex)
				var kept []timeutil.Date
				for _, d := range lightDays {
					if d.Equal(own) {
						kept = append(kept, d)
					}
				}
				lightDays = kept
			}
			if len(lightDays) == 0 {
				continue
			}

			accepted, _, _ := collectAcceptedCandidates(
				candidatesForDates(fa.activity, lightDays, cfg), fa.activity, cfg, idx, state, lookup)
			if len(accepted) == 0 {
				continue // leave the occurrence failed
			}

			best := accepted[0]
			for _, r := range accepted[1:] {
				if candidateBetter(r, best) {
					best = r
				}
			}
			bookCandidate(state, fa.activity, best.candidate)
			state.ResolveFailure(fa.activity.ID, rec.OccurrenceIndex)
		}
	}
}

// sortFailedActivities orders the activities carrying Phase 1 failures by
// (priority ascending, missing-count descending).
func sortFailedActivities(state *State, lookup activityLookup) []failedActivity {
	var out []failedActivity
	for id, records := range state.Failures() {
		activity, ok := lookup[id]
		if !ok {
			continue
		}
		out = append(out, failedActivity{activity: activity, missing: len(records)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].activity.Priority != out[j].activity.Priority {
			return out[i].activity.Priority < out[j].activity.Priority
		}
		if out[i].missing != out[j].missing {
			return out[i].missing > out[j].missing
		}
		return out[i].activity.ID < out[j].activity.ID
	})
	return out
}

// computeLightDays returns every horizon date whose current booked count is
// strictly below the configured threshold, sorted ascending by count then
// by date. It is recomputed before every occurrence attempt so that a day
// filling up mid-backfill drops out of later consideration.
func computeLightDays(cfg Config, state *State) []timeutil.Date {
	horizon := cfg.HorizonDays()
	light := make([]timeutil.Date, 0, horizon)
	for i := 0; i < horizon; i++ {
		d := cfg.StartDate.AddDays(i)
		if state.CountOnDate(d) < cfg.LightDayThreshold {
			light = append(light, d)
		}
	}
	sort.SliceStable(light, func(i, j int) bool {
		ci, cj := state.CountOnDate(light[i]), state.CountOnDate(light[j])
		if ci != cj {
			return ci < cj
		}
		return light[i].Before(light[j])
	})
	return light
}
