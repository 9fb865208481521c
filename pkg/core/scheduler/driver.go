package scheduler

import "github.com/brightwell-health/care-scheduler/pkg/core/model"

// Result is the scheduler's complete output for a run: every slot actually
// booked, in the order the two phases produced them, plus the failure map
// keyed by activity ID. Placement failure is never an error; this
// is the only outcome type Run produces.
type Result struct {
	Slots    []model.BookedSlot
	Failures map[string][]FailureRecord
}

// Run executes the full two-phase scheduling core over a validated input
// set. Callers must run model.Validate first; Run assumes its inputs are
// already well-formed and never itself returns an error.
func Run(activities []model.Activity, specialists []model.Specialist, equipment []model.Equipment, travel []model.TravelPeriod, cfg Config) *Result {
	cfg = cfg.withDefaults()

	idx := NewResourceIndex(specialists, equipment, travel)
	state := NewState()
	lookup := buildActivityLookup(activities)

	runPhase1(activities, cfg, idx, state, lookup)
	runPhase2(activities, cfg, idx, state, lookup)

	return &Result{
		Slots:    state.Slots,
		Failures: state.Failures(),
	}
}
