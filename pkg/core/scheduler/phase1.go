package scheduler

import (
	"iter"
	"sort"
	"sync"

	"github.com/brightwell-health/care-scheduler/pkg/core/model"
)

// maxValidationWorkers bounds the goroutines used to validate and score a
// single occurrence's candidate list. This is the only place the driver
// permits concurrency: candidates within one occurrence share no
// mutable state with each other, and the booking state they read is not
// mutated again until the occurrence's winner, if any, is selected.
const maxValidationWorkers = 8

// scoredCandidate is the outcome of running validate and, if accepted,
// score over a single candidate.
type scoredCandidate struct {
	candidate Candidate
	accepted  bool
	reason    FailureReason
	detail    string
	score     int
}

// buildActivityLookup indexes activities by ID for the scorer's grouping
// bonus, which needs to know the type and location of other activities
// already placed on the same date.
func buildActivityLookup(activities []model.Activity) activityLookup {
	lookup := make(activityLookup, len(activities))
	for _, a := range activities {
		lookup[a.ID] = a
	}
	return lookup
}

// runPhase1 is the priority-ordered greedy driver.
func runPhase1(activities []model.Activity, cfg Config, idx *ResourceIndex, state *State, lookup activityLookup) {
	for _, activity := range sortForPhase1(activities) {
		required := requiredOccurrences(activity, cfg)
		for k := 0; k < required; k++ {
			placeOccurrence(activity, k, cfg, idx, state, lookup)
		}
	}
}

// sortForPhase1 orders activities by (priority ascending, frequency-pattern
// rank ascending, stable identity).
func sortForPhase1(activities []model.Activity) []model.Activity {
	ordered := make([]model.Activity, len(activities))
	copy(ordered, activities)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		if ri, rj := frequencyRank(ordered[i].Frequency.Pattern), frequencyRank(ordered[j].Frequency.Pattern); ri != rj {
			return ri < rj
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}

func frequencyRank(p model.FrequencyPattern) int {
	switch p {
	case model.Daily:
		return 0
	case model.Weekly:
		return 1
	case model.Monthly:
		return 2
	case model.Custom:
		return 3
	default:
		return 4
	}
}

// placeOccurrence runs the generator for occurrence k of activity A,
// collects the first CandidateCap validator-accepted candidates, scores
// them, books the best, and records a failure if none were accepted.
func placeOccurrence(activity model.Activity, k int, cfg Config, idx *ResourceIndex, state *State, lookup activityLookup) {
	accepted, lastReason, lastDetail := collectAcceptedCandidates(
		candidatesForOccurrence(activity, k, cfg, state), activity, cfg, idx, state, lookup)

	if len(accepted) == 0 {
		state.RecordFailure(activity.ID, FailureRecord{OccurrenceIndex: k, Reason: lastReason, Detail: lastDetail})
		return
	}

	best := accepted[0]
	for _, r := range accepted[1:] {
		if candidateBetter(r, best) {
			best = r
		}
	}
	bookCandidate(state, activity, best.candidate)
}

// collectAcceptedCandidates walks seq in batches of maxValidationWorkers,
// validating and scoring each batch concurrently, and stops as soon as
// CandidateCap accepted candidates have been found. This bounds
// per-occurrence work to a handful of batches instead of draining the
// entire candidate sequence, which for a weekly activity late in a long
// horizon can run to thousands of candidates.
func collectAcceptedCandidates(seq iter.Seq[Candidate], activity model.Activity, cfg Config, idx *ResourceIndex, state *State, lookup activityLookup) ([]scoredCandidate, FailureReason, string) {
	next, stop := iter.Pull(seq)
	defer stop()

	var accepted []scoredCandidate
	lastReason, lastDetail := ReasonNoCandidate, "no candidate slots were available for this occurrence"

	for {
		batch := make([]Candidate, 0, maxValidationWorkers)
		for len(batch) < maxValidationWorkers {
			c, ok := next()
			if !ok {
				break
			}
			batch = append(batch, c)
		}
		if len(batch) == 0 {
			break
		}

		for _, r := range evaluateCandidates(batch, activity, cfg, idx, state, lookup) {
			if r.accepted {
				accepted = append(accepted, r)
				continue
			}
			lastReason, lastDetail = r.reason, r.detail
		}

		if len(accepted) >= cfg.CandidateCap || len(batch) < maxValidationWorkers {
			break
		}
	}

	if len(accepted) > cfg.CandidateCap {
		accepted = accepted[:cfg.CandidateCap]
	}

	return accepted, lastReason, lastDetail
}

// evaluateCandidates validates and scores every pulled candidate
// concurrently, bounded by maxValidationWorkers, preserving the input order
// in the returned slice so downstream selection stays deterministic.
func evaluateCandidates(candidates []Candidate, activity model.Activity, cfg Config, idx *ResourceIndex, state *State, lookup activityLookup) []scoredCandidate {
	results := make([]scoredCandidate, len(candidates))
	sem := make(chan struct{}, maxValidationWorkers)
	var wg sync.WaitGroup

	for i, c := range candidates {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, c Candidate) {
			defer wg.Done()
			defer func() { <-sem }()

			ok, reason, detail := validate(c, activity, cfg, idx, state)
			r := scoredCandidate{candidate: c, accepted: ok, reason: reason, detail: detail}
			if ok {
				r.score = score(c, activity, state, lookup)
			}
			results[i] = r
		}(i, c)
	}

	wg.Wait()
	return results
}

// candidateBetter reports whether a outranks b under the scoring tie-break:
// higher score first, then earlier date, then earlier start, then
// generation order.
func candidateBetter(a, b scoredCandidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if !a.candidate.Date.Equal(b.candidate.Date) {
		return a.candidate.Date.Before(b.candidate.Date)
	}
	if a.candidate.Start != b.candidate.Start {
		return a.candidate.Start < b.candidate.Start
	}
	return a.candidate.GenerationOrder < b.candidate.GenerationOrder
}

// bookCandidate appends the winning candidate to state as a booked slot.
func bookCandidate(state *State, activity model.Activity, c Candidate) {
	state.Append(model.BookedSlot{
		ActivityID:      activity.ID,
		Date:            c.Date,
		Start:           c.Start,
		DurationMinutes: c.DurationMinutes,
		SpecialistID:    c.SpecialistID,
		EquipmentIDs:    c.EquipmentIDs,
	})
}
