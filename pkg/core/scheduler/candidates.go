package scheduler

import (
	"iter"
	"sort"
	"time"

	"github.com/brightwell-health/care-scheduler/pkg/core/model"
	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
)

// candidatesForOccurrence returns the lazy candidate sequence for occurrence
// k of activity A, applying the priority>=3 day-lightness
// re-sort to the date list before enumerating start times.
func candidatesForOccurrence(activity model.Activity, k int, cfg Config, state *State) iter.Seq[Candidate] {
	dates := datesForOccurrence(activity, k, cfg)
	if activity.Priority >= 3 {
		dates = sortByLightness(dates, state)
	}
	return candidateSeq(activity, dates, cfg)
}

// candidatesForDates builds a candidate sequence restricted to an explicit
// date list, disregarding the primary/backup order.
func candidatesForDates(activity model.Activity, dates []timeutil.Date, cfg Config) iter.Seq[Candidate] {
	return candidateSeq(activity, dates, cfg)
}

// candidateSeq enumerates (date, start-clock) pairs across the given dates
// in order, and within each date at fixed granularity ascending, bounded by
// the intersection of the schedulable day and the activity's own window.
func candidateSeq(activity model.Activity, dates []timeutil.Date, cfg Config) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		start, end := windowBounds(activity, cfg)
		order := 0
		for _, d := range dates {
			for s := start; s.Add(activity.DurationMinutes) <= end; s = s.Add(cfg.SlotGranularityMinutes) {
				c := Candidate{
					ActivityID:      activity.ID,
					Date:            d,
					Start:           s,
					DurationMinutes: activity.DurationMinutes,
					SpecialistID:    activity.SpecialistID,
					EquipmentIDs:    activity.EquipmentIDs,
					GenerationOrder: order,
				}
				order++
				if !yield(c) {
					return
				}
			}
		}
	}
}

// windowBounds returns the intersection of the schedulable day window and
// the activity's own preferred time window, if any.
func windowBounds(activity model.Activity, cfg Config) (timeutil.Clock, timeutil.Clock) {
	start, end := cfg.DayStart, cfg.DayEnd
	if activity.Window != nil {
		if activity.Window.Start > start {
			start = activity.Window.Start
		}
		if activity.Window.End < end {
			end = activity.Window.End
		}
	}
	return start, end
}

// datesForOccurrence computes the primary-then-backup date list for
// occurrence k of activity A, per the pattern-specific policy.
func datesForOccurrence(activity model.Activity, k int, cfg Config) []timeutil.Date {
	switch activity.Frequency.Pattern {
	case model.Daily:
		return []timeutil.Date{cfg.StartDate.AddDays(k)}
	case model.Weekly:
		return weeklyDates(activity, k, cfg)
	case model.Monthly:
		return []timeutil.Date{monthlyDate(activity, k, cfg)}
	case model.Custom:
		return []timeutil.Date{cfg.StartDate.AddDays(k * activity.Frequency.IntervalDays)}
	default:
		return nil
	}
}

// weeklyDates implements the flexible-week fallback: the primary date is
// the preferred weekday inside the occurrence's own week, followed by the
// same weekday in every other complete week of the horizon, ascending.
func weeklyDates(activity model.Activity, k int, cfg Config) []timeutil.Date {
	c := activity.Frequency.Count
	if c <= 0 {
		c = 1
	}
	w := k / c
	j := k % c
	targetWeekday := j % 5
	if len(activity.Frequency.PreferredWeekdays) > 0 {
		targetWeekday = activity.Frequency.PreferredWeekdays[j%len(activity.Frequency.PreferredWeekdays)]
	}

	totalWeeks := cfg.HorizonDays() / 7
	startWeekday := cfg.StartDate.Weekday()
	offset := (targetWeekday - startWeekday + 7) % 7

	dateForWeek := func(week int) timeutil.Date {
		return cfg.StartDate.AddDays(7*week + offset)
	}

	dates := make([]timeutil.Date, 0, totalWeeks)
	dates = append(dates, dateForWeek(w))
	for other := 0; other < totalWeeks; other++ {
		if other == w {
			continue
		}
		dates = append(dates, dateForWeek(other))
	}
	return dates
}

// monthlyDate implements the monthly primary-date formula, clamped to the
// horizon; monthly activities carry no backup dates.
func monthlyDate(activity model.Activity, k int, cfg Config) timeutil.Date {
	c := activity.Frequency.Count
	if c <= 0 {
		c = 1
	}
	monthIdx := k / c
	withinMonth := k % c

	year, month := cfg.StartDate.Year(), cfg.StartDate.Month()
	for i := 0; i < monthIdx; i++ {
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	days := daysInMonth(year, month)
	day := 1 + withinMonth*(days/c)
	if day > days {
		day = days
	}

	date := timeutil.NewDate(year, month, day)
	if date.Before(cfg.StartDate) {
		return cfg.StartDate
	}
	if date.After(cfg.EndDate) {
		return cfg.EndDate
	}
	return date
}

func daysInMonth(year int, month time.Month) int {
	return timeutil.NewDate(year, month+1, 1).AddDays(-1).Day()
}

// sortByLightness stably re-sorts the candidate date list ascending by
// current booked count, so the primary date keeps its place among ties
// (priority>=3 rule).
func sortByLightness(dates []timeutil.Date, state *State) []timeutil.Date {
	sorted := make([]timeutil.Date, len(dates))
	copy(sorted, dates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return state.CountOnDate(sorted[i]) < state.CountOnDate(sorted[j])
	})
	return sorted
}
