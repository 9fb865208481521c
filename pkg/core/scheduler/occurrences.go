package scheduler

import (
	"github.com/brightwell-health/care-scheduler/pkg/core/model"
	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
)

// requiredOccurrences returns the number of occurrences of activity A that
// must be placed over the horizon.
func requiredOccurrences(activity model.Activity, cfg Config) int {
	h := cfg.HorizonDays()
	switch activity.Frequency.Pattern {
	case model.Daily:
		return h
	case model.Weekly:
		return activity.Frequency.Count * (h / 7)
	case model.Monthly:
		return activity.Frequency.Count * monthsCovered(cfg.StartDate, cfg.EndDate)
	case model.Custom:
		return (h-1)/activity.Frequency.IntervalDays + 1
	default:
		return 0
	}
}

// monthsCovered counts the distinct calendar months the horizon touches.
func monthsCovered(start, end timeutil.Date) int {
	count := 0
	y, m := start.Year(), start.Month()
	for {
		count++
		if y == end.Year() && m == end.Month() {
			break
		}
		m++
		if m > 12 {
			m = 1
			y++
		}
	}
	return count
}
