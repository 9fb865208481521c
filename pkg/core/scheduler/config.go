// Package scheduler implements the two-phase deterministic placement core:
// occurrence expansion, candidate generation with flexible-week fallback,
// hard-constraint validation, soft-constraint scoring, greedy booking, and
// backfill onto under-utilized days.
//
// The package owns no package-level mutable state; every call to Run
// constructs its own ResourceIndex and State and consumes them to
// completion (design note: no global registries).
package scheduler

import "github.com/brightwell-health/care-scheduler/pkg/core/timeutil"

// Config fixes the tunable parameters of a scheduling run. The day window
// and slot granularity default to the standard clinic day; CandidateCap
// and LightDayThreshold default to the values fixed below.
type Config struct {
	StartDate timeutil.Date
	EndDate   timeutil.Date

	// DayStart/DayEnd bound the schedulable day. Defaults: 06:00-21:00.
	DayStart timeutil.Clock
	DayEnd   timeutil.Clock

	// SlotGranularityMinutes is the candidate start-time step. Default: 30.
	SlotGranularityMinutes int

	// CandidateCap is the number of validator-accepted candidates collected
	// per occurrence before scoring and picking the best. Default: 32.
	CandidateCap int

	// LightDayThreshold: a day is "light" for backfill purposes when its
	// booked count is strictly below this. Default: 15.
	LightDayThreshold int
}

// DefaultConfig returns the standard defaults for a horizon.
func DefaultConfig(start, end timeutil.Date) Config {
	return Config{
		StartDate:              start,
		EndDate:                end,
		DayStart:               timeutil.NewClock(6, 0),
		DayEnd:                 timeutil.NewClock(21, 0),
		SlotGranularityMinutes: 30,
		CandidateCap:           32,
		LightDayThreshold:      15,
	}
}

// HorizonDays returns the inclusive length of the scheduling horizon.
func (c Config) HorizonDays() int {
	return c.EndDate.DaysSince(c.StartDate) + 1
}

// withDefaults fills in zero-valued tunables with the standard defaults, so
// callers may build a Config with just StartDate/EndDate set.
func (c Config) withDefaults() Config {
	if c.DayStart == 0 && c.DayEnd == 0 {
		c.DayStart = timeutil.NewClock(6, 0)
		c.DayEnd = timeutil.NewClock(21, 0)
	}
	if c.SlotGranularityMinutes == 0 {
		c.SlotGranularityMinutes = 30
	}
	if c.CandidateCap == 0 {
		c.CandidateCap = 32
	}
	if c.LightDayThreshold == 0 {
		c.LightDayThreshold = 15
	}
	return c
}
