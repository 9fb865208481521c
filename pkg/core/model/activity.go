// Package model defines the immutable input records the care scheduler
// consumes and the booked-slot record it produces. Records are validated at
// intake (see Validate in this package); the scheduling core only ever sees
// values that have already passed validation.
package model

import "github.com/brightwell-health/care-scheduler/pkg/core/timeutil"

// ActivityType tags the kind of health activity being scheduled.
type ActivityType string

const (
	Medication   ActivityType = "Medication"
	Fitness      ActivityType = "Fitness"
	Food         ActivityType = "Food"
	Therapy      ActivityType = "Therapy"
	Consultation ActivityType = "Consultation"
)

// IsValid reports whether t is one of the closed set of activity types.
func (t ActivityType) IsValid() bool {
	switch t {
	case Medication, Fitness, Food, Therapy, Consultation:
		return true
	}
	return false
}

// Location tags where an activity takes place. It is presentation metadata
// only: the scheduler's grouping bonus compares it but no hard
// constraint depends on it.
type Location string

const (
	Home   Location = "Home"
	Gym    Location = "Gym"
	Clinic Location = "Clinic"
	Any    Location = "Any"
)

// FrequencyPattern is the tag of the Frequency sum type.
type FrequencyPattern string

const (
	Daily   FrequencyPattern = "Daily"
	Weekly  FrequencyPattern = "Weekly"
	Monthly FrequencyPattern = "Monthly"
	Custom  FrequencyPattern = "Custom"
)

// Frequency describes how often an activity recurs. Exactly one of the
// pattern-specific fields is meaningful, selected by Pattern; see Validate.
type Frequency struct {
	Pattern FrequencyPattern

	// Count is meaningful for Weekly (<=7) and Monthly (<=31).
	Count int

	// PreferredWeekdays is meaningful (and optional) for Weekly; 0=Monday..6=Sunday.
	PreferredWeekdays []int

	// IntervalDays is meaningful (and required) for Custom.
	IntervalDays int
}

// NewDailyFrequency builds a Daily frequency (one occurrence per day).
func NewDailyFrequency() Frequency {
	return Frequency{Pattern: Daily}
}

// NewWeeklyFrequency builds a Weekly frequency with the given per-week count
// and an optional ordered list of preferred weekdays.
func NewWeeklyFrequency(count int, preferredWeekdays []int) Frequency {
	return Frequency{Pattern: Weekly, Count: count, PreferredWeekdays: preferredWeekdays}
}

// NewMonthlyFrequency builds a Monthly frequency with the given per-month count.
func NewMonthlyFrequency(count int) Frequency {
	return Frequency{Pattern: Monthly, Count: count}
}

// NewCustomFrequency builds a Custom frequency recurring every intervalDays days.
func NewCustomFrequency(intervalDays int) Frequency {
	return Frequency{Pattern: Custom, IntervalDays: intervalDays}
}

// TimeWindow is an optional preferred clock-time range an activity must fall
// within. Both ends are required together: Start < End.
type TimeWindow struct {
	Start timeutil.Clock
	End   timeutil.Clock
}

// Activity is a recurring health task to be placed into the schedule.
type Activity struct {
	ID       string
	Name     string
	Type     ActivityType
	Priority int // 1 (highest) .. 5 (lowest)

	Frequency       Frequency
	DurationMinutes int

	// Window is nil when the activity has no preferred time range.
	Window *TimeWindow

	// SpecialistID is empty when no specialist is required.
	SpecialistID string
	// EquipmentIDs lists required equipment identities (may be empty).
	EquipmentIDs []string

	Location      Location
	RemoteCapable bool
	Details       string

	// Presentation-only metadata, never consulted by the validator or scorer.
	PreparationRequirements []string
	MetricsToCollect        []string
	BackupActivityIDs       []string
}

// RequiresSpecialist reports whether the activity needs a specific specialist.
func (a *Activity) RequiresSpecialist() bool {
	return a.SpecialistID != ""
}
