package scheduler

import (
	"fmt"

	"github.com/brightwell-health/care-scheduler/pkg/core/model"
	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
)

// Candidate is a single proposed placement for an activity occurrence,
// produced by the candidate generator and consumed by the validator and
// scorer. Generation is the only component order in the candidate; a given
// candidate carries no opinion about whether it is any good.
type Candidate struct {
	ActivityID      string
	Date            timeutil.Date
	Start           timeutil.Clock
	DurationMinutes int
	SpecialistID    string
	EquipmentIDs    []string

	// GenerationOrder is the candidate's position in the sequence the
	// generator produced it in, used only as the final tie-break.
	GenerationOrder int
}

// End returns the candidate's half-open end clock.
func (c Candidate) End() timeutil.Clock {
	return c.Start.Add(c.DurationMinutes)
}

// validate runs the six ordered hard-constraint checks in
// fixed order, returning on the first failure. Candidates that reach the end
// satisfy every hard constraint at the moment of the check.
func validate(c Candidate, activity model.Activity, cfg Config, idx *ResourceIndex, state *State) (bool, FailureReason, string) {
	// 1. day boundary: the candidate must fall within the schedulable day.
	if c.Start < cfg.DayStart || c.End() > cfg.DayEnd {
		return false, ReasonTimeWindow, fmt.Sprintf("slot %s-%s outside day window %s-%s", c.Start, c.End(), cfg.DayStart, cfg.DayEnd)
	}

	// 2. activity window: if the activity has a preferred window, the
	// candidate must fall entirely within it.
	if activity.Window != nil {
		if c.Start < activity.Window.Start || c.End() > activity.Window.End {
			return false, ReasonTimeWindow, fmt.Sprintf("slot %s-%s outside activity window %s-%s", c.Start, c.End(), activity.Window.Start, activity.Window.End)
		}
	}

	// 3. travel compatibility: a non-remote-capable activity cannot be
	// placed on a date covered by any travel period.
	if !activity.RemoteCapable {
		for _, t := range idx.TravelPeriodsCovering(c.Date) {
			return false, ReasonTravel, fmt.Sprintf("date %s covered by travel period %s", c.Date, t.ID)
		}
	}

	// 4. overlap: the candidate must not overlap any slot already booked on
	// the same date for the same activity's client (the whole day's booked
	// slots, since the schedule has a single client).
	for _, existing := range state.SlotsOnDate(c.Date) {
		if timeutil.RangesOverlap(c.Start, c.End(), existing.Start, existing.End()) {
			return false, ReasonOverlap, fmt.Sprintf("overlaps booked slot %s on %s", existing.ActivityID, c.Date)
		}
	}

	// 5. specialist availability and conflict.
	if activity.RequiresSpecialist() {
		if idx.SpecialistUnavailableOn(c.SpecialistID, c.Date) {
			return false, ReasonSpecialistUnavailable, fmt.Sprintf("specialist %s unavailable on %s", c.SpecialistID, c.Date)
		}
		available := false
		for _, b := range idx.SpecialistAvailableBlocks(c.SpecialistID, c.Date.Weekday()) {
			if c.Start >= b.Start && c.End() <= b.End {
				available = true
				break
			}
		}
		if !available {
			return false, ReasonSpecialistUnavailable, fmt.Sprintf("specialist %s has no availability block covering %s-%s", c.SpecialistID, c.Start, c.End())
		}
		for _, booked := range state.SpecialistSlotsOnDate(c.SpecialistID, c.Date) {
			if timeutil.RangesOverlap(c.Start, c.End(), booked.Start, booked.End()) {
				return false, ReasonSpecialistBooked, fmt.Sprintf("specialist %s already booked %s-%s on %s", c.SpecialistID, booked.Start, booked.End(), c.Date)
			}
		}
	}

	// 6. equipment availability and conflict.
	for _, equipmentID := range c.EquipmentIDs {
		for _, w := range idx.EquipmentMaintenanceWindows(equipmentID, c.Date) {
			if equipmentWindowBlocks(w, c.Date, c.Start, c.End()) {
				return false, ReasonEquipmentUnavailable, fmt.Sprintf("equipment %s under maintenance on %s", equipmentID, c.Date)
			}
		}
		for _, booked := range state.EquipmentSlotsOnDate(equipmentID, c.Date) {
			if timeutil.RangesOverlap(c.Start, c.End(), booked.Start, booked.End()) {
				return false, ReasonEquipmentBooked, fmt.Sprintf("equipment %s already booked %s-%s on %s", equipmentID, booked.Start, booked.End(), c.Date)
			}
		}
	}

	return true, "", ""
}

// equipmentWindowBlocks reports whether a maintenance window blocks the
// given clock range on the given date. A window whose Start and End are both
// zero covers the entire day.
func equipmentWindowBlocks(w model.MaintenanceWindow, date timeutil.Date, start, end timeutil.Clock) bool {
	if w.Start == 0 && w.End == 0 {
		return true
	}
	return timeutil.RangesOverlap(start, end, w.Start, w.End)
}
