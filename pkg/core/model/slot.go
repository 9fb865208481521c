package model

import "github.com/brightwell-health/care-scheduler/pkg/core/timeutil"

// BookedSlot is a concrete placement produced by the scheduler: an
// activity, a date, a start clock, and whichever resources were actually
// bound to satisfy it. Every BookedSlot in a Result satisfied all hard
// constraints at the moment it was booked.
type BookedSlot struct {
	ActivityID      string
	Date            timeutil.Date
	Start           timeutil.Clock
	DurationMinutes int
	SpecialistID    string   // empty if the activity required none
	EquipmentIDs    []string // the equipment identities actually bound
}

// End returns the slot's half-open end clock.
func (s BookedSlot) End() timeutil.Clock {
	return s.Start.Add(s.DurationMinutes)
}

// UsesEquipment reports whether the slot has the given equipment bound.
func (s BookedSlot) UsesEquipment(equipmentID string) bool {
	for _, id := range s.EquipmentIDs {
		if id == equipmentID {
			return true
		}
	}
	return false
}
