package scheduler

import (
	"github.com/brightwell-health/care-scheduler/pkg/core/model"
	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
)

// State is the mutable, append-only record of booked slots plus the
// secondary indexes the validator and scorer need at hot-loop frequency.
// It is owned exclusively by the phase drivers: the validator and scorer
// receive it as a read-only pointer. Append is the only way to add booked
// slots; RecordFailure and ResolveFailure are the only ways to change the
// failure map.
type State struct {
	Slots []model.BookedSlot

	occurrenceCount map[string]int
	failures        map[string][]FailureRecord

	byDate           map[timeutil.Date][]int // slot indices, in append order
	bySpecialistDate map[string]map[timeutil.Date][]int
	byEquipmentDate  map[string]map[timeutil.Date][]int
}

// NewState creates an empty scheduler state.
func NewState() *State {
	return &State{
		occurrenceCount:  make(map[string]int),
		failures:         make(map[string][]FailureRecord),
		byDate:           make(map[timeutil.Date][]int),
		bySpecialistDate: make(map[string]map[timeutil.Date][]int),
		byEquipmentDate:  make(map[string]map[timeutil.Date][]int),
	}
}

// Append books a slot and refreshes every secondary index in the same step,
// so the state is always consistent before the next validator call.
func (s *State) Append(slot model.BookedSlot) {
	idx := len(s.Slots)
	s.Slots = append(s.Slots, slot)

	s.byDate[slot.Date] = append(s.byDate[slot.Date], idx)
	s.occurrenceCount[slot.ActivityID]++

	if slot.SpecialistID != "" {
		byDate, ok := s.bySpecialistDate[slot.SpecialistID]
		if !ok {
			byDate = make(map[timeutil.Date][]int)
			s.bySpecialistDate[slot.SpecialistID] = byDate
		}
		byDate[slot.Date] = append(byDate[slot.Date], idx)
	}

	for _, equipmentID := range slot.EquipmentIDs {
		byDate, ok := s.byEquipmentDate[equipmentID]
		if !ok {
			byDate = make(map[timeutil.Date][]int)
			s.byEquipmentDate[equipmentID] = byDate
		}
		byDate[slot.Date] = append(byDate[slot.Date], idx)
	}
}

// RecordFailure appends a failure entry for an activity's occurrence.
func (s *State) RecordFailure(activityID string, record FailureRecord) {
	s.failures[activityID] = append(s.failures[activityID], record)
}

// OccurrenceCount returns how many occurrences of an activity have been
// placed so far.
func (s *State) OccurrenceCount(activityID string) int {
	return s.occurrenceCount[activityID]
}

// Failures returns the accumulated failure map. Callers must not mutate it.
func (s *State) Failures() map[string][]FailureRecord {
	return s.failures
}

// ResolveFailure removes a previously recorded failure once backfill places
// the occurrence it belonged to.
func (s *State) ResolveFailure(activityID string, occurrenceIndex int) {
	records := s.failures[activityID]
	for i, r := range records {
		if r.OccurrenceIndex == occurrenceIndex {
			s.failures[activityID] = append(records[:i], records[i+1:]...)
			if len(s.failures[activityID]) == 0 {
				delete(s.failures, activityID)
			}
			return
		}
	}
}

// SlotsOnDate returns the booked slots on a date, in append order.
func (s *State) SlotsOnDate(date timeutil.Date) []model.BookedSlot {
	indices := s.byDate[date]
	if len(indices) == 0 {
		return nil
	}
	out := make([]model.BookedSlot, len(indices))
	for i, idx := range indices {
		out[i] = s.Slots[idx]
	}
	return out
}

// CountOnDate returns the number of booked slots on a date.
func (s *State) CountOnDate(date timeutil.Date) int {
	return len(s.byDate[date])
}

// SpecialistSlotsOnDate returns the slots assigned to a specialist on a date.
func (s *State) SpecialistSlotsOnDate(specialistID string, date timeutil.Date) []model.BookedSlot {
	byDate, ok := s.bySpecialistDate[specialistID]
	if !ok {
		return nil
	}
	indices := byDate[date]
	out := make([]model.BookedSlot, len(indices))
	for i, idx := range indices {
		out[i] = s.Slots[idx]
	}
	return out
}

// EquipmentSlotsOnDate returns the slots using a piece of equipment on a date.
func (s *State) EquipmentSlotsOnDate(equipmentID string, date timeutil.Date) []model.BookedSlot {
	byDate, ok := s.byEquipmentDate[equipmentID]
	if !ok {
		return nil
	}
	indices := byDate[date]
	out := make([]model.BookedSlot, len(indices))
	for i, idx := range indices {
		out[i] = s.Slots[idx]
	}
	return out
}

// SlotsForActivity returns every booked slot for an activity, in append order.
func (s *State) SlotsForActivity(activityID string) []model.BookedSlot {
	var out []model.BookedSlot
	for _, slot := range s.Slots {
		if slot.ActivityID == activityID {
			out = append(out, slot)
		}
	}
	return out
}
