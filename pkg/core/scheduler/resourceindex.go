package scheduler

import (
	"sort"

	"github.com/brightwell-health/care-scheduler/pkg/core/model"
	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
)

// specialistEntry precomputes a specialist's per-weekday availability and
// unavailable dates so that hot-loop lookups are O(1) amortized.
type specialistEntry struct {
	byWeekday map[int][]model.AvailabilityBlock
	daysOff   map[int]bool
	holidays  map[timeutil.Date]bool
}

// equipmentEntry precomputes an equipment item's maintenance windows
// indexed loosely by date; a realistic maintenance calendar is small enough
// that a linear scan per lookup is cheap, so no further bucketing is done.
type equipmentEntry struct {
	windows []model.MaintenanceWindow
}

// ResourceIndex is built once per run from the resource tables and exposes
// side-effect-free, stable lookups to the validator and scorer.
type ResourceIndex struct {
	specialists map[string]specialistEntry
	equipment   map[string]equipmentEntry
	travel      []model.TravelPeriod
}

// NewResourceIndex precomputes lookup structures for specialists, equipment,
// and travel periods.
func NewResourceIndex(specialists []model.Specialist, equipment []model.Equipment, travel []model.TravelPeriod) *ResourceIndex {
	idx := &ResourceIndex{
		specialists: make(map[string]specialistEntry, len(specialists)),
		equipment:   make(map[string]equipmentEntry, len(equipment)),
		travel:      travel,
	}

	for _, s := range specialists {
		entry := specialistEntry{
			byWeekday: make(map[int][]model.AvailabilityBlock),
			daysOff:   make(map[int]bool, len(s.DaysOff)),
			holidays:  make(map[timeutil.Date]bool, len(s.Holidays)),
		}
		for _, b := range s.Availability {
			entry.byWeekday[b.Weekday] = append(entry.byWeekday[b.Weekday], b)
		}
		for _, blocks := range entry.byWeekday {
			sort.Slice(blocks, func(i, j int) bool { return blocks[i].Start < blocks[j].Start })
		}
		for _, d := range s.DaysOff {
			entry.daysOff[d] = true
		}
		for _, d := range s.Holidays {
			entry.holidays[d] = true
		}
		idx.specialists[s.ID] = entry
	}

	for _, e := range equipment {
		idx.equipment[e.ID] = equipmentEntry{windows: e.MaintenanceWindows}
	}

	return idx
}

// SpecialistAvailableBlocks returns the availability blocks for a specialist
// on the given weekday, sorted by start time.
func (idx *ResourceIndex) SpecialistAvailableBlocks(specialistID string, weekday int) []model.AvailabilityBlock {
	entry, ok := idx.specialists[specialistID]
	if !ok {
		return nil
	}
	return entry.byWeekday[weekday]
}

// SpecialistUnavailableOn reports whether the specialist is off on the
// given date, either because the weekday is a day off or the date is a
// recorded holiday.
func (idx *ResourceIndex) SpecialistUnavailableOn(specialistID string, date timeutil.Date) bool {
	entry, ok := idx.specialists[specialistID]
	if !ok {
		return true
	}
	return entry.daysOff[date.Weekday()] || entry.holidays[date]
}

// EquipmentMaintenanceWindows returns the maintenance windows for an
// equipment item that cover the given date.
func (idx *ResourceIndex) EquipmentMaintenanceWindows(equipmentID string, date timeutil.Date) []model.MaintenanceWindow {
	entry, ok := idx.equipment[equipmentID]
	if !ok {
		return nil
	}
	var covering []model.MaintenanceWindow
	for _, w := range entry.windows {
		if date.InRange(w.StartDate, w.EndDate) {
			covering = append(covering, w)
		}
	}
	return covering
}

// TravelPeriodsCovering returns every travel period that includes the given
// date.
func (idx *ResourceIndex) TravelPeriodsCovering(date timeutil.Date) []model.TravelPeriod {
	var covering []model.TravelPeriod
	for _, t := range idx.travel {
		if t.Covers(date) {
			covering = append(covering, t)
		}
	}
	return covering
}
