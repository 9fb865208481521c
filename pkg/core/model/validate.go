package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
)

// ValidationError is the single input-validation error class: it fails
// fast, before the scheduler ever runs, and always names the offending
// record and field.
type ValidationError struct {
	Identifier string // the record's ID, or "" for a table-level problem
	Field      string
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.Identifier == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s (%s): %s", e.Identifier, e.Field, e.Reason)
}

func fieldError(id, field, reason string) error {
	return &ValidationError{Identifier: id, Field: field, Reason: reason}
}

var validate = validator.New()

// activityTag mirrors the struct-tag validation internal/config runs over
// its YAML-sourced config, applied here to records arriving from the store.
type activityTag struct {
	Priority        int `validate:"min=1,max=5"`
	DurationMinutes int `validate:"min=5,max=480"`
}

// Validate checks activities, specialists, equipment, and travel periods
// against the intake invariants. It returns the first violation
// found; the scheduler is never invoked if this returns a non-nil error.
func Validate(activities []Activity, specialists []Specialist, equipment []Equipment, travel []TravelPeriod) error {
	specByID := make(map[string]Specialist, len(specialists))
	for _, s := range specialists {
		if err := validateSpecialist(s); err != nil {
			return err
		}
		specByID[s.ID] = s
	}

	equipByID := make(map[string]Equipment, len(equipment))
	for _, e := range equipment {
		if err := validateEquipment(e); err != nil {
			return err
		}
		equipByID[e.ID] = e
	}

	for _, t := range travel {
		if t.EndDate.Before(t.StartDate) {
			return fieldError(t.ID, "end_date", "end_date must not be before start_date")
		}
	}

	for _, a := range activities {
		if err := validateActivity(a, specByID, equipByID); err != nil {
			return err
		}
	}

	return nil
}

func validateActivity(a Activity, specByID map[string]Specialist, equipByID map[string]Equipment) error {
	tag := activityTag{Priority: a.Priority, DurationMinutes: a.DurationMinutes}
	if err := validate.Struct(tag); err != nil {
		return fieldError(a.ID, "priority_or_duration", err.Error())
	}

	if !a.Type.IsValid() {
		return fieldError(a.ID, "type", fmt.Sprintf("unknown activity type %q", a.Type))
	}

	if a.Window != nil {
		if a.Window.End <= a.Window.Start {
			return fieldError(a.ID, "time_window", "window end must be after window start")
		}
	}

	if err := validateFrequency(a.ID, a.Frequency); err != nil {
		return err
	}

	if a.SpecialistID != "" {
		if _, ok := specByID[a.SpecialistID]; !ok {
			return fieldError(a.ID, "specialist_id", fmt.Sprintf("references unknown specialist %q", a.SpecialistID))
		}
	}

	for _, eid := range a.EquipmentIDs {
		if _, ok := equipByID[eid]; !ok {
			return fieldError(a.ID, "equipment_ids", fmt.Sprintf("references unknown equipment %q", eid))
		}
	}

	return nil
}

func validateFrequency(activityID string, f Frequency) error {
	switch f.Pattern {
	case Daily:
		if len(f.PreferredWeekdays) != 0 {
			return fieldError(activityID, "frequency.preferred_weekdays", "daily pattern cannot have preferred weekdays")
		}
	case Weekly:
		if f.Count < 1 || f.Count > 7 {
			return fieldError(activityID, "frequency.count", "weekly count must be in [1,7]")
		}
		for _, d := range f.PreferredWeekdays {
			if d < 0 || d > 6 {
				return fieldError(activityID, "frequency.preferred_weekdays", "weekdays must be 0-6")
			}
		}
	case Monthly:
		if f.Count < 1 || f.Count > 31 {
			return fieldError(activityID, "frequency.count", "monthly count must be in [1,31]")
		}
	case Custom:
		if f.IntervalDays < 1 {
			return fieldError(activityID, "frequency.interval_days", "custom interval must be >= 1")
		}
	default:
		return fieldError(activityID, "frequency.pattern", fmt.Sprintf("unknown frequency pattern %q", f.Pattern))
	}
	return nil
}

func validateSpecialist(s Specialist) error {
	if len(s.Availability) == 0 {
		return nil // a specialist with no blocks is legal; every requiring occurrence simply fails
	}

	byWeekday := make(map[int][]AvailabilityBlock)
	for _, b := range s.Availability {
		if b.End <= b.Start {
			return fieldError(s.ID, "availability", "block end must be after block start")
		}
		byWeekday[b.Weekday] = append(byWeekday[b.Weekday], b)
	}

	for weekday, blocks := range byWeekday {
		for i := 0; i < len(blocks); i++ {
			for j := i + 1; j < len(blocks); j++ {
				if timeutil.RangesOverlap(blocks[i].Start, blocks[i].End, blocks[j].Start, blocks[j].End) {
					return fieldError(s.ID, "availability", fmt.Sprintf("overlapping availability blocks on weekday %d", weekday))
				}
			}
		}
	}

	return nil
}

func validateEquipment(e Equipment) error {
	for _, w := range e.MaintenanceWindows {
		if w.EndDate.Before(w.StartDate) {
			return fieldError(e.ID, "maintenance_windows", "window end_date must not be before start_date")
		}
	}
	return nil
}
