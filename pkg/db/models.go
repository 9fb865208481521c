// Package db declares the store interfaces the service layer depends on and
// the row-level models they exchange. The wire/domain types in pkg/core/model
// are not reused directly here: this package owns the persistence shape,
// which is free to diverge from the in-memory scheduling shape (string-typed
// dates and clocks, Postgres array columns for things like preferred
// weekdays, equipment ID lists, and so on).
package db

import "time"

// ActivityRow is the persisted form of a model.Activity.
type ActivityRow struct {
	ID                      string
	Name                    string
	Type                    string
	Priority                int
	FrequencyPattern        string
	FrequencyCount          int
	FrequencyPreferredDays  []int
	FrequencyIntervalDays   int
	DurationMinutes         int
	WindowStart             *string
	WindowEnd               *string
	SpecialistID            *string
	EquipmentIDs            []string
	Location                string
	RemoteCapable           bool
	Details                 string
	PreparationRequirements []string
	MetricsToCollect        []string
	BackupActivityIDs       []string
}

// SpecialistRow is the persisted form of a model.Specialist.
type SpecialistRow struct {
	ID           string
	Discipline   string
	Availability []AvailabilityBlockRow
	DaysOff      []int
	Holidays     []string
}

// AvailabilityBlockRow is a single recurring weekly availability window.
type AvailabilityBlockRow struct {
	Weekday int
	Start   string
	End     string
}

// EquipmentRow is the persisted form of a model.Equipment.
type EquipmentRow struct {
	ID                 string
	MaintenanceWindows []MaintenanceWindowRow
}

// MaintenanceWindowRow is a single equipment downtime range.
type MaintenanceWindowRow struct {
	StartDate string
	EndDate   string
	Start     *string
	End       *string
}

// TravelPeriodRow is the persisted form of a model.TravelPeriod.
type TravelPeriodRow struct {
	ID            string
	StartDate     string
	EndDate       string
	RemoteCapable bool
}

// RunRow records one scheduling run's outcome for audit and the external
// presentation collaborator.
type RunRow struct {
	ID        string
	StartDate string
	EndDate   string
	RunAt     time.Time
	DryRun    bool
}

// BookedSlotRow is the persisted form of a model.BookedSlot, tagged with the
// run that produced it.
type BookedSlotRow struct {
	ID              string
	RunID           string
	ActivityID      string
	Date            string
	Start           string
	DurationMinutes int
	SpecialistID    *string
	EquipmentIDs    []string
}

// FailureRow is the persisted form of a single scheduler.FailureRecord.
type FailureRow struct {
	RunID           string
	ActivityID      string
	OccurrenceIndex int
	Reason          string
	Detail          string
}
