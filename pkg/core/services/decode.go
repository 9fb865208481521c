package services

import (
	"fmt"

	"github.com/brightwell-health/care-scheduler/pkg/core/model"
	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
	"github.com/brightwell-health/care-scheduler/pkg/db"
)

func decodeActivities(rows []db.ActivityRow) ([]model.Activity, error) {
	activities := make([]model.Activity, 0, len(rows))
	for _, row := range rows {
		frequency, err := decodeFrequency(row)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", row.ID, err)
		}

		var window *model.TimeWindow
		if row.WindowStart != nil && row.WindowEnd != nil {
			start, err := timeutil.ParseClock(*row.WindowStart)
			if err != nil {
				return nil, fmt.Errorf("activity %s: window_start: %w", row.ID, err)
			}
			end, err := timeutil.ParseClock(*row.WindowEnd)
			if err != nil {
				return nil, fmt.Errorf("activity %s: window_end: %w", row.ID, err)
			}
			window = &model.TimeWindow{Start: start, End: end}
		}

		var specialistID string
		if row.SpecialistID != nil {
			specialistID = *row.SpecialistID
		}

		activities = append(activities, model.Activity{
			ID:                      row.ID,
			Name:                    row.Name,
			Type:                    model.ActivityType(row.Type),
			Priority:                row.Priority,
			Frequency:               frequency,
			DurationMinutes:         row.DurationMinutes,
			Window:                  window,
			SpecialistID:            specialistID,
			EquipmentIDs:            row.EquipmentIDs,
			Location:                model.Location(row.Location),
			RemoteCapable:           row.RemoteCapable,
			Details:                 row.Details,
			PreparationRequirements: row.PreparationRequirements,
			MetricsToCollect:        row.MetricsToCollect,
			BackupActivityIDs:       row.BackupActivityIDs,
		})
	}
	return activities, nil
}

func decodeFrequency(row db.ActivityRow) (model.Frequency, error) {
	switch model.FrequencyPattern(row.FrequencyPattern) {
	case model.Daily:
		return model.NewDailyFrequency(), nil
	case model.Weekly:
		return model.NewWeeklyFrequency(row.FrequencyCount, row.FrequencyPreferredDays), nil
	case model.Monthly:
		return model.NewMonthlyFrequency(row.FrequencyCount), nil
	case model.Custom:
		return model.NewCustomFrequency(row.FrequencyIntervalDays), nil
	default:
		return model.Frequency{}, fmt.Errorf("unknown frequency pattern %q", row.FrequencyPattern)
	}
}

func decodeSpecialists(rows []db.SpecialistRow) ([]model.Specialist, error) {
	specialists := make([]model.Specialist, 0, len(rows))
	for _, row := range rows {
		blocks := make([]model.AvailabilityBlock, 0, len(row.Availability))
		for _, b := range row.Availability {
			start, err := timeutil.ParseClock(b.Start)
			if err != nil {
				return nil, fmt.Errorf("specialist %s: availability start: %w", row.ID, err)
			}
			end, err := timeutil.ParseClock(b.End)
			if err != nil {
				return nil, fmt.Errorf("specialist %s: availability end: %w", row.ID, err)
			}
			blocks = append(blocks, model.AvailabilityBlock{Weekday: b.Weekday, Start: start, End: end})
		}

		holidays := make([]timeutil.Date, 0, len(row.Holidays))
		for _, h := range row.Holidays {
			date, err := timeutil.ParseDate(h)
			if err != nil {
				return nil, fmt.Errorf("specialist %s: holiday: %w", row.ID, err)
			}
			holidays = append(holidays, date)
		}

		specialists = append(specialists, model.Specialist{
			ID:           row.ID,
			Discipline:   model.SpecialistDiscipline(row.Discipline),
			Availability: blocks,
			DaysOff:      row.DaysOff,
			Holidays:     holidays,
		})
	}
	return specialists, nil
}

func decodeEquipment(rows []db.EquipmentRow) ([]model.Equipment, error) {
	equipment := make([]model.Equipment, 0, len(rows))
	for _, row := range rows {
		windows := make([]model.MaintenanceWindow, 0, len(row.MaintenanceWindows))
		for _, w := range row.MaintenanceWindows {
			start, err := timeutil.ParseDate(w.StartDate)
			if err != nil {
				return nil, fmt.Errorf("equipment %s: maintenance start_date: %w", row.ID, err)
			}
			end, err := timeutil.ParseDate(w.EndDate)
			if err != nil {
				return nil, fmt.Errorf("equipment %s: maintenance end_date: %w", row.ID, err)
			}

			var startClock, endClock timeutil.Clock
			if w.Start != nil && w.End != nil {
				startClock, err = timeutil.ParseClock(*w.Start)
				if err != nil {
					return nil, fmt.Errorf("equipment %s: maintenance start clock: %w", row.ID, err)
				}
				endClock, err = timeutil.ParseClock(*w.End)
				if err != nil {
					return nil, fmt.Errorf("equipment %s: maintenance end clock: %w", row.ID, err)
				}
			}

			windows = append(windows, model.MaintenanceWindow{StartDate: start, EndDate: end, Start: startClock, End: endClock})
		}
		equipment = append(equipment, model.Equipment{ID: row.ID, MaintenanceWindows: windows})
	}
	return equipment, nil
}

func decodeTravelPeriods(rows []db.TravelPeriodRow) ([]model.TravelPeriod, error) {
	periods := make([]model.TravelPeriod, 0, len(rows))
	for _, row := range rows {
		start, err := timeutil.ParseDate(row.StartDate)
		if err != nil {
			return nil, fmt.Errorf("travel period %s: start_date: %w", row.ID, err)
		}
		end, err := timeutil.ParseDate(row.EndDate)
		if err != nil {
			return nil, fmt.Errorf("travel period %s: end_date: %w", row.ID, err)
		}
		periods = append(periods, model.TravelPeriod{ID: row.ID, StartDate: start, EndDate: end, RemoteCapable: row.RemoteCapable})
	}
	return periods, nil
}
