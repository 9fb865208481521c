package postgres

import (
	"context"
	"fmt"

	"github.com/brightwell-health/care-scheduler/pkg/db"
)

// GetActivities retrieves every row of the activities table.
func (d *DB) GetActivities(ctx context.Context) ([]db.ActivityRow, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, type, priority, frequency_pattern, frequency_count,
		       frequency_preferred_days, frequency_interval_days, duration_minutes,
		       window_start, window_end, specialist_id, equipment_ids, location,
		       remote_capable, details, preparation_requirements, metrics_to_collect,
		       backup_activity_ids
		FROM activities
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: query activities: %w", err)
	}
	defer rows.Close()

	var activities []db.ActivityRow
	for rows.Next() {
		var a db.ActivityRow
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Type, &a.Priority, &a.FrequencyPattern, &a.FrequencyCount,
			&a.FrequencyPreferredDays, &a.FrequencyIntervalDays, &a.DurationMinutes,
			&a.WindowStart, &a.WindowEnd, &a.SpecialistID, &a.EquipmentIDs, &a.Location,
			&a.RemoteCapable, &a.Details, &a.PreparationRequirements, &a.MetricsToCollect,
			&a.BackupActivityIDs,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate activities: %w", err)
	}
	return activities, nil
}
