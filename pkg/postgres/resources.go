package postgres

import (
	"context"
	"fmt"

	"github.com/brightwell-health/care-scheduler/pkg/db"
)

// GetSpecialists retrieves every specialist with its availability blocks.
func (d *DB) GetSpecialists(ctx context.Context) ([]db.SpecialistRow, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT s.id, s.discipline, s.days_off, s.holidays
		FROM specialists s
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: query specialists: %w", err)
	}
	defer rows.Close()

	var specialists []db.SpecialistRow
	for rows.Next() {
		var s db.SpecialistRow
		var holidays []string
		if err := rows.Scan(&s.ID, &s.Discipline, &s.DaysOff, &holidays); err != nil {
			return nil, fmt.Errorf("postgres: scan specialist: %w", err)
		}
		s.Holidays = holidays
		specialists = append(specialists, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate specialists: %w", err)
	}

	for i := range specialists {
		blocks, err := d.getAvailabilityBlocks(ctx, specialists[i].ID)
		if err != nil {
			return nil, err
		}
		specialists[i].Availability = blocks
	}

	return specialists, nil
}

func (d *DB) getAvailabilityBlocks(ctx context.Context, specialistID string) ([]db.AvailabilityBlockRow, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT weekday, start_clock, end_clock
		FROM specialist_availability
		WHERE specialist_id = $1
		ORDER BY weekday, start_clock
	`, specialistID)
	if err != nil {
		return nil, fmt.Errorf("postgres: query availability for %s: %w", specialistID, err)
	}
	defer rows.Close()

	var blocks []db.AvailabilityBlockRow
	for rows.Next() {
		var b db.AvailabilityBlockRow
		if err := rows.Scan(&b.Weekday, &b.Start, &b.End); err != nil {
			return nil, fmt.Errorf("postgres: scan availability block: %w", err)
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

// GetEquipment retrieves every equipment item with its maintenance windows.
func (d *DB) GetEquipment(ctx context.Context) ([]db.EquipmentRow, error) {
	rows, err := d.pool.Query(ctx, `SELECT id FROM equipment`)
	if err != nil {
		return nil, fmt.Errorf("postgres: query equipment: %w", err)
	}
	var equipment []db.EquipmentRow
	for rows.Next() {
		var e db.EquipmentRow
		if err := rows.Scan(&e.ID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("postgres: scan equipment: %w", err)
		}
		equipment = append(equipment, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate equipment: %w", err)
	}

	for i := range equipment {
		windows, err := d.getMaintenanceWindows(ctx, equipment[i].ID)
		if err != nil {
			return nil, err
		}
		equipment[i].MaintenanceWindows = windows
	}

	return equipment, nil
}

func (d *DB) getMaintenanceWindows(ctx context.Context, equipmentID string) ([]db.MaintenanceWindowRow, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT start_date, end_date, start_clock, end_clock
		FROM equipment_maintenance_windows
		WHERE equipment_id = $1
		ORDER BY start_date
	`, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("postgres: query maintenance windows for %s: %w", equipmentID, err)
	}
	defer rows.Close()

	var windows []db.MaintenanceWindowRow
	for rows.Next() {
		var w db.MaintenanceWindowRow
		var start, end string
		if err := rows.Scan(&start, &end, &w.Start, &w.End); err != nil {
			return nil, fmt.Errorf("postgres: scan maintenance window: %w", err)
		}
		w.StartDate, w.EndDate = start, end
		windows = append(windows, w)
	}
	return windows, rows.Err()
}

// GetTravelPeriods retrieves every travel period.
func (d *DB) GetTravelPeriods(ctx context.Context) ([]db.TravelPeriodRow, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, start_date, end_date, remote_capable
		FROM travel_periods
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: query travel periods: %w", err)
	}
	defer rows.Close()

	var periods []db.TravelPeriodRow
	for rows.Next() {
		var t db.TravelPeriodRow
		if err := rows.Scan(&t.ID, &t.StartDate, &t.EndDate, &t.RemoteCapable); err != nil {
			return nil, fmt.Errorf("postgres: scan travel period: %w", err)
		}
		periods = append(periods, t)
	}
	return periods, rows.Err()
}
