package postgres

import (
	"context"
	"fmt"

	"github.com/brightwell-health/care-scheduler/pkg/db"
)

// InsertRun records a completed scheduling run.
func (d *DB) InsertRun(ctx context.Context, run db.RunRow) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO runs (id, start_date, end_date, run_at, dry_run)
		VALUES ($1, $2, $3, $4, $5)
	`, run.ID, run.StartDate, run.EndDate, run.RunAt, run.DryRun)
	if err != nil {
		return fmt.Errorf("postgres: insert run %s: %w", run.ID, err)
	}
	return nil
}

// InsertBookedSlots bulk-inserts the slots a run produced, inside a single
// transaction so a partial write never leaves a run half-persisted.
func (d *DB) InsertBookedSlots(ctx context.Context, slots []db.BookedSlotRow) error {
	if len(slots) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin booked-slot transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range slots {
		_, err := tx.Exec(ctx, `
			INSERT INTO booked_slots (id, run_id, activity_id, date, start_clock, duration_minutes, specialist_id, equipment_ids)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.ID, s.RunID, s.ActivityID, s.Date, s.Start, s.DurationMinutes, s.SpecialistID, s.EquipmentIDs)
		if err != nil {
			return fmt.Errorf("postgres: insert booked slot %s: %w", s.ID, err)
		}
	}

	return tx.Commit(ctx)
}

// InsertFailures bulk-inserts a run's failure records.
func (d *DB) InsertFailures(ctx context.Context, failures []db.FailureRow) error {
	if len(failures) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin failure-record transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, f := range failures {
		_, err := tx.Exec(ctx, `
			INSERT INTO failure_records (run_id, activity_id, occurrence_index, reason, detail)
			VALUES ($1, $2, $3, $4, $5)
		`, f.RunID, f.ActivityID, f.OccurrenceIndex, f.Reason, f.Detail)
		if err != nil {
			return fmt.Errorf("postgres: insert failure record for %s: %w", f.ActivityID, err)
		}
	}

	return tx.Commit(ctx)
}
