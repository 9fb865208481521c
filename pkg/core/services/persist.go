package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brightwell-health/care-scheduler/internal/config"
	"github.com/brightwell-health/care-scheduler/pkg/core/scheduler"
	"github.com/brightwell-health/care-scheduler/pkg/db"
)

// persistResult writes a completed run and everything it produced: the run
// record itself, every booked slot, and every unresolved failure.
func persistResult(ctx context.Context, store RunScheduleStore, runID string, cfg *config.Config, result *scheduler.Result) error {
	if err := store.InsertRun(ctx, db.RunRow{
		ID:        runID,
		StartDate: cfg.StartDate.String(),
		EndDate:   cfg.EndDate.String(),
		RunAt:     time.Now().UTC(),
		DryRun:    false,
	}); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	slotRows := make([]db.BookedSlotRow, 0, len(result.Slots))
	for _, slot := range result.Slots {
		row := db.BookedSlotRow{
			ID:              uuid.NewString(),
			RunID:           runID,
			ActivityID:      slot.ActivityID,
			Date:            slot.Date.String(),
			Start:           slot.Start.String(),
			DurationMinutes: slot.DurationMinutes,
			EquipmentIDs:    slot.EquipmentIDs,
		}
		if slot.SpecialistID != "" {
			specialistID := slot.SpecialistID
			row.SpecialistID = &specialistID
		}
		slotRows = append(slotRows, row)
	}
	if err := store.InsertBookedSlots(ctx, slotRows); err != nil {
		return fmt.Errorf("insert booked slots: %w", err)
	}

	var failureRows []db.FailureRow
	for activityID, records := range result.Failures {
		for _, record := range records {
			failureRows = append(failureRows, db.FailureRow{
				RunID:           runID,
				ActivityID:      activityID,
				OccurrenceIndex: record.OccurrenceIndex,
				Reason:          string(record.Reason),
				Detail:          record.Detail,
			})
		}
	}
	if err := store.InsertFailures(ctx, failureRows); err != nil {
		return fmt.Errorf("insert failure records: %w", err)
	}

	return nil
}
