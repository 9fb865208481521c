// Package services orchestrates the scheduler core against the persistence
// layer: fetch validated input records, run the scheduler, and persist the
// outcome unless the caller asked for a dry run.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/brightwell-health/care-scheduler/internal/config"
	"github.com/brightwell-health/care-scheduler/pkg/core/model"
	"github.com/brightwell-health/care-scheduler/pkg/core/scheduler"
	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
	"github.com/brightwell-health/care-scheduler/pkg/db"
)

// RunScheduleStore defines the database operations RunSchedule needs.
type RunScheduleStore interface {
	db.ActivityStore
	db.ResourceStore
	db.RunStore
}

// RunScheduleResult wraps the scheduler's output with the run identity that
// was assigned to it.
type RunScheduleResult struct {
	RunID  string
	Result *scheduler.Result
	DryRun bool
}

// RunSchedule fetches the activity and resource tables, expands any
// recurring blackouts into travel periods, validates every input record,
// runs the scheduling core, and persists the outcome unless dryRun is set.
func RunSchedule(ctx context.Context, store RunScheduleStore, cfg *config.Config, logger *zap.Logger, dryRun bool) (*RunScheduleResult, error) {
	logger.Debug("starting schedule run", zap.Bool("dry_run", dryRun), zap.String("start_date", cfg.StartDate.String()), zap.String("end_date", cfg.EndDate.String()))

	activityRows, err := store.GetActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("services: fetch activities: %w", err)
	}
	logger.Debug("fetched activities", zap.Int("count", len(activityRows)))

	specialistRows, err := store.GetSpecialists(ctx)
	if err != nil {
		return nil, fmt.Errorf("services: fetch specialists: %w", err)
	}
	logger.Debug("fetched specialists", zap.Int("count", len(specialistRows)))

	equipmentRows, err := store.GetEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("services: fetch equipment: %w", err)
	}
	logger.Debug("fetched equipment", zap.Int("count", len(equipmentRows)))

	travelRows, err := store.GetTravelPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("services: fetch travel periods: %w", err)
	}
	logger.Debug("fetched travel periods", zap.Int("count", len(travelRows)))

	activities, err := decodeActivities(activityRows)
	if err != nil {
		return nil, fmt.Errorf("services: decode activities: %w", err)
	}
	specialists, err := decodeSpecialists(specialistRows)
	if err != nil {
		return nil, fmt.Errorf("services: decode specialists: %w", err)
	}
	equipment, err := decodeEquipment(equipmentRows)
	if err != nil {
		return nil, fmt.Errorf("services: decode equipment: %w", err)
	}
	travel, err := decodeTravelPeriods(travelRows)
	if err != nil {
		return nil, fmt.Errorf("services: decode travel periods: %w", err)
	}

	blackouts, err := expandRecurringBlackouts(cfg)
	if err != nil {
		return nil, fmt.Errorf("services: expand recurring blackouts: %w", err)
	}
	if len(blackouts) > 0 {
		logger.Debug("expanded recurring blackouts", zap.Int("count", len(blackouts)))
		travel = append(travel, blackouts...)
	}

	if err := model.Validate(activities, specialists, equipment, travel); err != nil {
		return nil, fmt.Errorf("services: input validation failed: %w", err)
	}

	defaults := scheduler.DefaultConfig(cfg.StartDate, cfg.EndDate)
	schedulerCfg := scheduler.Config{
		StartDate:              cfg.StartDate,
		EndDate:                cfg.EndDate,
		DayStart:               defaults.DayStart,
		DayEnd:                 defaults.DayEnd,
		SlotGranularityMinutes: cfg.SlotGranularityMinutes,
		CandidateCap:           cfg.CandidateCap,
		LightDayThreshold:      cfg.LightDayThreshold,
	}
	if cfg.DayWindowStart != "" {
		start, err := timeutil.ParseClock(cfg.DayWindowStart)
		if err != nil {
			return nil, fmt.Errorf("services: parse dayWindowStart: %w", err)
		}
		schedulerCfg.DayStart = start
	}
	if cfg.DayWindowEnd != "" {
		end, err := timeutil.ParseClock(cfg.DayWindowEnd)
		if err != nil {
			return nil, fmt.Errorf("services: parse dayWindowEnd: %w", err)
		}
		schedulerCfg.DayEnd = end
	}

	result := scheduler.Run(activities, specialists, equipment, travel, schedulerCfg)
	logger.Info("schedule run complete", zap.Int("booked_slots", len(result.Slots)), zap.Int("activities_with_failures", len(result.Failures)))

	runID := uuid.NewString()
	if dryRun {
		return &RunScheduleResult{RunID: runID, Result: result, DryRun: true}, nil
	}

	if err := persistResult(ctx, store, runID, cfg, result); err != nil {
		return nil, fmt.Errorf("services: persist schedule run: %w", err)
	}

	return &RunScheduleResult{RunID: runID, Result: result, DryRun: false}, nil
}

// expandRecurringBlackouts turns each configured rrule into a synthetic
// model.TravelPeriod covering every occurrence plus its configured length,
// within the scheduling horizon.
func expandRecurringBlackouts(cfg *config.Config) ([]model.TravelPeriod, error) {
	if len(cfg.RecurringBlackouts) == 0 {
		return nil, nil
	}

	searchStart := cfg.StartDate.Time()
	searchEnd := cfg.EndDate.Time()

	var out []model.TravelPeriod
	for i, blackout := range cfg.RecurringBlackouts {
		rule, err := rrule.StrToRRule(blackout.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in recurringBlackouts[%d]: %w", i, err)
		}
		rule.DTStart(searchStart)

		for occIdx, occurrence := range rule.Between(searchStart, searchEnd, true) {
			occDate, err := timeutil.ParseDate(occurrence.Format("2006-01-02"))
			if err != nil {
				return nil, err
			}
			out = append(out, model.TravelPeriod{
				ID:            fmt.Sprintf("blackout-%d-%d", i, occIdx),
				StartDate:     occDate,
				EndDate:       occDate.AddDays(blackout.DurationDays - 1),
				RemoteCapable: blackout.RemoteCapableOnly,
			})
		}
	}
	return out, nil
}
