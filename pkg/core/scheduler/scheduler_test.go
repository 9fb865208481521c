package scheduler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwell-health/care-scheduler/pkg/core/model"
	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
)

func mustDate(t *testing.T, s string) timeutil.Date {
	t.Helper()
	d, err := timeutil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func window(start, end string) *model.TimeWindow {
	s, _ := timeutil.ParseClock(start)
	e, _ := timeutil.ParseClock(end)
	return &model.TimeWindow{Start: s, End: e}
}

func countForActivity(result *Result, activityID string) int {
	n := 0
	for _, s := range result.Slots {
		if s.ActivityID == activityID {
			n++
		}
	}
	return n
}

// S1 - priority preempts: two identical daily activities competing for the
// same slot; the higher-priority one wins every day and the loser records
// an overlap failure each time.
func TestS1_PriorityPreempts(t *testing.T) {
	cfg := DefaultConfig(mustDate(t, "2026-03-02"), mustDate(t, "2026-03-08")) // Mon-Sun

	a1 := model.Activity{ID: "a1", Type: model.Fitness, Priority: 1, Frequency: model.NewDailyFrequency(), DurationMinutes: 30, Window: window("08:00", "08:30"), Location: model.Home}
	a2 := model.Activity{ID: "a2", Type: model.Fitness, Priority: 2, Frequency: model.NewDailyFrequency(), DurationMinutes: 30, Window: window("08:00", "08:30"), Location: model.Home}

	result := Run([]model.Activity{a1, a2}, nil, nil, nil, cfg)

	assert.Equal(t, 7, countForActivity(result, "a1"))
	assert.Equal(t, 0, countForActivity(result, "a2"))

	failures := result.Failures["a2"]
	require.Len(t, failures, 7)
	for _, f := range failures {
		assert.Equal(t, ReasonOverlap, f.Reason)
	}
}

// S2 - specialist limits: a daily activity requiring a specialist who is
// only available Mon-Wed should place three times and fail the rest with
// specialist-unavailable.
func TestS2_SpecialistLimits(t *testing.T) {
	cfg := DefaultConfig(mustDate(t, "2026-03-02"), mustDate(t, "2026-03-08"))

	specialist := model.Specialist{
		ID:         "x",
		Discipline: model.Trainer,
		Availability: []model.AvailabilityBlock{
			{Weekday: 0, Start: timeutil.NewClock(8, 0), End: timeutil.NewClock(12, 0)},
			{Weekday: 1, Start: timeutil.NewClock(8, 0), End: timeutil.NewClock(12, 0)},
			{Weekday: 2, Start: timeutil.NewClock(8, 0), End: timeutil.NewClock(12, 0)},
		},
		DaysOff: []int{3, 4, 5, 6},
	}

	activity := model.Activity{ID: "a1", Type: model.Therapy, Priority: 1, Frequency: model.NewDailyFrequency(), DurationMinutes: 60, SpecialistID: "x"}

	result := Run([]model.Activity{activity}, []model.Specialist{specialist}, nil, nil, cfg)

	assert.Equal(t, 3, countForActivity(result, "a1"))
	for _, s := range result.Slots {
		assert.True(t, s.Date.Weekday() <= 2)
		assert.True(t, s.Start >= timeutil.NewClock(8, 0) && s.End() <= timeutil.NewClock(12, 0))
	}

	failures := result.Failures["a1"]
	require.Len(t, failures, 4)
	for _, f := range failures {
		assert.Equal(t, ReasonSpecialistUnavailable, f.Reason)
	}
}

// S3 - equipment maintenance blocks exactly the one occurrence whose date
// falls inside the maintenance window.
func TestS3_EquipmentMaintenance(t *testing.T) {
	cfg := DefaultConfig(mustDate(t, "2026-03-02"), mustDate(t, "2026-03-08")) // Mon-Sun

	wed := mustDate(t, "2026-03-04")
	equipment := model.Equipment{
		ID: "y",
		MaintenanceWindows: []model.MaintenanceWindow{
			{StartDate: wed, EndDate: wed, Start: timeutil.NewClock(10, 0), End: timeutil.NewClock(12, 0)},
		},
	}
	activity := model.Activity{ID: "a1", Type: model.Fitness, Priority: 1, Frequency: model.NewDailyFrequency(), DurationMinutes: 60, EquipmentIDs: []string{"y"}, Window: window("10:00", "12:00")}

	result := Run([]model.Activity{activity}, nil, []model.Equipment{equipment}, nil, cfg)

	assert.Equal(t, 6, countForActivity(result, "a1"))
	for _, s := range result.Slots {
		assert.False(t, s.Date.Equal(wed))
	}

	failures := result.Failures["a1"]
	require.Len(t, failures, 1)
	assert.Equal(t, ReasonEquipmentUnavailable, failures[0].Reason)
}

// S4 - travel blocks a non-remote activity on the covered dates but never a
// remote-capable one.
func TestS4_TravelVsRemote(t *testing.T) {
	cfg := DefaultConfig(mustDate(t, "2026-03-02"), mustDate(t, "2026-03-08"))

	travel := model.TravelPeriod{
		ID:        "trip",
		StartDate: mustDate(t, "2026-03-05"),
		EndDate:   mustDate(t, "2026-03-06"),
	}

	remote := model.Activity{ID: "a1", Type: model.Food, Priority: 1, Frequency: model.NewDailyFrequency(), DurationMinutes: 30, RemoteCapable: true}
	onSite := model.Activity{ID: "a2", Type: model.Fitness, Priority: 1, Frequency: model.NewDailyFrequency(), DurationMinutes: 30, RemoteCapable: false}

	result := Run([]model.Activity{remote, onSite}, nil, nil, []model.TravelPeriod{travel}, cfg)

	assert.Equal(t, 7, countForActivity(result, "a1"))
	assert.Equal(t, 5, countForActivity(result, "a2"))

	failures := result.Failures["a2"]
	require.Len(t, failures, 2)
	for _, f := range failures {
		assert.Equal(t, ReasonTravel, f.Reason)
	}
}

// S5 - flexible-week fallback: a Monday-only weekly activity blocked every
// Monday cannot place at all; freed on week 3 it places there instead.
func TestS5_FlexibleWeekFallback_AllBlocked(t *testing.T) {
	cfg := DefaultConfig(mustDate(t, "2026-03-02"), mustDate(t, "2026-03-22")) // 21 days, 3 full weeks

	blocker := model.Activity{ID: "b", Type: model.Fitness, Priority: 1, Frequency: model.NewDailyFrequency(), DurationMinutes: 60, Window: window("08:00", "09:00")}
	weekly := model.Activity{ID: "a", Type: model.Fitness, Priority: 3, Frequency: model.NewWeeklyFrequency(1, []int{0}), DurationMinutes: 60, Window: window("08:00", "09:00")}

	result := Run([]model.Activity{blocker, weekly}, nil, nil, nil, cfg)

	assert.Equal(t, 0, countForActivity(result, "a"))
	assert.NotEmpty(t, result.Failures["a"])
}

func TestS5_FlexibleWeekFallback_FreedWeek(t *testing.T) {
	cfg := DefaultConfig(mustDate(t, "2026-03-02"), mustDate(t, "2026-03-22")) // 3 Mondays: day1, day8, day15

	travelOverWeek3 := model.TravelPeriod{ID: "t", StartDate: mustDate(t, "2026-03-16"), EndDate: mustDate(t, "2026-03-16")}

	// Non-remote blocker occupies week 1 and week 2's Mondays but is itself
	// travel-excluded from week 3's Monday, leaving that slot free.
	blocker := model.Activity{
		ID: "b", Type: model.Fitness, Priority: 1, RemoteCapable: false,
		Frequency: model.NewWeeklyFrequency(1, []int{0}), DurationMinutes: 60, Window: window("08:00", "09:00"),
	}
	weekly := model.Activity{
		ID: "a", Type: model.Fitness, Priority: 3, RemoteCapable: true,
		Frequency: model.NewWeeklyFrequency(1, []int{0}), DurationMinutes: 60, Window: window("08:00", "09:00"),
	}

	result := Run([]model.Activity{blocker, weekly}, nil, nil, []model.TravelPeriod{travelOverWeek3}, cfg)

	require.GreaterOrEqual(t, countForActivity(result, "a"), 1)
	var placedOnWeek3 bool
	for _, s := range result.Slots {
		if s.ActivityID == "a" && s.Date.Equal(mustDate(t, "2026-03-16")) {
			placedOnWeek3 = true
		}
	}
	assert.True(t, placedOnWeek3, "flexible-week fallback should have placed an occurrence of A on week 3's Monday")
}

// S6 - backfill: a day fully saturated by higher-priority activities forces
// a low-priority activity with no flexible-week fallback (Custom frequency,
// which carries no backup dates) into Phase 2, which must
// place it on the earliest light day instead.
func TestS6_Backfill(t *testing.T) {
	cfg := DefaultConfig(mustDate(t, "2026-03-02"), mustDate(t, "2026-03-15")) // 14 days, starts Monday

	// 30 half-hour saturators exactly fill day one's 06:00-21:00 window,
	// leaving no gap anywhere for a 30-minute candidate.
	var saturators []model.Activity
	for i := 0; i < 30; i++ {
		saturators = append(saturators, model.Activity{
			ID: fmt.Sprintf("sat%d", i), Type: model.Fitness, Priority: 1,
			Frequency: model.NewCustomFrequency(14), DurationMinutes: 30,
		})
	}

	backfilled := model.Activity{ID: "a", Type: model.Fitness, Priority: 4, Frequency: model.NewCustomFrequency(14), DurationMinutes: 30}

	activities := append(saturators, backfilled)
	result := Run(activities, nil, nil, nil, cfg)

	require.Equal(t, 1, countForActivity(result, "a"))
	for _, s := range result.Slots {
		if s.ActivityID == "a" {
			assert.Equal(t, mustDate(t, "2026-03-03"), s.Date) // earliest light day after the saturated Monday
		}
	}
	assert.Empty(t, result.Failures["a"])
}

// Boundary: a one-day horizon places a daily activity exactly once.
func TestBoundary_SingleDayHorizonDaily(t *testing.T) {
	d := mustDate(t, "2026-03-02")
	cfg := DefaultConfig(d, d)

	activity := model.Activity{ID: "a", Type: model.Fitness, Priority: 1, Frequency: model.NewDailyFrequency(), DurationMinutes: 30}
	result := Run([]model.Activity{activity}, nil, nil, nil, cfg)

	assert.Equal(t, 1, countForActivity(result, "a"))
}

// Boundary: a zero-availability specialist fails every occurrence.
func TestBoundary_ZeroAvailabilitySpecialist(t *testing.T) {
	cfg := DefaultConfig(mustDate(t, "2026-03-02"), mustDate(t, "2026-03-08"))

	specialist := model.Specialist{ID: "x", Discipline: model.Physician}
	activity := model.Activity{ID: "a", Type: model.Consultation, Priority: 1, Frequency: model.NewDailyFrequency(), DurationMinutes: 30, SpecialistID: "x"}

	result := Run([]model.Activity{activity}, []model.Specialist{specialist}, nil, nil, cfg)

	assert.Equal(t, 0, countForActivity(result, "a"))
	failures := result.Failures["a"]
	require.Len(t, failures, 7)
	for _, f := range failures {
		assert.Equal(t, ReasonSpecialistUnavailable, f.Reason)
	}
}

// Invariant: no two slots on the same day overlap, across a busy run.
func TestInvariant_NoSameDayOverlap(t *testing.T) {
	cfg := DefaultConfig(mustDate(t, "2026-03-02"), mustDate(t, "2026-03-08"))

	var activities []model.Activity
	for i := 1; i <= 5; i++ {
		activities = append(activities, model.Activity{
			ID: fmt.Sprintf("a%d", i), Type: model.Fitness, Priority: i % 5,
			Frequency: model.NewDailyFrequency(), DurationMinutes: 30,
		})
	}

	result := Run(activities, nil, nil, nil, cfg)

	byDate := make(map[timeutil.Date][]model.BookedSlot)
	for _, s := range result.Slots {
		byDate[s.Date] = append(byDate[s.Date], s)
	}
	for _, slots := range byDate {
		for i := 0; i < len(slots); i++ {
			for j := i + 1; j < len(slots); j++ {
				overlap := timeutil.RangesOverlap(slots[i].Start, slots[i].End(), slots[j].Start, slots[j].End())
				assert.False(t, overlap, "slots %+v and %+v overlap", slots[i], slots[j])
			}
		}
	}
}

// Invariant: determinism - two runs over identical inputs produce identical
// booked-slot lists.
func TestInvariant_Determinism(t *testing.T) {
	cfg := DefaultConfig(mustDate(t, "2026-03-02"), mustDate(t, "2026-03-15"))

	activities := []model.Activity{
		{ID: "a1", Type: model.Fitness, Priority: 1, Frequency: model.NewDailyFrequency(), DurationMinutes: 30},
		{ID: "a2", Type: model.Therapy, Priority: 2, Frequency: model.NewWeeklyFrequency(3, nil), DurationMinutes: 45, SpecialistID: "x"},
	}
	specialists := []model.Specialist{
		{ID: "x", Discipline: model.Therapist, Availability: []model.AvailabilityBlock{
			{Weekday: 0, Start: timeutil.NewClock(9, 0), End: timeutil.NewClock(17, 0)},
			{Weekday: 2, Start: timeutil.NewClock(9, 0), End: timeutil.NewClock(17, 0)},
			{Weekday: 4, Start: timeutil.NewClock(9, 0), End: timeutil.NewClock(17, 0)},
		}},
	}

	first := Run(activities, specialists, nil, nil, cfg)
	second := Run(activities, specialists, nil, nil, cfg)

	require.Equal(t, len(first.Slots), len(second.Slots))
	for i := range first.Slots {
		assert.Equal(t, first.Slots[i], second.Slots[i])
	}
	assert.Equal(t, first.Failures, second.Failures)
}
