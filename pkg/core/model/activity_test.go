package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityType_IsValid(t *testing.T) {
	assert.True(t, Medication.IsValid())
	assert.True(t, Consultation.IsValid())
	assert.False(t, ActivityType("Yoga").IsValid())
}

func TestFrequencyConstructors(t *testing.T) {
	assert.Equal(t, Frequency{Pattern: Daily}, NewDailyFrequency())
	assert.Equal(t, Frequency{Pattern: Weekly, Count: 2, PreferredWeekdays: []int{0, 2}}, NewWeeklyFrequency(2, []int{0, 2}))
	assert.Equal(t, Frequency{Pattern: Monthly, Count: 4}, NewMonthlyFrequency(4))
	assert.Equal(t, Frequency{Pattern: Custom, IntervalDays: 14}, NewCustomFrequency(14))
}

func TestActivity_RequiresSpecialist(t *testing.T) {
	a := baseActivity()
	assert.False(t, a.RequiresSpecialist())

	a.SpecialistID = "spec-1"
	assert.True(t, a.RequiresSpecialist())
}
