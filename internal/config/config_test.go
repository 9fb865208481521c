package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		StartDate:   timeutil.NewDate(2026, time.March, 1),
		EndDate:     timeutil.NewDate(2026, time.March, 31),
		DatabaseURL: "postgres://localhost/care_scheduler",
		RecurringBlackouts: []RecurringBlackout{
			{RRule: "FREQ=WEEKLY;BYDAY=FR;INTERVAL=2", DurationDays: 1},
		},
	}
	assert.NoError(t, Validate(cfg))
}

func TestValidate_MinimalConfig(t *testing.T) {
	cfg := &Config{
		StartDate:   timeutil.NewDate(2026, time.March, 1),
		EndDate:     timeutil.NewDate(2026, time.March, 31),
		DatabaseURL: "postgres://localhost/care_scheduler",
	}
	assert.NoError(t, Validate(cfg))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := &Config{
		StartDate: timeutil.NewDate(2026, time.March, 1),
		EndDate:   timeutil.NewDate(2026, time.March, 31),
		// Missing DatabaseURL
	}
	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_EndBeforeStart(t *testing.T) {
	cfg := &Config{
		StartDate:   timeutil.NewDate(2026, time.March, 31),
		EndDate:     timeutil.NewDate(2026, time.March, 1),
		DatabaseURL: "postgres://localhost/care_scheduler",
	}
	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "endDate must not be before startDate")
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := &Config{
		StartDate:   timeutil.NewDate(2026, time.March, 1),
		EndDate:     timeutil.NewDate(2026, time.March, 31),
		DatabaseURL: "postgres://localhost/care_scheduler",
		RecurringBlackouts: []RecurringBlackout{
			{RRule: "NOT_AN_RRULE", DurationDays: 1},
		},
	}
	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validConfig := `
startDate: "2026-03-01"
endDate: "2026-03-31"
dayWindowStart: "07:00"
dayWindowEnd: "20:00"
slotGranularityMinutes: 15
candidateCap: 16
lightDayThreshold: 10
databaseURL: "postgres://localhost/care_scheduler"
recurringBlackouts:
  - rrule: "FREQ=WEEKLY;BYDAY=FR;INTERVAL=2"
    durationDays: 1
    remoteCapableOnly: true
`

	require.NoError(t, os.WriteFile(configPath, []byte(validConfig), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01", cfg.StartDate.String())
	assert.Equal(t, "2026-03-31", cfg.EndDate.String())
	assert.Equal(t, "07:00", cfg.DayWindowStart)
	assert.Equal(t, 15, cfg.SlotGranularityMinutes)
	assert.Equal(t, 16, cfg.CandidateCap)
	assert.Equal(t, 10, cfg.LightDayThreshold)

	require.Len(t, cfg.RecurringBlackouts, 1)
	blackout := cfg.RecurringBlackouts[0]
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=FR;INTERVAL=2", blackout.RRule)
	assert.Equal(t, 1, blackout.DurationDays)
	assert.True(t, blackout.RemoteCapableOnly)
}

func TestLoadFromPath_MinimalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal_config.yaml")

	minimalConfig := `
startDate: "2026-03-01"
endDate: "2026-03-31"
databaseURL: "postgres://localhost/care_scheduler"
`

	require.NoError(t, os.WriteFile(configPath, []byte(minimalConfig), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/care_scheduler", cfg.DatabaseURL)
	assert.Empty(t, cfg.RecurringBlackouts)
}

func TestLoadFromPath_MissingRequiredField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_config.yaml")

	invalidConfig := `
startDate: "2026-03-01"
endDate: "2026-03-31"
`

	require.NoError(t, os.WriteFile(configPath, []byte(invalidConfig), 0644))

	_, err := LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
startDate: "2026-03-01"
  invalid indentation
endDate: "2026-03-31"
`

	require.NoError(t, os.WriteFile(configPath, []byte(invalidYAML), 0644))

	_, err := LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadFromPath_BlackoutWithoutRRule(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_blackout.yaml")

	invalidBlackout := `
startDate: "2026-03-01"
endDate: "2026-03-31"
databaseURL: "postgres://localhost/care_scheduler"
recurringBlackouts:
  - durationDays: 1
`

	require.NoError(t, os.WriteFile(configPath, []byte(invalidBlackout), 0644))

	_, err := LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
