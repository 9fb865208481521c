// Package config loads and validates the scheduler's YAML configuration
// file, following the same locate-then-parse-then-validate shape used
// throughout the rest of the care-scheduler CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/brightwell-health/care-scheduler/pkg/core/timeutil"
)

// RecurringBlackout describes a recurring period during which the client is
// away, expanded into concrete travel periods via its RRule before the
// scheduler runs.
type RecurringBlackout struct {
	RRule             string `yaml:"rrule" validate:"required"`
	DurationDays      int    `yaml:"durationDays" validate:"required,min=1"`
	RemoteCapableOnly bool   `yaml:"remoteCapableOnly,omitempty"`
}

// Config is the top-level scheduler configuration.
type Config struct {
	StartDate timeutil.Date `yaml:"startDate" validate:"required"`
	EndDate   timeutil.Date `yaml:"endDate" validate:"required"`

	DayWindowStart string `yaml:"dayWindowStart,omitempty"`
	DayWindowEnd   string `yaml:"dayWindowEnd,omitempty"`

	SlotGranularityMinutes int `yaml:"slotGranularityMinutes,omitempty" validate:"omitempty,min=5"`
	CandidateCap           int `yaml:"candidateCap,omitempty" validate:"omitempty,min=1"`
	LightDayThreshold      int `yaml:"lightDayThreshold,omitempty" validate:"omitempty,min=0"`

	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	RecurringBlackouts []RecurringBlackout `yaml:"recurringBlackouts,omitempty" validate:"dive"`
}

var validate = validator.New()

// Load finds and parses care_scheduler.yaml, checking the current
// directory before the user's home directory, following the convention the
// rest of the CLI uses for config discovery.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("config: find config file: %w", err)
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration at an explicit path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate runs struct-tag validation plus the rrule and date-range checks
// that validator tags alone cannot express.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}

	if cfg.EndDate.Before(cfg.StartDate) {
		return fmt.Errorf("config: endDate must not be before startDate")
	}

	for i, blackout := range cfg.RecurringBlackouts {
		if _, err := rrule.StrToRRule(blackout.RRule); err != nil {
			return fmt.Errorf("config: invalid rrule in recurringBlackouts[%d]: %w", i, err)
		}
	}

	return nil
}

func findConfigFile() (string, error) {
	const configFileName = "care_scheduler.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config: %s not found in current directory or home directory", configFileName)
}
