// Package commands holds the care-scheduler CLI's subcommands and the
// shared application handle they operate against.
package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/brightwell-health/care-scheduler/internal/config"
	"github.com/brightwell-health/care-scheduler/pkg/postgres"
)

// App holds the dependencies every subcommand needs.
type App struct {
	Config *config.Config
	DB     *postgres.DB
	Logger *zap.Logger
	Ctx    context.Context
}
