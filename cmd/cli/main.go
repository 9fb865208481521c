// Command cli is the operator entry point for the care scheduler: it loads
// configuration, connects to Postgres, and dispatches to subcommands that
// run or migrate the scheduling store.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brightwell-health/care-scheduler/cmd/cli/commands"
	"github.com/brightwell-health/care-scheduler/internal/config"
	"github.com/brightwell-health/care-scheduler/pkg/postgres"
	"github.com/brightwell-health/care-scheduler/pkg/utils/logging"
)

var (
	env        string
	configPath string
	app        *commands.App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "care-scheduler CLI - run and maintain drop-in activity scheduling",
		Long:  `A CLI tool for running the health-activity scheduler and maintaining its database.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.DB != nil {
					app.DB.Close()
				}
				if app.Logger != nil {
					app.Logger.Sync()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment (dev, test, prod)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to care_scheduler.yaml (defaults to the standard search path)")

	rootCmd.AddCommand(commands.RunCmd(&app))
	rootCmd.AddCommand(commands.MigrateCmd(&app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initApp() error {
	var err error
	app = &commands.App{Ctx: context.Background()}

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger.Info("starting care-scheduler CLI", zap.String("environment", env))

	if configPath != "" {
		app.Config, err = config.LoadFromPath(configPath)
	} else {
		app.Config, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("configuration loaded",
		zap.String("start_date", app.Config.StartDate.String()),
		zap.String("end_date", app.Config.EndDate.String()))

	app.DB, err = postgres.NewDB(app.Ctx, app.Config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}
