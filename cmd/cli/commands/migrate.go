package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// MigrateCmd applies any embedded database migrations that have not yet
// been recorded against the configured database.
func MigrateCmd(appRef **App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *appRef
			if err := app.DB.RunMigrations(app.Ctx); err != nil {
				return err
			}
			fmt.Println("Migrations applied.")
			return nil
		},
	}
}
