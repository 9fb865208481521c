package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brightwell-health/care-scheduler/pkg/core/services"
)

// RunCmd runs the scheduler against the configured horizon and, unless
// --dry-run is set, persists the result.
func RunCmd(appRef **App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scheduler for the configured horizon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := *appRef

			result, err := services.RunSchedule(app.Ctx, app.DB, app.Config, app.Logger, dryRun)
			if err != nil {
				return err
			}

			printRunSummary(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the scheduler without persisting the result")

	return cmd
}

func printRunSummary(result *services.RunScheduleResult) {
	fmt.Printf("\nRun ID: %s", result.RunID)
	if result.DryRun {
		fmt.Printf(" (dry run, not persisted)")
	}
	fmt.Println()

	fmt.Printf("Booked slots: %d\n", len(result.Result.Slots))

	if len(result.Result.Failures) == 0 {
		fmt.Println("No unresolved failures.")
		return
	}

	fmt.Printf("Unresolved failures across %d activities:\n", len(result.Result.Failures))
	for activityID, records := range result.Result.Failures {
		fmt.Printf("  %s: %d unplaced occurrence(s)\n", activityID, len(records))
		for _, r := range records {
			fmt.Printf("    occurrence %d: %s (%s)\n", r.OccurrenceIndex, r.Reason, r.Detail)
		}
	}
}
