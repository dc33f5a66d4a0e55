package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var diffDate string

// diffCmd prints the change set without contacting the patient API.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Print the roster change set as JSON",
	Long: `Load the roster of --date (default today) and the previous day from the
warehouse and print the employees that are new or changed.`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffDate, "date", "", "Roster date to diff (YYYY-MM-DD, default today)")

	RootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	date, err := parseDate(diffDate, time.Now())
	if err != nil {
		return err
	}

	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	cs, err := rt.differ().ChangeSet(ctx, date)
	if err != nil {
		return err
	}

	rt.logger.Info("Roster change set",
		zap.String("date", cs.Date),
		zap.Int("current", cs.Summary.Current),
		zap.Int("previous", cs.Summary.Previous),
		zap.Int("added", cs.Summary.Added),
		zap.Int("modified", cs.Summary.Modified),
		zap.Int("unchanged", cs.Summary.Unchanged),
	)

	return writeJSON(cmd.OutOrStdout(), cs)
}
