package cmd

import (
	"context"
	"fmt"
	"time"

	"roster-sync/core/metrics"
	"roster-sync/core/patientapi"
	rostersync "roster-sync/feature/sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncDate   string
	syncDryRun bool
)

// syncCmd runs the full roster to patient synchronization.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Create and update patients for changed roster employees",
	Long: `Diff the roster of --date (default today) against the previous day, then
create patients for new employees and update patients for changed ones.

The update outcomes are written to stdout as JSON.

Examples:
  # Sync today's roster
  roster-sync sync

  # Show what would be sent for a given day without writing
  roster-sync sync --date 2024-01-15 --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncDate, "date", "", "Roster date to sync (YYYY-MM-DD, default today)")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Look up identities but send no create or update requests")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	date, err := parseDate(syncDate, time.Now())
	if err != nil {
		return err
	}

	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	l := rt.logger
	l.Info("Starting roster sync", zap.String("date", date.Format(dateLayout)), zap.Bool("dry_run", syncDryRun))

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	defer func() {
		if err := metrics.Push(ctx, rt.cfg.Metrics, reg); err != nil {
			l.Warn("Failed to push metrics", zap.Error(err))
		}
	}()

	if err := rt.cfg.API.Validate(); err != nil {
		return err
	}

	api := patientapi.New(rt.cfg.API)
	if err := api.Authenticate(ctx); err != nil {
		return fmt.Errorf("failed to authenticate with patient api: %w", err)
	}

	svc := rostersync.NewService(rt.differ(), api, collector, l)
	report, err := svc.Run(ctx, date, rostersync.Options{DryRun: syncDryRun})
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if rt.cfg.Report.Enabled {
		archiver := rostersync.NewArchiver(rt.storage, rt.cfg.Storage.Bucket, rt.cfg.Report.Prefix)
		if key, err := archiver.Archive(ctx, report); err != nil {
			l.Warn("Failed to archive run report", zap.Error(err))
		} else {
			l.Info("Archived run report", zap.String("key", key))
		}
	}

	return writeJSON(cmd.OutOrStdout(), report.Updates())
}
