package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"roster-sync/core/config"
	"roster-sync/core/database"
	"roster-sync/core/logger"
	"roster-sync/core/secrets"
	"roster-sync/core/storage"
	"roster-sync/feature/roster"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// runtime holds the resources shared by the commands of one invocation.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	storage storage.Client
}

// setup loads configuration, builds the logger and opens the warehouse.
// Object storage is only connected when secrets or report archiving need it.
func setup(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: l}

	if cfg.Secrets.Enabled() || cfg.Report.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Storage.Bucket, err)
		}
		if !exists {
			return nil, fmt.Errorf("bucket %s does not exist", cfg.Storage.Bucket)
		}
		rt.storage = client
	}

	warehouse := cfg.Warehouse
	if cfg.Secrets.Enabled() {
		bundle, err := secrets.NewObjectStore(rt.storage, cfg.Storage.Bucket).GetSecret(ctx, cfg.Secrets.Object)
		if err != nil {
			return nil, fmt.Errorf("failed to load warehouse credentials: %w", err)
		}
		warehouse = bundle.Apply(warehouse)
	}

	db, err := database.Connect(warehouse)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	rt.db = db

	return rt, nil
}

// close releases the warehouse connection and flushes the logger.
func (rt *runtime) close() {
	if err := database.Close(rt.db); err != nil {
		rt.logger.Warn("Failed to close warehouse connection", zap.Error(err))
	}
	_ = rt.logger.Sync()
}

func (rt *runtime) differ() *roster.Differ {
	loader := roster.NewLoader(rt.db, rt.cfg.Warehouse.StagingTable, rt.logger)
	return roster.NewDiffer(loader)
}

// parseDate parses a --date value, defaulting to today.
func parseDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return t, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
