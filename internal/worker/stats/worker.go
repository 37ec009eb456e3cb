// Package stats implements the hourly statistics snapshot worker.
package stats

import (
	"context"
	"time"

	"github.com/burlang/burlang/internal/database"
	"github.com/burlang/burlang/internal/setup"
	"go.uber.org/zap"
)

// Worker periodically snapshots platform counters into the hourly stats
// table and trims snapshots past the retention window.
type Worker struct {
	db            database.Client
	interval      time.Duration
	retentionDays int
	logger        *zap.Logger
}

// New creates a new stats worker.
func New(app *setup.App, logger *zap.Logger) *Worker {
	return &Worker{
		db:            app.DB,
		interval:      time.Hour,
		retentionDays: app.Config.Worker.StatsRetentionDays,
		logger:        logger.Named("stats_worker"),
	}
}

// Start runs the snapshot loop until the context is cancelled. One snapshot
// is taken immediately so a fresh deployment has data before the first tick.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Stats worker started",
		zap.Duration("interval", w.interval),
		zap.Int("retentionDays", w.retentionDays))

	w.runOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stats worker stopping")
			return ctx.Err()
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

// runOnce takes one snapshot and purges expired ones. Failures are logged
// and retried on the next tick rather than stopping the loop.
func (w *Worker) runOnce(ctx context.Context) {
	stats, err := w.db.Service().Stats().GetCurrentStats(ctx)
	if err != nil {
		w.logger.Error("Failed to collect stats", zap.Error(err))
		return
	}

	if err := w.db.Service().Stats().SaveHourlyStats(ctx, stats); err != nil {
		w.logger.Error("Failed to save stats snapshot", zap.Error(err))
		return
	}

	if err := w.db.Service().Stats().PurgeOldStats(ctx, w.retentionDays); err != nil {
		w.logger.Error("Failed to purge old stats", zap.Error(err))
		return
	}

	w.logger.Info("Stats snapshot saved",
		zap.Time("timestamp", stats.Timestamp),
		zap.Int64("contributors", stats.Contributors),
		zap.Int64("translations", stats.Translations))
}
