package models

import (
	"context"
	"fmt"
	"time"

	"github.com/burlang/burlang/internal/database/dbretry"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// StatsModel handles database operations for statistics.
type StatsModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewStats creates a new stats model.
func NewStats(db *bun.DB, logger *zap.Logger) *StatsModel {
	return &StatsModel{
		db:     db,
		logger: logger.Named("db_stats"),
	}
}

// Count returns the number of rows for the given model.
func (r *StatsModel) Count(ctx context.Context, model any) (int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		count, err := r.db.NewSelect().
			Model(model).
			Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count %T: %w", model, err)
		}
		return int64(count), nil
	})
}

// SaveHourlyStats saves the current statistics snapshot.
func (r *StatsModel) SaveHourlyStats(ctx context.Context, stats *types.HourlyStats) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(stats).
			On("CONFLICT (timestamp) DO UPDATE").
			Set("contributors = EXCLUDED.contributors").
			Set("suggested_sentences = EXCLUDED.suggested_sentences").
			Set("accepted_sentences = EXCLUDED.accepted_sentences").
			Set("translations = EXCLUDED.translations").
			Set("confirmed_translations = EXCLUDED.confirmed_translations").
			Set("suggested_words = EXCLUDED.suggested_words").
			Set("accepted_words = EXCLUDED.accepted_words").
			Set("votes = EXCLUDED.votes").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to save hourly stats: %w", err)
		}
		return nil
	})
}

// GetLatestStats retrieves the most recent statistics snapshot.
func (r *StatsModel) GetLatestStats(ctx context.Context) (*types.HourlyStats, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.HourlyStats, error) {
		var stats types.HourlyStats
		err := r.db.NewSelect().
			Model(&stats).
			Order("timestamp DESC").
			Limit(1).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest stats: %w", err)
		}
		return &stats, nil
	})
}

// PurgeOldStats removes snapshots older than the cutoff date.
func (r *StatsModel) PurgeOldStats(ctx context.Context, cutoff time.Time) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewDelete().
			Model((*types.HourlyStats)(nil)).
			Where("timestamp < ?", cutoff).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to purge old stats: %w", err)
		}
		return nil
	})
}
