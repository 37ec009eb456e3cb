package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/burlang/burlang/internal/database/models"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// StatsService assembles platform counter snapshots.
type StatsService struct {
	stats  *models.StatsModel
	logger *zap.Logger
}

// NewStats creates a new stats service.
func NewStats(stats *models.StatsModel, logger *zap.Logger) *StatsService {
	return &StatsService{
		stats:  stats,
		logger: logger.Named("stats_service"),
	}
}

// GetCurrentStats counts all stores in parallel and returns a snapshot
// stamped with the current hour.
func (s *StatsService) GetCurrentStats(ctx context.Context) (*types.HourlyStats, error) {
	stats := &types.HourlyStats{
		Timestamp: time.Now().UTC().Truncate(time.Hour),
	}

	var mu sync.Mutex
	p := pool.New().WithContext(ctx).WithCancelOnError()

	counts := []struct {
		model any
		dest  *int64
	}{
		{(*types.Contributor)(nil), &stats.Contributors},
		{(*types.SuggestedSentence)(nil), &stats.SuggestedSentences},
		{(*types.AcceptedSentence)(nil), &stats.AcceptedSentences},
		{(*types.Translation)(nil), &stats.Translations},
		{(*types.ConfirmedTranslation)(nil), &stats.ConfirmedTranslations},
		{(*types.SuggestedWord)(nil), &stats.SuggestedWords},
		{(*types.Word)(nil), &stats.AcceptedWords},
		{(*types.Vote)(nil), &stats.Votes},
	}

	for _, c := range counts {
		p.Go(func(ctx context.Context) error {
			count, err := s.stats.Count(ctx, c.model)
			if err != nil {
				return err
			}

			mu.Lock()
			*c.dest = count
			mu.Unlock()

			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("failed to collect stats: %w", err)
	}

	return stats, nil
}

// SaveHourlyStats persists a snapshot.
func (s *StatsService) SaveHourlyStats(ctx context.Context, stats *types.HourlyStats) error {
	return s.stats.SaveHourlyStats(ctx, stats)
}

// GetLatestStats returns the most recent saved snapshot.
func (s *StatsService) GetLatestStats(ctx context.Context) (*types.HourlyStats, error) {
	return s.stats.GetLatestStats(ctx)
}

// PurgeOldStats removes snapshots older than the retention window.
func (s *StatsService) PurgeOldStats(ctx context.Context, retentionDays int) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	return s.stats.PurgeOldStats(ctx, cutoff)
}
