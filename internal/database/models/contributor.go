package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/burlang/burlang/internal/database/dbretry"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ContributorModel handles database operations for contributors.
type ContributorModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewContributor creates a new contributor model.
func NewContributor(db *bun.DB, logger *zap.Logger) *ContributorModel {
	return &ContributorModel{
		db:     db,
		logger: logger.Named("db_contributor"),
	}
}

// GetContributor retrieves a contributor by ID.
func (r *ContributorModel) GetContributor(ctx context.Context, id uint64) (*types.Contributor, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Contributor, error) {
		var contributor types.Contributor
		err := r.db.NewSelect().
			Model(&contributor).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrContributorNotFound
			}
			return nil, fmt.Errorf("failed to get contributor: %w", err)
		}
		return &contributor, nil
	})
}

// IncrementRating atomically adds delta to the contributor's rating and
// returns the new value. Returns ErrContributorNotFound if no row matched;
// callers are expected to check this instead of discarding it.
func (r *ContributorModel) IncrementRating(ctx context.Context, id uint64, delta int64) (int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		var rating int64
		err := r.db.NewUpdate().
			Model((*types.Contributor)(nil)).
			Set("rating = rating + ?", delta).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id).
			Returning("rating").
			Scan(ctx, &rating)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return 0, types.ErrContributorNotFound
			}
			return 0, fmt.Errorf("failed to increment rating: %w", err)
		}
		return rating, nil
	})
}

// AddContribution credits a contributor for an authored item. Repeat credits
// for the same item are absorbed by the composite primary key.
func (r *ContributorModel) AddContribution(ctx context.Context, contribution *types.Contribution) error {
	contribution.CreatedAt = time.Now()

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(contribution).
			On("CONFLICT DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to add contribution: %w", err)
		}
		return nil
	})
}

// GetTopContributors retrieves contributors ordered by rating.
func (r *ContributorModel) GetTopContributors(ctx context.Context, limit int) ([]*types.Contributor, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Contributor, error) {
		var contributors []*types.Contributor
		err := r.db.NewSelect().
			Model(&contributors).
			Order("rating DESC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get top contributors: %w", err)
		}
		return contributors, nil
	})
}
