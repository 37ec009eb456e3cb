package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/burlang/burlang/internal/database/dbretry"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/burlang/burlang/internal/database/types/enum"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// SentenceModel handles database operations for suggested and accepted sentences.
type SentenceModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSentence creates a new sentence model.
func NewSentence(db *bun.DB, logger *zap.Logger) *SentenceModel {
	return &SentenceModel{
		db:     db,
		logger: logger.Named("db_sentence"),
	}
}

// GetSuggestedByID retrieves a suggested sentence by ID.
func (r *SentenceModel) GetSuggestedByID(ctx context.Context, id uuid.UUID) (*types.SuggestedSentence, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.SuggestedSentence, error) {
		var sentence types.SuggestedSentence
		err := r.db.NewSelect().
			Model(&sentence).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrSentenceNotFound
			}
			return nil, fmt.Errorf("failed to get suggested sentence: %w", err)
		}
		return &sentence, nil
	})
}

// GetSuggestedByText retrieves a suggested sentence by its exact text.
func (r *SentenceModel) GetSuggestedByText(ctx context.Context, text string) (*types.SuggestedSentence, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.SuggestedSentence, error) {
		var sentence types.SuggestedSentence
		err := r.db.NewSelect().
			Model(&sentence).
			Where("text = ?", text).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrSentenceNotFound
			}
			return nil, fmt.Errorf("failed to get suggested sentence by text: %w", err)
		}
		return &sentence, nil
	})
}

// GetAcceptedByID retrieves an accepted sentence by ID.
func (r *SentenceModel) GetAcceptedByID(ctx context.Context, id uuid.UUID) (*types.AcceptedSentence, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.AcceptedSentence, error) {
		var sentence types.AcceptedSentence
		err := r.db.NewSelect().
			Model(&sentence).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrSentenceNotFound
			}
			return nil, fmt.Errorf("failed to get accepted sentence: %w", err)
		}
		return &sentence, nil
	})
}

// GetAcceptedByText retrieves an accepted sentence by its exact text.
func (r *SentenceModel) GetAcceptedByText(ctx context.Context, text string) (*types.AcceptedSentence, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.AcceptedSentence, error) {
		var sentence types.AcceptedSentence
		err := r.db.NewSelect().
			Model(&sentence).
			Where("text = ?", text).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrSentenceNotFound
			}
			return nil, fmt.Errorf("failed to get accepted sentence by text: %w", err)
		}
		return &sentence, nil
	})
}

// InsertSuggested inserts a new suggested sentence. Returns
// ErrSentenceExists if another submission with the same text won the race.
func (r *SentenceModel) InsertSuggested(ctx context.Context, sentence *types.SuggestedSentence) error {
	now := time.Now()
	sentence.CreatedAt = now
	sentence.UpdatedAt = now

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(sentence).
			Exec(ctx)
		if err != nil {
			if dbretry.IsDuplicateKeyError(err) {
				return types.ErrSentenceExists
			}
			return fmt.Errorf("failed to insert suggested sentence: %w", err)
		}
		return nil
	})
}

// AddContributor adds a contributor to a sentence's contributor set.
// Adding the same contributor twice is a no-op.
func (r *SentenceModel) AddContributor(ctx context.Context, sentenceID uuid.UUID, contributorID uint64) error {
	link := &types.SentenceContributor{
		SentenceID:    sentenceID,
		ContributorID: contributorID,
		CreatedAt:     time.Now(),
	}

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(link).
			On("CONFLICT DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to add sentence contributor: %w", err)
		}
		return nil
	})
}

// GetContributors retrieves the contributor IDs linked to a sentence.
func (r *SentenceModel) GetContributors(ctx context.Context, sentenceID uuid.UUID) ([]uint64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]uint64, error) {
		var ids []uint64
		err := r.db.NewSelect().
			Model((*types.SentenceContributor)(nil)).
			Column("contributor_id").
			Where("sentence_id = ?", sentenceID).
			Scan(ctx, &ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get sentence contributors: %w", err)
		}
		return ids, nil
	})
}

// UpdateStatus sets a suggested sentence's review status.
func (r *SentenceModel) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SuggestionStatus) (*types.SuggestedSentence, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.SuggestedSentence, error) {
		var sentence types.SuggestedSentence
		err := r.db.NewUpdate().
			Model(&sentence).
			Set("status = ?", status).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id).
			Returning("*").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrSentenceNotFound
			}
			return nil, fmt.Errorf("failed to update sentence status: %w", err)
		}
		return &sentence, nil
	})
}
