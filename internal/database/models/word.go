package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/burlang/burlang/internal/database/dbretry"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// WordModel handles database operations for suggested, accepted and
// declined vocabulary entries.
type WordModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewWord creates a new word model.
func NewWord(db *bun.DB, logger *zap.Logger) *WordModel {
	return &WordModel{
		db:     db,
		logger: logger.Named("db_word"),
	}
}

// GetSuggestedByID retrieves a suggested word by ID.
func (r *WordModel) GetSuggestedByID(ctx context.Context, id uuid.UUID) (*types.SuggestedWord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.SuggestedWord, error) {
		var word types.SuggestedWord
		err := r.db.NewSelect().
			Model(&word).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrWordNotFound
			}
			return nil, fmt.Errorf("failed to get suggested word: %w", err)
		}
		return &word, nil
	})
}

// GetSuggestedByNormalized retrieves a suggested word by its normalized form.
func (r *WordModel) GetSuggestedByNormalized(ctx context.Context, normalized string) (*types.SuggestedWord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.SuggestedWord, error) {
		var word types.SuggestedWord
		err := r.db.NewSelect().
			Model(&word).
			Where("normalized_text = ?", normalized).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrWordNotFound
			}
			return nil, fmt.Errorf("failed to get suggested word by normalized text: %w", err)
		}
		return &word, nil
	})
}

// GetAcceptedByID retrieves an accepted word by ID.
func (r *WordModel) GetAcceptedByID(ctx context.Context, id uuid.UUID) (*types.Word, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Word, error) {
		var word types.Word
		err := r.db.NewSelect().
			Model(&word).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrWordNotFound
			}
			return nil, fmt.Errorf("failed to get accepted word: %w", err)
		}
		return &word, nil
	})
}

// GetAcceptedByNormalized retrieves an accepted word by its normalized form.
func (r *WordModel) GetAcceptedByNormalized(ctx context.Context, normalized string) (*types.Word, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Word, error) {
		var word types.Word
		err := r.db.NewSelect().
			Model(&word).
			Where("normalized_text = ?", normalized).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrWordNotFound
			}
			return nil, fmt.Errorf("failed to get accepted word by normalized text: %w", err)
		}
		return &word, nil
	})
}

// InsertSuggested inserts a new suggested word. Returns ErrWordExists if
// another submission with the same normalized form won the race.
func (r *WordModel) InsertSuggested(ctx context.Context, word *types.SuggestedWord) error {
	now := time.Now()
	word.CreatedAt = now
	word.UpdatedAt = now

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(word).
			Exec(ctx)
		if err != nil {
			if dbretry.IsDuplicateKeyError(err) {
				return types.ErrWordExists
			}
			return fmt.Errorf("failed to insert suggested word: %w", err)
		}
		return nil
	})
}

// AddContributor adds a contributor to a word's contributor set.
// Adding the same contributor twice is a no-op.
func (r *WordModel) AddContributor(ctx context.Context, wordID uuid.UUID, contributorID uint64) error {
	link := &types.WordContributor{
		WordID:        wordID,
		ContributorID: contributorID,
		CreatedAt:     time.Now(),
	}

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(link).
			On("CONFLICT DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to add word contributor: %w", err)
		}
		return nil
	})
}

// GetContributors retrieves the contributor IDs linked to a word.
func (r *WordModel) GetContributors(ctx context.Context, wordID uuid.UUID) ([]uint64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]uint64, error) {
		var ids []uint64
		err := r.db.NewSelect().
			Model((*types.WordContributor)(nil)).
			Column("contributor_id").
			Where("word_id = ?", wordID).
			Scan(ctx, &ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get word contributors: %w", err)
		}
		return ids, nil
	})
}

// UpsertLink records one edge between a word and a candidate translation
// word. A single row per edge means a half-written pair cannot exist.
func (r *WordModel) UpsertLink(ctx context.Context, link *types.WordTranslationLink) error {
	link.CreatedAt = time.Now()

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(link).
			On("CONFLICT DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert word translation link: %w", err)
		}
		return nil
	})
}

// GetLinks retrieves the translation edges for a word.
func (r *WordModel) GetLinks(ctx context.Context, wordID uuid.UUID) ([]*types.WordTranslationLink, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.WordTranslationLink, error) {
		var links []*types.WordTranslationLink
		err := r.db.NewSelect().
			Model(&links).
			Where("word_id = ?", wordID).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get word translation links: %w", err)
		}
		return links, nil
	})
}
