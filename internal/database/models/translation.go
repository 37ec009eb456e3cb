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

// TranslationModel handles database operations for translations.
type TranslationModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewTranslation creates a new translation model.
func NewTranslation(db *bun.DB, logger *zap.Logger) *TranslationModel {
	return &TranslationModel{
		db:     db,
		logger: logger.Named("db_translation"),
	}
}

// GetByID retrieves a translation from the working store by ID.
func (r *TranslationModel) GetByID(ctx context.Context, id uuid.UUID) (*types.Translation, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Translation, error) {
		var translation types.Translation
		err := r.db.NewSelect().
			Model(&translation).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrTranslationNotFound
			}
			return nil, fmt.Errorf("failed to get translation: %w", err)
		}
		return &translation, nil
	})
}

// GetBySentence retrieves all working-store translations for a sentence.
func (r *TranslationModel) GetBySentence(ctx context.Context, sentenceID uuid.UUID) ([]*types.Translation, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Translation, error) {
		var translations []*types.Translation
		err := r.db.NewSelect().
			Model(&translations).
			Where("sentence_id = ?", sentenceID).
			Order("created_at ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get sentence translations: %w", err)
		}
		return translations, nil
	})
}

// Insert inserts a new translation. The unique constraint on
// (sentence_id, text) turns a duplicate submission into ErrTranslationExists.
func (r *TranslationModel) Insert(ctx context.Context, translation *types.Translation) error {
	now := time.Now()
	translation.CreatedAt = now
	translation.UpdatedAt = now

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(translation).
			Exec(ctx)
		if err != nil {
			if dbretry.IsDuplicateKeyError(err) {
				return types.ErrTranslationExists
			}
			return fmt.Errorf("failed to insert translation: %w", err)
		}
		return nil
	})
}

// GetOldestPending retrieves the oldest still-processing translations,
// used to hand out review assignments.
func (r *TranslationModel) GetOldestPending(ctx context.Context, limit int) ([]*types.Translation, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Translation, error) {
		var translations []*types.Translation
		err := r.db.NewSelect().
			Model(&translations).
			Where("status = ?", enum.TranslationStatusProcessing).
			Order("created_at ASC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get pending translations: %w", err)
		}
		return translations, nil
	})
}

// GetConfirmedBySentence retrieves confirmed translations for a sentence.
func (r *TranslationModel) GetConfirmedBySentence(ctx context.Context, sentenceID uuid.UUID) ([]*types.ConfirmedTranslation, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ConfirmedTranslation, error) {
		var translations []*types.ConfirmedTranslation
		err := r.db.NewSelect().
			Model(&translations).
			Where("sentence_id = ?", sentenceID).
			Order("confirmed_at ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get confirmed translations: %w", err)
		}
		return translations, nil
	})
}
