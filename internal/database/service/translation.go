package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/burlang/burlang/internal/database/models"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/burlang/burlang/internal/database/types/enum"
	"github.com/burlang/burlang/internal/setup/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TranslationService handles translation submission for suggested sentences.
type TranslationService struct {
	translations *models.TranslationModel
	sentences    *models.SentenceModel
	contributors *models.ContributorModel
	rewards      *config.RewardsConfig
	logger       *zap.Logger
}

// NewTranslation creates a new translation service.
func NewTranslation(
	translations *models.TranslationModel,
	sentences *models.SentenceModel,
	contributors *models.ContributorModel,
	rewards *config.RewardsConfig,
	logger *zap.Logger,
) *TranslationService {
	return &TranslationService{
		translations: translations,
		sentences:    sentences,
		contributors: contributors,
		rewards:      rewards,
		logger:       logger.Named("translation_service"),
	}
}

// SubmitTranslation creates a new candidate translation for a suggested
// sentence. Duplicate text for the same sentence fails with
// ErrTranslationExists via the store's unique constraint; there is no
// linear scan over prior translations.
func (s *TranslationService) SubmitTranslation(
	ctx context.Context, authorID uint64, sentenceID uuid.UUID, text, language, dialect string,
) (*types.Translation, error) {
	text = strings.TrimSpace(text)
	if text == "" || language == "" {
		return nil, types.ErrInvalidSubmission
	}

	sentence, err := s.sentences.GetSuggestedByID(ctx, sentenceID)
	if err != nil {
		return nil, err
	}

	translation := &types.Translation{
		ID:         uuid.New(),
		SentenceID: sentence.ID,
		Text:       text,
		Language:   language,
		Dialect:    dialect,
		AuthorID:   authorID,
		Status:     enum.TranslationStatusProcessing,
	}

	if err := s.translations.Insert(ctx, translation); err != nil {
		return nil, err
	}

	// First translation moves the sentence into review
	if sentence.Status == enum.SuggestionStatusPending {
		if _, err := s.sentences.UpdateStatus(ctx, sentence.ID, enum.SuggestionStatusInReview); err != nil {
			s.logger.Warn("Failed to move sentence into review",
				zap.Error(err),
				zap.String("sentenceID", sentence.ID.String()))
		}
	}

	err = s.contributors.AddContribution(ctx, &types.Contribution{
		ContributorID: authorID,
		Kind:          enum.ContributionKindTranslation,
		ItemID:        translation.ID,
	})
	if err != nil {
		return nil, err
	}

	rating, err := s.contributors.IncrementRating(ctx, authorID, s.rewards.TranslationSuggested)
	if err != nil {
		return nil, fmt.Errorf("failed to award translation rating: %w", err)
	}

	s.logger.Info("Translation submitted",
		zap.String("translationID", translation.ID.String()),
		zap.String("sentenceID", sentence.ID.String()),
		zap.Uint64("authorID", authorID),
		zap.Int64("rating", rating))

	return translation, nil
}

// GetSentenceTranslations lists the working-store translations of a sentence.
func (s *TranslationService) GetSentenceTranslations(
	ctx context.Context, sentenceID uuid.UUID,
) ([]*types.Translation, error) {
	return s.translations.GetBySentence(ctx, sentenceID)
}
