package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/burlang/burlang/internal/database/dbretry"
	"github.com/burlang/burlang/internal/database/models"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/burlang/burlang/internal/database/types/enum"
	"github.com/burlang/burlang/internal/setup/config"
	"github.com/burlang/burlang/pkg/utils"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// WordOutcome classifies what happened to one suggested word.
type WordOutcome int

const (
	// WordAdded means a new suggestion was created.
	WordAdded WordOutcome = iota
	// WordContributed means the normalized form was already suggested and
	// the submitter was added as a contributor.
	WordContributed
	// WordAlreadyAccepted means the normalized form is already in the
	// accepted store.
	WordAlreadyAccepted
)

// VocabularyService implements the word half of the consensus workflow.
// Words dedup on their normalized form, so casing and whitespace variants
// of one word collapse into a single suggestion.
type VocabularyService struct {
	db           *bun.DB
	words        *models.WordModel
	contributors *models.ContributorModel
	rewards      *config.RewardsConfig
	logger       *zap.Logger
}

// NewVocabulary creates a new vocabulary service.
func NewVocabulary(
	db *bun.DB,
	words *models.WordModel,
	contributors *models.ContributorModel,
	rewards *config.RewardsConfig,
	logger *zap.Logger,
) *VocabularyService {
	return &VocabularyService{
		db:           db,
		words:        words,
		contributors: contributors,
		rewards:      rewards,
		logger:       logger.Named("vocabulary_service"),
	}
}

// SuggestWord runs the submit/dedup pipeline for one vocabulary entry.
// Unlike sentences, the duplicate path still earns a (smaller) rating
// award; the scale difference is a product decision carried in config.
func (s *VocabularyService) SuggestWord(
	ctx context.Context, authorID uint64, text, language, dialect string,
) (*types.SuggestedWord, WordOutcome, error) {
	normalized := utils.NormalizeWord(text)
	if normalized == "" || language == "" {
		return nil, 0, types.ErrInvalidSubmission
	}

	existing, err := s.words.GetSuggestedByNormalized(ctx, normalized)
	if err == nil {
		return s.handleDuplicate(ctx, existing, authorID)
	}

	if !errors.Is(err, types.ErrWordNotFound) {
		return nil, 0, err
	}

	accepted, err := s.words.GetAcceptedByNormalized(ctx, normalized)
	if err == nil {
		return nil, WordAlreadyAccepted, fmt.Errorf("%w: %s", types.ErrWordAccepted, accepted.ID)
	}

	if !errors.Is(err, types.ErrWordNotFound) {
		return nil, 0, err
	}

	word := &types.SuggestedWord{
		ID:             uuid.New(),
		Text:           text,
		NormalizedText: normalized,
		Language:       language,
		Dialect:        dialect,
		AuthorID:       authorID,
		Status:         enum.SuggestionStatusPending,
	}

	err = s.words.InsertSuggested(ctx, word)
	if err != nil {
		// Lost the dedup race; fold into the duplicate path
		if errors.Is(err, types.ErrWordExists) {
			existing, fetchErr := s.words.GetSuggestedByNormalized(ctx, normalized)
			if fetchErr != nil {
				return nil, 0, fmt.Errorf("failed to re-fetch after lost dedup race: %w", fetchErr)
			}
			return s.handleDuplicate(ctx, existing, authorID)
		}
		return nil, 0, err
	}

	if err := s.credit(ctx, word.ID, authorID, s.rewards.WordSuggested); err != nil {
		return nil, 0, err
	}

	s.logger.Info("Word suggested",
		zap.String("wordID", word.ID.String()),
		zap.String("normalized", normalized),
		zap.Uint64("authorID", authorID))

	return word, WordAdded, nil
}

// SuggestWordTranslate proposes translateText as a translation of an
// accepted word. The target word is looked up or suggested through the
// regular pipeline, then a single edge row links the pair; there is no
// second list write that could be lost halfway.
func (s *VocabularyService) SuggestWordTranslate(
	ctx context.Context, authorID uint64, wordID uuid.UUID, translateText, language, dialect string,
) (*types.WordTranslationLink, error) {
	source, err := s.words.GetAcceptedByID(ctx, wordID)
	if err != nil {
		return nil, err
	}

	target, outcome, err := s.SuggestWord(ctx, authorID, translateText, language, dialect)
	if err != nil && outcome != WordAlreadyAccepted {
		return nil, err
	}

	link := &types.WordTranslationLink{
		WordID: source.ID,
	}

	switch outcome {
	case WordAlreadyAccepted:
		// The translation is already an accepted word; link it confirmed
		accepted, fetchErr := s.words.GetAcceptedByNormalized(ctx, utils.NormalizeWord(translateText))
		if fetchErr != nil {
			return nil, fetchErr
		}
		link.TranslationWordID = accepted.ID
		link.Confirmed = true
	default:
		link.TranslationWordID = target.ID
	}

	if err := s.words.UpsertLink(ctx, link); err != nil {
		return nil, err
	}

	s.logger.Info("Word translation suggested",
		zap.String("wordID", source.ID.String()),
		zap.String("translationWordID", link.TranslationWordID.String()),
		zap.Uint64("authorID", authorID))

	return link, nil
}

// AcceptSuggestedWord promotes a suggested word into the accepted store.
// If an accepted word with the same normalized form already exists, the
// suggestion merges into it: contributor and edge rows are re-pointed
// inside the transaction, so concurrent acceptances cannot lose updates.
// Both the moderator and the suggestion's author earn rating.
func (s *VocabularyService) AcceptSuggestedWord(
	ctx context.Context, moderatorID uint64, suggestedWordID uuid.UUID,
) (*types.Word, error) {
	suggestion, err := s.words.GetSuggestedByID(ctx, suggestedWordID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	word := &types.Word{
		ID:             suggestion.ID,
		Text:           suggestion.Text,
		NormalizedText: suggestion.NormalizedText,
		Language:       suggestion.Language,
		Dialect:        suggestion.Dialect,
		AuthorID:       suggestion.AuthorID,
		AcceptedBy:     moderatorID,
		AcceptedAt:     now,
	}

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var existing types.Word
		err := tx.NewSelect().
			Model(&existing).
			Where("normalized_text = ?", suggestion.NormalizedText).
			For("UPDATE").
			Scan(ctx)

		switch {
		case err == nil:
			// Merge into the existing accepted word
			word = &existing
			if err := s.mergeInto(ctx, tx, suggestion.ID, existing.ID); err != nil {
				return err
			}
		case errors.Is(err, sql.ErrNoRows):
			if _, err := tx.NewInsert().Model(word).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert accepted word: %w", err)
			}
		default:
			return fmt.Errorf("failed to check accepted word: %w", err)
		}

		// Edges pointing at this word are now confirmed translations
		_, err = tx.NewUpdate().
			Model((*types.WordTranslationLink)(nil)).
			Set("confirmed = true").
			Where("translation_word_id = ?", word.ID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to confirm word translation links: %w", err)
		}

		_, err = tx.NewDelete().
			Model((*types.SuggestedWord)(nil)).
			Where("id = ?", suggestion.ID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete suggested word: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to accept suggested word: %w", err)
	}

	for _, contributorID := range []uint64{moderatorID, suggestion.AuthorID} {
		if _, err := s.contributors.IncrementRating(ctx, contributorID, s.rewards.WordAccepted); err != nil {
			return nil, fmt.Errorf("failed to award word acceptance rating: %w", err)
		}
	}

	s.logger.Info("Word accepted",
		zap.String("wordID", word.ID.String()),
		zap.Uint64("moderatorID", moderatorID))

	return word, nil
}

// DeclineSuggestedWord archives a suggested word and removes it from the
// suggestion store. The archive is append-only and never re-surfaced.
func (s *VocabularyService) DeclineSuggestedWord(
	ctx context.Context, moderatorID uint64, suggestedWordID uuid.UUID,
) (*types.DeclinedWord, error) {
	suggestion, err := s.words.GetSuggestedByID(ctx, suggestedWordID)
	if err != nil {
		return nil, err
	}

	declined := &types.DeclinedWord{
		ID:             suggestion.ID,
		Text:           suggestion.Text,
		NormalizedText: suggestion.NormalizedText,
		Language:       suggestion.Language,
		Dialect:        suggestion.Dialect,
		AuthorID:       suggestion.AuthorID,
		DeclinedBy:     moderatorID,
		DeclinedAt:     time.Now(),
	}

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(declined).Exec(ctx); err != nil {
			return fmt.Errorf("failed to archive declined word: %w", err)
		}

		_, err := tx.NewDelete().
			Model((*types.SuggestedWord)(nil)).
			Where("id = ?", suggestion.ID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete suggested word: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decline suggested word: %w", err)
	}

	s.logger.Info("Word declined",
		zap.String("wordID", suggestion.ID.String()),
		zap.Uint64("moderatorID", moderatorID))

	return declined, nil
}

// handleDuplicate adds the submitter to the existing suggestion's
// contributor set and awards the duplicate-path rating.
func (s *VocabularyService) handleDuplicate(
	ctx context.Context, existing *types.SuggestedWord, authorID uint64,
) (*types.SuggestedWord, WordOutcome, error) {
	if err := s.credit(ctx, existing.ID, authorID, s.rewards.WordContributed); err != nil {
		return nil, 0, err
	}

	return existing, WordContributed, nil
}

// credit links a contributor to a word and awards rating.
func (s *VocabularyService) credit(
	ctx context.Context, wordID uuid.UUID, contributorID uint64, reward int64,
) error {
	if err := s.words.AddContributor(ctx, wordID, contributorID); err != nil {
		return err
	}

	err := s.contributors.AddContribution(ctx, &types.Contribution{
		ContributorID: contributorID,
		Kind:          enum.ContributionKindWord,
		ItemID:        wordID,
	})
	if err != nil {
		return err
	}

	if _, err := s.contributors.IncrementRating(ctx, contributorID, reward); err != nil {
		return fmt.Errorf("failed to award word rating: %w", err)
	}

	return nil
}

// mergeInto re-points contributor and edge rows from the merged suggestion
// onto the surviving accepted word.
func (s *VocabularyService) mergeInto(
	ctx context.Context, tx bun.Tx, fromID, intoID uuid.UUID,
) error {
	// A double accept of the same suggestion resolves to its own row;
	// re-pointing would delete the edges the inserts just preserved.
	if fromID == intoID {
		return nil
	}

	_, err := tx.NewRaw(`
		INSERT INTO word_contributors (word_id, contributor_id, created_at)
		SELECT ?, contributor_id, created_at FROM word_contributors WHERE word_id = ?
		ON CONFLICT DO NOTHING`, intoID, fromID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to merge word contributors: %w", err)
	}

	_, err = tx.NewRaw(`
		INSERT INTO word_translation_links (word_id, translation_word_id, confirmed, created_at)
		SELECT ?, translation_word_id, confirmed, created_at FROM word_translation_links WHERE word_id = ?
		ON CONFLICT DO NOTHING`, intoID, fromID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to merge word translation links: %w", err)
	}

	_, err = tx.NewDelete().
		Model((*types.WordTranslationLink)(nil)).
		Where("word_id = ?", fromID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to drop merged word links: %w", err)
	}

	return nil
}
