package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/burlang/burlang/internal/database/models"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/burlang/burlang/internal/database/types/enum"
	"github.com/burlang/burlang/internal/setup/config"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// SentenceOutcome classifies what happened to one submitted sentence.
type SentenceOutcome int

const (
	// SentenceAdded means a new suggestion was created.
	SentenceAdded SentenceOutcome = iota
	// SentenceExists means the text was already suggested by someone else
	// and the submitter was added as a contributor.
	SentenceExists
	// SentenceAuthorIsAuthor means the submitter already authored this text.
	SentenceAuthorIsAuthor
	// SentenceAlreadyTranslated means the text is already in the accepted store.
	SentenceAlreadyTranslated
)

// BulkSubmitResult partitions a bulk submission into its outcome buckets.
type BulkSubmitResult struct {
	Added             []*types.SuggestedSentence `json:"addedSentences"`
	Exists            []*types.SuggestedSentence `json:"existsSentences"`
	AuthorIsAuthor    []*types.SuggestedSentence `json:"authorIsAuthor"`
	AlreadyTranslated []*types.AcceptedSentence  `json:"existsTranslations"`
}

// SentenceService implements the sentence half of the consensus workflow:
// submit with dedup, bulk submit, and the accept/reject transitions.
type SentenceService struct {
	db           *bun.DB
	sentences    *models.SentenceModel
	contributors *models.ContributorModel
	rewards      *config.RewardsConfig
	logger       *zap.Logger
}

// NewSentence creates a new sentence service.
func NewSentence(
	db *bun.DB,
	sentences *models.SentenceModel,
	contributors *models.ContributorModel,
	rewards *config.RewardsConfig,
	logger *zap.Logger,
) *SentenceService {
	return &SentenceService{
		db:           db,
		sentences:    sentences,
		contributors: contributors,
		rewards:      rewards,
		logger:       logger.Named("sentence_service"),
	}
}

// ClassifyResubmission decides which duplicate bucket a submission lands in
// given what the stores already hold. Exactly one of existing/accepted is
// expected to be non-nil.
func ClassifyResubmission(
	existing *types.SuggestedSentence, accepted *types.AcceptedSentence, authorID uint64,
) SentenceOutcome {
	if accepted != nil {
		return SentenceAlreadyTranslated
	}

	if existing != nil && existing.AuthorID == authorID {
		return SentenceAuthorIsAuthor
	}

	return SentenceExists
}

// Promotable reports whether a suggestion in this status may still move
// into the accepted store. Rejection is terminal.
func Promotable(status enum.SuggestionStatus) bool {
	return status != enum.SuggestionStatusRejected
}

// SubmitSentence runs the submit/dedup pipeline for one sentence. The
// suggestion store is checked first, then the accepted store; only a
// net-new suggestion earns the author a rating award.
func (s *SentenceService) SubmitSentence(
	ctx context.Context, authorID uint64, text, language, sentenceContext string,
) (*types.SuggestedSentence, SentenceOutcome, error) {
	text = strings.TrimSpace(text)
	if text == "" || language == "" {
		return nil, 0, types.ErrInvalidSubmission
	}

	// Dedup against the suggestion store first
	existing, err := s.sentences.GetSuggestedByText(ctx, text)
	if err == nil {
		return s.handleDuplicate(ctx, existing, authorID)
	}

	if !errors.Is(err, types.ErrSentenceNotFound) {
		return nil, 0, err
	}

	// Then against the accepted store
	accepted, err := s.sentences.GetAcceptedByText(ctx, text)
	if err == nil {
		s.logger.Debug("Sentence already translated",
			zap.String("text", text),
			zap.Uint64("authorID", authorID))
		return nil, SentenceAlreadyTranslated, fmt.Errorf("%w: %s", types.ErrSentenceAccepted, accepted.ID)
	}

	if !errors.Is(err, types.ErrSentenceNotFound) {
		return nil, 0, err
	}

	sentence := &types.SuggestedSentence{
		ID:       uuid.New(),
		Text:     text,
		Language: language,
		Context:  sentenceContext,
		AuthorID: authorID,
		Status:   enum.SuggestionStatusPending,
	}

	err = s.sentences.InsertSuggested(ctx, sentence)
	if err != nil {
		// A concurrent submission won the insert race; fold into the
		// duplicate path instead of surfacing the constraint violation.
		if errors.Is(err, types.ErrSentenceExists) {
			existing, fetchErr := s.sentences.GetSuggestedByText(ctx, text)
			if fetchErr != nil {
				return nil, 0, fmt.Errorf("failed to re-fetch after lost dedup race: %w", fetchErr)
			}
			return s.handleDuplicate(ctx, existing, authorID)
		}
		return nil, 0, err
	}

	if err := s.creditAuthor(ctx, sentence, authorID); err != nil {
		return nil, 0, err
	}

	s.logger.Info("Sentence suggested",
		zap.String("sentenceID", sentence.ID.String()),
		zap.Uint64("authorID", authorID),
		zap.String("language", language))

	return sentence, SentenceAdded, nil
}

// SubmitSentences applies the single-submission logic across a batch,
// sequentially and without atomicity: a failed item is logged and skipped,
// earlier items stay applied.
func (s *SentenceService) SubmitSentences(
	ctx context.Context, authorID uint64, language string, texts []string,
) (*BulkSubmitResult, error) {
	if language == "" {
		return nil, types.ErrInvalidSubmission
	}

	result := &BulkSubmitResult{
		Added:             []*types.SuggestedSentence{},
		Exists:            []*types.SuggestedSentence{},
		AuthorIsAuthor:    []*types.SuggestedSentence{},
		AlreadyTranslated: []*types.AcceptedSentence{},
	}

	for _, text := range texts {
		sentence, outcome, err := s.SubmitSentence(ctx, authorID, text, language, "")
		if err != nil && !errors.Is(err, types.ErrSentenceAccepted) {
			s.logger.Error("Failed to submit sentence in batch",
				zap.Error(err),
				zap.Uint64("authorID", authorID))
			continue
		}

		switch outcome {
		case SentenceAdded:
			result.Added = append(result.Added, sentence)
		case SentenceExists:
			result.Exists = append(result.Exists, sentence)
		case SentenceAuthorIsAuthor:
			result.AuthorIsAuthor = append(result.AuthorIsAuthor, sentence)
		case SentenceAlreadyTranslated:
			text = strings.TrimSpace(text)
			accepted, fetchErr := s.sentences.GetAcceptedByText(ctx, text)
			if fetchErr != nil {
				s.logger.Error("Failed to fetch accepted sentence for batch result",
					zap.Error(fetchErr),
					zap.String("text", text))
				continue
			}
			result.AlreadyTranslated = append(result.AlreadyTranslated, accepted)
		}
	}

	return result, nil
}

// AcceptSentence promotes a suggested sentence into the accepted store.
// The copy and the delete run in one transaction so a crash cannot leave
// the sentence in both stores or neither.
func (s *SentenceService) AcceptSentence(
	ctx context.Context, sentenceID uuid.UUID, moderatorID uint64,
) (*types.AcceptedSentence, error) {
	suggestion, err := s.sentences.GetSuggestedByID(ctx, sentenceID)
	if err != nil {
		return nil, err
	}

	if !Promotable(suggestion.Status) {
		return nil, types.ErrSentenceRejected
	}

	accepted := &types.AcceptedSentence{
		ID:         suggestion.ID,
		Text:       suggestion.Text,
		Language:   suggestion.Language,
		Context:    suggestion.Context,
		AuthorID:   suggestion.AuthorID,
		AcceptedBy: moderatorID,
		AcceptedAt: time.Now(),
	}

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(accepted).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert accepted sentence: %w", err)
		}

		if _, err := tx.NewDelete().
			Model((*types.SuggestedSentence)(nil)).
			Where("id = ?", suggestion.ID).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete suggested sentence: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to promote sentence: %w", err)
	}

	s.logger.Info("Sentence accepted",
		zap.String("sentenceID", sentenceID.String()),
		zap.Uint64("moderatorID", moderatorID))

	return accepted, nil
}

// RejectSentence marks a suggested sentence as rejected. The record stays
// in the suggestion store with a terminal status, unlike acceptance.
func (s *SentenceService) RejectSentence(
	ctx context.Context, sentenceID uuid.UUID, moderatorID uint64,
) (*types.SuggestedSentence, error) {
	sentence, err := s.sentences.UpdateStatus(ctx, sentenceID, enum.SuggestionStatusRejected)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Sentence rejected",
		zap.String("sentenceID", sentenceID.String()),
		zap.Uint64("moderatorID", moderatorID))

	return sentence, nil
}

// handleDuplicate adds the submitter to the existing suggestion's
// contributor set. The duplicate path never awards rating.
func (s *SentenceService) handleDuplicate(
	ctx context.Context, existing *types.SuggestedSentence, authorID uint64,
) (*types.SuggestedSentence, SentenceOutcome, error) {
	outcome := ClassifyResubmission(existing, nil, authorID)
	if outcome == SentenceAuthorIsAuthor {
		return existing, outcome, nil
	}

	if err := s.sentences.AddContributor(ctx, existing.ID, authorID); err != nil {
		return nil, 0, err
	}

	err := s.contributors.AddContribution(ctx, &types.Contribution{
		ContributorID: authorID,
		Kind:          enum.ContributionKindSentence,
		ItemID:        existing.ID,
	})
	if err != nil {
		return nil, 0, err
	}

	return existing, outcome, nil
}

// creditAuthor links the author to a fresh suggestion and awards the
// sentence rating. A missing contributor row is reported, not swallowed.
func (s *SentenceService) creditAuthor(
	ctx context.Context, sentence *types.SuggestedSentence, authorID uint64,
) error {
	if err := s.sentences.AddContributor(ctx, sentence.ID, authorID); err != nil {
		return err
	}

	err := s.contributors.AddContribution(ctx, &types.Contribution{
		ContributorID: authorID,
		Kind:          enum.ContributionKindSentence,
		ItemID:        sentence.ID,
	})
	if err != nil {
		return err
	}

	rating, err := s.contributors.IncrementRating(ctx, authorID, s.rewards.SentenceSuggested)
	if err != nil {
		return fmt.Errorf("failed to award sentence rating: %w", err)
	}

	s.logger.Debug("Rating awarded",
		zap.Uint64("contributorID", authorID),
		zap.Int64("rating", rating))

	return nil
}
