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
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// VoteResult describes the effect of one cast vote.
type VoteResult struct {
	TranslationID uuid.UUID `json:"translationId"`
	Upvotes       int32     `json:"upvotes"`
	Downvotes     int32     `json:"downvotes"`
	// Promoted is true when this vote pushed the translation over the
	// threshold into the confirmed store.
	Promoted bool `json:"promoted"`
	// Changed is true when the voter flipped an earlier verdict.
	Changed bool `json:"changed"`
}

// VoteService implements the vote tally engine: one vote per
// (voter, translation), incrementally maintained counters, and threshold
// promotion into the confirmed store.
type VoteService struct {
	db           *bun.DB
	votes        *models.VoteModel
	contributors *models.ContributorModel
	consensus    *config.ConsensusConfig
	rewards      *config.RewardsConfig
	logger       *zap.Logger
}

// NewVote creates a new vote service.
func NewVote(
	db *bun.DB,
	votes *models.VoteModel,
	contributors *models.ContributorModel,
	consensus *config.ConsensusConfig,
	rewards *config.RewardsConfig,
	logger *zap.Logger,
) *VoteService {
	return &VoteService{
		db:           db,
		votes:        votes,
		contributors: contributors,
		consensus:    consensus,
		rewards:      rewards,
		logger:       logger.Named("vote_service"),
	}
}

// VoteDeltas computes the counter adjustments for a cast vote given the
// voter's existing verdict, if any. Re-casting the same verdict is a no-op.
func VoteDeltas(existing *types.Vote, isUpvote bool) (up, down int32, apply bool) {
	if existing == nil {
		if isUpvote {
			return 1, 0, true
		}
		return 0, 1, true
	}

	if existing.IsUpvote == isUpvote {
		return 0, 0, false
	}

	if isUpvote {
		return 1, -1, true
	}

	return -1, 1, true
}

// ShouldPromote reports whether the net score has reached the threshold.
func ShouldPromote(upvotes, downvotes, threshold int32) bool {
	return upvotes-downvotes >= threshold
}

// CastVote records one contributor's verdict on a translation, adjusts the
// tally, and promotes the translation when the net score crosses the
// threshold. The whole step runs in one transaction; promotion deletes the
// working-store row so it can happen at most once.
func (s *VoteService) CastVote(
	ctx context.Context, voterID uint64, translationID uuid.UUID, isUpvote bool,
) (*VoteResult, error) {
	result := &VoteResult{TranslationID: translationID}

	var newVote bool

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		// Lock the translation row so concurrent votes serialize on the
		// counters and at most one vote can trigger promotion.
		var translation types.Translation
		err := tx.NewSelect().
			Model(&translation).
			Where("id = ?", translationID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return types.ErrTranslationNotFound
			}
			return fmt.Errorf("failed to lock translation: %w", err)
		}

		existingVote, err := s.votes.GetVoteTx(ctx, tx, translationID, voterID)
		if err != nil {
			return err
		}

		up, down, apply := VoteDeltas(existingVote, isUpvote)
		if !apply {
			result.Upvotes = translation.Upvotes
			result.Downvotes = translation.Downvotes
			return nil
		}

		now := time.Now()
		if existingVote == nil {
			newVote = true
			vote := &types.Vote{
				TranslationID: translationID,
				VoterID:       voterID,
				IsUpvote:      isUpvote,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if _, err := tx.NewInsert().Model(vote).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert vote: %w", err)
			}
		} else {
			result.Changed = true
			_, err := tx.NewUpdate().
				Model((*types.Vote)(nil)).
				Set("is_upvote = ?", isUpvote).
				Set("updated_at = ?", now).
				Where("translation_id = ?", translationID).
				Where("voter_id = ?", voterID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to update vote: %w", err)
			}
		}

		translation.Upvotes += up
		translation.Downvotes += down
		result.Upvotes = translation.Upvotes
		result.Downvotes = translation.Downvotes

		if ShouldPromote(translation.Upvotes, translation.Downvotes, s.consensus.PromotionThreshold) {
			if err := s.promote(ctx, tx, &translation, now); err != nil {
				return err
			}
			result.Promoted = true
			return nil
		}

		_, err = tx.NewUpdate().
			Model((*types.Translation)(nil)).
			Set("upvotes = ?", translation.Upvotes).
			Set("downvotes = ?", translation.Downvotes).
			Set("updated_at = ?", now).
			Where("id = ?", translationID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update tally: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Only a first vote earns rating; verdict flips do not stack awards.
	if newVote {
		err = s.contributors.AddContribution(ctx, &types.Contribution{
			ContributorID: voterID,
			Kind:          enum.ContributionKindVote,
			ItemID:        translationID,
		})
		if err != nil {
			return nil, err
		}

		if _, err := s.contributors.IncrementRating(ctx, voterID, s.rewards.VoteCast); err != nil {
			return nil, fmt.Errorf("failed to award vote rating: %w", err)
		}
	}

	if result.Promoted {
		s.logger.Info("Translation promoted",
			zap.String("translationID", translationID.String()),
			zap.Int32("upvotes", result.Upvotes),
			zap.Int32("downvotes", result.Downvotes))
	}

	return result, nil
}

// promote moves the translation into the confirmed store and removes the
// working-store row within the caller's transaction.
func (s *VoteService) promote(
	ctx context.Context, tx bun.Tx, translation *types.Translation, now time.Time,
) error {
	confirmed := &types.ConfirmedTranslation{
		ID:          translation.ID,
		SentenceID:  translation.SentenceID,
		Text:        translation.Text,
		Language:    translation.Language,
		Dialect:     translation.Dialect,
		AuthorID:    translation.AuthorID,
		Upvotes:     translation.Upvotes,
		Downvotes:   translation.Downvotes,
		ConfirmedAt: now,
	}

	if _, err := tx.NewInsert().Model(confirmed).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert confirmed translation: %w", err)
	}

	_, err := tx.NewDelete().
		Model((*types.Translation)(nil)).
		Where("id = ?", translation.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete promoted translation: %w", err)
	}

	return nil
}
