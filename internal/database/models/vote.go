package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/burlang/burlang/internal/database/dbretry"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// VoteModel handles database operations for votes.
type VoteModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewVote creates a new vote model.
func NewVote(db *bun.DB, logger *zap.Logger) *VoteModel {
	return &VoteModel{
		db:     db,
		logger: logger.Named("db_vote"),
	}
}

// GetVoteTx retrieves a voter's existing vote on a translation within the
// caller's transaction, or nil if they have not voted yet. Retries are the
// transaction wrapper's job, not this method's.
func (r *VoteModel) GetVoteTx(
	ctx context.Context, tx bun.IDB, translationID uuid.UUID, voterID uint64,
) (*types.Vote, error) {
	var vote types.Vote
	err := tx.NewSelect().
		Model(&vote).
		Where("translation_id = ?", translationID).
		Where("voter_id = ?", voterID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return &vote, nil
}

// GetVotes retrieves all votes recorded for a translation.
func (r *VoteModel) GetVotes(ctx context.Context, translationID uuid.UUID) ([]*types.Vote, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Vote, error) {
		var votes []*types.Vote
		err := r.db.NewSelect().
			Model(&votes).
			Where("translation_id = ?", translationID).
			Order("created_at ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get votes: %w", err)
		}
		return votes, nil
	})
}
