package handler

import (
	"net/http"

	"github.com/burlang/burlang/internal/database"
	"github.com/burlang/burlang/internal/rest/middleware/auth"
	restTypes "github.com/burlang/burlang/internal/rest/types"
	"github.com/burlang/burlang/internal/watcher"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// assignmentScanLimit bounds how many pending translations one handout
// request considers before giving up.
const assignmentScanLimit = 20

// ModerationHandler hands out review assignments backed by watcher leases.
type ModerationHandler struct {
	db         database.Client
	watcher    *watcher.Manager
	ttlSeconds int
	logger     *zap.Logger
}

// NewModerationHandler creates a new moderation handler.
func NewModerationHandler(
	db database.Client, watcherManager *watcher.Manager, ttlSeconds int, logger *zap.Logger,
) *ModerationHandler {
	return &ModerationHandler{
		db:         db,
		watcher:    watcherManager,
		ttlSeconds: ttlSeconds,
		logger:     logger,
	}
}

// NextTranslation handles GET /moderation/next-translation. The oldest
// pending translation without a live lease is leased to the caller; 204
// means nothing is currently available.
func (h *ModerationHandler) NextTranslation(w http.ResponseWriter, req bunrouter.Request) error {
	reviewerID, ok := auth.ContributorID(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	pending, err := h.db.Model().Translation().GetOldestPending(req.Context(), assignmentScanLimit)
	if err != nil {
		h.logger.Error("Failed to list pending translations", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	for _, translation := range pending {
		acquired, err := h.watcher.Acquire(req.Context(), translation.ID, reviewerID)
		if err != nil {
			h.logger.Error("Failed to acquire review lease", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)

			return nil
		}

		if acquired {
			votes, err := h.db.Model().Vote().GetVotes(req.Context(), translation.ID)
			if err != nil {
				h.logger.Error("Failed to get votes for assignment", zap.Error(err))
				http.Error(w, "Internal server error", http.StatusInternalServerError)

				return nil
			}

			return writeJSON(w, http.StatusOK, restTypes.NextTranslationResponse{
				Translation:     translation,
				Votes:           votes,
				LeaseTTLSeconds: h.ttlSeconds,
			})
		}
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
