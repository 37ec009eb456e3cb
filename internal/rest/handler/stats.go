package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/burlang/burlang/internal/database"
	restTypes "github.com/burlang/burlang/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

const topContributorLimit = 10

// StatsHandler serves platform statistics.
type StatsHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(db database.Client, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		db:     db,
		logger: logger,
	}
}

// GetStats handles GET /stats. The latest hourly snapshot is served when
// one exists; otherwise the counts are computed live.
func (h *StatsHandler) GetStats(w http.ResponseWriter, req bunrouter.Request) error {
	ctx := req.Context()

	stats, err := h.db.Service().Stats().GetLatestStats(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			h.logger.Error("Failed to get latest stats", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)

			return nil
		}

		stats, err = h.db.Service().Stats().GetCurrentStats(ctx)
		if err != nil {
			h.logger.Error("Failed to compute stats", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)

			return nil
		}
	}

	top, err := h.db.Model().Contributor().GetTopContributors(ctx, topContributorLimit)
	if err != nil {
		h.logger.Error("Failed to get top contributors", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return writeJSON(w, http.StatusOK, restTypes.StatsResponse{
		Stats:           stats,
		TopContributors: top,
	})
}
