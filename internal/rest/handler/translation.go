package handler

import (
	"errors"
	"net/http"

	"github.com/burlang/burlang/internal/database"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/burlang/burlang/internal/rest/middleware/auth"
	restTypes "github.com/burlang/burlang/internal/rest/types"
	"github.com/google/uuid"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// TranslationHandler handles translation submission and voting endpoints.
type TranslationHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewTranslationHandler creates a new translation handler.
func NewTranslationHandler(db database.Client, logger *zap.Logger) *TranslationHandler {
	return &TranslationHandler{
		db:     db,
		logger: logger,
	}
}

// CreateTranslation handles POST /translations.
func (h *TranslationHandler) CreateTranslation(w http.ResponseWriter, req bunrouter.Request) error {
	body, err := restTypes.DecodeAndValidate[restTypes.SubmitTranslationRequest](req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	authorID, ok := auth.ContributorID(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	translation, err := h.db.Service().Translation().
		SubmitTranslation(req.Context(), authorID, body.SentenceID, body.Text, body.Language, body.Dialect)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidSubmission):
			http.Error(w, "Text and language are required", http.StatusBadRequest)
		case errors.Is(err, types.ErrSentenceNotFound):
			http.Error(w, "Sentence not found", http.StatusNotFound)
		case errors.Is(err, types.ErrTranslationExists):
			http.Error(w, "Translation already exists", http.StatusConflict)
		default:
			h.logger.Error("Failed to submit translation", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}

		return nil
	}

	return writeJSON(w, http.StatusCreated, restTypes.SubmitTranslationResponse{
		TranslationID: translation.ID,
	})
}

// Vote handles POST /translations/:id/vote. Casting the same verdict twice
// is a no-op; flipping a verdict adjusts the tally without a second award.
func (h *TranslationHandler) Vote(w http.ResponseWriter, req bunrouter.Request) error {
	translationID, err := uuid.Parse(req.Param("id"))
	if err != nil {
		http.Error(w, "Invalid translation ID", http.StatusBadRequest)
		return nil
	}

	body, err := restTypes.DecodeAndValidate[restTypes.VoteRequest](req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	voterID, ok := auth.ContributorID(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	result, err := h.db.Service().Vote().
		CastVote(req.Context(), voterID, translationID, *body.IsUpvote)
	if err != nil {
		if errors.Is(err, types.ErrTranslationNotFound) {
			http.Error(w, "Translation not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to cast vote", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return writeJSON(w, http.StatusCreated, result)
}
