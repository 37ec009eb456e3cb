package handler

import (
	"errors"
	"net/http"

	"github.com/burlang/burlang/internal/database"
	"github.com/burlang/burlang/internal/database/service"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/burlang/burlang/internal/rest/convert"
	"github.com/burlang/burlang/internal/rest/middleware/auth"
	restTypes "github.com/burlang/burlang/internal/rest/types"
	"github.com/google/uuid"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// SentenceHandler handles sentence-related REST endpoints.
type SentenceHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewSentenceHandler creates a new sentence handler.
func NewSentenceHandler(db database.Client, logger *zap.Logger) *SentenceHandler {
	return &SentenceHandler{
		db:     db,
		logger: logger,
	}
}

// CreateSentence handles POST /sentences. A duplicate submission is not an
// error; the submitter is folded into the contributor set and the existing
// record comes back with a non-added status.
func (h *SentenceHandler) CreateSentence(w http.ResponseWriter, req bunrouter.Request) error {
	body, err := restTypes.DecodeAndValidate[restTypes.SubmitSentenceRequest](req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	authorID, ok := auth.ContributorID(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	sentence, outcome, err := h.db.Service().Sentence().
		SubmitSentence(req.Context(), authorID, body.Text, body.Language, body.Context)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidSubmission):
			http.Error(w, "Text and language are required", http.StatusBadRequest)
			return nil
		case errors.Is(err, types.ErrSentenceAccepted):
			return writeJSON(w, http.StatusOK, restTypes.SubmitSentenceResponse{
				Status: restTypes.StatusAlreadyTranslated,
			})
		default:
			h.logger.Error("Failed to submit sentence", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return nil
		}
	}

	status := http.StatusOK
	if outcome == service.SentenceAdded {
		status = http.StatusCreated
	}

	return writeJSON(w, status, restTypes.SubmitSentenceResponse{
		Status:   convert.SentenceOutcome(outcome),
		Sentence: sentence,
	})
}

// CreateSentences handles POST /sentences/create-sentences-multiple. Items
// are processed independently; the response partitions them into the four
// outcome buckets.
func (h *SentenceHandler) CreateSentences(w http.ResponseWriter, req bunrouter.Request) error {
	body, err := restTypes.DecodeAndValidate[restTypes.SubmitSentencesRequest](req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	authorID, ok := auth.ContributorID(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	result, err := h.db.Service().Sentence().
		SubmitSentences(req.Context(), authorID, body.Language, body.Sentences)
	if err != nil {
		if errors.Is(err, types.ErrInvalidSubmission) {
			http.Error(w, "Language is required", http.StatusBadRequest)
			return nil
		}

		h.logger.Error("Failed to submit sentence batch", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return writeJSON(w, http.StatusOK, result)
}

// AcceptSentence handles PUT /sentences/:id/accept.
func (h *SentenceHandler) AcceptSentence(w http.ResponseWriter, req bunrouter.Request) error {
	sentenceID, err := uuid.Parse(req.Param("id"))
	if err != nil {
		http.Error(w, "Invalid sentence ID", http.StatusBadRequest)
		return nil
	}

	moderatorID, ok := auth.ContributorID(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	accepted, err := h.db.Service().Sentence().AcceptSentence(req.Context(), sentenceID, moderatorID)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrSentenceNotFound):
			http.Error(w, "Sentence not found", http.StatusNotFound)
		case errors.Is(err, types.ErrSentenceRejected):
			http.Error(w, "Sentence was rejected", http.StatusConflict)
		default:
			h.logger.Error("Failed to accept sentence", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}

		return nil
	}

	return writeJSON(w, http.StatusOK, accepted)
}

// RejectSentence handles PUT /sentences/:id/reject. The suggestion stays
// queryable with a terminal status.
func (h *SentenceHandler) RejectSentence(w http.ResponseWriter, req bunrouter.Request) error {
	sentenceID, err := uuid.Parse(req.Param("id"))
	if err != nil {
		http.Error(w, "Invalid sentence ID", http.StatusBadRequest)
		return nil
	}

	moderatorID, ok := auth.ContributorID(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	sentence, err := h.db.Service().Sentence().RejectSentence(req.Context(), sentenceID, moderatorID)
	if err != nil {
		if errors.Is(err, types.ErrSentenceNotFound) {
			http.Error(w, "Sentence not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to reject sentence", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return writeJSON(w, http.StatusOK, sentence)
}

// GetSentence handles GET /sentences/:id. Both stores are checked; the
// response says which one held the sentence.
func (h *SentenceHandler) GetSentence(w http.ResponseWriter, req bunrouter.Request) error {
	sentenceID, err := uuid.Parse(req.Param("id"))
	if err != nil {
		http.Error(w, "Invalid sentence ID", http.StatusBadRequest)
		return nil
	}

	ctx := req.Context()

	suggested, err := h.db.Model().Sentence().GetSuggestedByID(ctx, sentenceID)
	if err == nil {
		translations, err := h.db.Model().Translation().GetBySentence(ctx, sentenceID)
		if err != nil {
			h.logger.Error("Failed to get translations", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return nil
		}

		contributors, err := h.db.Model().Sentence().GetContributors(ctx, sentenceID)
		if err != nil {
			h.logger.Error("Failed to get contributors", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return nil
		}

		return writeJSON(w, http.StatusOK, restTypes.GetSentenceResponse{
			Status:       "suggested",
			Suggested:    suggested,
			Translations: translations,
			Contributors: contributors,
		})
	}

	if !errors.Is(err, types.ErrSentenceNotFound) {
		h.logger.Error("Failed to get sentence", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	accepted, err := h.db.Model().Sentence().GetAcceptedByID(ctx, sentenceID)
	if err != nil {
		if errors.Is(err, types.ErrSentenceNotFound) {
			http.Error(w, "Sentence not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to get sentence", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	confirmed, err := h.db.Model().Translation().GetConfirmedBySentence(ctx, sentenceID)
	if err != nil {
		h.logger.Error("Failed to get confirmed translations", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	contributors, err := h.db.Model().Sentence().GetContributors(ctx, sentenceID)
	if err != nil {
		h.logger.Error("Failed to get contributors", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return writeJSON(w, http.StatusOK, restTypes.GetSentenceResponse{
		Status:       "accepted",
		Accepted:     accepted,
		Confirmed:    confirmed,
		Contributors: contributors,
	})
}
