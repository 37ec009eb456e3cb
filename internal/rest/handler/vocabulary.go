package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/burlang/burlang/internal/database"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/burlang/burlang/internal/rest/convert"
	"github.com/burlang/burlang/internal/rest/middleware/auth"
	restTypes "github.com/burlang/burlang/internal/rest/types"
	"github.com/google/uuid"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// VocabularyHandler handles word-level consensus endpoints.
type VocabularyHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewVocabularyHandler creates a new vocabulary handler.
func NewVocabularyHandler(db database.Client, logger *zap.Logger) *VocabularyHandler {
	return &VocabularyHandler{
		db:     db,
		logger: logger,
	}
}

// SuggestWord handles POST /vocabulary/suggest-word. The text may hold
// several comma-separated words; each goes through the pipeline on its own
// and gets its own result entry.
func (h *VocabularyHandler) SuggestWord(w http.ResponseWriter, req bunrouter.Request) error {
	body, err := restTypes.DecodeAndValidate[restTypes.SuggestWordRequest](req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	authorID, ok := auth.ContributorID(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	response := restTypes.SuggestWordResponse{Results: []restTypes.SuggestWordResult{}}

	for _, text := range strings.Split(body.Text, ",") {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		word, outcome, err := h.db.Service().Vocabulary().
			SuggestWord(req.Context(), authorID, text, body.Language, body.Dialect)

		result := restTypes.SuggestWordResult{Word: text}

		switch {
		case err == nil:
			result.Status = convert.WordOutcome(outcome)
			result.WordID = word.ID
		case errors.Is(err, types.ErrWordAccepted):
			result.Status = restTypes.StatusAlreadyAccepted
		case errors.Is(err, types.ErrInvalidSubmission):
			http.Error(w, "Text and language are required", http.StatusBadRequest)
			return nil
		default:
			h.logger.Error("Failed to suggest word",
				zap.Error(err),
				zap.String("word", text))
			http.Error(w, "Internal server error", http.StatusInternalServerError)

			return nil
		}

		response.Results = append(response.Results, result)
	}

	if len(response.Results) == 0 {
		http.Error(w, "No words in text", http.StatusBadRequest)
		return nil
	}

	return writeJSON(w, http.StatusOK, response)
}

// SuggestTranslate handles POST /vocabulary/suggest-translate.
func (h *VocabularyHandler) SuggestTranslate(w http.ResponseWriter, req bunrouter.Request) error {
	body, err := restTypes.DecodeAndValidate[restTypes.SuggestTranslateRequest](req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	authorID, ok := auth.ContributorID(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	_, err = h.db.Service().Vocabulary().
		SuggestWordTranslate(req.Context(), authorID, body.WordID, body.Translate, body.TranslateLanguage, body.Dialect)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrWordNotFound):
			http.Error(w, "Source word not found", http.StatusBadRequest)
		case errors.Is(err, types.ErrInvalidSubmission):
			http.Error(w, "Translation text and language are required", http.StatusBadRequest)
		default:
			h.logger.Error("Failed to suggest word translation", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}

		return nil
	}

	return writeJSON(w, http.StatusOK, restTypes.MessageResponse{
		Message: "Translation suggested",
	})
}

// AcceptSuggestedWord handles POST /vocabulary/accept-suggested-word.
func (h *VocabularyHandler) AcceptSuggestedWord(w http.ResponseWriter, req bunrouter.Request) error {
	body, err := restTypes.DecodeAndValidate[restTypes.WordActionRequest](req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	moderatorID, ok := auth.ContributorID(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	word, err := h.db.Service().Vocabulary().
		AcceptSuggestedWord(req.Context(), moderatorID, body.SuggestedWordID)
	if err != nil {
		if errors.Is(err, types.ErrWordNotFound) {
			http.Error(w, "Suggested word not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to accept suggested word", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return writeJSON(w, http.StatusOK, word)
}

// DeclineSuggestedWord handles POST /vocabulary/decline-suggested-word.
func (h *VocabularyHandler) DeclineSuggestedWord(w http.ResponseWriter, req bunrouter.Request) error {
	body, err := restTypes.DecodeAndValidate[restTypes.WordActionRequest](req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	moderatorID, ok := auth.ContributorID(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	declined, err := h.db.Service().Vocabulary().
		DeclineSuggestedWord(req.Context(), moderatorID, body.SuggestedWordID)
	if err != nil {
		if errors.Is(err, types.ErrWordNotFound) {
			http.Error(w, "Suggested word not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to decline suggested word", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return writeJSON(w, http.StatusOK, declined)
}

// GetWord handles GET /words/:id. Both stores are checked.
func (h *VocabularyHandler) GetWord(w http.ResponseWriter, req bunrouter.Request) error {
	wordID, err := uuid.Parse(req.Param("id"))
	if err != nil {
		http.Error(w, "Invalid word ID", http.StatusBadRequest)
		return nil
	}

	ctx := req.Context()

	suggested, err := h.db.Model().Word().GetSuggestedByID(ctx, wordID)
	if err == nil {
		contributors, err := h.db.Model().Word().GetContributors(ctx, wordID)
		if err != nil {
			h.logger.Error("Failed to get word contributors", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return nil
		}

		return writeJSON(w, http.StatusOK, restTypes.GetWordResponse{
			Status:       "suggested",
			Suggested:    suggested,
			Contributors: contributors,
		})
	}

	if !errors.Is(err, types.ErrWordNotFound) {
		h.logger.Error("Failed to get word", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	accepted, err := h.db.Model().Word().GetAcceptedByID(ctx, wordID)
	if err != nil {
		if errors.Is(err, types.ErrWordNotFound) {
			http.Error(w, "Word not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to get word", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	links, err := h.db.Model().Word().GetLinks(ctx, wordID)
	if err != nil {
		h.logger.Error("Failed to get word links", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	contributors, err := h.db.Model().Word().GetContributors(ctx, wordID)
	if err != nil {
		h.logger.Error("Failed to get word contributors", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return writeJSON(w, http.StatusOK, restTypes.GetWordResponse{
		Status:       "accepted",
		Accepted:     accepted,
		Links:        links,
		Contributors: contributors,
	})
}
