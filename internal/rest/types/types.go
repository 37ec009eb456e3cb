// Package types defines the REST API request and response schemas. Every
// endpoint has its own tagged request struct validated at the boundary.
package types

import (
	"fmt"
	"io"

	dbTypes "github.com/burlang/burlang/internal/database/types"
	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeAndValidate decodes a JSON request body into a tagged schema and
// validates it against the schema's constraints.
func DecodeAndValidate[T any](r io.Reader) (*T, error) {
	var req T
	if err := sonic.ConfigDefault.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	if err := validate.Struct(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

// Submission status values returned by the API.
const (
	StatusAdded             = "added"
	StatusExists            = "exists"
	StatusAuthorIsAuthor    = "authorIsAuthor"
	StatusAlreadyTranslated = "alreadyTranslated"
	StatusContributed       = "contributed"
	StatusAlreadyAccepted   = "alreadyAccepted"
)

// SubmitSentenceRequest is the body of POST /sentences.
type SubmitSentenceRequest struct {
	Text     string `json:"text"     validate:"required,max=2000"`
	Language string `json:"language" validate:"required,max=16"`
	Context  string `json:"context"  validate:"max=2000"`
}

// SubmitSentencesRequest is the body of POST /sentences/create-sentences-multiple.
type SubmitSentencesRequest struct {
	Language  string   `json:"language"  validate:"required,max=16"`
	Sentences []string `json:"sentences" validate:"required,min=1,max=200,dive,required,max=2000"`
}

// SubmitTranslationRequest is the body of POST /translations.
type SubmitTranslationRequest struct {
	SentenceID uuid.UUID `json:"sentenceId" validate:"required"`
	Text       string    `json:"text"       validate:"required,max=2000"`
	Language   string    `json:"language"   validate:"required,max=16"`
	Dialect    string    `json:"dialect"    validate:"max=64"`
}

// VoteRequest is the body of POST /translations/:id/vote. The pointer
// distinguishes a missing isUpvote from an explicit false.
type VoteRequest struct {
	IsUpvote *bool `json:"isUpvote" validate:"required"`
}

// SuggestWordRequest is the body of POST /vocabulary/suggest-word. Text may
// hold several comma-separated words; each is processed independently.
type SuggestWordRequest struct {
	Text     string `json:"text"     validate:"required,max=512"`
	Language string `json:"language" validate:"required,max=16"`
	Dialect  string `json:"dialect"  validate:"max=64"`
}

// SuggestTranslateRequest is the body of POST /vocabulary/suggest-translate.
type SuggestTranslateRequest struct {
	WordID            uuid.UUID `json:"wordId"            validate:"required"`
	Translate         string    `json:"translate"         validate:"required,max=256"`
	TranslateLanguage string    `json:"translateLanguage" validate:"required,max=16"`
	Dialect           string    `json:"dialect"           validate:"max=64"`
}

// WordActionRequest is the body of the accept/decline word endpoints.
type WordActionRequest struct {
	SuggestedWordID uuid.UUID `json:"suggestedWordId" validate:"required"`
}

// SubmitSentenceResponse is returned by the sentence submission endpoints.
type SubmitSentenceResponse struct {
	Status   string                     `json:"status"`
	Sentence *dbTypes.SuggestedSentence `json:"sentence,omitempty"`
}

// GetSentenceResponse is returned by GET /sentences/:id. Exactly one of
// Suggested and Accepted is set, mirrored by Status.
type GetSentenceResponse struct {
	Status       string                          `json:"status"`
	Suggested    *dbTypes.SuggestedSentence      `json:"suggested,omitempty"`
	Accepted     *dbTypes.AcceptedSentence       `json:"accepted,omitempty"`
	Translations []*dbTypes.Translation          `json:"translations,omitempty"`
	Confirmed    []*dbTypes.ConfirmedTranslation `json:"confirmed,omitempty"`
	Contributors []uint64                        `json:"contributors,omitempty"`
}

// SubmitTranslationResponse is returned by POST /translations.
type SubmitTranslationResponse struct {
	TranslationID uuid.UUID `json:"translationId"`
}

// SuggestWordResult is the per-word outcome inside SuggestWordResponse.
type SuggestWordResult struct {
	Word   string    `json:"word"`
	Status string    `json:"status"`
	WordID uuid.UUID `json:"wordId,omitempty"`
}

// SuggestWordResponse is returned by POST /vocabulary/suggest-word.
type SuggestWordResponse struct {
	Results []SuggestWordResult `json:"results"`
}

// GetWordResponse is returned by GET /words/:id.
type GetWordResponse struct {
	Status       string                         `json:"status"`
	Suggested    *dbTypes.SuggestedWord         `json:"suggested,omitempty"`
	Accepted     *dbTypes.Word                  `json:"accepted,omitempty"`
	Links        []*dbTypes.WordTranslationLink `json:"links,omitempty"`
	Contributors []uint64                       `json:"contributors,omitempty"`
}

// NextTranslationResponse is returned by GET /moderation/next-translation.
// Votes carries the verdicts already cast so the reviewer sees the tally
// they are joining.
type NextTranslationResponse struct {
	Translation     *dbTypes.Translation `json:"translation"`
	Votes           []*dbTypes.Vote      `json:"votes,omitempty"`
	LeaseTTLSeconds int                  `json:"leaseTtlSeconds"`
}

// StatsResponse is returned by GET /stats.
type StatsResponse struct {
	Stats           *dbTypes.HourlyStats   `json:"stats"`
	TopContributors []*dbTypes.Contributor `json:"topContributors"`
}

// MessageResponse is a generic success message body.
type MessageResponse struct {
	Message string `json:"message"`
}
