package types

import "errors"

var (
	// ErrInvalidSubmission indicates required submission fields are empty.
	ErrInvalidSubmission = errors.New("text and language must not be empty")
	// ErrContributorNotFound indicates the contributor does not exist.
	ErrContributorNotFound = errors.New("contributor not found")
	// ErrSentenceNotFound indicates no suggested sentence with the given ID.
	ErrSentenceNotFound = errors.New("sentence not found")
	// ErrWordNotFound indicates no word with the given ID.
	ErrWordNotFound = errors.New("word not found")
	// ErrTranslationNotFound indicates no translation with the given ID.
	ErrTranslationNotFound = errors.New("translation not found")

	// ErrSentenceExists indicates the sentence text is already suggested.
	ErrSentenceExists = errors.New("sentence already suggested")
	// ErrSentenceAccepted indicates the sentence text is already in the accepted store.
	ErrSentenceAccepted = errors.New("sentence already accepted")
	// ErrSentenceRejected indicates the suggestion was rejected and cannot be promoted.
	ErrSentenceRejected = errors.New("sentence was rejected")
	// ErrTranslationExists indicates the sentence already has a translation with this text.
	ErrTranslationExists = errors.New("translation already exists")
	// ErrWordExists indicates the normalized word is already suggested.
	ErrWordExists = errors.New("word already suggested")
	// ErrWordAccepted indicates the normalized word is already in the accepted store.
	ErrWordAccepted = errors.New("word already accepted")
)
