package enum

// SuggestionStatus represents the review state of a suggested sentence or word.
//
//go:generate go tool enumer -type=SuggestionStatus -trimprefix=SuggestionStatus
type SuggestionStatus int

const (
	// SuggestionStatusPending marks a suggestion awaiting review.
	SuggestionStatusPending SuggestionStatus = iota
	// SuggestionStatusInReview marks a suggestion handed out to a reviewer.
	SuggestionStatusInReview
	// SuggestionStatusApproved marks a suggestion accepted by a moderator.
	SuggestionStatusApproved
	// SuggestionStatusRejected marks a suggestion declined by a moderator.
	SuggestionStatusRejected
)
