// Package convert maps service-layer results onto REST API representations.
package convert

import (
	"github.com/burlang/burlang/internal/database/service"
	"github.com/burlang/burlang/internal/rest/types"
)

// SentenceOutcome returns the API status string for a sentence submission.
func SentenceOutcome(outcome service.SentenceOutcome) string {
	switch outcome {
	case service.SentenceAdded:
		return types.StatusAdded
	case service.SentenceExists:
		return types.StatusExists
	case service.SentenceAuthorIsAuthor:
		return types.StatusAuthorIsAuthor
	case service.SentenceAlreadyTranslated:
		return types.StatusAlreadyTranslated
	default:
		return types.StatusExists
	}
}

// WordOutcome returns the API status string for a word suggestion.
func WordOutcome(outcome service.WordOutcome) string {
	switch outcome {
	case service.WordAdded:
		return types.StatusAdded
	case service.WordContributed:
		return types.StatusContributed
	case service.WordAlreadyAccepted:
		return types.StatusAlreadyAccepted
	default:
		return types.StatusContributed
	}
}
