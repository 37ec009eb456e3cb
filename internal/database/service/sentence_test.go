package service_test

import (
	"testing"

	"github.com/burlang/burlang/internal/database/service"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/burlang/burlang/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
)

func TestClassifyResubmission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing *types.SuggestedSentence
		accepted *types.AcceptedSentence
		authorID uint64
		expected service.SentenceOutcome
	}{
		{
			name:     "accepted store wins",
			accepted: &types.AcceptedSentence{AuthorID: 7},
			authorID: 7,
			expected: service.SentenceAlreadyTranslated,
		},
		{
			name:     "resubmission by the original author",
			existing: &types.SuggestedSentence{AuthorID: 7},
			authorID: 7,
			expected: service.SentenceAuthorIsAuthor,
		},
		{
			name:     "resubmission by another contributor",
			existing: &types.SuggestedSentence{AuthorID: 7},
			authorID: 8,
			expected: service.SentenceExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected,
				service.ClassifyResubmission(tt.existing, tt.accepted, tt.authorID))
		})
	}
}

func TestPromotable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   enum.SuggestionStatus
		expected bool
	}{
		{name: "pending", status: enum.SuggestionStatusPending, expected: true},
		{name: "in review", status: enum.SuggestionStatusInReview, expected: true},
		{name: "approved", status: enum.SuggestionStatusApproved, expected: true},
		{name: "rejected is terminal", status: enum.SuggestionStatusRejected, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, service.Promotable(tt.status))
		})
	}
}
