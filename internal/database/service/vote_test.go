package service_test

import (
	"testing"

	"github.com/burlang/burlang/internal/database/service"
	"github.com/burlang/burlang/internal/database/types"
	"github.com/stretchr/testify/assert"
)

func TestVoteDeltas(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		existing     *types.Vote
		isUpvote     bool
		expectedUp   int32
		expectedDown int32
		expectApply  bool
	}{
		{
			name:        "first upvote",
			existing:    nil,
			isUpvote:    true,
			expectedUp:  1,
			expectApply: true,
		},
		{
			name:         "first downvote",
			existing:     nil,
			isUpvote:     false,
			expectedDown: 1,
			expectApply:  true,
		},
		{
			name:        "repeated upvote is a no-op",
			existing:    &types.Vote{IsUpvote: true},
			isUpvote:    true,
			expectApply: false,
		},
		{
			name:        "repeated downvote is a no-op",
			existing:    &types.Vote{IsUpvote: false},
			isUpvote:    false,
			expectApply: false,
		},
		{
			name:         "flip down to up",
			existing:     &types.Vote{IsUpvote: false},
			isUpvote:     true,
			expectedUp:   1,
			expectedDown: -1,
			expectApply:  true,
		},
		{
			name:         "flip up to down",
			existing:     &types.Vote{IsUpvote: true},
			isUpvote:     false,
			expectedUp:   -1,
			expectedDown: 1,
			expectApply:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			up, down, apply := service.VoteDeltas(tt.existing, tt.isUpvote)
			assert.Equal(t, tt.expectedUp, up)
			assert.Equal(t, tt.expectedDown, down)
			assert.Equal(t, tt.expectApply, apply)
		})
	}
}

func TestShouldPromote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		upvotes   int32
		downvotes int32
		threshold int32
		expected  bool
	}{
		{"below threshold", 4, 0, 5, false},
		{"exactly at threshold", 5, 0, 5, true},
		{"above threshold", 9, 2, 5, true},
		{"downvotes pull below", 7, 3, 5, false},
		{"net negative", 1, 6, 5, false},
		{"threshold one", 1, 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, service.ShouldPromote(tt.upvotes, tt.downvotes, tt.threshold))
		})
	}
}
