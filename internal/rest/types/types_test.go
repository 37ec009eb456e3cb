package types_test

import (
	"strings"
	"testing"

	"github.com/burlang/burlang/internal/rest/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAndValidateSentence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		expectErr bool
	}{
		{
			name: "valid request",
			body: `{"text":"Сайн байна уу","language":"bxr"}`,
		},
		{
			name: "valid with context",
			body: `{"text":"Сайн байна уу","language":"bxr","context":"greeting"}`,
		},
		{
			name:      "missing text",
			body:      `{"language":"bxr"}`,
			expectErr: true,
		},
		{
			name:      "missing language",
			body:      `{"text":"Сайн байна уу"}`,
			expectErr: true,
		},
		{
			name:      "malformed json",
			body:      `{"text":`,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := types.DecodeAndValidate[types.SubmitSentenceRequest](strings.NewReader(tt.body))
			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, req.Text)
			assert.NotEmpty(t, req.Language)
		})
	}
}

func TestDecodeAndValidateVote(t *testing.T) {
	t.Parallel()

	t.Run("explicit false is valid", func(t *testing.T) {
		t.Parallel()

		req, err := types.DecodeAndValidate[types.VoteRequest](strings.NewReader(`{"isUpvote":false}`))
		require.NoError(t, err)
		require.NotNil(t, req.IsUpvote)
		assert.False(t, *req.IsUpvote)
	})

	t.Run("missing isUpvote is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := types.DecodeAndValidate[types.VoteRequest](strings.NewReader(`{}`))
		assert.Error(t, err)
	})
}

func TestDecodeAndValidateSentencesBatch(t *testing.T) {
	t.Parallel()

	t.Run("empty batch is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := types.DecodeAndValidate[types.SubmitSentencesRequest](
			strings.NewReader(`{"language":"bxr","sentences":[]}`))
		assert.Error(t, err)
	})

	t.Run("blank item is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := types.DecodeAndValidate[types.SubmitSentencesRequest](
			strings.NewReader(`{"language":"bxr","sentences":["ok",""]}`))
		assert.Error(t, err)
	})

	t.Run("valid batch", func(t *testing.T) {
		t.Parallel()

		req, err := types.DecodeAndValidate[types.SubmitSentencesRequest](
			strings.NewReader(`{"language":"bxr","sentences":["один","хоёр"]}`))
		require.NoError(t, err)
		assert.Len(t, req.Sentences, 2)
	})
}

func TestDecodeAndValidateTranslation(t *testing.T) {
	t.Parallel()

	t.Run("zero sentence id is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := types.DecodeAndValidate[types.SubmitTranslationRequest](strings.NewReader(
			`{"sentenceId":"00000000-0000-0000-0000-000000000000","text":"hi","language":"en"}`))
		assert.Error(t, err)
	})

	t.Run("valid translation", func(t *testing.T) {
		t.Parallel()

		req, err := types.DecodeAndValidate[types.SubmitTranslationRequest](strings.NewReader(
			`{"sentenceId":"7c9e6679-7425-40de-944b-e07fc1f90ae7","text":"hi","language":"en"}`))
		require.NoError(t, err)
		assert.Equal(t, "hi", req.Text)
	})
}
