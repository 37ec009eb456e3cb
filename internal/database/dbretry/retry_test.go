package dbretry_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/burlang/burlang/internal/database/dbretry"
	"github.com/stretchr/testify/assert"
)

// serverError mimics a PostgreSQL server error carrying a SQLSTATE code.
type serverError struct {
	code string
}

func (e serverError) Error() string {
	return fmt.Sprintf("server error (SQLSTATE=%s)", e.code)
}

func (e serverError) Field(k byte) string {
	if k == 'C' {
		return e.code
	}
	return ""
}

func TestIsDuplicateKeyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "unique violation",
			err:      serverError{code: "23505"},
			expected: true,
		},
		{
			name:     "wrapped unique violation",
			err:      fmt.Errorf("failed to insert sentence: %w", serverError{code: "23505"}),
			expected: true,
		},
		{
			name: "serialization failure is not a duplicate",
			err:  serverError{code: "40001"},
		},
		{
			name: "no rows",
			err:  sql.ErrNoRows,
		},
		{
			name: "nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, dbretry.IsDuplicateKeyError(tt.err))
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "deadlock",
			err:      serverError{code: "40P01"},
			expected: true,
		},
		{
			name:     "wrapped connection failure",
			err:      fmt.Errorf("failed to get sentence: %w", serverError{code: "08006"}),
			expected: true,
		},
		{
			name: "unique violation is permanent",
			err:  serverError{code: "23505"},
		},
		{
			name:     "deadline exceeded",
			err:      context.DeadlineExceeded,
			expected: true,
		},
		{
			name:     "network reset",
			err:      errors.New("read tcp: connection reset by peer"),
			expected: true,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
		},
		{
			name: "nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, dbretry.IsRetryableError(tt.err))
		})
	}
}
