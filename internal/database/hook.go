package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// slowQueryThreshold is the duration above which a query is logged.
const slowQueryThreshold = 250 * time.Millisecond

// Hook logs failed and slow queries through the database logger.
type Hook struct {
	logger *zap.Logger
}

// NewHook creates a new query hook.
func NewHook(logger *zap.Logger) *Hook {
	return &Hook{
		logger: logger.Named("db_query"),
	}
}

// BeforeQuery implements bun.QueryHook.
func (h *Hook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

// AfterQuery implements bun.QueryHook.
func (h *Hook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	duration := time.Since(event.StartTime)

	if event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows) {
		h.logger.Error("Query failed",
			zap.Error(event.Err),
			zap.String("operation", event.Operation()),
			zap.Duration("duration", duration))
		return
	}

	if duration >= slowQueryThreshold {
		h.logger.Warn("Slow query",
			zap.String("operation", event.Operation()),
			zap.Duration("duration", duration))
	}
}
