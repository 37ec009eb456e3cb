// Package watcher hands out short-lived review assignment leases backed by
// Redis key expiry. A lease stops an item from being assigned twice while a
// reviewer looks at it; expiry is automatic and advisory, nothing in-flight
// is cancelled when a lease lapses.
package watcher

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// releaseScript deletes the lease only if the caller still holds it.
var releaseScript = rueidis.NewLuaScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// Manager acquires and releases review assignment leases.
type Manager struct {
	client rueidis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewManager creates a new watcher manager.
func NewManager(client rueidis.Client, ttl time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		client: client,
		ttl:    ttl,
		logger: logger.Named("watcher"),
	}
}

// Acquire takes a lease on a translation for a reviewer. Returns false if
// another reviewer already holds a live lease.
func (m *Manager) Acquire(ctx context.Context, translationID uuid.UUID, reviewerID uint64) (bool, error) {
	cmd := m.client.B().Set().
		Key(leaseKey(translationID)).
		Value(strconv.FormatUint(reviewerID, 10)).
		Nx().
		Ex(m.ttl).
		Build()

	err := m.client.Do(ctx, cmd).Error()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to acquire lease: %w", err)
	}

	m.logger.Debug("Lease acquired",
		zap.String("translationID", translationID.String()),
		zap.Uint64("reviewerID", reviewerID))

	return true, nil
}

// Holder returns the reviewer currently holding a lease, if any.
func (m *Manager) Holder(ctx context.Context, translationID uuid.UUID) (uint64, bool, error) {
	cmd := m.client.B().Get().
		Key(leaseKey(translationID)).
		Build()

	value, err := m.client.Do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get lease holder: %w", err)
	}

	reviewerID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt lease value %q: %w", value, err)
	}

	return reviewerID, true, nil
}

// Release drops a lease early if the reviewer still holds it. Releasing a
// lease that expired or was taken over is a no-op.
func (m *Manager) Release(ctx context.Context, translationID uuid.UUID, reviewerID uint64) error {
	resp := releaseScript.Exec(ctx, m.client,
		[]string{leaseKey(translationID)},
		[]string{strconv.FormatUint(reviewerID, 10)})
	if err := resp.Error(); err != nil {
		return fmt.Errorf("failed to release lease: %w", err)
	}

	return nil
}

func leaseKey(translationID uuid.UUID) string {
	return "watcher:translation:" + translationID.String()
}
