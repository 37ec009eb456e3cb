package watcher_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/burlang/burlang/internal/watcher"
	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTest(t *testing.T) (*watcher.Manager, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	return watcher.NewManager(client, 15*time.Second, logger), mr
}

func TestAcquire(t *testing.T) {
	t.Parallel()

	manager, _ := setupTest(t)
	ctx := t.Context()
	translationID := uuid.New()

	ok, err := manager.Acquire(ctx, translationID, 100)
	require.NoError(t, err)
	assert.True(t, ok)

	// A second reviewer cannot take a held lease
	ok, err = manager.Acquire(ctx, translationID, 200)
	require.NoError(t, err)
	assert.False(t, ok)

	holder, held, err := manager.Holder(ctx, translationID)
	require.NoError(t, err)
	assert.True(t, held)
	assert.Equal(t, uint64(100), holder)
}

func TestAcquireAfterExpiry(t *testing.T) {
	t.Parallel()

	manager, mr := setupTest(t)
	ctx := t.Context()
	translationID := uuid.New()

	ok, err := manager.Acquire(ctx, translationID, 100)
	require.NoError(t, err)
	assert.True(t, ok)

	// Expiry frees the assignment for the next reviewer
	mr.FastForward(16 * time.Second)

	ok, err = manager.Acquire(ctx, translationID, 200)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRelease(t *testing.T) {
	t.Parallel()

	manager, _ := setupTest(t)
	ctx := t.Context()
	translationID := uuid.New()

	ok, err := manager.Acquire(ctx, translationID, 100)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, manager.Release(ctx, translationID, 100))

	_, held, err := manager.Holder(ctx, translationID)
	require.NoError(t, err)
	assert.False(t, held)
}

func TestReleaseNotHolder(t *testing.T) {
	t.Parallel()

	manager, _ := setupTest(t)
	ctx := t.Context()
	translationID := uuid.New()

	ok, err := manager.Acquire(ctx, translationID, 100)
	require.NoError(t, err)
	assert.True(t, ok)

	// Releasing someone else's lease must not drop it
	require.NoError(t, manager.Release(ctx, translationID, 200))

	holder, held, err := manager.Holder(ctx, translationID)
	require.NoError(t, err)
	assert.True(t, held)
	assert.Equal(t, uint64(100), holder)
}
