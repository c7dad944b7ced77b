package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenCache_SetAndExists(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryTokenCache()

	require.NoError(t, c.Set(ctx, "revoked-token", time.Hour))

	exists, err := c.Exists(ctx, "revoked-token")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = c.Exists(ctx, "unknown-token")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryTokenCache_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	c := NewMemoryTokenCache().(*memoryTokenCache)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "revoked-token", 10*time.Minute))

	exists, err := c.Exists(ctx, "revoked-token")
	require.NoError(t, err)
	assert.True(t, exists)

	now = now.Add(11 * time.Minute)

	exists, err = c.Exists(ctx, "revoked-token")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryTokenCache_NonPositiveTTLIgnored(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryTokenCache()

	require.NoError(t, c.Set(ctx, "already-dead", 0))
	require.NoError(t, c.Set(ctx, "long-dead", -time.Minute))

	for _, token := range []string{"already-dead", "long-dead"} {
		exists, err := c.Exists(ctx, token)
		require.NoError(t, err)
		assert.False(t, exists, token)
	}
}
