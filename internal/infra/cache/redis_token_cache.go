package cache

import (
	"context"
	"time"

	"handyhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// revokedKeyPrefix namespaces blacklist entries inside the shared Redis database.
const revokedKeyPrefix = "revoked_token:"

// redisTokenCache implements the TokenCache interface on Redis, relying on
// per-key TTL for self-expiry.
type redisTokenCache struct {
	client *redis.Client
}

// NewRedisTokenCache is the constructor for redisTokenCache.
func NewRedisTokenCache(client *redis.Client) service.TokenCache {
	return &redisTokenCache{client: client}
}

// Set marks a token revoked for the given remaining lifetime.
func (c *redisTokenCache) Set(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Nothing to store; the entry would be dead on arrival.
		return nil
	}

	if err := c.client.Set(ctx, revokedKeyPrefix+token, "revoked", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set revoked token in redis")
	}

	return nil
}

// Exists reports whether the token is currently marked revoked.
func (c *redisTokenCache) Exists(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to query revoked token in redis")
	}

	return n > 0, nil
}
