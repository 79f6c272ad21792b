package builds

import (
	"time"

	"github.com/KirkDiggler/loadout-planner/internal/uuid"
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis-backed build repository with default dependencies
func NewRedis(client redis.UniversalClient, ttl time.Duration) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		TimeProvider:  SystemClock(),
		TTL:           ttl,
	})
}
