package builds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
	plerr "github.com/KirkDiggler/loadout-planner/internal/errors"
	"github.com/KirkDiggler/loadout-planner/internal/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	buildKeyPrefix = "build:"
	ownerKeyPrefix = "owner:"
)

// RedisRepoConfig holds the Redis repository dependencies
type RedisRepoConfig struct {
	Client        redis.UniversalClient // Required
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
	TTL           time.Duration // 0 keeps builds forever
}

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
	ttl           time.Duration
}

// NewRedisRepository creates a Redis-backed build repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	uuidGen := cfg.UUIDGenerator
	if uuidGen == nil {
		uuidGen = uuid.NewGoogleUUIDGenerator()
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = SystemClock()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: uuidGen,
		timeProvider:  tp,
		ttl:           cfg.TTL,
	}
}

func buildKey(id string) string {
	return buildKeyPrefix + id
}

func ownerBuildsKey(ownerID string) string {
	return fmt.Sprintf("%s%s:builds", ownerKeyPrefix, ownerID)
}

func (r *redisRepo) Create(ctx context.Context, b *build.Build) error {
	if b == nil {
		return plerr.InvalidArgument("build cannot be nil")
	}
	if b.OwnerID == "" {
		return plerr.InvalidArgument("build owner ID is required")
	}

	if b.ID == "" {
		b.ID = r.uuidGenerator.New()
	}

	key := buildKey(b.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return plerr.Wrapf(err, "failed to check build existence for ID '%s'", b.ID)
	}
	if exists > 0 {
		return plerr.AlreadyExistsf("build with ID '%s' already exists", b.ID).
			WithMeta("build_id", b.ID)
	}

	now := r.timeProvider.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	data, err := json.Marshal(b)
	if err != nil {
		return plerr.Wrap(err, "failed to marshal build")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, string(data), r.ttl)
	pipe.SAdd(ctx, ownerBuildsKey(b.OwnerID), b.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return plerr.Wrapf(err, "failed to save build '%s'", b.ID)
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*build.Build, error) {
	if id == "" {
		return nil, plerr.InvalidArgument("build ID is required")
	}

	data, err := r.client.Get(ctx, buildKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, plerr.NotFoundf("build with ID '%s' not found", id).
				WithMeta("build_id", id)
		}
		return nil, plerr.Wrapf(err, "failed to get build '%s'", id)
	}

	var b build.Build
	if err := json.Unmarshal([]byte(data), &b); err != nil {
		return nil, plerr.Wrapf(err, "failed to unmarshal build '%s'", id)
	}
	return &b, nil
}

func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*build.Build, error) {
	if ownerID == "" {
		return nil, plerr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerBuildsKey(ownerID)).Result()
	if err != nil {
		return nil, plerr.Wrapf(err, "failed to list builds for owner '%s'", ownerID)
	}
	sort.Strings(ids)

	found := make([]*build.Build, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			b, err := r.Get(gctx, id)
			if err != nil {
				// Expired builds leave their ID behind in the owner index
				if plerr.IsNotFound(err) {
					return nil
				}
				return err
			}
			found[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*build.Build, 0, len(found))
	for _, b := range found {
		if b != nil {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *redisRepo) Update(ctx context.Context, b *build.Build) error {
	if b == nil {
		return plerr.InvalidArgument("build cannot be nil")
	}
	if b.ID == "" {
		return plerr.InvalidArgument("build ID is required")
	}

	existing, err := r.Get(ctx, b.ID)
	if err != nil {
		return err
	}

	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = r.timeProvider.Now()

	data, err := json.Marshal(b)
	if err != nil {
		return plerr.Wrap(err, "failed to marshal build")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, buildKey(b.ID), string(data), r.ttl)
	if existing.OwnerID != b.OwnerID {
		pipe.SRem(ctx, ownerBuildsKey(existing.OwnerID), b.ID)
		pipe.SAdd(ctx, ownerBuildsKey(b.OwnerID), b.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return plerr.Wrapf(err, "failed to update build '%s'", b.ID)
	}
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, buildKey(id))
	pipe.SRem(ctx, ownerBuildsKey(existing.OwnerID), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return plerr.Wrapf(err, "failed to delete build '%s'", id)
	}
	return nil
}
