package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sbl-onboarding-be/internal/entity"

	"github.com/redis/go-redis/v9"
)

const progressKeyPrefix = "onboarding:progress:"

type RedisProgressCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProgressCache(client *redis.Client, ttl time.Duration) ProgressCache {
	return &RedisProgressCache{
		client: client,
		ttl:    ttl,
	}
}

func progressKey(sessionToken string) string {
	return progressKeyPrefix + sessionToken
}

func (c *RedisProgressCache) Save(ctx context.Context, progress *entity.CandidateProgress) error {
	payload, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	return c.client.Set(ctx, progressKey(progress.SessionToken), payload, c.ttl).Err()
}

func (c *RedisProgressCache) Load(ctx context.Context, sessionToken string) (*entity.CandidateProgress, error) {
	payload, err := c.client.Get(ctx, progressKey(sessionToken)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var progress entity.CandidateProgress
	if err := json.Unmarshal(payload, &progress); err != nil {
		return nil, fmt.Errorf("failed to decode progress: %w", err)
	}
	return &progress, nil
}

func (c *RedisProgressCache) Clear(ctx context.Context, sessionToken string) error {
	return c.client.Del(ctx, progressKey(sessionToken)).Err()
}
