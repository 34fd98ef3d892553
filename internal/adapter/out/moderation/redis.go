package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"postboard/internal/service"

	"github.com/redis/go-redis/v9"
)

const verdictKeyPrefix = "moderation:verdict:"

// Connect initializes a Redis client from URL or host:port input.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

type RedisCache struct {
	client redis.Cmdable
}

func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (service.Verdict, bool, error) {
	raw, err := c.client.Get(ctx, verdictKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return service.VerdictUnknown, false, nil
		}
		return service.VerdictUnknown, false, err
	}
	switch raw {
	case service.VerdictOffensive.String():
		return service.VerdictOffensive, true, nil
	case service.VerdictAcceptable.String():
		return service.VerdictAcceptable, true, nil
	default:
		return service.VerdictUnknown, false, nil
	}
}

func (c *RedisCache) Set(ctx context.Context, key string, v service.Verdict, ttl time.Duration) error {
	return c.client.Set(ctx, verdictKeyPrefix+key, v.String(), ttl).Err()
}
