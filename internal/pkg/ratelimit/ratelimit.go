package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Limiter counts attempts per key inside a fixed window.
type Limiter interface {
	// Hit records one attempt and reports whether it is still within the limit.
	Hit(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

type Config struct {
	MaxAttempts int
	Window      time.Duration
}

type RedisLimiter struct {
	client *redis.Client
	config Config
	prefix string
}

func NewRedisLimiter(client *redis.Client, config Config) *RedisLimiter {
	return &RedisLimiter{client: client, config: config, prefix: "ratelimit:login:"}
}

func (l *RedisLimiter) Hit(ctx context.Context, key string) (bool, error) {
	redisKey := l.prefix + key
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", redisKey, err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.config.Window).Err(); err != nil {
			return false, fmt.Errorf("expire %s: %w", redisKey, err)
		}
	}
	return count <= int64(l.config.MaxAttempts), nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.prefix+key).Err()
}

// MemoryLimiter is the single-process fallback used when Redis is not
// configured or unreachable.
type MemoryLimiter struct {
	cache  *cache.Cache
	config Config
}

func NewMemoryLimiter(config Config) *MemoryLimiter {
	return &MemoryLimiter{
		cache:  cache.New(config.Window, 2*config.Window),
		config: config,
	}
}

func (l *MemoryLimiter) Hit(_ context.Context, key string) (bool, error) {
	for {
		if err := l.cache.Add(key, 1, cache.DefaultExpiration); err == nil {
			return 1 <= l.config.MaxAttempts, nil
		}
		count, err := l.cache.IncrementInt(key, 1)
		if err == nil {
			return count <= l.config.MaxAttempts, nil
		}
		// The entry expired between Add and IncrementInt; start a new window.
	}
}

func (l *MemoryLimiter) Reset(_ context.Context, key string) error {
	l.cache.Delete(key)
	return nil
}

// New prefers Redis when a client is given and answers a ping, falling back to
// the in-memory limiter otherwise.
func New(ctx context.Context, client *redis.Client, config Config) (Limiter, bool) {
	if client != nil {
		if err := client.Ping(ctx).Err(); err == nil {
			return NewRedisLimiter(client, config), true
		}
	}
	return NewMemoryLimiter(config), false
}
