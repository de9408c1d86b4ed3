package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseLimiter(t *testing.T, l Limiter) {
	ctx := context.Background()
	key := uuid.NewString()

	for i := 0; i < 3; i++ {
		allowed, err := l.Hit(ctx, key)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d", i+1)
	}

	allowed, err := l.Hit(ctx, key)
	require.NoError(t, err)
	assert.False(t, allowed)

	other, err := l.Hit(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.True(t, other)

	require.NoError(t, l.Reset(ctx, key))
	allowed, err = l.Hit(ctx, key)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiter(t *testing.T) {
	exerciseLimiter(t, NewMemoryLimiter(Config{MaxAttempts: 3, Window: time.Minute}))
}

func TestMemoryLimiterWindowExpires(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(Config{MaxAttempts: 1, Window: 50 * time.Millisecond})

	allowed, _ := l.Hit(ctx, "k")
	assert.True(t, allowed)
	allowed, _ = l.Hit(ctx, "k")
	assert.False(t, allowed)

	time.Sleep(80 * time.Millisecond)
	allowed, _ = l.Hit(ctx, "k")
	assert.True(t, allowed)
}

func TestNewFallsBackWithoutRedis(t *testing.T) {
	l, distributed := New(context.Background(), nil, Config{MaxAttempts: 1, Window: time.Minute})
	assert.False(t, distributed)
	assert.IsType(t, &MemoryLimiter{}, l)
}

func TestRedisLimiter(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opt)
	defer client.Close()

	exerciseLimiter(t, NewRedisLimiter(client, Config{MaxAttempts: 3, Window: time.Minute}))
}
