package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int) (*FixedWindowLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l, err := NewFixedWindowLimiter(client, "test:ratelimit", limit, time.Minute)
	require.NoError(t, err)
	return l, mr
}

func TestFixedWindowLimiter(t *testing.T) {
	l, _ := newTestLimiter(t, 2)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "10.0.0.1"), "first request should pass")
	assert.True(t, l.Allow(ctx, "10.0.0.1"), "second request should pass")
	assert.False(t, l.Allow(ctx, "10.0.0.1"), "third request should be blocked")
	assert.True(t, l.Allow(ctx, "10.0.0.2"), "other keys keep their own quota")
}

func TestFixedWindowLimiterFailClosed(t *testing.T) {
	l, mr := newTestLimiter(t, 1)
	mr.Close()
	assert.False(t, l.Allow(context.Background(), "10.0.0.1"))
}

func TestFixedWindowLimiterRequiresConfig(t *testing.T) {
	_, err := NewFixedWindowLimiter(nil, "", 1, time.Second)
	assert.Error(t, err)

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()
	_, err = NewFixedWindowLimiter(client, "", 0, time.Second)
	assert.Error(t, err)
}

func TestUnlimited(t *testing.T) {
	assert.True(t, Unlimited{}.Allow(context.Background(), ""))
}
