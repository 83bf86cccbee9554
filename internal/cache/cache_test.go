package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "user:3", UserKey(3))
	assert.Equal(t, "insight:12", InsightKey(12))
	assert.Equal(t, "feedback:7", FeedbackKey(7))
}

func TestNilClientIsAMiss(t *testing.T) {
	var c *Client
	ctx := context.Background()

	c.SetField(ctx, "user:1", "anon", []byte("x"))
	_, ok := c.GetField(ctx, "user:1", "anon")
	assert.False(t, ok)
	c.Invalidate(ctx, "user:1")
	assert.Error(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestUnreachableRedisFailsSafe(t *testing.T) {
	c := &Client{
		client: redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 50 * time.Millisecond,
			MaxRetries:  -1,
		}),
		ttl: time.Minute,
	}
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	c.SetField(ctx, "insight:1", "/api/insights/1/|anon", []byte("{}"))
	_, ok := c.GetField(ctx, "insight:1", "/api/insights/1/|anon")
	assert.False(t, ok)
	c.Invalidate(ctx, "insight:1")
	assert.Error(t, c.Ping(ctx))
}
