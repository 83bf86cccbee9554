package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"geometa/internal/logging"
)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
// Each resource owns one hash; fields hold rendered variants of it.
type Client struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a new Redis client. Hashes expire after ttl.
func New(addr, password string, db int, ttl time.Duration) *Client {
	opts := &redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 2 * time.Second,
	}
	return &Client{client: redis.NewClient(opts), ttl: ttl}
}

// Ping reports whether redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return errors.New("cache disabled")
	}
	return c.client.Ping(ctx).Err()
}

// GetField returns the cached variant, or ok=false on a miss or when redis is unavailable.
func (c *Client) GetField(ctx context.Context, key, field string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	res, err := c.client.HGet(ctx, key, field).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.Debug().Err(err).Str("key", key).Msg("cache read failed")
		}
		return nil, false
	}
	return res, true
}

// SetField stores a variant and refreshes the hash TTL, ignoring redis errors.
func (c *Client) SetField(ctx context.Context, key, field string, value []byte) {
	if c == nil || c.client == nil {
		return
	}
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, field, value)
	if c.ttl > 0 {
		pipe.Expire(ctx, key, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		logging.Debug().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Invalidate drops every cached variant of the given resources.
func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logging.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func UserKey(id uint) string     { return fmt.Sprintf("user:%d", id) }
func InsightKey(id uint) string  { return fmt.Sprintf("insight:%d", id) }
func FeedbackKey(id uint) string { return fmt.Sprintf("feedback:%d", id) }
