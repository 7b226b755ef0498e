package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/config"
)

// Client wraps the Redis connection.
// Used for the token blacklist, request rate limiting and the round report cache.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and pings it.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── token blacklist ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken stores a JWT ID until the token would have expired anyway.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to block
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted reports whether a JWT ID has been revoked.
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── rate limiting ──

// CheckRateLimit implements a fixed-window counter per key.
// Returns false when the window already holds `limit` requests.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// ── report cache ──

const reportCachePrefix = "report:rounds:"

// GetCachedReport returns a cached round report payload, or "" on miss.
func (c *Client) GetCachedReport(ctx context.Context, factoryCode, date string) (string, error) {
	v, err := c.rdb.Get(ctx, reportCachePrefix+factoryCode+":"+date).Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

// SetCachedReport stores a serialized round report with a TTL.
func (c *Client) SetCachedReport(ctx context.Context, factoryCode, date, payload string, ttl time.Duration) error {
	return c.rdb.Set(ctx, reportCachePrefix+factoryCode+":"+date, payload, ttl).Err()
}

// InvalidateReport drops the cached round report for a factory and date.
// Called when a scan for that day is created or removed so the cached round
// table is not served stale.
func (c *Client) InvalidateReport(ctx context.Context, factoryCode, date string) error {
	return c.rdb.Del(ctx, reportCachePrefix+factoryCode+":"+date).Err()
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
