// Package cache wraps the Redis client used for the username/uid cache in
// internal/resolver, whose entries internal/events' roster consumer
// invalidates on role changes. Adapted from the platform's
// shared Redis wrapper, trimmed to a single-node *redis.Client since a
// group/membership cache does not carry the traffic that justifies cluster
// mode elsewhere in the platform.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

type Client struct {
	*redis.Client
}

func New(cfg Config) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     50,
		MinIdleConns: 5,
	})
	return &Client{rdb}
}

func (c *Client) SetString(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *Client) GetString(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	return c.Client.Del(ctx, keys...).Err()
}

func (c *Client) IsAvailable(ctx context.Context) bool {
	_, err := c.Client.Ping(ctx).Result()
	return err == nil
}
