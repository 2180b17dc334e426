package redis

import (
	"context"

	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/errors"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/logger"
	v9 "github.com/redis/go-redis/v9"
)

type client struct {
	logger logger.Interface
	config *Config
	rdb    *v9.Client
}

// NewClient creates a new Redis client with the provided logger and configuration.
func NewClient(logger logger.Interface, config *Config) Client {
	return &client{
		logger: logger,
		config: config,
	}
}

// Connect validates the configuration and establishes the connection.
func (c *client) Connect(ctx context.Context) error {
	if c.config == nil {
		return errors.NewErrorDetails("Redis config is nil", string(errors.RedisConfigError), "connect")
	}
	if c.config.Addr == "" {
		return errors.NewErrorDetails("Redis address is empty", string(errors.RedisConfigError), "connect")
	}
	if c.config.ConnectTimeout <= 0 {
		return errors.NewErrorDetails("Invalid Redis connect timeout", string(errors.RedisConfigError), "connect")
	}
	if c.config.PoolSize <= 0 {
		return errors.NewErrorDetails("Invalid Redis pool size", string(errors.RedisConfigError), "connect")
	}

	c.rdb = v9.NewClient(&v9.Options{
		Addr:            c.config.Addr,
		Username:        c.config.Username,
		Password:        c.config.Password,
		DB:              c.config.DB,
		MaxRetries:      c.config.MaxRetries,
		MinRetryBackoff: c.config.MinRetryBackoff,
		MaxRetryBackoff: c.config.MaxRetryBackoff,
		DialTimeout:     c.config.ConnectTimeout,
		PoolSize:        c.config.PoolSize,
		MinIdleConns:    c.config.MinIdleConns,
		PoolTimeout:     c.config.PoolTimeout,
	})

	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.TracerFromError(err)
	}

	c.logger.InfoContext(ctx, "redis connected", logger.Field{
		Key:   "addr",
		Value: c.config.Addr,
	})

	return nil
}

// Disconnect closes the underlying connection pool.
func (c *client) Disconnect(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Close(); err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}

// Ping checks the connection.
func (c *client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}

// Del deletes the given keys.
func (c *client) Del(ctx context.Context, keys ...string) (int64, error) {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = c.config.PrefixKey + key
	}
	n, err := c.rdb.Del(ctx, prefixed...).Result()
	if err != nil {
		return 0, errors.NewErrorDetails(err.Error(), string(errors.RedisWriteError), "del")
	}
	return n, nil
}

// ZAdd adds members to a sorted set.
func (c *client) ZAdd(ctx context.Context, key string, members ...v9.Z) (int64, error) {
	n, err := c.rdb.ZAdd(ctx, c.config.PrefixKey+key, members...).Result()
	if err != nil {
		return 0, errors.NewErrorDetails(err.Error(), string(errors.RedisWriteError), "zadd")
	}
	return n, nil
}

// ZRangeByScore returns members of a sorted set within the given score range.
func (c *client) ZRangeByScore(ctx context.Context, key string, opt *v9.ZRangeBy) ([]string, error) {
	members, err := c.rdb.ZRangeByScore(ctx, c.config.PrefixKey+key, opt).Result()
	if err != nil {
		return nil, errors.NewErrorDetails(err.Error(), string(errors.RedisReadError), "zrangebyscore")
	}
	return members, nil
}
