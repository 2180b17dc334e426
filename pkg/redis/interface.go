package redis

import (
	"context"

	v9 "github.com/redis/go-redis/v9"
)

// Client defines the interface for a Redis client.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=redis_mock
type Client interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error

	Del(ctx context.Context, keys ...string) (int64, error)

	ZAdd(ctx context.Context, key string, members ...v9.Z) (int64, error)
	ZRangeByScore(ctx context.Context, key string, opt *v9.ZRangeBy) ([]string, error)
}
