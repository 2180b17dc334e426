package bootstrap

import (
	"context"
	"time"

	"github.com/muhammadchandra19/exchange/services/bar-engine/internal/consumer"
	market "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/config"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/logger"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/questdb"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/redis"
)

// Bootstrap wires the bar engine together.
type Bootstrap struct {
	Repository Repository
	Cache      market.BarCache
	Consumer   *consumer.BarConsumer
	Logger     logger.Interface

	Config  *config.Config
	QuestDB questdb.QuestDBClient
	Redis   redis.Client
}

// BoostrapConfig is the config for the bootstrap.
type BoostrapConfig struct {
	Config  *config.Config
	QuestDB questdb.QuestDBClient
	Redis   redis.Client
	Logger  logger.Interface
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(ctx context.Context, config BoostrapConfig) (Bootstrap, error) {
	b.Config = config.Config
	b.QuestDB = config.QuestDB
	b.Redis = config.Redis
	b.Logger = config.Logger

	if err := b.registerRepository(ctx); err != nil {
		return Bootstrap{}, err
	}
	if err := b.registerCache(ctx, time.Now()); err != nil {
		return Bootstrap{}, err
	}
	b.registerConsumer()

	return *b, nil
}
