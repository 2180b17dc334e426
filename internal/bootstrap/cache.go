package bootstrap

import (
	"context"
	"time"

	"github.com/muhammadchandra19/exchange/services/bar-engine/internal/cache"
	"github.com/muhammadchandra19/exchange/services/bar-engine/internal/consumer"
)

// registerCache registers the bar cache, keyed to the trading day now falls in.
func (b *Bootstrap) registerCache(ctx context.Context, now time.Time) error {
	sessionDay, err := b.Repository.Calendar.GetTradingDay(ctx, now)
	if err != nil {
		return err
	}

	b.Cache = cache.NewBarCache(sessionDay, cache.Collaborators{
		Calendar:        b.Repository.Calendar,
		ReferenceData:   b.Repository.ReferenceData,
		HistoricalTicks: b.Repository.Ticks,
		MinuteBars:      b.Repository.MinuteBars,
		DayBars:         b.Repository.DayBars,
		LiveTicks:       b.Repository.LiveTicks,
	}, b.Logger)

	return nil
}

// registerConsumer registers the live bar consumer.
func (b *Bootstrap) registerConsumer() {
	b.Consumer = consumer.NewBarConsumer(b.Config.BarKafka, b.Logger, b.Cache)
}
