package cache

import (
	"context"
	"time"

	"github.com/muhammadchandra19/exchange/services/bar-engine/internal/aggregator"
	market "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/interval"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/logger"
)

// overlayToday merges the in-progress session's ticks into a provider already
// holding the sealed historical series. Missing session data means no
// overlay, never an error.
func (c *BarCache) overlayToday(ctx context.Context, provider *aggregator.Provider, instrumentID string, end time.Time) {
	session, err := c.deps.ReferenceData.GetLivingSessionSlice(ctx, c.sessionDay, instrumentID)
	if err != nil {
		c.log.DebugContext(ctx, "no session slice for live day, skipping overlay",
			logger.Field{Key: "instrument_id", Value: instrumentID},
			logger.Field{Key: "error", Value: err.Error()},
		)
		return
	}
	if session == nil {
		return
	}
	if !end.IsZero() && !end.After(session.BeginTime) {
		return
	}

	ticks, err := c.deps.LiveTicks.Read(ctx, instrumentID, c.sessionDay)
	if err != nil {
		c.readerDegraded(ctx, err, "live_ticks")
		return
	}
	if len(ticks) == 0 {
		return
	}

	if provider.Spec().Type == interval.BarTypeDay {
		// a multi-day bar is never partially updated intraday
		if provider.Spec().Multiplier != 1 {
			return
		}
		c.overlayDayBar(provider, ticks, end)
		return
	}

	for i, tick := range ticks {
		if !end.IsZero() && tick.DateTime.After(end) {
			break
		}
		provider.AddTick(tick)
		// the opening print carries call-auction aggregate OHLC, not a trade
		if i == 0 && tick.DateTime.Equal(session.BeginTime) {
			provider.AdjustAuction(tick)
		}
	}
}

// overlayDayBar builds today's day bar from the session's first and latest
// ticks, replacing an earlier partial bar for the same trading date.
func (c *BarCache) overlayDayBar(provider *aggregator.Provider, ticks []*market.Tick, end time.Time) {
	var first, last *market.Tick
	for _, tick := range ticks {
		if !end.IsZero() && tick.DateTime.After(end) {
			break
		}
		if first == nil {
			first = tick
		}
		last = tick
	}
	if first == nil {
		return
	}

	open := first.OpenPrice
	if open == 0 {
		open = first.LastPrice
	}

	provider.UpsertDayBar(&market.Bar{
		InstrumentID: provider.InstrumentID(),
		TradingDate:  c.sessionDay,
		BeginTime:    first.DateTime,
		EndTime:      last.DateTime,
		Open:         open,
		High:         last.HighPrice,
		Low:          last.LowPrice,
		Close:        last.LastPrice,
		Volume:       last.Volume,
		Turnover:     last.Turnover,
		OpenInterest: last.OpenInterest,
	})
}
