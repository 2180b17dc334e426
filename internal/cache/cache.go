// Package cache orchestrates historical loads and the live session overlay
// behind a per-configuration memoized bar series cache.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/muhammadchandra19/exchange/services/bar-engine/internal/aggregator"
	market "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/errors"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/interval"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/logger"
)

const maxBackwardExtensions = 5

// Collaborators bundles the external contracts the cache orchestrates.
type Collaborators struct {
	Calendar        market.Calendar
	ReferenceData   market.ReferenceData
	HistoricalTicks market.HistoricalTicks
	MinuteBars      market.HistoricalMinuteBars
	DayBars         market.HistoricalDayBars
	LiveTicks       market.LiveTicks
}

// BarCache memoizes bar series per (instrument, interval, bar type) and tick
// series per instrument for one trading session. The mutex covers the bucket
// maps and series mutation only; historical I/O happens outside the lock.
type BarCache struct {
	mu         sync.Mutex
	providers  map[string][]*aggregator.Provider
	ticks      map[string][]*market.Tick
	deps       Collaborators
	sessionDay time.Time
	log        logger.Interface
}

var _ market.BarCache = (*BarCache)(nil)

// NewBarCache creates a cache bound to the given live trading day.
func NewBarCache(sessionDay time.Time, deps Collaborators, log logger.Interface) *BarCache {
	return &BarCache{
		providers:  make(map[string][]*aggregator.Provider),
		ticks:      make(map[string][]*market.Tick),
		deps:       deps,
		sessionDay: sessionDay,
		log:        log,
	}
}

// SessionDay returns the live trading day the cache is bound to.
func (c *BarCache) SessionDay() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionDay
}

// Reset discards all cached series and re-binds the cache to a new live
// trading day. Must be called on day rollover in long-running processes.
func (c *BarCache) Reset(tradingDay time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.providers = make(map[string][]*aggregator.Provider)
	c.ticks = make(map[string][]*market.Tick)
	c.sessionDay = tradingDay
	c.log.Info("bar cache reset", logger.Field{Key: "trading_day", Value: tradingDay})
}

// OnBar feeds a live bar into every cached provider of its instrument.
// Multi-day bars are never partially updated intraday, so day providers with a
// multiplier above one are skipped.
func (c *BarCache) OnBar(ctx context.Context, bar *market.Bar) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, provider := range c.providers[bar.InstrumentID] {
		spec := provider.Spec()
		if spec.Type == interval.BarTypeDay && spec.Multiplier > 1 {
			continue
		}
		provider.AddBar(bar)
	}
}

// GetBarSeriesByTime returns the bar series for [query.Begin, query.End],
// merging historical sessions with the live overlay on first use and serving
// the memoized provider afterwards.
func (c *BarCache) GetBarSeriesByTime(ctx context.Context, query market.BarSeriesQuery) ([]*market.Bar, error) {
	if err := query.Spec.Validate(); err != nil {
		return nil, err
	}
	if provider := c.lookup(query.InstrumentID, query.Spec); provider != nil {
		return provider.Bars(), nil
	}

	beginDay, err := c.deps.Calendar.GetTradingDay(ctx, query.Begin)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	histEnd, err := c.clampHistoricalEnd(ctx, query.End)
	if err != nil {
		return nil, err
	}

	historical, err := c.buildHistorical(ctx, query, beginDay, histEnd)
	if err != nil {
		return nil, err
	}
	provider, err := c.rebaseToday(ctx, query, historical)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing := c.lookupLocked(query.InstrumentID, query.Spec); existing != nil {
		return existing.Bars(), nil
	}
	if query.Spec.Type == interval.BarTypeDay {
		provider.TrimHeadByDate(beginDay)
	} else {
		provider.TrimHeadBefore(query.Begin)
	}
	c.providers[query.InstrumentID] = append(c.providers[query.InstrumentID], provider)
	return provider.Bars(), nil
}

// GetBarSeriesByLength returns the most recent query.MaxLength bars ending at
// query.End. The historical window is estimated from the day's bar yield and
// extended backward one trading day at a time, up to five attempts; a shorter
// series than requested is not an error.
func (c *BarCache) GetBarSeriesByLength(ctx context.Context, query market.BarSeriesQuery) ([]*market.Bar, error) {
	if err := query.Spec.Validate(); err != nil {
		return nil, err
	}
	if query.MaxLength <= 0 {
		return nil, errors.NewErrorDetails("max length must be positive", string(errors.GeneralBadRequestError), "max_length")
	}
	if provider := c.lookup(query.InstrumentID, query.Spec); provider != nil {
		return provider.Bars(), nil
	}

	histEnd, err := c.clampHistoricalEnd(ctx, query.End)
	if err != nil {
		return nil, err
	}

	days, err := c.estimateTradingDays(ctx, query, histEnd)
	if err != nil {
		return nil, err
	}
	beginDay, err := c.deps.Calendar.GetPreTradingDay(ctx, histEnd, days-1)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	historical, err := c.buildHistorical(ctx, query, beginDay, histEnd)
	if err != nil {
		return nil, err
	}
	provider, err := c.rebaseToday(ctx, query, historical)
	if err != nil {
		return nil, err
	}

	curBegin := beginDay
	for attempt := 0; provider.Len() < query.MaxLength && attempt < maxBackwardExtensions; attempt++ {
		prevDay, err := c.deps.Calendar.GetPreTradingDay(ctx, curBegin, 1)
		if err != nil || !prevDay.Before(curBegin) {
			break
		}
		single, err := c.buildHistorical(ctx, query, prevDay, prevDay)
		if err != nil {
			break
		}
		provider.Prepend(single.Bars())
		curBegin = prevDay
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing := c.lookupLocked(query.InstrumentID, query.Spec); existing != nil {
		return existing.Bars(), nil
	}
	provider.TrimHeadToLength(query.MaxLength)
	c.providers[query.InstrumentID] = append(c.providers[query.InstrumentID], provider)
	return provider.Bars(), nil
}

// GetTickSeriesByTime returns the raw ticks in [query.Begin, query.End],
// loading and memoizing the instrument's tick series on first use.
func (c *BarCache) GetTickSeriesByTime(ctx context.Context, query market.TickSeriesQuery) ([]*market.Tick, error) {
	series, err := c.loadTickSeries(ctx, query)
	if err != nil {
		return nil, err
	}
	return filterTicks(series, query.Begin, query.End), nil
}

// GetTickSeriesByLength returns the last query.Length ticks at or before
// query.End, looking back over the preceding trading days.
func (c *BarCache) GetTickSeriesByLength(ctx context.Context, query market.TickSeriesQuery) ([]*market.Tick, error) {
	endDay, err := c.deps.Calendar.GetTradingDay(ctx, query.End)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	beginDay, err := c.deps.Calendar.GetPreTradingDay(ctx, endDay, maxBackwardExtensions-1)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	series, err := c.loadTickSeries(ctx, market.TickSeriesQuery{
		Market:       query.Market,
		InstrumentID: query.InstrumentID,
		Begin:        beginDay,
		End:          query.End,
	})
	if err != nil {
		return nil, err
	}

	filtered := filterTicks(series, beginDay, query.End)
	if query.Length > 0 && len(filtered) > query.Length {
		filtered = filtered[len(filtered)-query.Length:]
	}
	return filtered, nil
}

// lookup scans the instrument bucket for an existing provider.
func (c *BarCache) lookup(instrumentID string, spec interval.Spec) *aggregator.Provider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookupLocked(instrumentID, spec)
}

func (c *BarCache) lookupLocked(instrumentID string, spec interval.Spec) *aggregator.Provider {
	for _, provider := range c.providers[instrumentID] {
		if provider.Matches(spec) {
			return provider
		}
	}
	return nil
}

// clampHistoricalEnd maps the query end onto the last completed trading day:
// the live day is never read from the historical store.
func (c *BarCache) clampHistoricalEnd(ctx context.Context, end time.Time) (time.Time, error) {
	endDay, err := c.deps.Calendar.GetTradingDay(ctx, end)
	if err != nil {
		return time.Time{}, errors.TracerFromError(err)
	}
	if endDay.Before(c.sessionDay) {
		return endDay, nil
	}
	prev, err := c.deps.Calendar.GetPreTradingDay(ctx, c.sessionDay, 1)
	if err != nil {
		return time.Time{}, errors.TracerFromError(err)
	}
	return prev, nil
}

// buildHistorical builds a provider over [beginDay, endDay] fed from the
// store that matches the bar type. Reader failures degrade to empty input.
func (c *BarCache) buildHistorical(ctx context.Context, query market.BarSeriesQuery, beginDay, endDay time.Time) (*aggregator.Provider, error) {
	provider, err := aggregator.NewByPeriod(ctx, c.deps.Calendar, c.deps.ReferenceData, c.log, query.InstrumentID, beginDay, endDay, query.Spec, query.Peers...)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	if endDay.Before(beginDay) {
		return provider, nil
	}

	switch query.Spec.Type {
	case interval.BarTypeSecond:
		exchangeID, err := c.deps.ReferenceData.GetExchangeID(ctx, query.InstrumentID)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		days, err := c.deps.Calendar.GetTradingDays(ctx, beginDay, endDay)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		for _, day := range days {
			ticks, err := c.deps.HistoricalTicks.Read(ctx, query.InstrumentID, exchangeID, day)
			if err != nil {
				c.readerDegraded(ctx, err, "historical_ticks")
				continue
			}
			for _, tick := range ticks {
				if query.End.IsZero() || !tick.DateTime.After(query.End) {
					provider.AddTick(tick)
				}
			}
		}
	case interval.BarTypeMinute, interval.BarTypeHour:
		bars, err := c.deps.MinuteBars.Read(ctx, query.InstrumentID, beginDay, endDay)
		if err != nil {
			c.readerDegraded(ctx, err, "minute_bars")
			bars = nil
		}
		c.feedBars(provider, bars, query.End)
	case interval.BarTypeDay:
		bars, err := c.deps.DayBars.Read(ctx, query.InstrumentID, beginDay, endDay)
		if err != nil {
			c.readerDegraded(ctx, err, "day_bars")
			bars = nil
		}
		c.feedBars(provider, bars, query.End)
	}

	return provider, nil
}

// rebaseToday seals the historical series onto a provider scoped to the live
// trading day and runs the today overlay on it.
func (c *BarCache) rebaseToday(ctx context.Context, query market.BarSeriesQuery, historical *aggregator.Provider) (*aggregator.Provider, error) {
	provider, err := aggregator.NewByTradingDay(ctx, c.deps.ReferenceData, c.log, query.InstrumentID, c.sessionDay, query.Spec, query.Peers...)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	provider.Preload(historical.Bars())
	c.overlayToday(ctx, provider, query.InstrumentID, query.End)
	return provider, nil
}

// estimateTradingDays sizes the initial window for a length-bound query.
func (c *BarCache) estimateTradingDays(ctx context.Context, query market.BarSeriesQuery, estimationDay time.Time) (int, error) {
	if query.Spec.Type == interval.BarTypeDay {
		return query.MaxLength * query.Spec.Multiplier, nil
	}
	perDay, err := aggregator.BarsPerDay(ctx, c.deps.ReferenceData, query.InstrumentID, estimationDay, query.Spec)
	if err != nil {
		return 0, errors.TracerFromError(err)
	}
	if perDay <= 0 {
		perDay = 1
	}
	return (query.MaxLength + perDay - 1) / perDay, nil
}

func (c *BarCache) feedBars(provider *aggregator.Provider, bars []*market.Bar, end time.Time) {
	for _, bar := range bars {
		if end.IsZero() || !bar.BeginTime.After(end) {
			provider.AddBar(bar)
		}
	}
}

// loadTickSeries returns the instrument's memoized tick series, loading it
// from the historical store (and splicing in today's live ticks when the
// range reaches the live trading day) on first use.
func (c *BarCache) loadTickSeries(ctx context.Context, query market.TickSeriesQuery) ([]*market.Tick, error) {
	c.mu.Lock()
	cached, ok := c.ticks[query.InstrumentID]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	beginDay, err := c.deps.Calendar.GetTradingDay(ctx, query.Begin)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	endDay, err := c.deps.Calendar.GetTradingDay(ctx, query.End)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	histEnd := endDay
	spliceToday := false
	if !endDay.Before(c.sessionDay) {
		spliceToday = true
		histEnd, err = c.deps.Calendar.GetPreTradingDay(ctx, c.sessionDay, 1)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
	}

	exchangeID, err := c.deps.ReferenceData.GetExchangeID(ctx, query.InstrumentID)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	var series []*market.Tick
	if !histEnd.Before(beginDay) {
		days, err := c.deps.Calendar.GetTradingDays(ctx, beginDay, histEnd)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		for _, day := range days {
			ticks, err := c.deps.HistoricalTicks.Read(ctx, query.InstrumentID, exchangeID, day)
			if err != nil {
				c.readerDegraded(ctx, err, "historical_ticks")
				continue
			}
			series = append(series, ticks...)
		}
	}

	if spliceToday {
		live, err := c.deps.LiveTicks.Read(ctx, query.InstrumentID, c.sessionDay)
		if err != nil {
			c.readerDegraded(ctx, err, "live_ticks")
		} else {
			series = append(series, live...)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.ticks[query.InstrumentID]; ok {
		return existing, nil
	}
	c.ticks[query.InstrumentID] = series
	return series, nil
}

func (c *BarCache) readerDegraded(ctx context.Context, err error, source string) {
	c.log.WarnContext(ctx, "reader failed, continuing with empty input",
		logger.Field{Key: "source", Value: source},
		logger.Field{Key: "code", Value: string(errors.DataUnavailable)},
		logger.Field{Key: "error", Value: err.Error()},
	)
}

func filterTicks(ticks []*market.Tick, begin, end time.Time) []*market.Tick {
	var out []*market.Tick
	for _, tick := range ticks {
		if tick.DateTime.Before(begin) {
			continue
		}
		if !end.IsZero() && tick.DateTime.After(end) {
			break
		}
		out = append(out, tick)
	}
	return out
}
