// Package aggregator turns monotonically time-ordered streams of ticks or
// lower-grain bars into higher-grain bar series, one Provider per
// (instrument, interval, bar type) configuration.
package aggregator

import (
	"context"
	"sort"
	"time"

	market "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/interval"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/logger"
)

// Provider aggregates one bar configuration. It owns an append-only arena of
// sealed bars plus at most one open trailing bar; sealed bars are never
// mutated again.
type Provider struct {
	instrumentID string
	spec         interval.Spec
	peers        []string

	periods []Period
	sealed  []*market.Bar
	open    *market.Bar
	openIdx int

	// session-cumulative tick baselines, reset on trading-day change
	cumDay      time.Time
	cumVolume   int64
	cumTurnover float64

	dropped int
	log     logger.Interface
}

// NewByPeriod creates a provider whose period boundaries cover the trading-day
// range [beginDay, endDay].
func NewByPeriod(ctx context.Context, calendar market.Calendar, refData market.ReferenceData, log logger.Interface, instrumentID string, beginDay, endDay time.Time, spec interval.Spec, peers ...string) (*Provider, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	periods, err := slicesForRange(ctx, calendar, refData, instrumentID, beginDay, endDay, spec)
	if err != nil {
		return nil, err
	}
	return newProvider(instrumentID, spec, peers, periods, log), nil
}

// NewByTradingDay creates a provider scoped to exactly one trading day. Used
// to re-base a merged historical series onto the live session.
func NewByTradingDay(ctx context.Context, refData market.ReferenceData, log logger.Interface, instrumentID string, tradingDay time.Time, spec interval.Spec, peers ...string) (*Provider, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	periods, err := slicesForTradingDay(ctx, refData, instrumentID, tradingDay, spec)
	if err != nil {
		return nil, err
	}
	return newProvider(instrumentID, spec, peers, periods, log), nil
}

func newProvider(instrumentID string, spec interval.Spec, peers []string, periods []Period, log logger.Interface) *Provider {
	return &Provider{
		instrumentID: instrumentID,
		spec:         spec,
		peers:        peers,
		periods:      periods,
		openIdx:      -1,
		log:          log,
	}
}

// InstrumentID returns the provider's instrument.
func (p *Provider) InstrumentID() string {
	return p.instrumentID
}

// Spec returns the provider's bar configuration.
func (p *Provider) Spec() interval.Spec {
	return p.spec
}

// Matches reports whether the provider serves the given configuration.
func (p *Provider) Matches(spec interval.Spec) bool {
	return p.spec == spec
}

// Dropped returns how many inconsistent inputs were discarded.
func (p *Provider) Dropped() int {
	return p.dropped
}

// Len returns the series length including the open bar.
func (p *Provider) Len() int {
	n := len(p.sealed)
	if p.open != nil {
		n++
	}
	return n
}

// Bars returns the series: sealed bars followed by the open bar, if any.
func (p *Provider) Bars() []*market.Bar {
	out := make([]*market.Bar, 0, p.Len())
	out = append(out, p.sealed...)
	if p.open != nil {
		out = append(out, p.open)
	}
	return out
}

// locate returns the index of the period containing t, clamping inputs at or
// past the final boundary into the last period. Returns -1 when t precedes
// the earliest configured boundary.
func (p *Provider) locate(t time.Time) int {
	if len(p.periods) == 0 || t.Before(p.periods[0].Begin) {
		return -1
	}
	idx := sort.Search(len(p.periods), func(i int) bool {
		return p.periods[i].End.After(t)
	})
	if idx == len(p.periods) {
		return len(p.periods) - 1
	}
	return idx
}

// AddTick feeds one tick through the period state machine. A print stamped
// exactly on the open bar's end boundary is the closing print of that bar, not
// the first trade of the next period: it updates the bar and seals it.
func (p *Provider) AddTick(tick *market.Tick) {
	if p.open != nil && tick.DateTime.Equal(p.open.EndTime) {
		dv, dt := p.tickDeltas(tick)
		if tick.LastPrice > p.open.High {
			p.open.High = tick.LastPrice
		}
		if tick.LastPrice < p.open.Low {
			p.open.Low = tick.LastPrice
		}
		p.open.Close = tick.LastPrice
		p.open.Volume += dv
		p.open.Turnover += dt
		p.open.OpenInterest = tick.OpenInterest
		p.seal()
		return
	}

	idx := p.locate(tick.DateTime)
	if idx < 0 {
		p.dropInput("tick", tick.DateTime)
		return
	}
	// after a boundary seal openIdx still marks the closed period; anything
	// at or before it is out of order
	if p.open == nil && idx <= p.openIdx {
		p.dropInput("tick", tick.DateTime)
		return
	}

	dv, dt := p.tickDeltas(tick)

	if p.open != nil {
		if idx == p.openIdx {
			if tick.LastPrice > p.open.High {
				p.open.High = tick.LastPrice
			}
			if tick.LastPrice < p.open.Low {
				p.open.Low = tick.LastPrice
			}
			p.open.Close = tick.LastPrice
			p.open.Volume += dv
			p.open.Turnover += dt
			p.open.OpenInterest = tick.OpenInterest
			return
		}
		if idx < p.openIdx {
			p.dropInput("tick", tick.DateTime)
			return
		}
		p.seal()
	}

	per := p.periods[idx]
	p.open = &market.Bar{
		InstrumentID: p.instrumentID,
		TradingDate:  per.TradingDay,
		BeginTime:    per.Begin,
		EndTime:      per.End,
		Open:         tick.LastPrice,
		High:         tick.LastPrice,
		Low:          tick.LastPrice,
		Close:        tick.LastPrice,
		Volume:       dv,
		Turnover:     dt,
		OpenInterest: tick.OpenInterest,
	}
	p.openIdx = idx
}

// AddBar feeds one lower-grain bar through the same period-closing logic.
func (p *Provider) AddBar(bar *market.Bar) {
	var idx int
	if p.spec.Type == interval.BarTypeDay {
		idx = p.locateDay(bar.TradingDate)
	} else {
		idx = p.locate(bar.BeginTime)
	}
	if idx < 0 {
		p.dropInput("bar", bar.BeginTime)
		return
	}

	if p.open != nil {
		if idx == p.openIdx {
			if bar.High > p.open.High {
				p.open.High = bar.High
			}
			if bar.Low < p.open.Low {
				p.open.Low = bar.Low
			}
			p.open.Close = bar.Close
			p.open.Volume += bar.Volume
			p.open.Turnover += bar.Turnover
			p.open.OpenInterest = bar.OpenInterest
			return
		}
		if idx < p.openIdx {
			p.dropInput("bar", bar.BeginTime)
			return
		}
		p.seal()
	}

	per := p.periods[idx]
	p.open = &market.Bar{
		InstrumentID: p.instrumentID,
		TradingDate:  per.TradingDay,
		BeginTime:    per.Begin,
		EndTime:      per.End,
		Open:         bar.Open,
		High:         bar.High,
		Low:          bar.Low,
		Close:        bar.Close,
		Volume:       bar.Volume,
		Turnover:     bar.Turnover,
		OpenInterest: bar.OpenInterest,
	}
	p.openIdx = idx
}

// AdjustAuction overwrites the open bar's open/high/low from an opening
// auction tick, which carries call-auction aggregate OHLC instead of a single
// trade price.
func (p *Provider) AdjustAuction(tick *market.Tick) {
	if p.open == nil {
		return
	}
	p.open.Open = tick.OpenPrice
	p.open.High = tick.HighPrice
	p.open.Low = tick.LowPrice
}

// UpsertDayBar replaces today's day bar, appending only when the series is
// empty or its last bar belongs to an earlier trading date.
func (p *Provider) UpsertDayBar(bar *market.Bar) {
	if p.open != nil && sameDate(p.open.TradingDate, bar.TradingDate) {
		*p.open = *bar
		return
	}
	if p.open == nil && len(p.sealed) > 0 && sameDate(p.sealed[len(p.sealed)-1].TradingDate, bar.TradingDate) {
		*p.sealed[len(p.sealed)-1] = *bar
		return
	}
	p.seal()
	p.open = bar
	p.openIdx = len(p.periods) - 1
}

// Preload seals already-aggregated historical bars into the arena. Used when
// re-basing a merged series onto the live trading day.
func (p *Provider) Preload(bars []*market.Bar) {
	p.sealed = append(p.sealed, bars...)
}

// Prepend inserts older bars at the front of the arena. Used by length-bound
// queries extending the window backward one trading day at a time.
func (p *Provider) Prepend(bars []*market.Bar) {
	if len(bars) == 0 {
		return
	}
	merged := make([]*market.Bar, 0, len(bars)+len(p.sealed))
	merged = append(merged, bars...)
	merged = append(merged, p.sealed...)
	p.sealed = merged
}

// TrimHeadBefore drops leading bars whose end time precedes begin. Bars are
// time-ordered, so this is a prefix trim, not a filter.
func (p *Provider) TrimHeadBefore(begin time.Time) {
	i := 0
	for i < len(p.sealed) && p.sealed[i].EndTime.Before(begin) {
		i++
	}
	p.sealed = p.sealed[i:]
}

// TrimHeadByDate drops leading bars whose trading date precedes beginDay.
func (p *Provider) TrimHeadByDate(beginDay time.Time) {
	i := 0
	for i < len(p.sealed) && p.sealed[i].TradingDate.Before(beginDay) {
		i++
	}
	p.sealed = p.sealed[i:]
}

// TrimHeadToLength drops leading bars until at most max remain. Never trims
// from the tail.
func (p *Provider) TrimHeadToLength(max int) {
	over := p.Len() - max
	if over <= 0 {
		return
	}
	if over >= len(p.sealed) {
		p.sealed = nil
		return
	}
	p.sealed = p.sealed[over:]
}

func (p *Provider) seal() {
	if p.open == nil {
		return
	}
	p.sealed = append(p.sealed, p.open)
	p.open = nil
}

func (p *Provider) locateDay(tradingDate time.Time) int {
	for i, per := range p.periods {
		if !tradingDate.Before(per.Begin) && tradingDate.Before(per.End) {
			return i
		}
	}
	return -1
}

// tickDeltas converts session-cumulative volume/turnover into per-bar deltas,
// resetting the baseline when the trading day changes.
func (p *Provider) tickDeltas(tick *market.Tick) (int64, float64) {
	if !sameDate(p.cumDay, tick.TradingDay) {
		p.cumDay = tick.TradingDay
		p.cumVolume = 0
		p.cumTurnover = 0
	}
	// baselines only move forward so a replayed tick contributes nothing
	dv := tick.Volume - p.cumVolume
	if dv < 0 {
		dv = 0
	} else {
		p.cumVolume = tick.Volume
	}
	dt := tick.Turnover - p.cumTurnover
	if dt < 0 {
		dt = 0
	} else {
		p.cumTurnover = tick.Turnover
	}
	return dv, dt
}

func (p *Provider) dropInput(kind string, t time.Time) {
	p.dropped++
	p.log.Debug("dropped input before aggregation window",
		logger.Field{Key: "instrument_id", Value: p.instrumentID},
		logger.Field{Key: "kind", Value: kind},
		logger.Field{Key: "time", Value: t},
	)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
