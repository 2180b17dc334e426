package v1

import (
	"context"
	"time"

	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/interval"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Calendar provides trading-day arithmetic.
type Calendar interface {
	// GetTradingDay returns the trading day a point in time belongs to.
	GetTradingDay(ctx context.Context, t time.Time) (time.Time, error)
	// GetPreTradingDay returns the trading day n steps before the given day.
	GetPreTradingDay(ctx context.Context, day time.Time, n int) (time.Time, error)
	// GetTradingDays returns the ordered trading days in [begin, end].
	GetTradingDays(ctx context.Context, begin, end time.Time) ([]time.Time, error)
}

// ReferenceData provides instrument metadata lookups.
type ReferenceData interface {
	GetExchangeID(ctx context.Context, instrumentID string) (string, error)
	// GetLivingSessionSlice returns the session window of an instrument for a
	// trading day. A nil slice means no session data is available.
	GetLivingSessionSlice(ctx context.Context, tradingDay time.Time, instrumentID string) (*SessionSlice, error)
}

// HistoricalTicks reads completed-session ticks, one trading day at a time.
type HistoricalTicks interface {
	Read(ctx context.Context, instrumentID, exchangeID string, tradingDay time.Time) ([]*Tick, error)
}

// HistoricalMinuteBars reads completed-session minute bars for a trading-day range.
type HistoricalMinuteBars interface {
	Read(ctx context.Context, instrumentID string, begin, end time.Time) ([]*Bar, error)
}

// HistoricalDayBars reads completed-session day bars for a trading-day range.
type HistoricalDayBars interface {
	Read(ctx context.Context, instrumentID string, begin, end time.Time) ([]*Bar, error)
}

// LiveTicks reads the in-progress session's ticks for the today overlay.
type LiveTicks interface {
	Read(ctx context.Context, instrumentID string, tradingDay time.Time) ([]*Tick, error)
}

// BarSeriesQuery is the filter for bar series reads.
type BarSeriesQuery struct {
	Market       string
	InstrumentID string
	Spec         interval.Spec
	Begin        time.Time
	End          time.Time
	MaxLength    int
	Restoration  bool
	Peers        []string
}

// TickSeriesQuery is the filter for tick series reads.
type TickSeriesQuery struct {
	Market       string
	InstrumentID string
	Begin        time.Time
	End          time.Time
	Length       int
}

// BarCache is the engine's public surface: memoized bar/tick series reads plus
// the live on-bar feed.
type BarCache interface {
	GetBarSeriesByTime(ctx context.Context, query BarSeriesQuery) ([]*Bar, error)
	GetBarSeriesByLength(ctx context.Context, query BarSeriesQuery) ([]*Bar, error)
	GetTickSeriesByTime(ctx context.Context, query TickSeriesQuery) ([]*Tick, error)
	GetTickSeriesByLength(ctx context.Context, query TickSeriesQuery) ([]*Tick, error)
	OnBar(ctx context.Context, bar *Bar)
	SessionDay() time.Time
	Reset(tradingDay time.Time)
}
