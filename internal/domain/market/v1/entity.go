package v1

import (
	"time"
)

// Tick represents a single market print. Volume, Turnover and OpenInterest
// are session-cumulative values, the way CTP-style feeds deliver them.
type Tick struct {
	InstrumentID string
	DateTime     time.Time
	LastPrice    float64
	OpenPrice    float64
	HighPrice    float64
	LowPrice     float64
	Volume       int64
	Turnover     float64
	OpenInterest float64
	TradingDay   time.Time
}

// Bar represents one OHLCV interval. Volume and Turnover are per-bar deltas.
// A bar is mutable only while it is the open trailing bar of an aggregator;
// once a newer period starts it is sealed and never touched again.
type Bar struct {
	InstrumentID string
	TradingDate  time.Time
	BeginTime    time.Time
	EndTime      time.Time
	Open         float64
	High         float64
	Low          float64
	Close        float64
	Volume       int64
	Turnover     float64
	OpenInterest float64
}

// SessionSlice is the living session window of an instrument for one trading day.
type SessionSlice struct {
	BeginTime time.Time
	EndTime   time.Time
}
