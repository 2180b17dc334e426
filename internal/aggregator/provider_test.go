package aggregator

import (
	"context"
	"testing"
	"time"

	market "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1"
	market_mock "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1/mock"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/interval"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger(t *testing.T) logger.Interface {
	t.Helper()
	l, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return l
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(d time.Time, hour, min, sec int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, sec, 0, d.Location())
}

func minuteProvider(t *testing.T, tradingDay time.Time, multiplier int) *Provider {
	t.Helper()
	ctrl := gomock.NewController(t)
	refData := market_mock.NewMockReferenceData(ctrl)
	refData.EXPECT().GetLivingSessionSlice(gomock.Any(), tradingDay, "IF2309").Return(&market.SessionSlice{
		BeginTime: at(tradingDay, 9, 30, 0),
		EndTime:   at(tradingDay, 11, 30, 0),
	}, nil)

	provider, err := NewByTradingDay(context.Background(), refData, testLogger(t), "IF2309", tradingDay, interval.Spec{Type: interval.BarTypeMinute, Multiplier: multiplier})
	require.NoError(t, err)
	return provider
}

func TestProvider_AddTick(t *testing.T) {
	tradingDay := day(2023, time.August, 15)

	t.Run("aggregates within a period and seals on boundary", func(t *testing.T) {
		provider := minuteProvider(t, tradingDay, 1)

		provider.AddTick(&market.Tick{
			InstrumentID: "IF2309", DateTime: at(tradingDay, 9, 30, 0),
			LastPrice: 3800, Volume: 100, Turnover: 380000, OpenInterest: 1500, TradingDay: tradingDay,
		})
		provider.AddTick(&market.Tick{
			InstrumentID: "IF2309", DateTime: at(tradingDay, 9, 30, 30),
			LastPrice: 3805, Volume: 150, Turnover: 570750, OpenInterest: 1510, TradingDay: tradingDay,
		})
		// the 09:31:00 print closes the 09:30 bar, the 09:31:05 one opens the next
		provider.AddTick(&market.Tick{
			InstrumentID: "IF2309", DateTime: at(tradingDay, 9, 31, 0),
			LastPrice: 3795, Volume: 180, Turnover: 684600, OpenInterest: 1505, TradingDay: tradingDay,
		})
		provider.AddTick(&market.Tick{
			InstrumentID: "IF2309", DateTime: at(tradingDay, 9, 31, 5),
			LastPrice: 3796, Volume: 200, Turnover: 760520, OpenInterest: 1508, TradingDay: tradingDay,
		})

		bars := provider.Bars()
		require.Len(t, bars, 2)

		sealed := bars[0]
		assert.Equal(t, at(tradingDay, 9, 30, 0), sealed.BeginTime)
		assert.Equal(t, at(tradingDay, 9, 31, 0), sealed.EndTime)
		assert.Equal(t, 3800.0, sealed.Open)
		assert.Equal(t, 3805.0, sealed.High)
		assert.Equal(t, 3795.0, sealed.Low)
		assert.Equal(t, 3795.0, sealed.Close)
		assert.Equal(t, int64(180), sealed.Volume)
		assert.Equal(t, 684600.0, sealed.Turnover)
		assert.Equal(t, 1505.0, sealed.OpenInterest)

		open := bars[1]
		assert.Equal(t, at(tradingDay, 9, 31, 0), open.BeginTime)
		assert.Equal(t, 3796.0, open.Open)
		assert.Equal(t, 3796.0, open.Close)
		assert.Equal(t, int64(20), open.Volume)
	})

	t.Run("low is tracked across ticks", func(t *testing.T) {
		provider := minuteProvider(t, tradingDay, 1)

		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 30, 0), LastPrice: 3800, Volume: 100, TradingDay: tradingDay})
		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 30, 10), LastPrice: 3790, Volume: 120, TradingDay: tradingDay})
		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 30, 20), LastPrice: 3803, Volume: 130, TradingDay: tradingDay})

		bars := provider.Bars()
		require.Len(t, bars, 1)
		assert.Equal(t, 3790.0, bars[0].Low)
		assert.Equal(t, 3803.0, bars[0].High)
		assert.Equal(t, 3803.0, bars[0].Close)
	})

	t.Run("drops ticks before the window", func(t *testing.T) {
		provider := minuteProvider(t, tradingDay, 1)

		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 0, 0), LastPrice: 3800, Volume: 10, TradingDay: tradingDay})

		assert.Equal(t, 0, provider.Len())
		assert.Equal(t, 1, provider.Dropped())
	})

	t.Run("drops replayed ticks for an already sealed period", func(t *testing.T) {
		provider := minuteProvider(t, tradingDay, 1)

		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 30, 0), LastPrice: 3800, Volume: 100, TradingDay: tradingDay})
		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 31, 20), LastPrice: 3805, Volume: 150, TradingDay: tradingDay})
		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 30, 30), LastPrice: 3790, Volume: 120, TradingDay: tradingDay})

		bars := provider.Bars()
		require.Len(t, bars, 2)
		assert.Equal(t, 1, provider.Dropped())
		assert.Equal(t, 3800.0, bars[0].Close)
	})

	t.Run("boundary print closes the open bar, not the next one", func(t *testing.T) {
		provider := minuteProvider(t, tradingDay, 1)

		auction := &market.Tick{
			DateTime:  at(tradingDay, 9, 30, 0),
			LastPrice: 100, OpenPrice: 100, HighPrice: 101, LowPrice: 99,
			Volume: 50, TradingDay: tradingDay,
		}
		provider.AddTick(auction)
		provider.AdjustAuction(auction)

		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 31, 0), LastPrice: 100.5, Volume: 80, TradingDay: tradingDay})
		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 31, 30), LastPrice: 100.8, Volume: 110, TradingDay: tradingDay})

		bars := provider.Bars()
		require.Len(t, bars, 2)

		first := bars[0]
		assert.Equal(t, at(tradingDay, 9, 30, 0), first.BeginTime)
		assert.Equal(t, at(tradingDay, 9, 31, 0), first.EndTime)
		assert.Equal(t, 100.0, first.Open)
		assert.Equal(t, 101.0, first.High)
		assert.Equal(t, 99.0, first.Low)
		assert.Equal(t, 100.5, first.Close)
		assert.Equal(t, int64(80), first.Volume)

		second := bars[1]
		assert.Equal(t, at(tradingDay, 9, 31, 0), second.BeginTime)
		assert.Equal(t, 100.8, second.Open)
		assert.Equal(t, 100.8, second.Close)
		assert.Equal(t, int64(30), second.Volume)
	})

	t.Run("late prints after a boundary seal are dropped", func(t *testing.T) {
		provider := minuteProvider(t, tradingDay, 1)

		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 30, 10), LastPrice: 3800, Volume: 100, TradingDay: tradingDay})
		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 31, 0), LastPrice: 3805, Volume: 150, TradingDay: tradingDay})
		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 30, 40), LastPrice: 3790, Volume: 160, TradingDay: tradingDay})

		bars := provider.Bars()
		require.Len(t, bars, 1)
		assert.Equal(t, 3805.0, bars[0].Close)
		assert.Equal(t, int64(150), bars[0].Volume)
		assert.Equal(t, 1, provider.Dropped())
	})

	t.Run("replayed cumulative volume contributes no delta", func(t *testing.T) {
		provider := minuteProvider(t, tradingDay, 1)

		tick := &market.Tick{DateTime: at(tradingDay, 9, 30, 0), LastPrice: 3800, Volume: 100, Turnover: 380000, TradingDay: tradingDay}
		provider.AddTick(tick)
		provider.AddTick(tick)

		bars := provider.Bars()
		require.Len(t, bars, 1)
		assert.Equal(t, int64(100), bars[0].Volume)
		assert.Equal(t, 380000.0, bars[0].Turnover)
	})

	t.Run("closing print at the final boundary lands in the last period", func(t *testing.T) {
		provider := minuteProvider(t, tradingDay, 1)

		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 11, 29, 30), LastPrice: 3810, Volume: 100, TradingDay: tradingDay})
		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 11, 30, 0), LastPrice: 3812, Volume: 110, TradingDay: tradingDay})

		bars := provider.Bars()
		require.Len(t, bars, 1)
		assert.Equal(t, at(tradingDay, 11, 29, 0), bars[0].BeginTime)
		assert.Equal(t, 3812.0, bars[0].Close)
		assert.Equal(t, int64(110), bars[0].Volume)
	})
}

func TestProvider_AdjustAuction(t *testing.T) {
	tradingDay := day(2023, time.August, 15)
	provider := minuteProvider(t, tradingDay, 1)

	auction := &market.Tick{
		DateTime:  at(tradingDay, 9, 30, 0),
		LastPrice: 3800, OpenPrice: 3799, HighPrice: 3802, LowPrice: 3797,
		Volume: 120, TradingDay: tradingDay,
	}
	provider.AddTick(auction)
	provider.AdjustAuction(auction)

	provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 30, 30), LastPrice: 3805, Volume: 200, TradingDay: tradingDay})

	bars := provider.Bars()
	require.Len(t, bars, 1)
	assert.Equal(t, 3799.0, bars[0].Open)
	assert.Equal(t, 3805.0, bars[0].High)
	assert.Equal(t, 3797.0, bars[0].Low)
	assert.Equal(t, 3805.0, bars[0].Close)
	assert.Equal(t, int64(200), bars[0].Volume)
}

func TestProvider_AddBar_MultiDayGrouping(t *testing.T) {
	ctrl := gomock.NewController(t)
	days := []time.Time{
		day(2023, time.August, 14),
		day(2023, time.August, 15),
		day(2023, time.August, 16),
		day(2023, time.August, 17),
	}

	calendar := market_mock.NewMockCalendar(ctrl)
	calendar.EXPECT().GetTradingDays(gomock.Any(), days[0], days[3]).Return(days, nil)
	refData := market_mock.NewMockReferenceData(ctrl)

	provider, err := NewByPeriod(context.Background(), calendar, refData, testLogger(t), "IF2309",
		days[0], days[3], interval.Spec{Type: interval.BarTypeDay, Multiplier: 2})
	require.NoError(t, err)

	prices := []float64{3800, 3810, 3790, 3820}
	for i, d := range days {
		provider.AddBar(&market.Bar{
			InstrumentID: "IF2309", TradingDate: d,
			BeginTime: at(d, 9, 30, 0), EndTime: at(d, 15, 0, 0),
			Open: prices[i], High: prices[i] + 5, Low: prices[i] - 5, Close: prices[i] + 2,
			Volume: 1000, Turnover: 3_800_000,
		})
	}

	bars := provider.Bars()
	require.Len(t, bars, 2)

	assert.Equal(t, days[1], bars[0].TradingDate)
	assert.Equal(t, 3800.0, bars[0].Open)
	assert.Equal(t, 3815.0, bars[0].High)
	assert.Equal(t, 3795.0, bars[0].Low)
	assert.Equal(t, 3812.0, bars[0].Close)
	assert.Equal(t, int64(2000), bars[0].Volume)

	assert.Equal(t, days[3], bars[1].TradingDate)
	assert.Equal(t, 3790.0, bars[1].Open)
	assert.Equal(t, 3822.0, bars[1].Close)
	assert.Equal(t, int64(2000), bars[1].Volume)
}

func TestProvider_TickDeltas_ResetOnDayChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	days := []time.Time{day(2023, time.August, 14), day(2023, time.August, 15)}

	calendar := market_mock.NewMockCalendar(ctrl)
	calendar.EXPECT().GetTradingDays(gomock.Any(), days[0], days[1]).Return(days, nil)
	refData := market_mock.NewMockReferenceData(ctrl)

	provider, err := NewByPeriod(context.Background(), calendar, refData, testLogger(t), "IF2309",
		days[0], days[1], interval.Spec{Type: interval.BarTypeDay, Multiplier: 1})
	require.NoError(t, err)

	provider.AddTick(&market.Tick{DateTime: at(days[0], 10, 0, 0), LastPrice: 3800, Volume: 100, Turnover: 380000, TradingDay: days[0]})
	provider.AddTick(&market.Tick{DateTime: at(days[1], 10, 0, 0), LastPrice: 3810, Volume: 40, Turnover: 152400, TradingDay: days[1]})

	bars := provider.Bars()
	require.Len(t, bars, 2)
	assert.Equal(t, int64(100), bars[0].Volume)
	assert.Equal(t, int64(40), bars[1].Volume)
	assert.Equal(t, 152400.0, bars[1].Turnover)
}

func TestProvider_UpsertDayBar(t *testing.T) {
	ctrl := gomock.NewController(t)
	today := day(2023, time.August, 15)
	yesterday := day(2023, time.August, 14)

	refData := market_mock.NewMockReferenceData(ctrl)
	provider, err := NewByTradingDay(context.Background(), refData, testLogger(t), "IF2309",
		today, interval.Spec{Type: interval.BarTypeDay, Multiplier: 1})
	require.NoError(t, err)

	provider.Preload([]*market.Bar{{TradingDate: yesterday, Close: 3790}})

	provider.UpsertDayBar(&market.Bar{TradingDate: today, Open: 3800, Close: 3805, Volume: 100})
	require.Equal(t, 2, provider.Len())

	// same trading date replaces, never appends
	provider.UpsertDayBar(&market.Bar{TradingDate: today, Open: 3800, Close: 3812, Volume: 250})
	bars := provider.Bars()
	require.Len(t, bars, 2)
	assert.Equal(t, 3790.0, bars[0].Close)
	assert.Equal(t, 3812.0, bars[1].Close)
	assert.Equal(t, int64(250), bars[1].Volume)
}

func TestProvider_Trims(t *testing.T) {
	tradingDay := day(2023, time.August, 15)

	newBars := func() []*market.Bar {
		var bars []*market.Bar
		for i := 0; i < 4; i++ {
			begin := at(tradingDay, 9, 30+i, 0)
			bars = append(bars, &market.Bar{
				TradingDate: tradingDay,
				BeginTime:   begin,
				EndTime:     begin.Add(time.Minute),
			})
		}
		return bars
	}

	t.Run("TrimHeadBefore drops the prefix that ends before begin", func(t *testing.T) {
		provider := minuteProvider(t, tradingDay, 1)
		provider.Preload(newBars())

		provider.TrimHeadBefore(at(tradingDay, 9, 32, 0))

		bars := provider.Bars()
		require.Len(t, bars, 2)
		assert.Equal(t, at(tradingDay, 9, 32, 0), bars[0].BeginTime)
	})

	t.Run("TrimHeadToLength keeps the tail", func(t *testing.T) {
		provider := minuteProvider(t, tradingDay, 1)
		provider.Preload(newBars())

		provider.TrimHeadToLength(3)

		bars := provider.Bars()
		require.Len(t, bars, 3)
		assert.Equal(t, at(tradingDay, 9, 31, 0), bars[0].BeginTime)
	})

	t.Run("TrimHeadToLength never trims below an open bar", func(t *testing.T) {
		provider := minuteProvider(t, tradingDay, 1)
		provider.Preload(newBars())
		provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 34, 10), LastPrice: 3800, Volume: 10, TradingDay: tradingDay})

		provider.TrimHeadToLength(1)

		bars := provider.Bars()
		require.Len(t, bars, 1)
		assert.Equal(t, 3800.0, bars[0].Close)
	})

	t.Run("TrimHeadByDate drops earlier trading dates", func(t *testing.T) {
		provider := minuteProvider(t, tradingDay, 1)
		provider.Preload([]*market.Bar{
			{TradingDate: day(2023, time.August, 11)},
			{TradingDate: day(2023, time.August, 14)},
			{TradingDate: tradingDay},
		})

		provider.TrimHeadByDate(day(2023, time.August, 14))

		bars := provider.Bars()
		require.Len(t, bars, 2)
		assert.Equal(t, day(2023, time.August, 14), bars[0].TradingDate)
	})
}

func TestProvider_LastSliceClipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	tradingDay := day(2023, time.August, 15)

	refData := market_mock.NewMockReferenceData(ctrl)
	refData.EXPECT().GetLivingSessionSlice(gomock.Any(), tradingDay, "IF2309").Return(&market.SessionSlice{
		BeginTime: at(tradingDay, 9, 30, 0),
		EndTime:   at(tradingDay, 9, 37, 0),
	}, nil)

	provider, err := NewByTradingDay(context.Background(), refData, testLogger(t), "IF2309",
		tradingDay, interval.Spec{Type: interval.BarTypeMinute, Multiplier: 5})
	require.NoError(t, err)

	provider.AddTick(&market.Tick{DateTime: at(tradingDay, 9, 36, 0), LastPrice: 3800, Volume: 10, TradingDay: tradingDay})

	bars := provider.Bars()
	require.Len(t, bars, 1)
	assert.Equal(t, at(tradingDay, 9, 35, 0), bars[0].BeginTime)
	assert.Equal(t, at(tradingDay, 9, 37, 0), bars[0].EndTime)
}
