package aggregator

import (
	"context"
	"time"

	market "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/interval"
)

// Period is one date-time slice a provider can own a bar for. For intraday
// specs Begin/End are carved out of the instrument's session window; for day
// specs they span whole trading days and End is exclusive.
type Period struct {
	TradingDay time.Time
	Begin      time.Time
	End        time.Time
}

func slicesForTradingDay(ctx context.Context, refData market.ReferenceData, instrumentID string, day time.Time, spec interval.Spec) ([]Period, error) {
	if spec.Type == interval.BarTypeDay {
		return []Period{{TradingDay: day, Begin: day, End: day.AddDate(0, 0, 1)}}, nil
	}

	session, err := refData.GetLivingSessionSlice(ctx, day, instrumentID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	step := spec.Duration()
	var periods []Period
	for begin := session.BeginTime; begin.Before(session.EndTime); begin = begin.Add(step) {
		end := begin.Add(step)
		if end.After(session.EndTime) {
			end = session.EndTime
		}
		periods = append(periods, Period{TradingDay: day, Begin: begin, End: end})
	}
	return periods, nil
}

func slicesForRange(ctx context.Context, calendar market.Calendar, refData market.ReferenceData, instrumentID string, beginDay, endDay time.Time, spec interval.Spec) ([]Period, error) {
	days, err := calendar.GetTradingDays(ctx, beginDay, endDay)
	if err != nil {
		return nil, err
	}

	if spec.Type == interval.BarTypeDay {
		// a new output bar starts only every Multiplier trading days
		var periods []Period
		for i := 0; i < len(days); i += spec.Multiplier {
			last := i + spec.Multiplier - 1
			if last >= len(days) {
				last = len(days) - 1
			}
			periods = append(periods, Period{
				TradingDay: days[last],
				Begin:      days[i],
				End:        days[last].AddDate(0, 0, 1),
			})
		}
		return periods, nil
	}

	var periods []Period
	for _, day := range days {
		dayPeriods, err := slicesForTradingDay(ctx, refData, instrumentID, day, spec)
		if err != nil {
			return nil, err
		}
		periods = append(periods, dayPeriods...)
	}
	return periods, nil
}

// BarsPerDay estimates how many bars one trading day yields for a spec. Used
// by length-bound queries to size the initial historical window.
func BarsPerDay(ctx context.Context, refData market.ReferenceData, instrumentID string, day time.Time, spec interval.Spec) (int, error) {
	if spec.Type == interval.BarTypeDay {
		return 1, nil
	}
	periods, err := slicesForTradingDay(ctx, refData, instrumentID, day, spec)
	if err != nil {
		return 0, err
	}
	return len(periods), nil
}
