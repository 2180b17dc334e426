package bar

import (
	"context"
	"fmt"
	"time"

	market "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/questdb"
)

// Repository reads completed-session bars from a month-sharded bar table.
// One instance serves one table (minute_bars or day_bars).
type Repository struct {
	client questdb.QuestDBClient
	table  string
}

var (
	_ market.HistoricalMinuteBars = (*Repository)(nil)
	_ market.HistoricalDayBars    = (*Repository)(nil)
)

// NewMinuteRepository creates a repository over the minute_bars table.
func NewMinuteRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{client: client, table: "minute_bars"}
}

// NewDayRepository creates a repository over the day_bars table.
func NewDayRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{client: client, table: "day_bars"}
}

// Read returns the ordered bars of one instrument for the inclusive
// trading-day range [begin, end].
func (r *Repository) Read(ctx context.Context, instrumentID string, begin, end time.Time) ([]*market.Bar, error) {
	query := fmt.Sprintf(`SELECT instrument_id, trading_date, begin_time, end_time, open, high, low, close, volume, turnover, open_interest
				  FROM %s
				  WHERE instrument_id = $1 AND trading_date >= $2 AND trading_date <= $3
				  ORDER BY begin_time ASC`, r.table)

	rows, err := r.client.Query(ctx, query, instrumentID, begin, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.table, err)
	}
	defer rows.Close()

	var bars []*market.Bar
	for rows.Next() {
		bar := &market.Bar{}
		err := rows.Scan(&bar.InstrumentID, &bar.TradingDate, &bar.BeginTime, &bar.EndTime,
			&bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume, &bar.Turnover, &bar.OpenInterest)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bar: %w", err)
		}
		bars = append(bars, bar)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return bars, nil
}
