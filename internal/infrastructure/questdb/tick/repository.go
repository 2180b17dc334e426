package tick

import (
	"context"
	"fmt"

	"time"

	market "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/questdb"
)

// Repository reads completed-session ticks from the date-sharded ticks table.
type Repository struct {
	client questdb.QuestDBClient
}

var _ market.HistoricalTicks = (*Repository)(nil)

// NewRepository creates a new historical tick repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Read returns the ordered ticks of one instrument for one trading day.
func (r *Repository) Read(ctx context.Context, instrumentID, exchangeID string, tradingDay time.Time) ([]*market.Tick, error) {
	query := `SELECT instrument_id, timestamp, last_price, open_price, high_price, low_price, volume, turnover, open_interest, trading_day
				  FROM ticks
				  WHERE instrument_id = $1 AND exchange_id = $2 AND trading_day = $3
				  ORDER BY timestamp ASC`

	rows, err := r.client.Query(ctx, query, instrumentID, exchangeID, tradingDay)
	if err != nil {
		return nil, fmt.Errorf("failed to query ticks: %w", err)
	}
	defer rows.Close()

	var ticks []*market.Tick
	for rows.Next() {
		tick := &market.Tick{}
		err := rows.Scan(&tick.InstrumentID, &tick.DateTime, &tick.LastPrice, &tick.OpenPrice,
			&tick.HighPrice, &tick.LowPrice, &tick.Volume, &tick.Turnover, &tick.OpenInterest, &tick.TradingDay)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tick: %w", err)
		}
		ticks = append(ticks, tick)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return ticks, nil
}
