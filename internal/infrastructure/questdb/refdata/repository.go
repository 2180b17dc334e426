package refdata

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	market "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/errors"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/questdb"
)

// Repository serves instrument reference data from the instruments and
// instrument_sessions tables.
type Repository struct {
	client questdb.QuestDBClient
}

var _ market.ReferenceData = (*Repository)(nil)

// NewRepository creates a new reference data repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// GetExchangeID returns the exchange an instrument is listed on.
func (r *Repository) GetExchangeID(ctx context.Context, instrumentID string) (string, error) {
	query := `SELECT exchange_id FROM instruments WHERE instrument_id = $1 LIMIT 1`

	var exchangeID string
	err := r.client.QueryRow(ctx, query, instrumentID).Scan(&exchangeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", errors.NewErrorDetails(
				fmt.Sprintf("unknown instrument: %s", instrumentID),
				string(errors.InstrumentUnknown),
				"instrument_id",
			)
		}
		return "", fmt.Errorf("failed to get exchange id: %w", err)
	}

	return exchangeID, nil
}

// GetLivingSessionSlice returns the instrument's session window for a trading
// day, or nil when no session data exists for that day.
func (r *Repository) GetLivingSessionSlice(ctx context.Context, tradingDay time.Time, instrumentID string) (*market.SessionSlice, error) {
	query := `SELECT session_begin, session_end
				  FROM instrument_sessions
				  WHERE instrument_id = $1 AND trading_day = $2
				  LIMIT 1`

	slice := &market.SessionSlice{}
	err := r.client.QueryRow(ctx, query, instrumentID, tradingDay).Scan(&slice.BeginTime, &slice.EndTime)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session slice: %w", err)
	}

	return slice, nil
}
