// Package liveticks stores the in-progress session's ticks in Redis sorted
// sets, one set per (trading day, instrument), scored by tick time.
package liveticks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	market "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/redis"
	v9 "github.com/redis/go-redis/v9"
)

// Repository is the Redis-backed live tick store.
type Repository struct {
	client redis.Client
}

var _ market.LiveTicks = (*Repository)(nil)

// NewRepository creates a new live tick repository.
func NewRepository(client redis.Client) *Repository {
	return &Repository{
		client: client,
	}
}

func key(instrumentID string, tradingDay time.Time) string {
	return fmt.Sprintf("liveticks:%s:%s", tradingDay.Format("2006-01-02"), instrumentID)
}

// Read returns today's ticks for an instrument in time order.
func (r *Repository) Read(ctx context.Context, instrumentID string, tradingDay time.Time) ([]*market.Tick, error) {
	members, err := r.client.ZRangeByScore(ctx, key(instrumentID, tradingDay), &v9.ZRangeBy{
		Min: "-inf",
		Max: "+inf",
	})
	if err != nil {
		return nil, err
	}

	ticks := make([]*market.Tick, 0, len(members))
	for _, member := range members {
		tick := &market.Tick{}
		if err := json.Unmarshal([]byte(member), tick); err != nil {
			return nil, fmt.Errorf("failed to unmarshal live tick: %w", err)
		}
		ticks = append(ticks, tick)
	}

	return ticks, nil
}

// Append stores one tick. The feed side calls this as prints arrive.
func (r *Repository) Append(ctx context.Context, tick *market.Tick) error {
	payload, err := json.Marshal(tick)
	if err != nil {
		return fmt.Errorf("failed to marshal live tick: %w", err)
	}

	_, err = r.client.ZAdd(ctx, key(tick.InstrumentID, tick.TradingDay), v9.Z{
		Score:  float64(tick.DateTime.UnixNano()),
		Member: string(payload),
	})
	return err
}

// Drop removes an instrument's tick set for a trading day, used on rollover.
func (r *Repository) Drop(ctx context.Context, instrumentID string, tradingDay time.Time) error {
	_, err := r.client.Del(ctx, key(instrumentID, tradingDay))
	return err
}
