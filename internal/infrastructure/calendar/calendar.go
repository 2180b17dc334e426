// Package calendar implements trading-day arithmetic over an exchange
// trading-day table loaded into a sorted in-memory snapshot.
package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	market "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/errors"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/questdb"
)

// Calendar answers trading-day lookups from a sorted snapshot of trading days.
type Calendar struct {
	days []time.Time
}

var _ market.Calendar = (*Calendar)(nil)

// NewFromQuestDB loads the trading_days table into a snapshot.
func NewFromQuestDB(ctx context.Context, client questdb.QuestDBClient) (*Calendar, error) {
	rows, err := client.Query(ctx, `SELECT day FROM trading_days ORDER BY day ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trading days: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan trading day: %w", err)
		}
		days = append(days, truncate(day))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return NewFromDays(days), nil
}

// NewFromDays creates a calendar from an explicit day list.
func NewFromDays(days []time.Time) *Calendar {
	sorted := make([]time.Time, len(days))
	for i, day := range days {
		sorted[i] = truncate(day)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	return &Calendar{days: sorted}
}

// GetTradingDay returns the trading day a point in time belongs to: the day
// itself when it is a trading day, otherwise the last trading day before it.
func (c *Calendar) GetTradingDay(ctx context.Context, t time.Time) (time.Time, error) {
	date := truncate(t)
	idx := sort.Search(len(c.days), func(i int) bool {
		return c.days[i].After(date)
	})
	if idx == 0 {
		return time.Time{}, c.outOfRange(date)
	}
	return c.days[idx-1], nil
}

// GetPreTradingDay returns the trading day n steps before day. Clamps to the
// earliest day in the snapshot when the history runs out.
func (c *Calendar) GetPreTradingDay(ctx context.Context, day time.Time, n int) (time.Time, error) {
	current, err := c.GetTradingDay(ctx, day)
	if err != nil {
		return time.Time{}, err
	}
	idx := c.indexOf(current) - n
	if idx < 0 {
		idx = 0
	}
	return c.days[idx], nil
}

// GetTradingDays returns the ordered trading days in [begin, end].
func (c *Calendar) GetTradingDays(ctx context.Context, begin, end time.Time) ([]time.Time, error) {
	beginDate := truncate(begin)
	endDate := truncate(end)

	var days []time.Time
	for _, day := range c.days {
		if day.Before(beginDate) {
			continue
		}
		if day.After(endDate) {
			break
		}
		days = append(days, day)
	}
	return days, nil
}

func (c *Calendar) indexOf(day time.Time) int {
	return sort.Search(len(c.days), func(i int) bool {
		return !c.days[i].Before(day)
	})
}

func (c *Calendar) outOfRange(date time.Time) error {
	return errors.NewErrorDetails(
		fmt.Sprintf("no trading day at or before %s", date.Format("2006-01-02")),
		string(errors.CalendarOutOfRange),
		"date",
	)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
