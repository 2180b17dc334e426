package interval

import (
	"fmt"
	"time"

	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/errors"
)

// BarType is the closed set of supported bar granularities.
type BarType int

const (
	// BarTypeSecond aggregates ticks into N-second bars.
	BarTypeSecond BarType = iota
	// BarTypeMinute aggregates minute source bars into N-minute bars.
	BarTypeMinute
	// BarTypeHour aggregates minute source bars into N-hour bars.
	BarTypeHour
	// BarTypeDay aggregates day source bars into N-trading-day bars.
	BarTypeDay
)

var barTypeNames = map[BarType]string{
	BarTypeSecond: "second",
	BarTypeMinute: "minute",
	BarTypeHour:   "hour",
	BarTypeDay:    "day",
}

// String returns the bar type name.
func (t BarType) String() string {
	name, ok := barTypeNames[t]
	if !ok {
		return fmt.Sprintf("bar_type(%d)", int(t))
	}
	return name
}

// ParseBarType returns the bar type for a given name.
func ParseBarType(name string) (BarType, error) {
	for t, n := range barTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, errors.NewErrorDetails(
		fmt.Sprintf("unsupported bar type: %s", name),
		string(errors.BarTypeUnsupported),
		"bar_type",
	)
}

// Spec identifies one bar configuration: a granularity plus a multiplier,
// e.g. {Minute, 5} for 5-minute bars or {Day, 3} for 3-trading-day bars.
type Spec struct {
	Type       BarType
	Multiplier int
}

// Name returns a short name such as "5m" or "1d".
func (s Spec) Name() string {
	suffix := map[BarType]string{
		BarTypeSecond: "s",
		BarTypeMinute: "m",
		BarTypeHour:   "h",
		BarTypeDay:    "d",
	}[s.Type]
	return fmt.Sprintf("%d%s", s.Multiplier, suffix)
}

// Duration returns the wall-clock length of one period. Day specs have no
// fixed wall-clock length (trading days vary) and return 0.
func (s Spec) Duration() time.Duration {
	switch s.Type {
	case BarTypeSecond:
		return time.Duration(s.Multiplier) * time.Second
	case BarTypeMinute:
		return time.Duration(s.Multiplier) * time.Minute
	case BarTypeHour:
		return time.Duration(s.Multiplier) * time.Hour
	default:
		return 0
	}
}

// Intraday reports whether periods are carved out of a single session.
func (s Spec) Intraday() bool {
	return s.Type != BarTypeDay
}

// Validate checks the spec against the supported bar type set.
func (s Spec) Validate() error {
	if _, ok := barTypeNames[s.Type]; !ok {
		return errors.NewErrorDetails(
			fmt.Sprintf("unsupported bar type: %d", int(s.Type)),
			string(errors.BarTypeUnsupported),
			"bar_type",
		)
	}
	if s.Multiplier <= 0 {
		return errors.NewErrorDetails(
			fmt.Sprintf("invalid interval multiplier: %d", s.Multiplier),
			string(errors.GeneralBadRequestError),
			"interval",
		)
	}
	return nil
}
