package analytics

import (
	"errors"
	"fmt"
	"strings"
)

type Timeframe string

const (
	TimeframeDay   Timeframe = "day"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

type Interval string

const (
	IntervalHour  Interval = "hour"
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
)

var ErrConfiguration = errors.New("unsupported analytics configuration")

// ConfigurationError reports a timeframe/interval the engine refuses to report on.
type ConfigurationError struct {
	Timeframe Timeframe
	Interval  Interval
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if e.Interval == "" {
		return fmt.Sprintf("%s: timeframe %q: %s", ErrConfiguration, e.Timeframe, e.Reason)
	}
	return fmt.Sprintf("%s: timeframe %q interval %q: %s", ErrConfiguration, e.Timeframe, e.Interval, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

var pointCounts = map[Timeframe]map[Interval]int{
	TimeframeDay:   {IntervalHour: 24},
	TimeframeWeek:  {IntervalDay: 7, IntervalHour: 168},
	TimeframeMonth: {IntervalDay: 30, IntervalWeek: 4},
	TimeframeYear:  {IntervalDay: 365, IntervalWeek: 52, IntervalMonth: 12},
}

var defaultIntervals = map[Timeframe]Interval{
	TimeframeDay:   IntervalHour,
	TimeframeWeek:  IntervalDay,
	TimeframeMonth: IntervalDay,
	TimeframeYear:  IntervalMonth,
}

var periodDays = map[Timeframe]int{
	TimeframeDay:   1,
	TimeframeWeek:  7,
	TimeframeMonth: 30,
	TimeframeYear:  365,
}

func ParseTimeframe(s string) (Timeframe, error) {
	tf := Timeframe(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := pointCounts[tf]; !ok {
		return "", &ConfigurationError{Timeframe: tf, Reason: "unknown timeframe"}
	}
	return tf, nil
}

// ParseInterval resolves an interval for tf. An empty string selects DefaultInterval(tf).
func ParseInterval(tf Timeframe, s string) (Interval, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultInterval(tf), nil
	}
	iv := Interval(s)
	if _, err := PointCount(tf, iv); err != nil {
		return "", err
	}
	return iv, nil
}

func (tf Timeframe) Valid() bool {
	_, ok := pointCounts[tf]
	return ok
}

// PeriodDays returns the number of days the timeframe covers, 0 for unknown values.
func (tf Timeframe) PeriodDays() int {
	return periodDays[tf]
}

func DefaultInterval(tf Timeframe) Interval {
	return defaultIntervals[tf]
}

// PointCount is the number of points a (timeframe, interval) grid holds.
func PointCount(tf Timeframe, iv Interval) (int, error) {
	intervals, ok := pointCounts[tf]
	if !ok {
		return 0, &ConfigurationError{Timeframe: tf, Interval: iv, Reason: "unknown timeframe"}
	}
	n, ok := intervals[iv]
	if !ok {
		return 0, &ConfigurationError{Timeframe: tf, Interval: iv, Reason: "interval not supported for timeframe"}
	}
	return n, nil
}

// Supported lists the intervals accepted for tf, finest first.
func Supported(tf Timeframe) []Interval {
	var out []Interval
	for _, iv := range []Interval{IntervalHour, IntervalDay, IntervalWeek, IntervalMonth} {
		if _, ok := pointCounts[tf][iv]; ok {
			out = append(out, iv)
		}
	}
	return out
}
