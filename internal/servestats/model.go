package servestats

import (
	"strconv"

	"github.com/eleven-am/marketplace-analytics/internal/analytics"
	"github.com/samber/lo"
)

const (
	fieldReal          = "real"
	fieldSynthetic     = "synthetic"
	fieldContextErrors = "context_errors"
)

// Counters is one endpoint's serve-path tally for one UTC hour.
type Counters struct {
	Endpoint      string `json:"endpoint"`
	Date          string `json:"date"`
	Hour          int    `json:"hour"`
	Real          int64  `json:"real"`
	Synthetic     int64  `json:"synthetic"`
	ContextErrors int64  `json:"context_errors"`
}

func (c *Counters) Total() int64 {
	return c.Real + c.Synthetic
}

func CountersRedisKey(endpoint, date string, hour int) string {
	return "servestats:" + endpoint + ":" + date + ":" + strconv.Itoa(hour)
}

func parseCounters(c *Counters, data map[string]string) {
	if v, ok := data[fieldReal]; ok {
		c.Real, _ = strconv.ParseInt(v, 10, 64)
	}
	if v, ok := data[fieldSynthetic]; ok {
		c.Synthetic, _ = strconv.ParseInt(v, 10, 64)
	}
	if v, ok := data[fieldContextErrors]; ok {
		c.ContextErrors, _ = strconv.ParseInt(v, 10, 64)
	}
}

type Summary struct {
	Real          int64
	Synthetic     int64
	ContextErrors int64
}

func (s Summary) Total() int64 {
	return s.Real + s.Synthetic
}

// SyntheticShare is the percentage of served responses that were synthesized.
func (s Summary) SyntheticShare() float64 {
	return analytics.Round(analytics.SafeDiv(float64(s.Synthetic), float64(s.Total()))*100, 1)
}

func Summarize(counters []*Counters) Summary {
	return Summary{
		Real:          lo.SumBy(counters, func(c *Counters) int64 { return c.Real }),
		Synthetic:     lo.SumBy(counters, func(c *Counters) int64 { return c.Synthetic }),
		ContextErrors: lo.SumBy(counters, func(c *Counters) int64 { return c.ContextErrors }),
	}
}
