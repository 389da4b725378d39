package synthesis

import (
	"testing"
	"time"

	"github.com/eleven-am/marketplace-analytics/internal/analytics"
	"github.com/stretchr/testify/assert"
)

func TestWeekdayFactor(t *testing.T) {
	tests := []struct {
		day  time.Time
		want float64
	}{
		{time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC), 0.7}, // Saturday
		{time.Date(2024, time.June, 2, 10, 0, 0, 0, time.UTC), 0.7}, // Sunday
		{time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC), 1.0},
		{time.Date(2024, time.June, 7, 23, 0, 0, 0, time.UTC), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.day.Weekday().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, WeekdayFactor(tt.day))
		})
	}
}

func TestTimeOfDayFactor(t *testing.T) {
	tests := []struct {
		hour int
		want float64
	}{
		{0, 0.4}, {5, 0.4},
		{6, 0.9}, {11, 0.9},
		{12, 1.1}, {17, 1.1},
		{18, 0.8}, {23, 0.8},
	}

	for _, tt := range tests {
		ts := time.Date(2024, time.June, 3, tt.hour, 30, 0, 0, time.UTC)
		assert.Equalf(t, tt.want, TimeOfDayFactor(ts, analytics.IntervalHour), "hour %d", tt.hour)
		assert.Equalf(t, 1.0, TimeOfDayFactor(ts, analytics.IntervalDay), "hour %d with daily interval", tt.hour)
	}
}

func TestSignal_Pinned(t *testing.T) {
	monday3am := time.Date(2024, time.June, 3, 3, 0, 0, 0, time.UTC)
	sunday3pm := time.Date(2024, time.June, 2, 15, 0, 0, 0, time.UTC)

	assert.InDelta(t, 100*0.4, Signal(&fixedRand{f: 0}, monday3am, analytics.IntervalHour), 1e-9)
	assert.InDelta(t, 125*0.7*1.1, Signal(&fixedRand{f: 0.5}, sunday3pm, analytics.IntervalHour), 1e-9)
	assert.InDelta(t, 125*0.7, Signal(&fixedRand{f: 0.5}, sunday3pm, analytics.IntervalDay), 1e-9)
}

func TestSignal_AverageOverDraws(t *testing.T) {
	r := NewRand(42)
	const draws = 20000

	var sum float64
	for i := 0; i < draws; i++ {
		v := Signal(r, testNow, analytics.IntervalHour)
		assert.GreaterOrEqual(t, v, 100*1.1)
		assert.Less(t, v, 150*1.1)
		sum += v
	}
	assert.InDelta(t, 125*1.1, sum/draws, 1.0)
}

func TestLockedRand_SeedReproducible(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestUniformInt(t *testing.T) {
	assert.Equal(t, 10, uniformInt(&fixedRand{n: 0}, 10, 99))
	assert.Equal(t, 99, uniformInt(&fixedRand{n: 1000}, 10, 99))
	assert.Equal(t, 5, uniformInt(&fixedRand{}, 5, 5))
}
