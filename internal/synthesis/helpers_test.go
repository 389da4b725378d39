package synthesis

import "time"

// fixedRand pins every draw so expected values can be computed by hand.
type fixedRand struct {
	f    float64
	n    int
	seed int64
}

func (r *fixedRand) Float64() float64 { return r.f }

func (r *fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r *fixedRand) Int63() int64 {
	r.seed++
	return r.seed
}

// monday noon UTC
var testNow = time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }
