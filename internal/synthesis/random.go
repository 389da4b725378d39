package synthesis

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the random source behind every synthetic value. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Int63() int64
}

// LockedRand makes a *rand.Rand safe to share between concurrent requests.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a shareable source. A zero seed picks one from the clock.
func NewRand(seed int64) *LockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *LockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *LockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *LockedRand) Int63() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Int63()
}

// uniform draws from [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// uniformInt draws from [lo, hi].
func uniformInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
