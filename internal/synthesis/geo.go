package synthesis

import (
	"github.com/eleven-am/marketplace-analytics/internal/analytics"
)

// GeoPool is the fixed set of countries a synthetic distribution reports on.
// Dominant is always listed first and always holds the highest count.
type GeoPool struct {
	Dominant string
	Others   []string
}

func DefaultGeoPool() GeoPool {
	return GeoPool{
		Dominant: "US",
		Others:   []string{"GB", "DE", "FR", "CA", "JP", "IN", "BR", "AU", "NL", "ES", "KR"},
	}
}

func (p GeoPool) Size() int {
	if p.Dominant == "" {
		return len(p.Others)
	}
	return len(p.Others) + 1
}

// GeoDistribution draws the dominant country from [100,300] and every other country
// from [10,99], so the dominant entry is strictly the largest.
func GeoDistribution(r Rand, pool GeoPool) []analytics.GeoEntry {
	out := make([]analytics.GeoEntry, 0, pool.Size())
	if pool.Dominant != "" {
		out = append(out, analytics.GeoEntry{
			CountryCode: pool.Dominant,
			Count:       int64(uniformInt(r, 100, 300)),
		})
	}
	for _, code := range pool.Others {
		out = append(out, analytics.GeoEntry{
			CountryCode: code,
			Count:       int64(uniformInt(r, 10, 99)),
		})
	}
	return out
}
