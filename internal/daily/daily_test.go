package daily

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2026-10-20 05:00 at +10 is still 2026-10-19 in UTC.
	d := time.Date(2026, 10, 20, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-10-19", DateKey(d))
}

func TestWordIndexDeterministicPerDay(t *testing.T) {
	morning := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)

	a := WordIndex(morning, "salt", 2315)
	assert.Equal(t, a, WordIndex(evening, "salt", 2315))
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 2315)
}

func TestWordIndexVariesAcrossDays(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		seen[WordIndex(start.AddDate(0, 0, d), "salt", 2315)] = true
	}
	assert.Greater(t, len(seen), 20)
}

func TestWordIndexEdgeCases(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	assert.Zero(t, WordIndex(now, "salt", 0))
	assert.Zero(t, WordIndex(now, "salt", 1))

	long := strings.Repeat("k", 200)
	i := WordIndex(now, long, 100)
	assert.Equal(t, i, WordIndex(now, long, 100))
	assert.Less(t, i, 100)
}
