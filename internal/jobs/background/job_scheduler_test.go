package background

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDayUTC(t *testing.T) {
	loc := time.FixedZone("UTC-6", -6*60*60)

	// 23:30 local is already the next day in UTC; the cache key must follow
	// the local calendar day, since that is the day staff ask about.
	evening := time.Date(2026, 8, 31, 23, 30, 0, 0, loc)
	day := startOfDayUTC(evening)

	assert.Equal(t, time.UTC, day.Location())
	assert.Equal(t, "2026-08-31", day.Format("2006-01-02"))
	assert.Zero(t, day.Hour())

	parsed, err := time.Parse("2006-01-02", "2026-08-31")
	assert.NoError(t, err)
	assert.True(t, day.Equal(parsed), "matches the representation request dates parse to")
}
