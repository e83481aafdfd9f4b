package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityar2309/ttsai-progress/internal/models"
)

func TestCache_SetAndGet(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	defer c.Stop()

	summary := models.ProgressSummary{UserID: "user-1", TotalXP: 120}
	c.SetSummary("user-1", models.RangeAll, "", summary)

	got, ok := c.Summary("user-1", models.RangeAll, "")
	require.True(t, ok)
	assert.Equal(t, summary, got)

	// Different range and language keys miss.
	_, ok = c.Summary("user-1", models.RangeWeek, "")
	assert.False(t, ok)
	_, ok = c.Summary("user-1", models.RangeAll, "fr")
	assert.False(t, ok)
	_, ok = c.Summary("user-2", models.RangeAll, "")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	t.Parallel()

	c := New(20 * time.Millisecond)
	defer c.Stop()

	c.SetSummary("user-1", models.RangeAll, "", models.ProgressSummary{TotalXP: 1})

	_, ok := c.Summary("user-1", models.RangeAll, "")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)

	_, ok = c.Summary("user-1", models.RangeAll, "")
	assert.False(t, ok)
}

func TestCache_InvalidateUser(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	defer c.Stop()

	c.SetSummary("user-1", models.RangeAll, "", models.ProgressSummary{TotalXP: 1})
	c.SetSummary("user-1", models.RangeWeek, "fr", models.ProgressSummary{TotalXP: 2})
	c.SetSummary("user-2", models.RangeAll, "", models.ProgressSummary{TotalXP: 3})

	c.InvalidateUser("user-1")

	_, ok := c.Summary("user-1", models.RangeAll, "")
	assert.False(t, ok)
	_, ok = c.Summary("user-1", models.RangeWeek, "fr")
	assert.False(t, ok)

	got, ok := c.Summary("user-2", models.RangeAll, "")
	require.True(t, ok)
	assert.Equal(t, 3, got.TotalXP)
}

func TestCache_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	c.Stop()
	c.Stop()

	// Still usable after shutdown, just without background eviction.
	c.SetSummary("user-1", models.RangeAll, "", models.ProgressSummary{TotalXP: 1})
	_, ok := c.Summary("user-1", models.RangeAll, "")
	assert.True(t, ok)
}
