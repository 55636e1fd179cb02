package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marlon154/boardgame-search/internal/models"
)

func catanResults() []models.SearchResult {
	return []models.SearchResult{
		{ID: "13", Name: "Catan"},
		{ID: "2807", Name: "Catan Card Game"},
		{ID: "27710", Name: "Catan: Junior"},
		{ID: "154203", Name: "Catan: Seafarers"},
		{ID: "1", Name: "Settlers"},
	}
}

func TestExactMatch(t *testing.T) {
	c := New(16, time.Minute)
	c.Set("Catan", catanResults(), false)

	// Keys are normalized, lookups with different casing and padding hit
	results, ok := c.Get("  CATAN ", false)
	require.True(t, ok)
	assert.Len(t, results, 5)
}

func TestExactFlagMismatchMisses(t *testing.T) {
	c := New(16, time.Minute)
	c.Set("catan", catanResults(), false)

	_, ok := c.Get("catan", true)
	assert.False(t, ok)
}

func TestFuzzySupersetMatch(t *testing.T) {
	c := New(16, time.Minute)
	c.Set("catan", catanResults(), false)

	// "cata" is contained in "catan" and only 1 char shorter, so the
	// cached entry is reused, filtered down by name.
	results, ok := c.Get("cata", false)
	require.True(t, ok)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.Contains(t, r.Name, "Catan")
	}
}

func TestFuzzyRejectsNonSubstring(t *testing.T) {
	c := New(16, time.Minute)
	c.Set("catan", catanResults(), false)

	_, ok := c.Get("catanzzzz", false)
	assert.False(t, ok)
}

func TestFuzzyRejectsTooShortQuery(t *testing.T) {
	c := New(16, time.Minute)
	c.Set("carcassonne", []models.SearchResult{{ID: "822", Name: "Carcassonne"}}, false)

	// "carcassonne" is 7 chars longer than "carc", beyond the slack
	_, ok := c.Get("carc", false)
	assert.False(t, ok)
}

func TestTTLExpiry(t *testing.T) {
	c := New(16, 30*time.Millisecond)
	c.Set("catan", catanResults(), false)

	_, ok := c.Get("catan", false)
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = c.Get("catan", false)
	assert.False(t, ok)
	// The expired entry is removed from storage, not just hidden
	assert.Equal(t, 0, c.Len())
}

func TestSizeBound(t *testing.T) {
	const maxSize = 20
	c := New(maxSize, time.Minute)

	for i := 0; i < maxSize+50; i++ {
		c.Set(fmt.Sprintf("unique query number %04d", i), catanResults(), false)
		assert.LessOrEqual(t, c.Len(), maxSize, "cache exceeded capacity after insert %d", i)
	}
}

func TestPruneWithSizeBelowMargin(t *testing.T) {
	// maxSize smaller than the prune margin; filling past capacity must
	// not panic and must stay within bounds
	const maxSize = 5
	c := New(maxSize, time.Minute)

	for i := 0; i < maxSize+10; i++ {
		c.Set(fmt.Sprintf("query %02d", i), catanResults(), false)
		assert.LessOrEqual(t, c.Len(), maxSize, "cache exceeded capacity after insert %d", i)
	}

	_, ok := c.Get(fmt.Sprintf("query %02d", maxSize+9), false)
	assert.True(t, ok)
}

func TestPruneKeepsNewestEntries(t *testing.T) {
	const maxSize = 10
	c := New(maxSize, time.Minute)

	for i := 0; i < maxSize+5; i++ {
		c.Set(fmt.Sprintf("query %04d", i), catanResults(), false)
		time.Sleep(time.Millisecond)
	}

	// The most recent insert always survives pruning
	_, ok := c.Get(fmt.Sprintf("query %04d", maxSize+4), false)
	assert.True(t, ok)
}

func TestClear(t *testing.T) {
	c := New(16, time.Minute)
	c.Set("catan", catanResults(), false)
	c.Clear()

	_, ok := c.Get("catan", false)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}
