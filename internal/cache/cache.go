// Package cache provides a TTL and size bounded store for search results.
package cache

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Marlon154/boardgame-search/internal/constants"
	"github.com/Marlon154/boardgame-search/internal/models"
)

type entry struct {
	results   []models.SearchResult
	timestamp time.Time
	exact     bool
}

// SearchCache caches search result lists keyed by normalized query.
// Besides exact key hits it can reuse a cached broader query: if a cached
// query contains the requested one and is at most fuzzyLengthSlack
// characters longer, the cached results are filtered down by name. This
// assumes the provider's search is substring-stable, which holds in
// practice but is not guaranteed.
type SearchCache struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	maxSize int
}

// Longest a cached query may exceed the requested one for fuzzy reuse.
const fuzzyLengthSlack = 3

// New creates a SearchCache holding at most maxSize entries, each valid
// for ttl.
func New(maxSize int, ttl time.Duration) *SearchCache {
	if maxSize <= 0 {
		maxSize = constants.DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = time.Duration(constants.DefaultCacheTTLMinutes) * time.Minute
	}

	return &SearchCache{
		entries: make(map[string]*entry),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Get returns the cached results for query, honoring the exact-match
// flag. An expired entry is removed and reported as a miss. When the key
// is absent entirely, a fuzzy superset lookup is attempted.
func (c *SearchCache) Get(query string, exact bool) ([]models.SearchResult, bool) {
	key := normalizeQuery(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return c.partialMatch(key)
	}

	if c.expired(e) {
		delete(c.entries, key)
		return nil, false
	}

	if e.exact == exact {
		return e.results, true
	}

	return nil, false
}

// partialMatch scans for a non-expired supersetting query and filters its
// results down to those whose name contains the requested query.
// Caller must hold the mutex.
func (c *SearchCache) partialMatch(query string) ([]models.SearchResult, bool) {
	for cachedQuery, e := range c.entries {
		if c.expired(e) {
			continue
		}
		if strings.Contains(cachedQuery, query) && len(cachedQuery)-len(query) <= fuzzyLengthSlack {
			filtered := make([]models.SearchResult, 0, len(e.results))
			for _, r := range e.results {
				if strings.Contains(strings.ToLower(r.Name), query) {
					filtered = append(filtered, r)
				}
			}
			return filtered, true
		}
	}
	return nil, false
}

// Set stores results for query, pruning first if the cache is at capacity.
func (c *SearchCache) Set(query string, results []models.SearchResult, exact bool) {
	key := normalizeQuery(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.prune()
	}

	c.entries[key] = &entry{
		results:   results,
		timestamp: time.Now(),
		exact:     exact,
	}
}

// prune drops expired entries, then removes oldest entries until the
// cache is under capacity with a margin. Caller must hold the mutex.
func (c *SearchCache) prune() {
	for key, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, key)
		}
	}

	if len(c.entries) < c.maxSize {
		return
	}

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return c.entries[keys[i]].timestamp.Before(c.entries[keys[j]].timestamp)
	})

	// The margin can exceed the whole cache when maxSize is small
	toRemove := len(c.entries) - c.maxSize + constants.CachePruneMargin
	if toRemove > len(keys) {
		toRemove = len(keys)
	}
	for _, key := range keys[:toRemove] {
		delete(c.entries, key)
	}
}

func (c *SearchCache) expired(e *entry) bool {
	return time.Since(e.timestamp) > c.ttl
}

// CleanExpired removes all expired entries. Called periodically from the
// application bootstrap.
func (c *SearchCache) CleanExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of stored entries, expired or not.
func (c *SearchCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear empties the cache. Used by lifecycle management, not by the
// lookup path.
func (c *SearchCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}
