package standings

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/metrics"
)

// cachedEntry wraps one computed result with version metadata. Exactly one
// of the result fields is set.
type cachedEntry struct {
	Version     string
	Leaderboard []domain.UserStanding
	Team        *domain.TeamScore
	Summary     *domain.ContestantSummary
	CachedAt    time.Time
}

// resultCache holds computed standings with time-based expiry
type resultCache struct {
	lru *expirable.LRU[string, *cachedEntry]
}

func newResultCache(size int, ttl time.Duration) *resultCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &resultCache{
		lru: expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

// get returns the entry for key, dropping it on a schema version mismatch
func (c *resultCache) get(key string) (*cachedEntry, bool) {
	entry, found := c.lru.Get(key)
	if found && entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		found = false
	}
	if !found {
		metrics.StandingsCacheRequests.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}
	metrics.StandingsCacheRequests.WithLabelValues(metrics.ResultHit).Inc()
	return entry, true
}

func (c *resultCache) set(key string, entry *cachedEntry) {
	entry.Version = CacheSchemaVersion
	entry.CachedAt = time.Now()
	c.lru.Add(key, entry)
}

func (c *resultCache) clear() {
	c.lru.Purge()
}

func (c *resultCache) len() int {
	return c.lru.Len()
}
