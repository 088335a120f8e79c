package standings

import "time"

// Cache defaults
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 5 * time.Minute

	// CacheSchemaVersion is bumped when the cached shapes change so stale
	// entries are dropped on read
	CacheSchemaVersion = "1.0"
)

// Cache keys
const (
	cacheKeyLeaderboard      = "leaderboard"
	cacheKeyTeamPrefix       = "team:"
	cacheKeyContestantPrefix = "contestant:"
	loadKeySnapshot          = "snapshot"
)

// Log messages
const (
	LogMsgSnapshotLoaded    = "Standings snapshot loaded"
	LogMsgCacheInvalidated  = "Standings cache invalidated"
	LogMsgSnapshotLoadError = "Failed to load standings snapshot"
)

// Error messages
const (
	ErrMsgLoadSnapshot = "failed to load standings inputs"
)
