package override

// Lock keys
const (
	// LockKeyEpisodePrefix prefixes the per-episode materialization lock
	LockKeyEpisodePrefix = "materialize:episode:"
)

// Override actions reported on overrides.changed events
const (
	ActionSetCategory    = "set_category"
	ActionDeleteCategory = "delete_category"
	ActionSetTotal       = "set_total"
	ActionDeleteTotal    = "delete_total"
	ActionClearEpisode   = "clear_episode"
	ActionClearAll       = "clear_all"
)

// Log messages
const (
	LogMsgOverrideSet              = "Category override set"
	LogMsgUnknownCategory          = "Override category is outside the scoring vocabulary"
	LogMsgOverrideDeleted          = "Category override deleted"
	LogMsgTotalOverrideSet         = "Total override set"
	LogMsgTotalOverrideDeleted     = "Total override deleted"
	LogMsgEpisodeCleared           = "Episode overrides cleared"
	LogMsgAllCleared               = "All overrides cleared"
	LogMsgMaterializeStarted       = "Materializing episode"
	LogMsgMaterializeCompleted     = "Episode materialized"
	LogMsgMaterializeFailed        = "Episode materialization failed"
	LogMsgPublishMaterializeFailed = "Failed to publish materialization event"
)

// Error message prefixes
const (
	ErrMsgLoadOverrides     = "failed to load overrides"
	ErrMsgMaterializeFailed = "failed to materialize episode %d"
	ErrMsgWriteOverride     = "failed to write override"
)
