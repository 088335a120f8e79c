package eventlog

// Payload keys used to tie an event to an episode
const (
	PayloadKeyEpisode     = "episode"
	PayloadKeyEpisodes    = "episodes"
	PayloadKeyFromEpisode = "from_episode"
)

// Query limits
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// Log messages - service events
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded, skipping log"
	LogMsgFailedToLogEvent        = "Failed to log event to database"
	LogMsgEventLogged             = "Event logged to database"
	LogMsgSubscribed              = "Event log subscribed"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Error messages
const (
	ErrMsgListEventsFailed = "failed to list events"
	ErrMsgCleanupFailed    = "failed to clean up events"
)
