package scheduler

// Log messages
const (
	LogMsgJobScheduled = "Scheduled periodic job"
	LogMsgJobSkipped   = "Worker queue full, skipping scheduled run"
	LogMsgStopped      = "Scheduler stopped"
)
