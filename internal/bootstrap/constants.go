package bootstrap

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Log file rotation
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is how many earlier session logs survive startup
	LogFileRetentionCount = 9
)

// Logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting TribalScore"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// Event system
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Scoring config sync
const (
	LogMsgSyncingScoringConfig = "Syncing default scoring configuration"
	LogMsgScoringConfigSynced  = "Default scoring configuration ensured"
	ErrMsgFailedLoadScoring    = "failed to load scoring defaults"
	ErrMsgFailedSyncScoring    = "failed to store scoring defaults"
)

// Event handlers and jobs
const (
	LogMsgEventHandlersRegistered = "Event handlers registered"
	JobNamePriceRecompute         = "price-recompute"
	JobNameEventLogCleanup        = "event-log-cleanup"
)

// Shutdown
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownScheduler      = "Stopping scheduler..."
	LogMsgShuttingDownWorkers        = "Stopping worker pool..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
