package season

// Log messages
const (
	LogMsgOutcomeRecorded   = "Episode outcome recorded"
	LogMsgOutcomeSuperseded = "Episode outcome superseded"
	LogMsgConfigSaved       = "Config version saved"
	LogMsgConfigSeeded      = "Seeded default config"
	LogMsgPublishFailed     = "Failed to publish season event"
)

// Error messages
const (
	ErrMsgSaveOutcome = "failed to save outcome"
	ErrMsgLoadConfig  = "failed to load config"
	ErrMsgSaveConfig  = "failed to save config"
)
