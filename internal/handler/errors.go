package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidEpisodeParam   = "Episode must be a positive integer"
	ErrMsgInvalidLimitParam     = "Limit must be a positive integer"
	ErrMsgInvalidSinceParam     = "Since must be an RFC 3339 timestamp"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgServiceUnavailable = "Database connection failed"

	ErrMsgUserNotFoundError       = "User not found"
	ErrMsgContestantNotFoundError = "Contestant not found"
	ErrMsgOutcomeNotFoundError    = "Episode outcome not found"
	ErrMsgConfigNotFoundError     = "Scoring configuration not found"
	ErrMsgOverrideNotFoundError   = "Override not found"
	ErrMsgInvalidEpisodeError     = "Invalid episode"
	ErrMsgInvalidCategoryError    = "Invalid category"
	ErrMsgPriorPriceMissingError  = "Prices for the previous episode are missing. Recompute from an earlier episode."
	ErrMsgInvalidInputError       = "Invalid request. Please check your inputs."
)

// Success messages
const (
	MsgOverrideSaved      = "Override saved"
	MsgOverrideDeleted    = "Override deleted"
	MsgEpisodeCleared     = "Episode overrides cleared"
	MsgAllCleared         = "All overrides cleared"
	MsgOutcomeRecorded    = "Outcome recorded"
	MsgOutcomeSuperseded  = "Outcome recorded, earlier outcome superseded"
	MsgConfigSaved        = "Configuration saved"
	MsgEpisodeMaterialize = "Episode materialized"
	MsgAllMaterialized    = "All override episodes materialized"
	MsgPricesRecomputed   = "Prices recomputed"
)

// Log messages
const (
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgServiceError      = "Service call failed"
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgMissingQueryParam = "Missing query parameter"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
