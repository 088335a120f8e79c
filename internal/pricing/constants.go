package pricing

// LockKeyPrices serializes every price series write
const LockKeyPrices = "prices"

// Log messages
const (
	LogMsgRecomputeStarted   = "Recomputing price series"
	LogMsgRecomputeCompleted = "Price series recomputed"
	LogMsgRecomputeFailed    = "Price recompute failed"
	LogMsgRecomputeWidened   = "Prior prices missing, recomputing whole series"
	LogMsgRecomputeQueueFull = "Price recompute queue full, job dropped"
	LogMsgRecomputeQueued    = "Price recompute queued"
	LogMsgPublishFailed      = "Failed to publish prices recomputed event"
)

// Error messages
const (
	ErrMsgLoadInputs = "failed to load pricing inputs"
	ErrMsgSavePrices = "failed to save prices"
)
