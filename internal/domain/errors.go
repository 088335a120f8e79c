package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Contestant errors
	ErrMsgContestantNotFound = "contestant not found"

	// Outcome errors
	ErrMsgOutcomeNotFound = "episode outcome not found"
	ErrMsgInvalidEpisode  = "invalid episode"

	// Config errors
	ErrMsgConfigNotFound = "scoring config not found"

	// Override errors
	ErrMsgOverrideNotFound = "override not found"
	ErrMsgInvalidCategory  = "invalid category"

	// Pricing errors
	ErrMsgPriorPriceMissing = "prior episode price missing"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgDeadlockDetected  = "deadlock detected"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrContestantNotFound = errors.New(ErrMsgContestantNotFound)

	ErrOutcomeNotFound = errors.New(ErrMsgOutcomeNotFound)
	ErrInvalidEpisode  = errors.New(ErrMsgInvalidEpisode)

	ErrConfigNotFound = errors.New(ErrMsgConfigNotFound)

	ErrOverrideNotFound = errors.New(ErrMsgOverrideNotFound)
	ErrInvalidCategory  = errors.New(ErrMsgInvalidCategory)

	ErrPriorPriceMissing = errors.New(ErrMsgPriorPriceMissing)

	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)
	ErrDeadlockDetected  = errors.New(ErrMsgDeadlockDetected)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
