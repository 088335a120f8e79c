package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "outcome.recorded")
const (
	// EventTypeOutcomeRecorded is published when an episode outcome is created or superseded
	EventTypeOutcomeRecorded = "outcome.recorded"

	// EventTypeOverridesChanged is published after an override mutation, before
	// the affected episode is re-materialized
	EventTypeOverridesChanged = "overrides.changed"

	// EventTypeOverridesMaterialized is published once an episode's canonical rows are rewritten
	EventTypeOverridesMaterialized = "overrides.materialized"

	// EventTypePricesRecomputed is published when the price series was rewritten
	EventTypePricesRecomputed = "prices.recomputed"

	// EventTypeConfigUpdated is published when a new scoring or BPS config version is saved
	EventTypeConfigUpdated = "config.updated"
)
