package repository

import (
	"context"
	"time"
)

// EventLog persists the audit trail of outcome, override, config and price
// events. episode is nil for season-wide events such as config changes.
type EventLog interface {
	LogEvent(ctx context.Context, eventType string, episode *int, payload, metadata map[string]interface{}) error
	// GetEvents is newest first
	GetEvents(ctx context.Context, filter EventLogFilter) ([]EventLogEntry, error)
	// CleanupOldEvents returns the number of rows deleted
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type EventLogEntry struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	Episode   *int                   `json:"episode,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// EventLogFilter narrows GetEvents. Zero fields don't filter.
type EventLogFilter struct {
	EventType *string
	Episode   *int
	Since     *time.Time
	Limit     int
}
