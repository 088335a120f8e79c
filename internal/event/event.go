package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types
const (
	OutcomeRecorded       Type = domain.EventTypeOutcomeRecorded
	OverridesChanged      Type = domain.EventTypeOverridesChanged
	OverridesMaterialized Type = domain.EventTypeOverridesMaterialized
	PricesRecomputed      Type = domain.EventTypePricesRecomputed
	ConfigUpdated         Type = domain.EventTypeConfigUpdated
)

// OutcomeRecordedPayloadV1 is the typed payload for outcome events
type OutcomeRecordedPayloadV1 struct {
	Episode    int    `json:"episode"`
	Phase      string `json:"phase"`
	Superseded bool   `json:"superseded"`
	Timestamp  int64  `json:"timestamp"`
}

// OverridesChangedPayloadV1 is the typed payload for override mutations
type OverridesChangedPayloadV1 struct {
	Action   string `json:"action"`
	Episodes []int  `json:"episodes"`
}

// OverridesMaterializedPayloadV1 is the typed payload for materialization events
type OverridesMaterializedPayloadV1 struct {
	Episode   int   `json:"episode"`
	Rows      int   `json:"rows"`
	Timestamp int64 `json:"timestamp"`
}

// PricesRecomputedPayloadV1 is the typed payload for price series rewrites
type PricesRecomputedPayloadV1 struct {
	FromEpisode int   `json:"from_episode"`
	Points      int   `json:"points"`
	Timestamp   int64 `json:"timestamp"`
}

// ConfigUpdatedPayloadV1 is the typed payload for config version changes
type ConfigUpdatedPayloadV1 struct {
	Kind    string `json:"kind"` // "scoring" or "bps"
	Version int    `json:"version"`
}

// NewOutcomeRecordedEvent creates an outcome recorded event
func NewOutcomeRecordedEvent(episode int, phase domain.Phase, superseded bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    OutcomeRecorded,
		Payload: OutcomeRecordedPayloadV1{
			Episode:    episode,
			Phase:      string(phase),
			Superseded: superseded,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewOverridesChangedEvent creates an override mutation event
func NewOverridesChangedEvent(action string, episodes []int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    OverridesChanged,
		Payload: OverridesChangedPayloadV1{
			Action:   action,
			Episodes: episodes,
		},
		Metadata: map[string]interface{}{
			MetadataKeyAction: action,
		},
	}
}

// NewOverridesMaterializedEvent creates a materialization event
func NewOverridesMaterializedEvent(episode, rows int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    OverridesMaterialized,
		Payload: OverridesMaterializedPayloadV1{
			Episode:   episode,
			Rows:      rows,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPricesRecomputedEvent creates a price series event
func NewPricesRecomputedEvent(fromEpisode, points int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PricesRecomputed,
		Payload: PricesRecomputedPayloadV1{
			FromEpisode: fromEpisode,
			Points:      points,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewConfigUpdatedEvent creates a config version event
func NewConfigUpdatedEvent(kind string, version int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ConfigUpdated,
		Payload: ConfigUpdatedPayloadV1{
			Kind:    kind,
			Version: version,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously. All handlers run even when
// one fails; the failures are reported together.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
