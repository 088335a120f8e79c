package standings

import (
	"context"

	"github.com/osse101/TribalScore_Go/internal/event"
	"github.com/osse101/TribalScore_Go/internal/logger"
)

// EventHandler drops cached standings whenever an input changes
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new standings event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{service: service}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.OverridesChanged, h.HandleInvalidate)
	bus.Subscribe(event.OverridesMaterialized, h.HandleInvalidate)
	bus.Subscribe(event.OutcomeRecorded, h.HandleInvalidate)
	bus.Subscribe(event.ConfigUpdated, h.HandleInvalidate)
}

// HandleInvalidate clears the cache for any subscribed event
func (h *EventHandler) HandleInvalidate(ctx context.Context, evt event.Event) error {
	h.service.Invalidate()
	logger.FromContext(ctx).Debug(LogMsgCacheInvalidated, "event_type", evt.Type)
	return nil
}
