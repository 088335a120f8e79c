package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/TribalScore_Go/internal/event"
	"github.com/osse101/TribalScore_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.OutcomeRecorded,
		event.OverridesChanged,
		event.OverridesMaterialized,
		event.PricesRecomputed,
		event.ConfigUpdated,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.OutcomeRecorded:
		OutcomesRecorded.Inc()

	case event.OverridesMaterialized:
		payload, err := event.DecodePayload[event.OverridesMaterializedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		MaterializedRows.WithLabelValues(strconv.Itoa(payload.Episode)).Set(float64(payload.Rows))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
