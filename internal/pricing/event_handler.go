package pricing

import (
	"context"
	"fmt"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/event"
	"github.com/osse101/TribalScore_Go/internal/logger"
	"github.com/osse101/TribalScore_Go/internal/worker"
)

// Enqueuer accepts background jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// EventHandler schedules price recomputes when their inputs change
type EventHandler struct {
	service Service
	queue   Enqueuer
}

// NewEventHandler creates a new pricing event handler
func NewEventHandler(service Service, queue Enqueuer) *EventHandler {
	return &EventHandler{service: service, queue: queue}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.OverridesMaterialized, h.HandleOverridesMaterialized)
	bus.Subscribe(event.OutcomeRecorded, h.HandleOutcomeRecorded)
	bus.Subscribe(event.ConfigUpdated, h.HandleConfigUpdated)
}

// HandleOverridesMaterialized recomputes from the materialized episode
func (h *EventHandler) HandleOverridesMaterialized(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.OverridesMaterializedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode materialized payload: %w", err)
	}
	h.schedule(ctx, payload.Episode)
	return nil
}

// HandleOutcomeRecorded recomputes from the recorded episode
func (h *EventHandler) HandleOutcomeRecorded(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.OutcomeRecordedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode outcome payload: %w", err)
	}
	h.schedule(ctx, payload.Episode)
	return nil
}

// HandleConfigUpdated recomputes the whole series after a scoring change
func (h *EventHandler) HandleConfigUpdated(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.ConfigUpdatedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode config payload: %w", err)
	}
	if payload.Kind != domain.ConfigKindScoring {
		return nil
	}
	h.schedule(ctx, 1)
	return nil
}

func (h *EventHandler) schedule(ctx context.Context, from int) {
	log := logger.FromContext(ctx)
	if !h.queue.TryEnqueue(NewRecomputeJob(h.service, from)) {
		log.Warn(LogMsgRecomputeQueueFull, "from_episode", from)
		return
	}
	log.Debug(LogMsgRecomputeQueued, "from_episode", from)
}
