package eventlog

import (
	"context"
	"fmt"

	"github.com/osse101/TribalScore_Go/internal/event"
	"github.com/osse101/TribalScore_Go/internal/logger"
	"github.com/osse101/TribalScore_Go/internal/repository"
)

// LoggedTypes are the event types written to the audit trail
var LoggedTypes = []event.Type{
	event.OutcomeRecorded,
	event.OverridesChanged,
	event.OverridesMaterialized,
	event.PricesRecomputed,
	event.ConfigUpdated,
}

// Service records published domain events and serves them back for audit
type Service interface {
	// Subscribe registers the event logger for every LoggedTypes entry
	Subscribe(bus event.Bus)

	// ListEvents returns stored events, newest first. A non-positive limit
	// uses DefaultListLimit; limits above MaxListLimit are clamped.
	ListEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error)

	// CleanupOldEvents removes events older than the retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo repository.EventLog
}

// NewService creates a new event logging service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(bus event.Bus) {
	for _, t := range LoggedTypes {
		bus.Subscribe(t, s.handleEvent)
	}
	logger.Info(LogMsgSubscribed, "types", len(LoggedTypes))
}

// handleEvent flattens the typed payload into a JSON object and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil || payload == nil {
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	metadata, _ := evt.Metadata.(map[string]interface{})
	episode := episodeOf(payload)

	if err := s.repo.LogEvent(ctx, string(evt.Type), episode, payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "episode", episode)
	return nil
}

// episodeOf picks the episode an event concerns. Multi-episode events are
// indexed by their first episode.
func episodeOf(payload map[string]interface{}) *int {
	for _, key := range []string{PayloadKeyEpisode, PayloadKeyFromEpisode} {
		if n, ok := asInt(payload[key]); ok {
			return &n
		}
	}
	if list, ok := payload[PayloadKeyEpisodes].([]interface{}); ok && len(list) > 0 {
		if n, ok := asInt(list[0]); ok {
			return &n
		}
	}
	return nil
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

func (s *service) ListEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultListLimit
	case filter.Limit > MaxListLimit:
		filter.Limit = MaxListLimit
	}

	events, err := s.repo.GetEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListEventsFailed, err)
	}
	if events == nil {
		events = []repository.EventLogEntry{}
	}
	return events, nil
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	n, err := s.repo.CleanupOldEvents(ctx, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgCleanupFailed, err)
	}
	return n, nil
}
