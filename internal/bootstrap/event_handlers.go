package bootstrap

import (
	"github.com/osse101/TribalScore_Go/internal/event"
	"github.com/osse101/TribalScore_Go/internal/eventlog"
	"github.com/osse101/TribalScore_Go/internal/logger"
	"github.com/osse101/TribalScore_Go/internal/metrics"
	"github.com/osse101/TribalScore_Go/internal/pricing"
	"github.com/osse101/TribalScore_Go/internal/standings"
)

// EventHandlerDependencies holds what the event subscribers need
type EventHandlerDependencies struct {
	EventBus         event.Bus
	PricingService   pricing.Service
	StandingsService standings.Service
	JobQueue         pricing.Enqueuer
	EventLogService  eventlog.Service
}

// RegisterEventHandlers subscribes:
//   - the standings cache invalidator
//   - the price recompute scheduler (queues jobs on the worker pool)
//   - the metrics collector
//   - the audit event log, when configured
func RegisterEventHandlers(deps EventHandlerDependencies) {
	standings.NewEventHandler(deps.StandingsService).Register(deps.EventBus)
	pricing.NewEventHandler(deps.PricingService, deps.JobQueue).Register(deps.EventBus)
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	if deps.EventLogService != nil {
		deps.EventLogService.Subscribe(deps.EventBus)
	}

	logger.Info(LogMsgEventHandlersRegistered)
}
