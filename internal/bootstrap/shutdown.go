package bootstrap

import (
	"context"

	"github.com/osse101/TribalScore_Go/internal/event"
	"github.com/osse101/TribalScore_Go/internal/logger"
	"github.com/osse101/TribalScore_Go/internal/scheduler"
	"github.com/osse101/TribalScore_Go/internal/server"
	"github.com/osse101/TribalScore_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server (stop accepting new requests)
//  2. scheduler (no new periodic jobs)
//  3. worker pool (cancel and wait for in-flight recomputes)
//  4. event publisher (flush pending retries)
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		logger.Info(LogMsgShuttingDownScheduler)
		c.Scheduler.Stop()
	}

	if c.WorkerPool != nil {
		logger.Info(LogMsgShuttingDownWorkers)
		c.WorkerPool.Stop()
	}

	if c.ResilientPublisher != nil {
		logger.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			logger.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	logger.Info(LogMsgServerStopped)
}
