package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/TribalScore_Go/internal/config"
	"github.com/osse101/TribalScore_Go/internal/event"
	"github.com/osse101/TribalScore_Go/internal/logger"
)

// InitializeEventSystem creates the in-memory bus and the resilient
// publisher wrapped around it. Services publish through the publisher so a
// failing handler is retried with backoff and finally dead-lettered.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(bus, cfg.EventMaxRetries, cfg.EventRetryDelay, cfg.DeadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	logger.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.DeadLetterPath)

	return bus, publisher, nil
}
