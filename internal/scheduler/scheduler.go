package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/TribalScore_Go/internal/logger"
	"github.com/osse101/TribalScore_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking (implemented by *worker.Pool)
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler hands jobs to a worker queue at fixed intervals. A tick that
// finds the queue full is skipped, never queued behind earlier runs.
type Scheduler struct {
	queue Enqueuer
	quit  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once
}

// New creates a new scheduler
func New(queue Enqueuer) *Scheduler {
	return &Scheduler{
		queue: queue,
		quit:  make(chan struct{}),
	}
}

// Schedule registers a job to run every interval, starting one interval from now
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	if interval <= 0 {
		return
	}
	logger.Info(LogMsgJobScheduled, "job", name, "interval", interval.String())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.queue.TryEnqueue(job) {
					logger.Warn(LogMsgJobSkipped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs and waits for their tickers to exit.
// Safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		close(s.quit)
		s.wg.Wait()
		logger.Info(LogMsgStopped)
	})
}
