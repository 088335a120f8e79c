package eventlog

import (
	"context"
	"time"

	"github.com/osse101/TribalScore_Go/internal/logger"
)

// CleanupJob trims the audit trail to the retention window. The scheduler
// runs it on EVENT_LOG_CLEANUP_INTERVAL.
type CleanupJob struct {
	svc  Service
	days int
}

func NewCleanupJob(svc Service, retentionDays int) *CleanupJob {
	return &CleanupJob{svc: svc, days: retentionDays}
}

// Process deletes audit entries older than the retention window
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx).With("retention_days", j.days)
	started := time.Now()

	deleted, err := j.svc.CleanupOldEvents(ctx, j.days)
	if err != nil {
		log.Error(LogMsgCleanupJobFailed, "error", err, "elapsed", time.Since(started))
		return err
	}

	log.Info(LogMsgCleanupJobCompleted, "deleted", deleted, "elapsed", time.Since(started))
	return nil
}
