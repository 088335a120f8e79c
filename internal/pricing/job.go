package pricing

import (
	"context"

	"github.com/osse101/TribalScore_Go/internal/logger"
)

// RecomputeJob rewrites the price series from an episode onward
// (implements worker.Job)
type RecomputeJob struct {
	service Service
	from    int
}

// NewRecomputeJob creates a new recompute job
func NewRecomputeJob(service Service, from int) *RecomputeJob {
	return &RecomputeJob{service: service, from: from}
}

// Process runs the recompute
func (j *RecomputeJob) Process(ctx context.Context) error {
	n, err := j.service.RecomputeFrom(ctx, j.from)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgRecomputeCompleted, "from_episode", j.from, "points", n)
	return nil
}
