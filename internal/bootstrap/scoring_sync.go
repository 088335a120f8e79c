package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/TribalScore_Go/internal/config"
	"github.com/osse101/TribalScore_Go/internal/logger"
	"github.com/osse101/TribalScore_Go/internal/season"
)

// SyncScoringDefaults loads the league defaults from path and stores the
// scoring and BPS configs when no version exists yet. Stored versions are
// never overwritten; admins change them through the config routes. The
// loaded defaults are returned so the price config can be handed to the
// pricing service.
func SyncScoringDefaults(ctx context.Context, path string, svc season.Service) (*config.ScoringDefaults, error) {
	logger.Info(LogMsgSyncingScoringConfig, "path", path)

	defaults, err := config.LoadScoringDefaults(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadScoring, err)
	}

	if err := svc.EnsureDefaults(ctx, defaults.Scoring, defaults.BPS); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncScoring, err)
	}

	logger.Info(LogMsgScoringConfigSynced)
	return defaults, nil
}
