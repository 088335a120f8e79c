package repository

import (
	"context"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// Season defines the data access interface for outcomes, contestants and
// the versioned scoring configs
type Season interface {
	ListOutcomes(ctx context.Context) ([]domain.EpisodeOutcome, error)
	GetOutcome(ctx context.Context, episode int) (*domain.EpisodeOutcome, error)
	UpsertOutcome(ctx context.Context, outcome *domain.EpisodeOutcome) error

	ListContestants(ctx context.Context) ([]domain.Contestant, error)
	GetContestant(ctx context.Context, contestantID string) (*domain.Contestant, error)

	GetScoringConfig(ctx context.Context) (*domain.ScoringConfig, error)
	SaveScoringConfig(ctx context.Context, cfg *domain.ScoringConfig) (int, error)
	GetBPSConfig(ctx context.Context) (*domain.BPSConfig, error)
	SaveBPSConfig(ctx context.Context, cfg *domain.BPSConfig) (int, error)
}
