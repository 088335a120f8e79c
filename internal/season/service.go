// Package season owns the recorded episode outcomes and the versioned
// scoring and BPS configs.
package season

import (
	"context"
	"fmt"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/event"
	"github.com/osse101/TribalScore_Go/internal/logger"
	"github.com/osse101/TribalScore_Go/internal/metrics"
	"github.com/osse101/TribalScore_Go/internal/repository"
)

// Service defines the season admin operations
type Service interface {
	// RecordOutcome stores the outcome for its episode, replacing any
	// earlier one. It reports whether an earlier outcome was superseded.
	RecordOutcome(ctx context.Context, outcome *domain.EpisodeOutcome) (bool, error)
	GetOutcome(ctx context.Context, episode int) (*domain.EpisodeOutcome, error)
	ListOutcomes(ctx context.Context) ([]domain.EpisodeOutcome, error)

	GetScoringConfig(ctx context.Context) (*domain.ScoringConfig, error)
	SaveScoringConfig(ctx context.Context, cfg *domain.ScoringConfig) (int, error)
	GetBPSConfig(ctx context.Context) (*domain.BPSConfig, error)
	SaveBPSConfig(ctx context.Context, cfg *domain.BPSConfig) (int, error)

	// EnsureDefaults stores the given configs when no version exists yet
	EnsureDefaults(ctx context.Context, scoring domain.ScoringConfig, bps domain.BPSConfig) error
}

type service struct {
	repo repository.Season
	bus  event.Bus
}

// NewService creates a new season service
func NewService(repo repository.Season, bus event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

// ValidateOutcome checks the outcome for contradictions the scorer cannot
// resolve on its own
func ValidateOutcome(o *domain.EpisodeOutcome) error {
	if o == nil {
		return fmt.Errorf("%w: outcome required", domain.ErrInvalidInput)
	}
	if o.Episode < 1 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidEpisode, o.Episode)
	}
	switch o.Phase {
	case domain.PhasePreMerge, domain.PhaseSwap, domain.PhasePostMerge, domain.PhaseFinal:
	default:
		return fmt.Errorf("%w: unknown phase %q", domain.ErrInvalidInput, o.Phase)
	}
	switch o.ImmunityType {
	case "", domain.ImmunityTeam, domain.ImmunityIndividual:
	default:
		return fmt.Errorf("%w: unknown immunity type %q", domain.ErrInvalidInput, o.ImmunityType)
	}
	if o.Eliminated != "" && domain.Contains(o.Survivors, o.Eliminated) {
		return fmt.Errorf("%w: %s is both eliminated and a survivor", domain.ErrInvalidInput, o.Eliminated)
	}
	if len(o.FinalThree) > domain.FinalThreeSize {
		return fmt.Errorf("%w: final three has %d contestants", domain.ErrInvalidInput, len(o.FinalThree))
	}
	if o.Winner != "" && !domain.Contains(o.FinalThree, o.Winner) {
		return fmt.Errorf("%w: winner %s is not in the final three", domain.ErrInvalidInput, o.Winner)
	}
	return nil
}

func (s *service) RecordOutcome(ctx context.Context, outcome *domain.EpisodeOutcome) (bool, error) {
	log := logger.FromContext(ctx)

	if err := ValidateOutcome(outcome); err != nil {
		return false, err
	}

	existing, err := s.repo.GetOutcome(ctx, outcome.Episode)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgSaveOutcome, err)
	}
	superseded := existing != nil

	if err := s.repo.UpsertOutcome(ctx, outcome); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgSaveOutcome, err)
	}
	metrics.OutcomesRecorded.Inc()

	if superseded {
		log.Info(LogMsgOutcomeSuperseded, "episode", outcome.Episode, "phase", outcome.Phase)
	} else {
		log.Info(LogMsgOutcomeRecorded, "episode", outcome.Episode, "phase", outcome.Phase)
	}

	s.publish(ctx, event.NewOutcomeRecordedEvent(outcome.Episode, outcome.Phase, superseded))
	return superseded, nil
}

func (s *service) GetOutcome(ctx context.Context, episode int) (*domain.EpisodeOutcome, error) {
	if episode < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidEpisode, episode)
	}
	o, err := s.repo.GetOutcome(ctx, episode)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("%w: episode %d", domain.ErrOutcomeNotFound, episode)
	}
	return o, nil
}

func (s *service) ListOutcomes(ctx context.Context) ([]domain.EpisodeOutcome, error) {
	return s.repo.ListOutcomes(ctx)
}

func (s *service) GetScoringConfig(ctx context.Context) (*domain.ScoringConfig, error) {
	cfg, err := s.repo.GetScoringConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadConfig, err)
	}
	if cfg == nil {
		return nil, domain.ErrConfigNotFound
	}
	return cfg, nil
}

func (s *service) SaveScoringConfig(ctx context.Context, cfg *domain.ScoringConfig) (int, error) {
	if cfg == nil {
		return 0, fmt.Errorf("%w: config required", domain.ErrInvalidInput)
	}
	if cfg.CaptainMultiplier < 0 || cfg.VotedOutPocketMultiplier < 0 {
		return 0, fmt.Errorf("%w: multipliers cannot be negative", domain.ErrInvalidInput)
	}

	version, err := s.repo.SaveScoringConfig(ctx, cfg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgSaveConfig, err)
	}
	logger.FromContext(ctx).Info(LogMsgConfigSaved, "kind", domain.ConfigKindScoring, "version", version)
	s.publish(ctx, event.NewConfigUpdatedEvent(domain.ConfigKindScoring, version))
	return version, nil
}

func (s *service) GetBPSConfig(ctx context.Context) (*domain.BPSConfig, error) {
	cfg, err := s.repo.GetBPSConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadConfig, err)
	}
	if cfg == nil {
		return nil, domain.ErrConfigNotFound
	}
	return cfg, nil
}

func (s *service) SaveBPSConfig(ctx context.Context, cfg *domain.BPSConfig) (int, error) {
	if cfg == nil {
		return 0, fmt.Errorf("%w: config required", domain.ErrInvalidInput)
	}

	version, err := s.repo.SaveBPSConfig(ctx, cfg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgSaveConfig, err)
	}
	logger.FromContext(ctx).Info(LogMsgConfigSaved, "kind", domain.ConfigKindBPS, "version", version)
	s.publish(ctx, event.NewConfigUpdatedEvent(domain.ConfigKindBPS, version))
	return version, nil
}

func (s *service) EnsureDefaults(ctx context.Context, scoring domain.ScoringConfig, bps domain.BPSConfig) error {
	log := logger.FromContext(ctx)

	current, err := s.repo.GetScoringConfig(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLoadConfig, err)
	}
	if current == nil {
		version, err := s.repo.SaveScoringConfig(ctx, &scoring)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSaveConfig, err)
		}
		log.Info(LogMsgConfigSeeded, "kind", domain.ConfigKindScoring, "version", version)
	}

	currentBPS, err := s.repo.GetBPSConfig(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLoadConfig, err)
	}
	if currentBPS == nil {
		version, err := s.repo.SaveBPSConfig(ctx, &bps)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSaveConfig, err)
		}
		log.Info(LogMsgConfigSeeded, "kind", domain.ConfigKindBPS, "version", version)
	}
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
