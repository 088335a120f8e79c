package pricing

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/osse101/TribalScore_Go/internal/concurrency"
	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/event"
	"github.com/osse101/TribalScore_Go/internal/logger"
	"github.com/osse101/TribalScore_Go/internal/metrics"
	"github.com/osse101/TribalScore_Go/internal/override"
	"github.com/osse101/TribalScore_Go/internal/repository"
	"github.com/osse101/TribalScore_Go/internal/roster"
)

// CorrectionSource supplies the reconciled override corrections
type CorrectionSource interface {
	Corrections(ctx context.Context) (override.Map, error)
}

// Service defines the price series business logic
type Service interface {
	// RecomputeFrom rewrites the series for every episode >= from, in order,
	// and returns the number of points written. A missing prior episode
	// widens the rewrite to the whole season.
	RecomputeFrom(ctx context.Context, from int) (int, error)
	// RecomputeEpisode rewrites a single episode. It fails with
	// domain.ErrPriorPriceMissing when an earlier episode has no prices.
	RecomputeEpisode(ctx context.Context, episode int) ([]domain.PricePoint, error)
	GetPrices(ctx context.Context, episode int) ([]domain.PricePoint, error)
}

type service struct {
	season      repository.Season
	prices      repository.Price
	corrections CorrectionSource
	cfg         domain.PriceConfig
	locks       *concurrency.LockManager
	bus         event.Bus
}

// NewService creates a new pricing service
func NewService(season repository.Season, prices repository.Price, corrections CorrectionSource, cfg domain.PriceConfig, locks *concurrency.LockManager, bus event.Bus) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		season:      season,
		prices:      prices,
		corrections: corrections,
		cfg:         cfg,
		locks:       locks,
		bus:         bus,
	}
}

type inputs struct {
	contestants []domain.Contestant
	outcomes    []domain.EpisodeOutcome
	season      *roster.Season
	corrections override.Map
}

func (s *service) load(ctx context.Context) (*inputs, error) {
	outcomes, err := s.season.ListOutcomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadInputs, err)
	}
	contestants, err := s.season.ListContestants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadInputs, err)
	}
	cfg, err := s.season.GetScoringConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadInputs, err)
	}
	if cfg == nil {
		return nil, domain.ErrConfigNotFound
	}
	corrections, err := s.corrections.Corrections(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadInputs, err)
	}

	sort.SliceStable(outcomes, func(i, j int) bool { return outcomes[i].Episode < outcomes[j].Episode })
	return &inputs{
		contestants: contestants,
		outcomes:    outcomes,
		season:      roster.NewSeason(outcomes, *cfg, nil),
		corrections: corrections,
	}, nil
}

// previousPrices returns the stored prices of the latest episode before
// episode, or base prices when there is none
func (s *service) previousPrices(ctx context.Context, in *inputs, episode int) (map[string]int64, error) {
	prevEpisode := 0
	for _, o := range in.outcomes {
		if o.Episode < episode {
			prevEpisode = o.Episode
		}
	}

	prev := make(map[string]int64, len(in.contestants))
	if prevEpisode == 0 {
		return prev, nil
	}

	points, err := s.prices.GetPrices(ctx, prevEpisode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadInputs, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: episode %d", domain.ErrPriorPriceMissing, prevEpisode)
	}
	for _, p := range points {
		prev[p.ContestantID] = p.Price
	}
	return prev, nil
}

func (s *service) RecomputeFrom(ctx context.Context, from int) (int, error) {
	log := logger.FromContext(ctx)
	if from < 1 {
		from = 1
	}

	lock := s.locks.GetLock(LockKeyPrices)
	lock.Lock()
	defer lock.Unlock()

	log.Info(LogMsgRecomputeStarted, "from_episode", from)

	series, err := s.recomputeLocked(ctx, from)
	s.record(ctx, from, len(series), err)
	if err != nil {
		return 0, err
	}
	return len(series), nil
}

// record reports the outcome of a recompute starting at from: the result
// metric, a log line and, on success, a prices.recomputed event
func (s *service) record(ctx context.Context, from, points int, err error) {
	log := logger.FromContext(ctx)
	if err != nil {
		metrics.PriceRecomputesTotal.WithLabelValues(metrics.ResultFailure).Inc()
		log.Error(LogMsgRecomputeFailed, "from_episode", from, "error", err)
		return
	}
	metrics.PriceRecomputesTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info(LogMsgRecomputeCompleted, "from_episode", from, "points", points)
	s.publish(ctx, event.NewPricesRecomputedEvent(from, points))
}

func (s *service) recomputeLocked(ctx context.Context, from int) ([]domain.PricePoint, error) {
	in, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	prev, err := s.previousPrices(ctx, in, from)
	if errors.Is(err, domain.ErrPriorPriceMissing) {
		// the series has a gap before from, so rebuild it whole
		logger.FromContext(ctx).Warn(LogMsgRecomputeWidened, "from_episode", from, "error", err)
		from = 1
		prev = make(map[string]int64, len(in.contestants))
	} else if err != nil {
		return nil, err
	}

	var series []domain.PricePoint
	for i := range in.outcomes {
		o := &in.outcomes[i]
		if o.Episode < from {
			continue
		}
		step := Step(o, in.season.EpisodeTotals(o.Episode, in.corrections), prev, in.contestants, s.cfg)
		for _, p := range step {
			prev[p.ContestantID] = p.Price
		}
		series = append(series, step...)
	}

	if err := s.prices.ReplacePrices(ctx, from, series); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSavePrices, err)
	}
	return series, nil
}

func (s *service) RecomputeEpisode(ctx context.Context, episode int) ([]domain.PricePoint, error) {
	var points []domain.PricePoint
	err := s.locks.Do(LockKeyPrices, func() error {
		in, err := s.load(ctx)
		if err != nil {
			return err
		}

		var outcome *domain.EpisodeOutcome
		for i := range in.outcomes {
			if in.outcomes[i].Episode == episode {
				outcome = &in.outcomes[i]
			}
		}
		if outcome == nil {
			return fmt.Errorf("%w: episode %d", domain.ErrOutcomeNotFound, episode)
		}

		prev, err := s.previousPrices(ctx, in, episode)
		if err != nil {
			return err
		}

		points = Step(outcome, in.season.EpisodeTotals(episode, in.corrections), prev, in.contestants, s.cfg)
		if err := s.prices.SaveEpisodePrices(ctx, episode, points); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSavePrices, err)
		}
		return nil
	})
	s.record(ctx, episode, len(points), err)
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (s *service) GetPrices(ctx context.Context, episode int) ([]domain.PricePoint, error) {
	if episode < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidEpisode, episode)
	}
	return s.prices.GetPrices(ctx, episode)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
	}
}
