package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/override"
)

type MockStandingsService struct {
	mock.Mock
}

func (m *MockStandingsService) GetLeaderboard(ctx context.Context) ([]domain.UserStanding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserStanding), args.Error(1)
}

func (m *MockStandingsService) GetTeam(ctx context.Context, userID string) (*domain.TeamScore, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamScore), args.Error(1)
}

func (m *MockStandingsService) GetContestantPoints(ctx context.Context, contestantID string) (*domain.ContestantSummary, error) {
	args := m.Called(ctx, contestantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContestantSummary), args.Error(1)
}

func (m *MockStandingsService) Invalidate() {
	m.Called()
}

type MockOverrideService struct {
	mock.Mock
}

func (m *MockOverrideService) SetCategoryOverride(ctx context.Context, contestantID string, episode int, category string, points *int) error {
	return m.Called(ctx, contestantID, episode, category, points).Error(0)
}

func (m *MockOverrideService) DeleteCategoryOverride(ctx context.Context, contestantID string, episode int, category string) error {
	return m.Called(ctx, contestantID, episode, category).Error(0)
}

func (m *MockOverrideService) SetTotalOverride(ctx context.Context, contestantID string, episode int, total *int) error {
	return m.Called(ctx, contestantID, episode, total).Error(0)
}

func (m *MockOverrideService) DeleteTotalOverride(ctx context.Context, contestantID string, episode int) error {
	return m.Called(ctx, contestantID, episode).Error(0)
}

func (m *MockOverrideService) ClearEpisode(ctx context.Context, episode int) error {
	return m.Called(ctx, episode).Error(0)
}

func (m *MockOverrideService) ClearAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOverrideService) ListEpisode(ctx context.Context, episode int) (*override.EpisodeOverrides, error) {
	args := m.Called(ctx, episode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*override.EpisodeOverrides), args.Error(1)
}

func (m *MockOverrideService) MaterializeEpisode(ctx context.Context, episode int) ([]domain.MaterializedPoints, error) {
	args := m.Called(ctx, episode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaterializedPoints), args.Error(1)
}

func (m *MockOverrideService) MaterializeAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOverrideService) Corrections(ctx context.Context) (override.Map, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(override.Map), args.Error(1)
}

type MockSeasonService struct {
	mock.Mock
}

func (m *MockSeasonService) RecordOutcome(ctx context.Context, outcome *domain.EpisodeOutcome) (bool, error) {
	args := m.Called(ctx, outcome)
	return args.Bool(0), args.Error(1)
}

func (m *MockSeasonService) GetOutcome(ctx context.Context, episode int) (*domain.EpisodeOutcome, error) {
	args := m.Called(ctx, episode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EpisodeOutcome), args.Error(1)
}

func (m *MockSeasonService) ListOutcomes(ctx context.Context) ([]domain.EpisodeOutcome, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EpisodeOutcome), args.Error(1)
}

func (m *MockSeasonService) GetScoringConfig(ctx context.Context) (*domain.ScoringConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoringConfig), args.Error(1)
}

func (m *MockSeasonService) SaveScoringConfig(ctx context.Context, cfg *domain.ScoringConfig) (int, error) {
	args := m.Called(ctx, cfg)
	return args.Int(0), args.Error(1)
}

func (m *MockSeasonService) GetBPSConfig(ctx context.Context) (*domain.BPSConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BPSConfig), args.Error(1)
}

func (m *MockSeasonService) SaveBPSConfig(ctx context.Context, cfg *domain.BPSConfig) (int, error) {
	args := m.Called(ctx, cfg)
	return args.Int(0), args.Error(1)
}

func (m *MockSeasonService) EnsureDefaults(ctx context.Context, scoring domain.ScoringConfig, bps domain.BPSConfig) error {
	return m.Called(ctx, scoring, bps).Error(0)
}

type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) RecomputeFrom(ctx context.Context, from int) (int, error) {
	args := m.Called(ctx, from)
	return args.Int(0), args.Error(1)
}

func (m *MockPricingService) RecomputeEpisode(ctx context.Context, episode int) ([]domain.PricePoint, error) {
	args := m.Called(ctx, episode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricePoint), args.Error(1)
}

func (m *MockPricingService) GetPrices(ctx context.Context, episode int) ([]domain.PricePoint, error) {
	args := m.Called(ctx, episode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricePoint), args.Error(1)
}
