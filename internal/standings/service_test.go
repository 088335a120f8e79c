package standings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/event"
	"github.com/osse101/TribalScore_Go/internal/override"
)

// MockSeasonRepository is a mock implementation of repository.Season
type MockSeasonRepository struct {
	mock.Mock
}

func (m *MockSeasonRepository) ListOutcomes(ctx context.Context) ([]domain.EpisodeOutcome, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.EpisodeOutcome), args.Error(1)
}

func (m *MockSeasonRepository) GetOutcome(ctx context.Context, episode int) (*domain.EpisodeOutcome, error) {
	args := m.Called(ctx, episode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EpisodeOutcome), args.Error(1)
}

func (m *MockSeasonRepository) UpsertOutcome(ctx context.Context, outcome *domain.EpisodeOutcome) error {
	return m.Called(ctx, outcome).Error(0)
}

func (m *MockSeasonRepository) ListContestants(ctx context.Context) ([]domain.Contestant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Contestant), args.Error(1)
}

func (m *MockSeasonRepository) GetContestant(ctx context.Context, contestantID string) (*domain.Contestant, error) {
	args := m.Called(ctx, contestantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contestant), args.Error(1)
}

func (m *MockSeasonRepository) GetScoringConfig(ctx context.Context) (*domain.ScoringConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoringConfig), args.Error(1)
}

func (m *MockSeasonRepository) SaveScoringConfig(ctx context.Context, cfg *domain.ScoringConfig) (int, error) {
	args := m.Called(ctx, cfg)
	return args.Int(0), args.Error(1)
}

func (m *MockSeasonRepository) GetBPSConfig(ctx context.Context) (*domain.BPSConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BPSConfig), args.Error(1)
}

func (m *MockSeasonRepository) SaveBPSConfig(ctx context.Context, cfg *domain.BPSConfig) (int, error) {
	args := m.Called(ctx, cfg)
	return args.Int(0), args.Error(1)
}

// MockRosterRepository is a mock implementation of repository.Roster
type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRosterRepository) ListEntries(ctx context.Context) ([]domain.TribeEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TribeEntry), args.Error(1)
}

func (m *MockRosterRepository) ListCaptains(ctx context.Context) ([]domain.CaptainAssignment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CaptainAssignment), args.Error(1)
}

type staticCorrections struct {
	m override.Map
}

func (s staticCorrections) Corrections(ctx context.Context) (override.Map, error) {
	return s.m, nil
}

func setupMocks(outcomeErr error) (*MockSeasonRepository, *MockRosterRepository) {
	season := new(MockSeasonRepository)
	season.On("ListOutcomes", mock.Anything).Return([]domain.EpisodeOutcome{{
		Episode: 1, Phase: domain.PhasePreMerge, TribalCouncil: true,
		Active: []string{"a", "b"}, Survivors: []string{"a", "b"},
	}}, outcomeErr)
	season.On("ListContestants", mock.Anything).Return([]domain.Contestant{{ID: "a"}, {ID: "b"}}, nil)
	season.On("GetScoringConfig", mock.Anything).Return(&domain.ScoringConfig{SurvivalPreMerge: 2, CaptainMultiplier: 2}, nil)
	season.On("GetBPSConfig", mock.Anything).Return(nil, nil)

	rosterRepo := new(MockRosterRepository)
	rosterRepo.On("ListUsers", mock.Anything).Return([]domain.User{
		{ID: "u1", Username: "alice"},
		{ID: "u2", Username: "bob"},
		{ID: "u3", Username: "carol"},
	}, nil)
	rosterRepo.On("ListEntries", mock.Anything).Return([]domain.TribeEntry{
		{ID: "e1", UserID: "u1", ContestantID: "a", AddedAt: 1},
		{ID: "e2", UserID: "u2", ContestantID: "b", AddedAt: 1},
	}, nil)
	rosterRepo.On("ListCaptains", mock.Anything).Return([]domain.CaptainAssignment{
		{UserID: "u2", Episode: 1, ContestantID: "b"},
	}, nil)
	return season, rosterRepo
}

func TestGetLeaderboard(t *testing.T) {
	season, rosterRepo := setupMocks(nil)
	svc := NewService(season, rosterRepo, staticCorrections{}, 0, 0)

	board, err := svc.GetLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, board, 3)

	assert.Equal(t, domain.UserStanding{Rank: 1, UserID: "u2", Username: "bob", Total: 4}, board[0])
	assert.Equal(t, domain.UserStanding{Rank: 2, UserID: "u1", Username: "alice", Total: 2}, board[1])
	assert.Equal(t, domain.UserStanding{Rank: 3, UserID: "u3", Username: "carol", Total: 0}, board[2])
}

func TestGetLeaderboard_CachesResults(t *testing.T) {
	season, rosterRepo := setupMocks(nil)
	svc := NewService(season, rosterRepo, staticCorrections{}, 0, 0)
	ctx := context.Background()

	_, err := svc.GetLeaderboard(ctx)
	require.NoError(t, err)
	_, err = svc.GetLeaderboard(ctx)
	require.NoError(t, err)
	team, err := svc.GetTeam(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 4, team.Total)

	season.AssertNumberOfCalls(t, "ListOutcomes", 1)

	svc.Invalidate()
	_, err = svc.GetTeam(ctx, "u2")
	require.NoError(t, err)
	season.AssertNumberOfCalls(t, "ListOutcomes", 2)
}

func TestGetTeam(t *testing.T) {
	season, rosterRepo := setupMocks(nil)
	corrections := override.BuildMap(nil, []domain.TotalOverride{
		{ContestantID: "b", Episode: 1, Total: 10},
	})
	svc := NewService(season, rosterRepo, staticCorrections{m: corrections}, 0, 0)

	team, err := svc.GetTeam(context.Background(), "u2")
	require.NoError(t, err)
	// total override first, then the captain doubles it
	assert.Equal(t, 20, team.Total)
	require.Len(t, team.Contestants, 1)
	assert.True(t, team.Contestants[0].OnRoster)
	assert.Equal(t, 10, team.EventTotals[domain.CategoryCaptainBonus])

	_, err = svc.GetTeam(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetContestantPoints(t *testing.T) {
	season, rosterRepo := setupMocks(nil)
	svc := NewService(season, rosterRepo, staticCorrections{}, 0, 0)

	summary, err := svc.GetContestantPoints(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	require.Len(t, summary.Episodes, 1)
	assert.False(t, summary.Episodes[0].IsCaptain)

	_, err = svc.GetContestantPoints(context.Background(), "zed")
	assert.ErrorIs(t, err, domain.ErrContestantNotFound)
}

func TestLoadError(t *testing.T) {
	season, rosterRepo := setupMocks(errors.New("db down"))
	svc := NewService(season, rosterRepo, staticCorrections{}, 0, 0)

	_, err := svc.GetLeaderboard(context.Background())
	assert.ErrorContains(t, err, ErrMsgLoadSnapshot)

	_, err = svc.GetTeam(context.Background(), "u1")
	assert.Error(t, err, "failed loads are not cached")
}

func TestMissingScoringConfig(t *testing.T) {
	season, rosterRepo := setupMocks(nil)
	season.ExpectedCalls = filterCalls(season.ExpectedCalls, "GetScoringConfig")
	season.On("GetScoringConfig", mock.Anything).Return(nil, nil)
	svc := NewService(season, rosterRepo, staticCorrections{}, 0, 0)

	_, err := svc.GetLeaderboard(context.Background())
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func filterCalls(calls []*mock.Call, method string) []*mock.Call {
	var out []*mock.Call
	for _, c := range calls {
		if c.Method != method {
			out = append(out, c)
		}
	}
	return out
}

func TestLeaderboard_Ties(t *testing.T) {
	users := []domain.User{
		{ID: "u1", Username: "dana"},
		{ID: "u2", Username: "ari"},
		{ID: "u3", Username: "cole"},
		{ID: "u4", Username: "bea"},
	}
	teams := map[string]domain.TeamScore{
		"u1": {Total: 10},
		"u2": {Total: 10},
		"u3": {Total: 7},
		"u4": {Total: 12},
	}

	board := Leaderboard(users, teams)
	require.Len(t, board, 4)

	assert.Equal(t, "bea", board[0].Username)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "ari", board[1].Username)
	assert.Equal(t, 2, board[1].Rank)
	assert.Equal(t, "dana", board[2].Username)
	assert.Equal(t, 2, board[2].Rank)
	assert.Equal(t, "cole", board[3].Username)
	assert.Equal(t, 4, board[3].Rank)
}

func TestEventHandler_Invalidates(t *testing.T) {
	season, rosterRepo := setupMocks(nil)
	svc := NewService(season, rosterRepo, staticCorrections{}, 0, 0)
	bus := event.NewMemoryBus()
	NewEventHandler(svc).Register(bus)
	ctx := context.Background()

	_, err := svc.GetLeaderboard(ctx)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, event.NewOverridesMaterializedEvent(1, 2)))
	_, err = svc.GetLeaderboard(ctx)
	require.NoError(t, err)
	season.AssertNumberOfCalls(t, "ListOutcomes", 2)

	require.NoError(t, bus.Publish(ctx, event.NewOutcomeRecordedEvent(2, domain.PhasePreMerge, false)))
	_, err = svc.GetLeaderboard(ctx)
	require.NoError(t, err)
	season.AssertNumberOfCalls(t, "ListOutcomes", 3)
}

func TestResultCache_Expires(t *testing.T) {
	c := newResultCache(4, 20*time.Millisecond)
	c.set("k", &cachedEntry{Leaderboard: []domain.UserStanding{}})
	_, ok := c.get("k")
	assert.True(t, ok)

	time.Sleep(60 * time.Millisecond)
	_, ok = c.get("k")
	assert.False(t, ok)
}

func TestResultCache_DropsOldSchema(t *testing.T) {
	c := newResultCache(4, time.Minute)
	c.lru.Add("k", &cachedEntry{Version: "0.1"})
	_, ok := c.get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.len())
}
