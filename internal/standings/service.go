// Package standings serves the read side of the league: the leaderboard,
// team breakdowns and per-contestant point histories.
package standings

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/TribalScore_Go/internal/domain"
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

// Service defines the standings read operations
type Service interface {
	GetLeaderboard(ctx context.Context) ([]domain.UserStanding, error)
	GetTeam(ctx context.Context, userID string) (*domain.TeamScore, error)
	GetContestantPoints(ctx context.Context, contestantID string) (*domain.ContestantSummary, error)
	// Invalidate drops every cached result
	Invalidate()
}

type service struct {
	season      repository.Season
	roster      repository.Roster
	corrections CorrectionSource

	cache      *resultCache
	loads      singleflight.Group
	generation atomic.Uint64
}

// NewService creates a new standings service
func NewService(season repository.Season, rosterRepo repository.Roster, corrections CorrectionSource, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		season:      season,
		roster:      rosterRepo,
		corrections: corrections,
		cache:       newResultCache(cacheSize, cacheTTL),
	}
}

// snapshot is every input the read side aggregates over
type snapshot struct {
	season      *roster.Season
	users       []domain.User
	contestants map[string]bool
	entries     map[string][]domain.TribeEntry
	captains    map[string]map[int]string
	corrections override.Map
}

func (s *service) load(ctx context.Context) (*snapshot, error) {
	var (
		outcomes    []domain.EpisodeOutcome
		contestants []domain.Contestant
		cfg         *domain.ScoringConfig
		bps         *domain.BPSConfig
		users       []domain.User
		entries     []domain.TribeEntry
		captains    []domain.CaptainAssignment
		corrections override.Map
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { outcomes, err = s.season.ListOutcomes(gctx); return })
	g.Go(func() (err error) { contestants, err = s.season.ListContestants(gctx); return })
	g.Go(func() (err error) { cfg, err = s.season.GetScoringConfig(gctx); return })
	g.Go(func() (err error) { bps, err = s.season.GetBPSConfig(gctx); return })
	g.Go(func() (err error) { users, err = s.roster.ListUsers(gctx); return })
	g.Go(func() (err error) { entries, err = s.roster.ListEntries(gctx); return })
	g.Go(func() (err error) { captains, err = s.roster.ListCaptains(gctx); return })
	g.Go(func() (err error) { corrections, err = s.corrections.Corrections(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadSnapshot, err)
	}
	if cfg == nil {
		return nil, domain.ErrConfigNotFound
	}

	snap := &snapshot{
		season:      roster.NewSeason(outcomes, *cfg, bps),
		users:       users,
		contestants: make(map[string]bool, len(contestants)),
		entries:     make(map[string][]domain.TribeEntry),
		captains:    make(map[string]map[int]string),
		corrections: corrections,
	}
	for _, c := range contestants {
		snap.contestants[c.ID] = true
	}
	for _, e := range entries {
		snap.entries[e.UserID] = append(snap.entries[e.UserID], e)
	}
	for _, c := range captains {
		if snap.captains[c.UserID] == nil {
			snap.captains[c.UserID] = make(map[int]string)
		}
		snap.captains[c.UserID][c.Episode] = c.ContestantID
	}

	logger.FromContext(ctx).Debug(LogMsgSnapshotLoaded,
		"episodes", len(outcomes), "users", len(users), "entries", len(entries))
	return snap, nil
}

// snapshot loads the inputs once for all concurrent callers
func (s *service) snapshot(ctx context.Context) (*snapshot, error) {
	v, err, _ := s.loads.Do(loadKeySnapshot, func() (interface{}, error) {
		return s.load(ctx)
	})
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgSnapshotLoadError, "error", err)
		return nil, err
	}
	return v.(*snapshot), nil
}

func (snap *snapshot) team(user domain.User) domain.TeamScore {
	return snap.season.Aggregate(roster.AggregateInput{
		UserID:      user.ID,
		Entries:     snap.entries[user.ID],
		Captains:    snap.captains[user.ID],
		Corrections: snap.corrections,
	})
}

// Leaderboard orders users by total, highest first. Equal totals share a
// rank and the next rank skips accordingly; ties list by username.
func Leaderboard(users []domain.User, teams map[string]domain.TeamScore) []domain.UserStanding {
	out := make([]domain.UserStanding, 0, len(users))
	for _, u := range users {
		out = append(out, domain.UserStanding{UserID: u.ID, Username: u.Username, Total: teams[u.ID].Total})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		if out[i].Username != out[j].Username {
			return out[i].Username < out[j].Username
		}
		return out[i].UserID < out[j].UserID
	})
	for i := range out {
		if i > 0 && out[i].Total == out[i-1].Total {
			out[i].Rank = out[i-1].Rank
		} else {
			out[i].Rank = i + 1
		}
	}
	return out
}

func (s *service) GetLeaderboard(ctx context.Context) ([]domain.UserStanding, error) {
	if entry, ok := s.cache.get(cacheKeyLeaderboard); ok {
		return entry.Leaderboard, nil
	}
	gen := s.generation.Load()
	start := time.Now()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	teams := make(map[string]domain.TeamScore, len(snap.users))
	for _, u := range snap.users {
		teams[u.ID] = snap.team(u)
	}
	board := Leaderboard(snap.users, teams)
	metrics.AggregationDuration.Observe(time.Since(start).Seconds())

	s.store(gen, cacheKeyLeaderboard, &cachedEntry{Leaderboard: board})
	for _, u := range snap.users {
		team := teams[u.ID]
		s.store(gen, cacheKeyTeamPrefix+u.ID, &cachedEntry{Team: &team})
	}
	return board, nil
}

func (s *service) GetTeam(ctx context.Context, userID string) (*domain.TeamScore, error) {
	key := cacheKeyTeamPrefix + userID
	if entry, ok := s.cache.get(key); ok {
		return entry.Team, nil
	}
	gen := s.generation.Load()
	start := time.Now()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var user *domain.User
	for i := range snap.users {
		if snap.users[i].ID == userID {
			user = &snap.users[i]
			break
		}
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}

	team := snap.team(*user)
	metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	s.store(gen, key, &cachedEntry{Team: &team})
	return &team, nil
}

func (s *service) GetContestantPoints(ctx context.Context, contestantID string) (*domain.ContestantSummary, error) {
	key := cacheKeyContestantPrefix + contestantID
	if entry, ok := s.cache.get(key); ok {
		return entry.Summary, nil
	}
	gen := s.generation.Load()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !snap.contestants[contestantID] {
		return nil, fmt.Errorf("%w: %s", domain.ErrContestantNotFound, contestantID)
	}

	summary := snap.season.ContestantSummary(contestantID, snap.corrections)
	s.store(gen, key, &cachedEntry{Summary: &summary})
	return &summary, nil
}

func (s *service) Invalidate() {
	s.generation.Add(1)
	s.loads.Forget(loadKeySnapshot)
	s.cache.clear()
}

// store caches the entry unless an invalidation happened since gen was read
func (s *service) store(gen uint64, key string, entry *cachedEntry) {
	if s.generation.Load() != gen {
		return
	}
	s.cache.set(key, entry)
}
