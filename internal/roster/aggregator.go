package roster

import (
	"math"
	"sort"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/override"
	"github.com/osse101/TribalScore_Go/internal/ranking"
	"github.com/osse101/TribalScore_Go/internal/scoring"
)

// Season holds one season's outcomes with scorer results and rank bonuses
// computed once, so many rosters can be aggregated against it.
type Season struct {
	cfg      domain.ScoringConfig
	episodes []int
	outcomes map[int]*domain.EpisodeOutcome
	scores   map[int]map[string]domain.EpisodeBreakdown
	bonuses  map[int]map[string]int
}

// NewSeason scores every outcome. A nil bps disables rank bonuses. When two
// outcomes share an episode number the later one wins.
func NewSeason(outcomes []domain.EpisodeOutcome, cfg domain.ScoringConfig, bps *domain.BPSConfig) *Season {
	s := &Season{
		cfg:      cfg,
		outcomes: make(map[int]*domain.EpisodeOutcome, len(outcomes)),
		scores:   make(map[int]map[string]domain.EpisodeBreakdown, len(outcomes)),
		bonuses:  make(map[int]map[string]int, len(outcomes)),
	}
	for i := range outcomes {
		o := &outcomes[i]
		if _, dup := s.outcomes[o.Episode]; !dup {
			s.episodes = append(s.episodes, o.Episode)
		}
		s.outcomes[o.Episode] = o
	}
	sort.Ints(s.episodes)

	for _, ep := range s.episodes {
		o := s.outcomes[ep]
		s.scores[ep] = scoring.ScoreEpisode(o, cfg)
		if bps != nil {
			s.bonuses[ep] = ranking.RankEpisode(o, *bps)
		}
	}
	return s
}

// Episodes returns the season's episode numbers in increasing order
func (s *Season) Episodes() []int {
	return append([]int(nil), s.episodes...)
}

// Outcome returns the outcome recorded for an episode
func (s *Season) Outcome(episode int) (*domain.EpisodeOutcome, bool) {
	o, ok := s.outcomes[episode]
	return o, ok
}

// Config returns the scoring config the season was built with
func (s *Season) Config() domain.ScoringConfig {
	return s.cfg
}

// Breakdown builds one contestant's episode breakdown: scorer sources, the
// rank bonus, stored corrections, and finally captain scaling of the combined
// total. The second result is false when the contestant neither scored nor
// has a correction for the episode.
func (s *Season) Breakdown(contestantID string, episode int, corrections override.Map, captain bool) (domain.EpisodeBreakdown, bool) {
	if _, ok := s.outcomes[episode]; !ok {
		return domain.EpisodeBreakdown{}, false
	}

	base, eligible := s.scores[episode][contestantID]
	correction, corrected := corrections.Get(contestantID, episode)
	if !eligible && !corrected {
		return domain.EpisodeBreakdown{}, false
	}

	b := base.Clone()
	b.Episode = episode
	if eligible {
		b.Add(domain.CategoryEpisodeRankBonus, s.bonuses[episode][contestantID])
	}
	if corrected {
		override.ApplyEpisode(&b, correction)
	}
	b.Recompute()

	if captain {
		b.IsCaptain = true
		mult := s.cfg.EffectiveCaptainMultiplier()
		b.Add(domain.CategoryCaptainBonus, int(math.Round((mult-1)*float64(b.Total))))
	}
	return b, true
}

// ContestantSummary returns a contestant's full-season history without
// roster windows or captaincy, as shown on contestant pages.
func (s *Season) ContestantSummary(contestantID string, corrections override.Map) domain.ContestantSummary {
	summary := domain.ContestantSummary{ContestantID: contestantID}
	for _, ep := range s.episodes {
		if b, ok := s.Breakdown(contestantID, ep, corrections, false); ok {
			summary.Episodes = append(summary.Episodes, b)
		}
	}
	summary.Recompute()
	return summary
}

// EpisodeTotals returns contestant -> corrected scorer total for one episode,
// without rank bonus or captaincy. Contestants that neither scored nor were
// corrected are absent.
func (s *Season) EpisodeTotals(episode int, corrections override.Map) map[string]int {
	out := make(map[string]int)
	ids := make(map[string]bool)
	for id := range s.scores[episode] {
		ids[id] = true
	}
	for k := range corrections {
		if k.Episode == episode {
			ids[k.ContestantID] = true
		}
	}
	for id := range ids {
		base, eligible := s.scores[episode][id]
		c, corrected := corrections.Get(id, episode)
		if !eligible && !corrected {
			continue
		}
		b := base.Clone()
		if corrected {
			override.ApplyEpisode(&b, c)
		}
		out[id] = b.Recompute()
	}
	return out
}

// AggregateInput is one user's roster state
type AggregateInput struct {
	UserID      string
	Entries     []domain.TribeEntry
	Captains    map[int]string
	Corrections override.Map
}

// Aggregate computes a user's team score. Each contestant's summary merges
// all of that contestant's entries and counts an episode at most once, even
// when entries overlap. The add penalty is charged once per transfer-window
// entry and only at team level.
func (s *Season) Aggregate(in AggregateInput) domain.TeamScore {
	team := domain.TeamScore{
		UserID:      in.UserID,
		EventTotals: make(map[string]int),
	}

	byContestant := make(map[string][]domain.TribeEntry)
	for _, e := range in.Entries {
		byContestant[e.ContestantID] = append(byContestant[e.ContestantID], e)
		if IsAddition(e) {
			team.AddPenalty += s.cfg.AddPenalty
		}
	}

	ids := make([]string, 0, len(byContestant))
	for id := range byContestant {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entries := byContestant[id]
		summary := domain.ContestantSummary{ContestantID: id}
		for _, e := range entries {
			if e.RemovedAt == nil {
				summary.OnRoster = true
			}
		}

		for _, ep := range s.episodes {
			if !coveredBy(entries, ep) {
				continue
			}
			b, ok := s.Breakdown(id, ep, in.Corrections, in.Captains[ep] == id)
			if !ok {
				continue
			}
			for _, src := range b.Sources {
				team.EventTotals[src.Label] += src.Points
			}
			summary.Episodes = append(summary.Episodes, b)
		}

		team.Total += summary.Recompute()
		team.Contestants = append(team.Contestants, summary)
	}

	team.Total += team.AddPenalty
	return team
}

func coveredBy(entries []domain.TribeEntry, episode int) bool {
	for _, e := range entries {
		if OnRoster(e, episode) {
			return true
		}
	}
	return false
}

// Aggregate is a one-shot convenience around NewSeason and Season.Aggregate
func Aggregate(entries []domain.TribeEntry, outcomes []domain.EpisodeOutcome, cfg domain.ScoringConfig, captains map[int]string, bps *domain.BPSConfig, corrections override.Map) domain.TeamScore {
	return NewSeason(outcomes, cfg, bps).Aggregate(AggregateInput{
		Entries:     entries,
		Captains:    captains,
		Corrections: corrections,
	})
}
