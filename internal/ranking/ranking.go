// Package ranking implements the per-episode impact ranking (BPS): every
// participant gets an unweighted signal score, and the top three distinct
// positions earn the configured bonuses.
package ranking

import (
	"sort"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// Entry is a participant's raw signal score and awarded bonus
type Entry struct {
	ContestantID string `json:"contestant_id"`
	Score        int    `json:"score"`
	Position     int    `json:"position,omitempty"`
	Bonus        int    `json:"bonus,omitempty"`
}

// RawScores sums the four signal families for every participant of a
// non-finale episode. Finale episodes return an empty map.
func RawScores(o *domain.EpisodeOutcome, cfg domain.BPSConfig) map[string]int {
	scores := make(map[string]int)
	if o == nil || o.IsFinale() {
		return scores
	}
	for _, id := range o.Participants() {
		scores[id] = socialSignals(id, o, cfg) +
			advantageSignals(id, o, cfg) +
			challengeSignals(id, o, cfg) +
			visibilitySignals(id, o, cfg)
	}
	return scores
}

// Rank orders the episode's participants by raw score and assigns bonuses.
// Equal scores share the higher bonus and the next position is skipped, so a
// two-way tie for first leaves second place unawarded. Every participant is
// ranked, whatever the sign of its score, until the bonus slots run out.
func Rank(o *domain.EpisodeOutcome, cfg domain.BPSConfig) []Entry {
	raw := RawScores(o, cfg)
	entries := make([]Entry, 0, len(raw))
	for id, score := range raw {
		entries = append(entries, Entry{ContestantID: id, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].ContestantID < entries[j].ContestantID
	})

	position := 1
	for i := 0; i < len(entries); {
		score := entries[i].Score
		j := i
		for j < len(entries) && entries[j].Score == score {
			j++
		}
		bonus, ok := cfg.Bonus(position)
		if !ok {
			break
		}
		for k := i; k < j; k++ {
			entries[k].Position = position
			entries[k].Bonus = bonus
		}
		position += j - i
		i = j
	}
	return entries
}

// RankEpisode returns contestant -> bonus points for one episode. Only
// contestants with a non-zero bonus appear.
func RankEpisode(o *domain.EpisodeOutcome, cfg domain.BPSConfig) map[string]int {
	out := make(map[string]int)
	for _, e := range Rank(o, cfg) {
		if e.Bonus != 0 {
			out[e.ContestantID] = e.Bonus
		}
	}
	return out
}

// RankSeason runs RankEpisode for every outcome, keyed by episode number
func RankSeason(outcomes []domain.EpisodeOutcome, cfg domain.BPSConfig) map[int]map[string]int {
	out := make(map[int]map[string]int, len(outcomes))
	for i := range outcomes {
		o := &outcomes[i]
		if o.IsFinale() {
			continue
		}
		out[o.Episode] = RankEpisode(o, cfg)
	}
	return out
}
