package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

func testBPS() domain.BPSConfig {
	return domain.BPSConfig{
		StrategicMove:         3,
		SocialMove:            2,
		VoteMatched:           2,
		CorrectTargetVote:     1,
		AdvantageFound:        2,
		AdvantagePlayed:       2,
		IdolPlayed:            3,
		ClueRead:              1,
		IdolFailed:            -2,
		TeamImmunityWin:       1,
		TeamRewardWin:         1,
		IndividualImmunityWin: 3,
		IndividualRewardWin:   1,
		PerConfessional:       1,
		FirstBonus:            3,
		SecondBonus:           2,
		ThirdBonus:            1,
	}
}

func confessionalOutcome(counts map[string]int) *domain.EpisodeOutcome {
	active := make([]string, 0, len(counts))
	for id := range counts {
		active = append(active, id)
	}
	return &domain.EpisodeOutcome{
		Episode:       4,
		Phase:         domain.PhasePostMerge,
		ImmunityType:  domain.ImmunityIndividual,
		Active:        active,
		Survivors:     active,
		Confessionals: counts,
	}
}

func TestRankEpisode_Ties(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int
		want   map[string]int
	}{
		{
			name:   "distinct scores",
			counts: map[string]int{"a": 10, "b": 7, "c": 5, "d": 1},
			want:   map[string]int{"a": 3, "b": 2, "c": 1},
		},
		{
			name:   "tie for first skips second",
			counts: map[string]int{"a": 10, "b": 10, "c": 5},
			want:   map[string]int{"a": 3, "b": 3, "c": 1},
		},
		{
			name:   "tie for second skips third",
			counts: map[string]int{"a": 10, "b": 6, "c": 6, "d": 2},
			want:   map[string]int{"a": 3, "b": 2, "c": 2},
		},
		{
			name:   "three-way tie consumes all slots",
			counts: map[string]int{"a": 4, "b": 4, "c": 4, "d": 3},
			want:   map[string]int{"a": 3, "b": 3, "c": 3},
		},
		{
			name:   "zero scores still rank",
			counts: map[string]int{"a": 2, "b": 0, "c": 0},
			want:   map[string]int{"a": 3, "b": 2, "c": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankEpisode(confessionalOutcome(tt.counts), testBPS())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRankEpisode_NonPositiveScores(t *testing.T) {
	o := confessionalOutcome(map[string]int{"a": 0, "b": 0, "c": 0})
	o.IdolsFailed = []string{"b", "c"}

	require.Equal(t, map[string]int{"a": 0, "b": -2, "c": -2}, RawScores(o, testBPS()))
	assert.Equal(t, map[string]int{"a": 3, "b": 2, "c": 2}, RankEpisode(o, testBPS()))
}

func TestRawScores_FinaleExcluded(t *testing.T) {
	o := confessionalOutcome(map[string]int{"a": 5})
	o.Phase = domain.PhaseFinal
	assert.Empty(t, RawScores(o, testBPS()))
	assert.Empty(t, RankEpisode(o, testBPS()))
}

func TestRawScores_Signals(t *testing.T) {
	o := &domain.EpisodeOutcome{
		Episode:       2,
		Phase:         domain.PhasePreMerge,
		TribalCouncil: true,
		ImmunityType:  domain.ImmunityTeam,
		Active:        []string{"a1", "a2", "b1", "b2"},
		Survivors:     []string{"a1", "a2", "b1"},
		Eliminated:    "b2",
		Tribes: map[string][]string{
			"Red":  {"a1", "a2"},
			"Blue": {"b1", "b2"},
		},
		TeamImmunity:     []domain.TribePlacement{{Tribe: "Red", Place: 1}, {Tribe: "Blue", Place: 2}},
		VoteMatched:      map[string]bool{"a1": true, "b1": true},
		VoteTargets:      map[string]string{"a1": "b2", "b1": "b2"},
		StrategicMoves:   []string{"b1"},
		AdvantagesFound:  []string{"a2"},
		IdolsPlayed:      []domain.IdolPlay{{Contestant: "b1", VotesNullified: 3}},
		IdolsFailed:      []string{"b2"},
		Confessionals:    map[string]int{"a1": 2},
		AdvantagesPlayed: []string{},
	}

	scores := RawScores(o, testBPS())

	// a1 won immunity, so its vote signals are ignored
	assert.Equal(t, 1+2, scores["a1"])
	assert.Equal(t, 1+2, scores["a2"])
	// b1 attended tribal: strategic + vote matched + correct target + idol
	assert.Equal(t, 3+2+1+3, scores["b1"])
	assert.Equal(t, -2, scores["b2"])
}

func TestRank_OrderIsDeterministic(t *testing.T) {
	o := confessionalOutcome(map[string]int{"c": 3, "a": 3, "b": 3})
	entries := Rank(o, testBPS())
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].ContestantID)
	assert.Equal(t, "b", entries[1].ContestantID)
	assert.Equal(t, "c", entries[2].ContestantID)
	for _, e := range entries {
		assert.Equal(t, 1, e.Position)
	}
}

func TestRankSeason(t *testing.T) {
	e1 := *confessionalOutcome(map[string]int{"a": 2, "b": 1})
	e1.Episode = 1
	fin := *confessionalOutcome(map[string]int{"a": 9})
	fin.Episode = 2
	fin.Phase = domain.PhaseFinal

	got := RankSeason([]domain.EpisodeOutcome{e1, fin}, testBPS())
	require.Contains(t, got, 1)
	assert.NotContains(t, got, 2)
	assert.Equal(t, map[string]int{"a": 3, "b": 2}, got[1])
}
