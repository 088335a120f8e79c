package override

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/scoring"
)

func intPtr(v int) *int { return &v }

func sampleBreakdown() domain.EpisodeBreakdown {
	b := domain.EpisodeBreakdown{Episode: 1}
	b.Add(domain.CategorySurvival, 1)
	b.Add(domain.CategoryVoteMatched, 2)
	return b
}

func TestApplyEpisode(t *testing.T) {
	tests := []struct {
		name        string
		correction  Correction
		wantSources []domain.PointSource
		wantTotal   int
	}{
		{
			name:       "replace existing label",
			correction: Correction{Categories: map[string]int{domain.CategorySurvival: 10}},
			wantSources: []domain.PointSource{
				{Label: domain.CategorySurvival, Points: 10},
				{Label: domain.CategoryVoteMatched, Points: 2},
			},
			wantTotal: 12,
		},
		{
			name: "inject missing labels in label order",
			correction: Correction{Categories: map[string]int{
				domain.CategoryIdolPlayed: 3,
				domain.CategoryClueRead:   1,
			}},
			wantSources: []domain.PointSource{
				{Label: domain.CategorySurvival, Points: 1},
				{Label: domain.CategoryVoteMatched, Points: 2},
				{Label: domain.CategoryClueRead, Points: 1},
				{Label: domain.CategoryIdolPlayed, Points: 3},
			},
			wantTotal: 7,
		},
		{
			name:       "unknown label is injected",
			correction: Correction{Categories: map[string]int{"Fan favourite": 4}},
			wantSources: []domain.PointSource{
				{Label: domain.CategorySurvival, Points: 1},
				{Label: domain.CategoryVoteMatched, Points: 2},
				{Label: "Fan favourite", Points: 4},
			},
			wantTotal: 7,
		},
		{
			name:       "whole-row total becomes an adjustment",
			correction: Correction{Total: intPtr(-4)},
			wantSources: []domain.PointSource{
				{Label: domain.CategorySurvival, Points: 1},
				{Label: domain.CategoryVoteMatched, Points: 2},
				{Label: domain.CategoryTotalAdjustment, Points: -7},
			},
			wantTotal: -4,
		},
		{
			name: "total applies after categories",
			correction: Correction{
				Categories: map[string]int{domain.CategorySurvival: 10},
				Total:      intPtr(12),
			},
			wantSources: []domain.PointSource{
				{Label: domain.CategorySurvival, Points: 10},
				{Label: domain.CategoryVoteMatched, Points: 2},
			},
			wantTotal: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBreakdown()
			got := ApplyEpisode(&b, tt.correction)
			assert.Equal(t, tt.wantTotal, got)
			assert.Equal(t, tt.wantTotal, b.Total)
			assert.Equal(t, tt.wantSources, b.Sources)
		})
	}
}

func TestApplyEpisode_Idempotent(t *testing.T) {
	corrections := []Correction{
		{Categories: map[string]int{domain.CategorySurvival: 10}},
		{Categories: map[string]int{"Injected": 5, domain.CategoryVoteMatched: 0}},
		{Total: intPtr(20)},
		{Categories: map[string]int{domain.CategoryClueRead: 2}, Total: intPtr(-1)},
	}

	for _, c := range corrections {
		once := sampleBreakdown()
		ApplyEpisode(&once, c)

		twice := sampleBreakdown()
		ApplyEpisode(&twice, c)
		ApplyEpisode(&twice, c)

		assert.Equal(t, once, twice)
	}
}

func TestApplyOverrides_GrandTotal(t *testing.T) {
	ep1 := sampleBreakdown()
	ep2 := domain.EpisodeBreakdown{Episode: 2}
	ep2.Add(domain.CategorySurvival, 1)
	summary := domain.ContestantSummary{
		ContestantID: "x",
		Episodes:     []domain.EpisodeBreakdown{ep1, ep2},
	}
	summary.Recompute()
	require.Equal(t, 4, summary.Total)

	m := BuildMap([]domain.CategoryOverride{
		{ContestantID: "x", Episode: 2, Category: domain.CategorySurvival, Points: 5},
		{ContestantID: "y", Episode: 2, Category: domain.CategorySurvival, Points: 50},
	}, nil)

	assert.Equal(t, 8, ApplyOverrides(&summary, m))
	assert.Equal(t, 8, ApplyOverrides(&summary, m))
	assert.Equal(t, 3, summary.Episodes[0].Total)
	assert.Equal(t, 5, summary.Episodes[1].Total)
}

func TestEndToEnd_ScoreThenOverride(t *testing.T) {
	cfg := domain.ScoringConfig{SurvivalPreMerge: 1, VoteMatched: 2}
	o := &domain.EpisodeOutcome{
		Episode:       1,
		Phase:         domain.PhasePreMerge,
		TribalCouncil: true,
		ImmunityType:  domain.ImmunityIndividual,
		Active:        []string{"x", "y", "z"},
		Survivors:     []string{"x", "y"},
		Eliminated:    "z",
		VoteMatched:   map[string]bool{"x": true},
	}

	b := scoring.ScoreContestant("x", o, cfg)
	require.Equal(t, []domain.PointSource{
		{Label: domain.CategorySurvival, Points: 1},
		{Label: domain.CategoryVoteMatched, Points: 2},
	}, b.Sources)
	require.Equal(t, 3, b.Total)

	m := BuildMap([]domain.CategoryOverride{
		{ContestantID: "x", Episode: 1, Category: domain.CategorySurvival, Points: 10},
	}, nil)
	c, ok := m.Get("x", 1)
	require.True(t, ok)

	ApplyEpisode(&b, c)
	assert.Equal(t, []domain.PointSource{
		{Label: domain.CategorySurvival, Points: 10},
		{Label: domain.CategoryVoteMatched, Points: 2},
	}, b.Sources)
	assert.Equal(t, 12, b.Total)
}

func TestBuildMap_LaterRowWins(t *testing.T) {
	m := BuildMap([]domain.CategoryOverride{
		{ContestantID: "a", Episode: 1, Category: domain.CategorySurvival, Points: 3},
		{ContestantID: "a", Episode: 1, Category: domain.CategorySurvival, Points: 7},
	}, []domain.TotalOverride{{ContestantID: "b", Episode: 1, Total: 9}})

	a, ok := m.Get("a", 1)
	require.True(t, ok)
	assert.Equal(t, 7, a.Categories[domain.CategorySurvival])
	assert.Nil(t, a.Total)

	b, ok := m.Get("b", 1)
	require.True(t, ok)
	require.NotNil(t, b.Total)
	assert.Equal(t, 9, *b.Total)
	assert.Empty(t, b.Categories)

	_, ok = m.Get("a", 2)
	assert.False(t, ok)

	var empty Map
	_, ok = empty.Get("a", 1)
	assert.False(t, ok)
}

func TestFromMaterialized_RoundTrip(t *testing.T) {
	cats := []domain.CategoryOverride{
		{ContestantID: "a", Episode: 3, Category: domain.CategorySurvival, Points: 4},
		{ContestantID: "b", Episode: 3, Category: domain.CategoryIdolFailed, Points: -2},
	}
	totals := []domain.TotalOverride{{ContestantID: "b", Episode: 3, Total: 1}}

	rows := BuildRows(3, cats, totals, time.Now())
	assert.Equal(t, BuildMap(cats, totals), FromMaterialized(rows))
}
