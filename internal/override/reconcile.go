// Package override reconciles admin corrections with computed breakdowns and
// materializes them into the canonical points table.
package override

import (
	"sort"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// Key identifies one contestant in one episode
type Key struct {
	ContestantID string
	Episode      int
}

// Correction is the override state for one (contestant, episode): labeled
// category values plus an optional whole-row total.
type Correction struct {
	Categories map[string]int
	Total      *int
}

// IsEmpty reports whether the correction changes nothing
func (c Correction) IsEmpty() bool {
	return len(c.Categories) == 0 && c.Total == nil
}

// Map holds corrections keyed by (contestant, episode)
type Map map[Key]Correction

// BuildMap groups category and total override rows into a Map. A later row
// for the same (contestant, episode, category) replaces an earlier one.
func BuildMap(categories []domain.CategoryOverride, totals []domain.TotalOverride) Map {
	m := make(Map)
	for _, row := range categories {
		k := Key{ContestantID: row.ContestantID, Episode: row.Episode}
		c := m[k]
		if c.Categories == nil {
			c.Categories = make(map[string]int)
		}
		c.Categories[row.Category] = row.Points
		m[k] = c
	}
	for _, row := range totals {
		k := Key{ContestantID: row.ContestantID, Episode: row.Episode}
		c := m[k]
		total := row.Total
		c.Total = &total
		m[k] = c
	}
	return m
}

// FromMaterialized turns canonical rows back into corrections
func FromMaterialized(rows []domain.MaterializedPoints) Map {
	m := make(Map, len(rows))
	for _, row := range rows {
		c := Correction{Categories: make(map[string]int, len(row.Breakdown))}
		for label, pts := range row.Breakdown {
			c.Categories[label] = pts
		}
		if row.TotalOverride != nil {
			total := *row.TotalOverride
			c.Total = &total
		}
		m[Key{ContestantID: row.ContestantID, Episode: row.Episode}] = c
	}
	return m
}

// Get returns the correction for a contestant in an episode
func (m Map) Get(contestantID string, episode int) (Correction, bool) {
	if m == nil {
		return Correction{}, false
	}
	c, ok := m[Key{ContestantID: contestantID, Episode: episode}]
	return c, ok
}

// Merge copies every entry of other into m, replacing existing keys
func (m Map) Merge(other Map) Map {
	if m == nil {
		m = make(Map, len(other))
	}
	for k, c := range other {
		m[k] = c
	}
	return m
}

// ApplyEpisode reconciles one breakdown with a correction in place and
// returns the new episode total. Existing sources whose label has an
// override are replaced, remaining override labels are appended in label
// order, and a whole-row total is expressed as a Total adjustment source.
// Applying the same correction again yields the same breakdown.
func ApplyEpisode(b *domain.EpisodeBreakdown, c Correction) int {
	if len(c.Categories) > 0 {
		seen := make(map[string]bool, len(c.Categories))
		for i := range b.Sources {
			if pts, ok := c.Categories[b.Sources[i].Label]; ok {
				b.Sources[i].Points = pts
				seen[b.Sources[i].Label] = true
			}
		}

		missing := make([]string, 0, len(c.Categories))
		for label := range c.Categories {
			if !seen[label] {
				missing = append(missing, label)
			}
		}
		sort.Strings(missing)
		for _, label := range missing {
			b.Sources = append(b.Sources, domain.PointSource{Label: label, Points: c.Categories[label]})
		}
	}

	if c.Total != nil {
		kept := b.Sources[:0]
		for _, s := range b.Sources {
			if s.Label != domain.CategoryTotalAdjustment {
				kept = append(kept, s)
			}
		}
		b.Sources = kept
		if diff := *c.Total - b.Recompute(); diff != 0 {
			b.Sources = append(b.Sources, domain.PointSource{Label: domain.CategoryTotalAdjustment, Points: diff})
		}
	}

	return b.Recompute()
}

// ApplyOverrides reconciles every episode of a contestant summary with the
// map and returns the new grand total
func ApplyOverrides(s *domain.ContestantSummary, m Map) int {
	for i := range s.Episodes {
		if c, ok := m.Get(s.ContestantID, s.Episodes[i].Episode); ok {
			ApplyEpisode(&s.Episodes[i], c)
		}
	}
	return s.Recompute()
}
