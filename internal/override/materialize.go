package override

import (
	"sort"
	"time"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// BuildRows computes the canonical rows for one episode. Every contestant
// touched by a category or total override gets exactly one row; untouched
// contestants get none. Rows are ordered by contestant ID.
func BuildRows(episode int, categories []domain.CategoryOverride, totals []domain.TotalOverride, now time.Time) []domain.MaterializedPoints {
	byContestant := make(map[string]*domain.MaterializedPoints)
	row := func(id string) *domain.MaterializedPoints {
		r, ok := byContestant[id]
		if !ok {
			r = &domain.MaterializedPoints{
				Episode:        episode,
				ContestantID:   id,
				Breakdown:      make(map[string]int),
				MaterializedAt: now,
			}
			byContestant[id] = r
		}
		return r
	}

	for _, o := range categories {
		if o.Episode != episode {
			continue
		}
		row(o.ContestantID).Breakdown[o.Category] = o.Points
	}
	for _, o := range totals {
		if o.Episode != episode {
			continue
		}
		total := o.Total
		row(o.ContestantID).TotalOverride = &total
	}

	rows := make([]domain.MaterializedPoints, 0, len(byContestant))
	for _, r := range byContestant {
		if r.TotalOverride != nil {
			r.TotalPoints = *r.TotalOverride
		} else {
			sum := 0
			for _, pts := range r.Breakdown {
				sum += pts
			}
			r.TotalPoints = sum
		}
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ContestantID < rows[j].ContestantID
	})
	return rows
}

// Episodes returns the distinct episodes referenced by the override rows in
// increasing order
func Episodes(categories []domain.CategoryOverride, totals []domain.TotalOverride) []int {
	seen := make(map[int]bool)
	for _, o := range categories {
		seen[o.Episode] = true
	}
	for _, o := range totals {
		seen[o.Episode] = true
	}
	out := make([]int, 0, len(seen))
	for ep := range seen {
		out = append(out, ep)
	}
	sort.Ints(out)
	return out
}
