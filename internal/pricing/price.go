// Package pricing derives each contestant's market price series from their
// scored episode totals.
package pricing

import (
	"math"
	"sort"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// PerformanceRatio is (points-avg)/|avg| clamped to [-1, 1], and 0 when the
// field average is zero
func PerformanceRatio(points int, fieldAvg float64) float64 {
	if fieldAvg == 0 {
		return 0
	}
	ratio := (float64(points) - fieldAvg) / math.Abs(fieldAvg)
	return math.Max(-1, math.Min(1, ratio))
}

// NextPrice moves prev by the adjustment rate times the performance ratio,
// clamps it to the configured bounds and rounds it to the increment.
// Inactive contestants keep prev with zero change.
func NextPrice(prev int64, points int, fieldAvg float64, active bool, cfg domain.PriceConfig) (price, change int64) {
	if !active {
		return prev, 0
	}

	rate := cfg.AdjustmentRate
	if rate <= 0 {
		rate = domain.DefaultPriceAdjustmentRate
	}
	adj := int64(math.Round(float64(prev) * rate * PerformanceRatio(points, fieldAvg)))

	next := clamp(prev+adj, cfg.Floor, cfg.Ceiling)
	next = roundToIncrement(next, cfg.Increment)
	return next, next - prev
}

func clamp(v, floor, ceiling int64) int64 {
	if v < floor {
		v = floor
	}
	if ceiling > 0 && v > ceiling {
		v = ceiling
	}
	return v
}

func roundToIncrement(v, inc int64) int64 {
	if inc <= 0 {
		return v
	}
	return int64(math.Round(float64(v)/float64(inc))) * inc
}

// FieldAverage is the mean episode total over the active contestants.
// Active contestants without a total count as zero.
func FieldAverage(totals map[string]int, active []string) float64 {
	if len(active) == 0 {
		return 0
	}
	sum := 0
	for _, id := range active {
		sum += totals[id]
	}
	return float64(sum) / float64(len(active))
}

// IsPriced reports whether a contestant's price moves this episode: they must
// be active and not eliminated in or before it
func IsPriced(c domain.Contestant, o *domain.EpisodeOutcome) bool {
	if !o.IsActive(c.ID) || o.Eliminated == c.ID {
		return false
	}
	return c.EliminatedAt == nil || *c.EliminatedAt > o.Episode
}

// Step computes one episode's price points from the previous prices.
// Contestants missing from prev start from their base price.
func Step(o *domain.EpisodeOutcome, totals map[string]int, prev map[string]int64, contestants []domain.Contestant, cfg domain.PriceConfig) []domain.PricePoint {
	avg := FieldAverage(totals, o.Active)

	points := make([]domain.PricePoint, 0, len(contestants))
	for _, c := range sortedContestants(contestants) {
		before, ok := prev[c.ID]
		if !ok {
			before = c.BasePrice
		}
		price, change := NextPrice(before, totals[c.ID], avg, IsPriced(c, o), cfg)
		points = append(points, domain.PricePoint{
			ContestantID: c.ID,
			Episode:      o.Episode,
			Price:        price,
			Change:       change,
		})
	}
	return points
}

// DeriveSeries runs Step for every outcome in increasing episode order,
// starting from base prices. episodeTotals maps episode -> contestant ->
// corrected scorer total.
func DeriveSeries(contestants []domain.Contestant, outcomes []domain.EpisodeOutcome, episodeTotals map[int]map[string]int, cfg domain.PriceConfig) []domain.PricePoint {
	ordered := append([]domain.EpisodeOutcome(nil), outcomes...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Episode < ordered[j].Episode })

	prev := make(map[string]int64, len(contestants))
	var series []domain.PricePoint
	for i := range ordered {
		step := Step(&ordered[i], episodeTotals[ordered[i].Episode], prev, contestants, cfg)
		for _, p := range step {
			prev[p.ContestantID] = p.Price
		}
		series = append(series, step...)
	}
	return series
}

func sortedContestants(contestants []domain.Contestant) []domain.Contestant {
	out := append([]domain.Contestant(nil), contestants...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
