package scoring

import "github.com/osse101/TribalScore_Go/internal/domain"

// Placement is a tribe's finish mapped onto the configured placement slots
type Placement int

const (
	PlacementNone Placement = iota
	PlacementFirst
	PlacementSecond      // middle finish when three or more tribes competed
	PlacementSecondOfTwo // losing finish in a two-tribe challenge
	PlacementLast        // losing finish when three or more tribes competed
)

// PlacementFor maps a 1-based place among n competing tribes to a slot
func PlacementFor(place, n int) Placement {
	switch {
	case place < 1 || n < 1:
		return PlacementNone
	case place == 1:
		return PlacementFirst
	case n == 2:
		return PlacementSecondOfTwo
	case place >= n:
		return PlacementLast
	default:
		return PlacementSecond
	}
}

// IsLosing reports whether the slot sends a tribe to tribal council
func (p Placement) IsLosing() bool {
	return p == PlacementSecondOfTwo || p == PlacementLast
}

// teamPlacement resolves the contestant's own tribe in results. Only the
// first tribe that lists the contestant counts.
func teamPlacement(contestantID string, o *domain.EpisodeOutcome, results []domain.TribePlacement) Placement {
	r, n, ok := o.TribeOf(contestantID, results)
	if !ok {
		return PlacementNone
	}
	return PlacementFor(r.Place, n)
}

// WentToTribal reports whether the contestant attended tribal council this
// episode. Individual-immunity episodes send everyone; team-immunity episodes
// send only the tribe that lost immunity.
func WentToTribal(contestantID string, o *domain.EpisodeOutcome) bool {
	if o == nil || !o.TribalCouncil || o.IsFinale() {
		return false
	}
	switch o.ImmunityType {
	case domain.ImmunityIndividual:
		return true
	case domain.ImmunityTeam:
		return teamPlacement(contestantID, o, o.TeamImmunity).IsLosing()
	default:
		return false
	}
}
