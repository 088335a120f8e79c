// Package scoring converts a single episode outcome into labeled point
// breakdowns. Every function here is pure: outcomes and configs are read only.
package scoring

import (
	"math"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// IsEligible reports whether the contestant can earn points for the episode:
// they are active, or they are the one eliminated (so the elimination penalty
// still lands).
func IsEligible(contestantID string, o *domain.EpisodeOutcome) bool {
	if o == nil || contestantID == "" {
		return false
	}
	return o.IsActive(contestantID) || o.IsEliminated(contestantID)
}

// ScoreContestant computes the contestant's breakdown for one episode.
// Sources are appended in fixed rule order and zero-point rules are omitted.
func ScoreContestant(contestantID string, o *domain.EpisodeOutcome, cfg domain.ScoringConfig) domain.EpisodeBreakdown {
	b := domain.EpisodeBreakdown{Sources: []domain.PointSource{}}
	if o == nil {
		return b
	}
	b.Episode = o.Episode
	if !IsEligible(contestantID, o) {
		return b
	}

	scoreSurvival(&b, contestantID, o, cfg)
	scoreChallenges(&b, contestantID, o, cfg)
	scoreTribal(&b, contestantID, o, cfg)
	scoreElimination(&b, contestantID, o, cfg)
	scoreConfessionals(&b, contestantID, o, cfg)
	scoreAdvantages(&b, contestantID, o, cfg)
	scorePlacement(&b, contestantID, o, cfg)

	return b
}

// ScoreEpisode scores every eligible contestant of the episode
func ScoreEpisode(o *domain.EpisodeOutcome, cfg domain.ScoringConfig) map[string]domain.EpisodeBreakdown {
	out := make(map[string]domain.EpisodeBreakdown)
	if o == nil {
		return out
	}
	for _, id := range o.Participants() {
		out[id] = ScoreContestant(id, o, cfg)
	}
	return out
}

func scoreSurvival(b *domain.EpisodeBreakdown, id string, o *domain.EpisodeOutcome, cfg domain.ScoringConfig) {
	if !o.TribalCouncil || o.IsFinale() || !domain.Contains(o.Survivors, id) {
		return
	}
	switch o.Phase {
	case domain.PhasePreMerge, domain.PhaseSwap:
		b.Add(domain.CategorySurvival, cfg.SurvivalPreMerge)
	case domain.PhasePostMerge:
		b.Add(domain.CategorySurvival, cfg.SurvivalPostMerge)
	}
}

func scoreChallenges(b *domain.EpisodeBreakdown, id string, o *domain.EpisodeOutcome, cfg domain.ScoringConfig) {
	if o.ImmunityType == domain.ImmunityTeam {
		switch teamPlacement(id, o, o.TeamImmunity) {
		case PlacementFirst:
			b.Add(domain.CategoryTeamImmunityFirst, cfg.TeamImmunityFirst)
		case PlacementSecond:
			b.Add(domain.CategoryTeamImmunitySecond, cfg.TeamImmunitySecond)
		case PlacementSecondOfTwo:
			b.Add(domain.CategoryTeamImmunitySecondOfTwo, cfg.TeamImmunitySecondOfTwo)
		case PlacementLast:
			b.Add(domain.CategoryTeamImmunityLast, cfg.TeamImmunityLast)
		}
	}

	switch teamPlacement(id, o, o.TeamReward) {
	case PlacementFirst:
		b.Add(domain.CategoryTeamRewardFirst, cfg.TeamRewardFirst)
	case PlacementSecond:
		b.Add(domain.CategoryTeamRewardSecond, cfg.TeamRewardSecond)
	case PlacementSecondOfTwo:
		b.Add(domain.CategoryTeamRewardSecondOfTwo, cfg.TeamRewardSecondOfTwo)
	case PlacementLast:
		b.Add(domain.CategoryTeamRewardLast, cfg.TeamRewardLast)
	}

	if o.ImmunityType == domain.ImmunityIndividual && o.IndividualImmunity == id {
		b.Add(domain.CategoryIndividualImmunity, cfg.IndividualImmunity)
	}
	if domain.Contains(o.IndividualReward, id) {
		b.Add(domain.CategoryIndividualReward, cfg.IndividualReward)
	}
}

func scoreTribal(b *domain.EpisodeBreakdown, id string, o *domain.EpisodeOutcome, cfg domain.ScoringConfig) {
	if !WentToTribal(id, o) {
		return
	}
	if o.VoteMatched[id] {
		b.Add(domain.CategoryVoteMatched, cfg.VoteMatched)
	}
	if o.Eliminated != "" && o.Eliminated != id && o.VoteTargets[id] == o.Eliminated {
		b.Add(domain.CategoryCorrectTargetVote, cfg.CorrectTargetVote)
	}
	// no vote tally recorded means the rule cannot be evaluated
	if o.VotesReceived != nil && !o.IsEliminated(id) && o.VotesReceived[id] == 0 {
		b.Add(domain.CategoryZeroVotesReceived, cfg.ZeroVotesReceived)
	}
}

func scoreElimination(b *domain.EpisodeBreakdown, id string, o *domain.EpisodeOutcome, cfg domain.ScoringConfig) {
	if !o.IsEliminated(id) {
		return
	}
	b.Add(domain.CategoryVotedOut, EliminationPenalty(cfg, o.ItemsHeld[id], o.VotesReceived[id]))
}

// EliminationPenalty returns base * pocketMultiplier^items + perVote * votes,
// rounded to the nearest point
func EliminationPenalty(cfg domain.ScoringConfig, itemsHeld, votesReceived int) int {
	mult := cfg.VotedOutPocketMultiplier
	if mult <= 0 {
		mult = domain.DefaultPocketMultiplier
	}
	if itemsHeld < 0 {
		itemsHeld = 0
	}
	scaled := float64(cfg.VotedOutBase) * math.Pow(mult, float64(itemsHeld))
	return int(math.Round(scaled)) + cfg.VotedOutPerVote*votesReceived
}

// scoreConfessionals applies both bands independently: a count of 7 or more
// earns the 4-6 band as well as the 7+ band.
func scoreConfessionals(b *domain.EpisodeBreakdown, id string, o *domain.EpisodeOutcome, cfg domain.ScoringConfig) {
	n := o.Confessionals[id]
	if n >= domain.ConfessionalsMidThreshold {
		b.Add(domain.CategoryConfessionalsMid, cfg.ConfessionalsMid)
	}
	if n >= domain.ConfessionalsHighThreshold {
		b.Add(domain.CategoryConfessionalsHigh, cfg.ConfessionalsHigh)
	}
}

func scoreAdvantages(b *domain.EpisodeBreakdown, id string, o *domain.EpisodeOutcome, cfg domain.ScoringConfig) {
	if domain.Contains(o.CluesRead, id) {
		b.Add(domain.CategoryClueRead, cfg.ClueRead)
	}
	if domain.Contains(o.AdvantagesPlayed, id) {
		b.Add(domain.CategoryAdvantagePlayed, cfg.AdvantagePlayed)
	}

	idolPoints := 0
	for _, play := range o.IdolsPlayed {
		if play.Contestant != id {
			continue
		}
		if cfg.IdolPerVoteNullified {
			idolPoints += cfg.IdolPlayed * play.VotesNullified
		} else {
			idolPoints += cfg.IdolPlayed
		}
	}
	b.Add(domain.CategoryIdolPlayed, idolPoints)

	if domain.Contains(o.IdolsFailed, id) {
		b.Add(domain.CategoryIdolFailed, cfg.IdolFailed)
	}
}

func scorePlacement(b *domain.EpisodeBreakdown, id string, o *domain.EpisodeOutcome, cfg domain.ScoringConfig) {
	if !o.IsFinale() || !domain.Contains(o.FinalThree, id) {
		return
	}
	b.Add(domain.CategoryFinalTribal, cfg.FinalTribal)
	if o.Winner == id {
		b.Add(domain.CategoryWonSeason, cfg.WinSeason)
	}
}
