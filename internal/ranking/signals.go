package ranking

import (
	"github.com/osse101/TribalScore_Go/internal/domain"
	"github.com/osse101/TribalScore_Go/internal/scoring"
)

func socialSignals(id string, o *domain.EpisodeOutcome, cfg domain.BPSConfig) int {
	score := 0
	if domain.Contains(o.StrategicMoves, id) {
		score += cfg.StrategicMove
	}
	if domain.Contains(o.SocialMoves, id) {
		score += cfg.SocialMove
	}
	if scoring.WentToTribal(id, o) {
		if o.VoteMatched[id] {
			score += cfg.VoteMatched
		}
		if o.Eliminated != "" && o.Eliminated != id && o.VoteTargets[id] == o.Eliminated {
			score += cfg.CorrectTargetVote
		}
	}
	return score
}

func advantageSignals(id string, o *domain.EpisodeOutcome, cfg domain.BPSConfig) int {
	score := 0
	if domain.Contains(o.AdvantagesFound, id) {
		score += cfg.AdvantageFound
	}
	if domain.Contains(o.AdvantagesPlayed, id) {
		score += cfg.AdvantagePlayed
	}
	for _, play := range o.IdolsPlayed {
		if play.Contestant == id {
			score += cfg.IdolPlayed
			break
		}
	}
	if domain.Contains(o.CluesRead, id) {
		score += cfg.ClueRead
	}
	if domain.Contains(o.IdolsFailed, id) {
		score += cfg.IdolFailed
	}
	return score
}

// challengeSignals does not depend on tribal attendance
func challengeSignals(id string, o *domain.EpisodeOutcome, cfg domain.BPSConfig) int {
	score := 0
	if o.ImmunityType == domain.ImmunityTeam {
		if r, n, ok := o.TribeOf(id, o.TeamImmunity); ok && scoring.PlacementFor(r.Place, n) == scoring.PlacementFirst {
			score += cfg.TeamImmunityWin
		}
	}
	if r, n, ok := o.TribeOf(id, o.TeamReward); ok && scoring.PlacementFor(r.Place, n) == scoring.PlacementFirst {
		score += cfg.TeamRewardWin
	}
	if o.ImmunityType == domain.ImmunityIndividual && o.IndividualImmunity == id {
		score += cfg.IndividualImmunityWin
	}
	if domain.Contains(o.IndividualReward, id) {
		score += cfg.IndividualRewardWin
	}
	return score
}

func visibilitySignals(id string, o *domain.EpisodeOutcome, cfg domain.BPSConfig) int {
	return o.Confessionals[id] * cfg.PerConfessional
}
