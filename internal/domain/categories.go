package domain

// Category labels are the point-source vocabulary shared by the scorer, the
// ranking engine, the aggregator and the override boundary. Overrides match
// on these exact strings.
const (
	CategorySurvival                = "Survival"
	CategoryTeamImmunityFirst       = "Team immunity (1st)"
	CategoryTeamImmunitySecond      = "Team immunity (2nd)"
	CategoryTeamImmunitySecondOfTwo = "Team immunity (2nd of 2)"
	CategoryTeamImmunityLast        = "Team immunity (last)"
	CategoryTeamRewardFirst         = "Team reward (1st)"
	CategoryTeamRewardSecond        = "Team reward (2nd)"
	CategoryTeamRewardSecondOfTwo   = "Team reward (2nd of 2)"
	CategoryTeamRewardLast          = "Team reward (last)"
	CategoryIndividualImmunity      = "Individual immunity"
	CategoryIndividualReward        = "Individual reward"
	CategoryVoteMatched             = "Vote matched"
	CategoryCorrectTargetVote       = "Correct target vote"
	CategoryZeroVotesReceived       = "Zero votes received"
	CategoryVotedOut                = "Voted out"
	CategoryConfessionalsMid        = "Confessionals (4-6)"
	CategoryConfessionalsHigh       = "Confessionals (7+)"
	CategoryClueRead                = "Clue read"
	CategoryAdvantagePlayed         = "Advantage played"
	CategoryIdolPlayed              = "Idol played"
	CategoryIdolFailed              = "Idol failed"
	CategoryFinalTribal             = "Final tribal"
	CategoryWonSeason               = "Won season"
	CategoryEpisodeRankBonus        = "Episode rank bonus"
	CategoryCaptainBonus            = "Captain bonus"
	CategoryTotalAdjustment         = "Total adjustment"
)

// Categories lists every label the engine emits, in rule order
var Categories = []string{
	CategorySurvival,
	CategoryTeamImmunityFirst,
	CategoryTeamImmunitySecond,
	CategoryTeamImmunitySecondOfTwo,
	CategoryTeamImmunityLast,
	CategoryTeamRewardFirst,
	CategoryTeamRewardSecond,
	CategoryTeamRewardSecondOfTwo,
	CategoryTeamRewardLast,
	CategoryIndividualImmunity,
	CategoryIndividualReward,
	CategoryVoteMatched,
	CategoryCorrectTargetVote,
	CategoryZeroVotesReceived,
	CategoryVotedOut,
	CategoryConfessionalsMid,
	CategoryConfessionalsHigh,
	CategoryClueRead,
	CategoryAdvantagePlayed,
	CategoryIdolPlayed,
	CategoryIdolFailed,
	CategoryFinalTribal,
	CategoryWonSeason,
	CategoryEpisodeRankBonus,
	CategoryCaptainBonus,
	CategoryTotalAdjustment,
}

// IsKnownCategory reports whether label is part of the vocabulary
func IsKnownCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}
