package domain

// ScoringConfig maps every scoreable event to a point value. Penalties are
// stored as negative values and added like any other source.
type ScoringConfig struct {
	Version int `json:"version" koanf:"version"`

	SurvivalPreMerge  int `json:"survival_pre_merge" koanf:"survival_pre_merge"`
	SurvivalPostMerge int `json:"survival_post_merge" koanf:"survival_post_merge"`

	TeamImmunityFirst       int `json:"team_immunity_first" koanf:"team_immunity_first"`
	TeamImmunitySecond      int `json:"team_immunity_second" koanf:"team_immunity_second"`
	TeamImmunitySecondOfTwo int `json:"team_immunity_second_of_two" koanf:"team_immunity_second_of_two"`
	TeamImmunityLast        int `json:"team_immunity_last" koanf:"team_immunity_last"`

	TeamRewardFirst       int `json:"team_reward_first" koanf:"team_reward_first"`
	TeamRewardSecond      int `json:"team_reward_second" koanf:"team_reward_second"`
	TeamRewardSecondOfTwo int `json:"team_reward_second_of_two" koanf:"team_reward_second_of_two"`
	TeamRewardLast        int `json:"team_reward_last" koanf:"team_reward_last"`

	IndividualImmunity int `json:"individual_immunity" koanf:"individual_immunity"`
	IndividualReward   int `json:"individual_reward" koanf:"individual_reward"`

	VoteMatched       int `json:"vote_matched" koanf:"vote_matched"`
	CorrectTargetVote int `json:"correct_target_vote" koanf:"correct_target_vote"`
	ZeroVotesReceived int `json:"zero_votes_received" koanf:"zero_votes_received"`

	VotedOutBase             int     `json:"voted_out_base" koanf:"voted_out_base"`
	VotedOutPocketMultiplier float64 `json:"voted_out_pocket_multiplier" koanf:"voted_out_pocket_multiplier"`
	VotedOutPerVote          int     `json:"voted_out_per_vote" koanf:"voted_out_per_vote"`

	ConfessionalsMid  int `json:"confessionals_mid" koanf:"confessionals_mid"`
	ConfessionalsHigh int `json:"confessionals_high" koanf:"confessionals_high"`

	ClueRead             int  `json:"clue_read" koanf:"clue_read"`
	AdvantagePlayed      int  `json:"advantage_played" koanf:"advantage_played"`
	IdolPlayed           int  `json:"idol_played" koanf:"idol_played"`
	IdolPerVoteNullified bool `json:"idol_per_vote_nullified" koanf:"idol_per_vote_nullified"`
	IdolFailed           int  `json:"idol_failed" koanf:"idol_failed"`

	FinalTribal int `json:"final_tribal" koanf:"final_tribal"`
	WinSeason   int `json:"win_season" koanf:"win_season"`

	CaptainMultiplier float64 `json:"captain_multiplier" koanf:"captain_multiplier"`
	AddPenalty        int     `json:"add_penalty" koanf:"add_penalty"`
}

// EffectiveCaptainMultiplier returns the captain multiplier, falling back to
// DefaultCaptainMultiplier when unset
func (c ScoringConfig) EffectiveCaptainMultiplier() float64 {
	if c.CaptainMultiplier <= 0 {
		return DefaultCaptainMultiplier
	}
	return c.CaptainMultiplier
}

// BPSConfig weights the impact-ranking signals and holds the top-3 bonuses
type BPSConfig struct {
	Version int `json:"version" koanf:"version"`

	// Social / strategic
	StrategicMove     int `json:"strategic_move" koanf:"strategic_move"`
	SocialMove        int `json:"social_move" koanf:"social_move"`
	VoteMatched       int `json:"vote_matched" koanf:"vote_matched"`
	CorrectTargetVote int `json:"correct_target_vote" koanf:"correct_target_vote"`

	// Advantage / risk
	AdvantageFound  int `json:"advantage_found" koanf:"advantage_found"`
	AdvantagePlayed int `json:"advantage_played" koanf:"advantage_played"`
	IdolPlayed      int `json:"idol_played" koanf:"idol_played"`
	ClueRead        int `json:"clue_read" koanf:"clue_read"`
	IdolFailed      int `json:"idol_failed" koanf:"idol_failed"`

	// Challenge
	TeamImmunityWin       int `json:"team_immunity_win" koanf:"team_immunity_win"`
	TeamRewardWin         int `json:"team_reward_win" koanf:"team_reward_win"`
	IndividualImmunityWin int `json:"individual_immunity_win" koanf:"individual_immunity_win"`
	IndividualRewardWin   int `json:"individual_reward_win" koanf:"individual_reward_win"`

	// Visibility
	PerConfessional int `json:"per_confessional" koanf:"per_confessional"`

	FirstBonus  int `json:"first_bonus" koanf:"first_bonus"`
	SecondBonus int `json:"second_bonus" koanf:"second_bonus"`
	ThirdBonus  int `json:"third_bonus" koanf:"third_bonus"`
}

// Bonus returns the bonus for a 1-based rank position, and false once the
// three bonus slots are exhausted
func (c BPSConfig) Bonus(position int) (int, bool) {
	switch position {
	case 1:
		return c.FirstBonus, true
	case 2:
		return c.SecondBonus, true
	case 3:
		return c.ThirdBonus, true
	default:
		return 0, false
	}
}

// PriceConfig bounds the derived contestant market price
type PriceConfig struct {
	Floor          int64   `json:"floor" koanf:"floor"`
	Ceiling        int64   `json:"ceiling" koanf:"ceiling"`
	Increment      int64   `json:"increment" koanf:"increment"`
	AdjustmentRate float64 `json:"adjustment_rate" koanf:"adjustment_rate"`
}
