package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// ScoringDefaults are the configs seeded into the versioned config tables
// when they are empty, and the price bounds used by the pricing service
type ScoringDefaults struct {
	Scoring domain.ScoringConfig `koanf:"scoring"`
	BPS     domain.BPSConfig     `koanf:"bps"`
	Price   domain.PriceConfig   `koanf:"price"`
}

// NewScoringDefaults returns the built-in league defaults
func NewScoringDefaults() *ScoringDefaults {
	return &ScoringDefaults{
		Scoring: domain.ScoringConfig{
			SurvivalPreMerge:         1,
			SurvivalPostMerge:        2,
			TeamImmunityFirst:        2,
			TeamImmunitySecond:       1,
			TeamImmunitySecondOfTwo:  -1,
			TeamImmunityLast:         -1,
			TeamRewardFirst:          1,
			TeamRewardSecondOfTwo:    0,
			TeamRewardLast:           0,
			IndividualImmunity:       4,
			IndividualReward:         2,
			VoteMatched:              2,
			CorrectTargetVote:        1,
			ZeroVotesReceived:        1,
			VotedOutBase:             -3,
			VotedOutPocketMultiplier: 2,
			VotedOutPerVote:          0,
			ConfessionalsMid:         1,
			ConfessionalsHigh:        2,
			ClueRead:                 1,
			AdvantagePlayed:          2,
			IdolPlayed:               3,
			IdolFailed:               -2,
			FinalTribal:              5,
			WinSeason:                10,
			CaptainMultiplier:        domain.DefaultCaptainMultiplier,
			AddPenalty:               -2,
		},
		BPS: domain.BPSConfig{
			StrategicMove:         3,
			SocialMove:            2,
			VoteMatched:           2,
			CorrectTargetVote:     2,
			AdvantageFound:        3,
			AdvantagePlayed:       3,
			IdolPlayed:            4,
			ClueRead:              1,
			IdolFailed:            -2,
			TeamImmunityWin:       1,
			TeamRewardWin:         1,
			IndividualImmunityWin: 4,
			IndividualRewardWin:   2,
			PerConfessional:       1,
			FirstBonus:            3,
			SecondBonus:           2,
			ThirdBonus:            1,
		},
		Price: domain.PriceConfig{
			Floor:          100_000,
			Ceiling:        5_000_000,
			Increment:      1_000,
			AdjustmentRate: domain.DefaultPriceAdjustmentRate,
		},
	}
}

// LoadScoringDefaults layers the built-in defaults, the YAML file at path
// (skipped when path is empty) and TRIBAL_-prefixed env variables, in that
// order of precedence
func LoadScoringDefaults(path string) (*ScoringDefaults, error) {
	k := koanf.New(koanfDelimiter)

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load scoring config %s: %w", path, err)
		}
	}

	// TRIBAL_SCORING__SURVIVAL_PRE_MERGE -> scoring.survival_pre_merge
	envProvider := env.Provider(ScoringEnvPrefix, koanfDelimiter, func(s string) string {
		s = strings.TrimPrefix(s, ScoringEnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, scoringEnvNesting, koanfDelimiter)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load scoring env overrides: %w", err)
	}

	out := *NewScoringDefaults()
	if err := k.UnmarshalWithConf("", &out, koanf.UnmarshalConf{Tag: koanfTag}); err != nil {
		return nil, fmt.Errorf("failed to decode scoring config: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate rejects configs the engine cannot apply
func (d *ScoringDefaults) Validate() error {
	var errs []error
	if d.Scoring.CaptainMultiplier < 0 {
		errs = append(errs, errors.New("scoring.captain_multiplier must not be negative"))
	}
	if d.Scoring.VotedOutPocketMultiplier < 0 {
		errs = append(errs, errors.New("scoring.voted_out_pocket_multiplier must not be negative"))
	}
	if d.Price.Floor < 0 {
		errs = append(errs, errors.New("price.floor must not be negative"))
	}
	if d.Price.Ceiling != 0 && d.Price.Ceiling < d.Price.Floor {
		errs = append(errs, errors.New("price.ceiling must be zero or at least price.floor"))
	}
	if d.Price.AdjustmentRate < 0 || d.Price.AdjustmentRate > 1 {
		errs = append(errs, errors.New("price.adjustment_rate must be within [0, 1]"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid scoring config: %w", errors.Join(errs...))
	}
	return nil
}
