package domain

// Phase identifies which part of the season an episode belongs to
type Phase string

const (
	PhasePreMerge  Phase = "pre_merge"
	PhaseSwap      Phase = "swap"
	PhasePostMerge Phase = "post_merge"
	PhaseFinal     Phase = "final"
)

// ImmunityType identifies whether immunity was won by a tribe or an individual
type ImmunityType string

const (
	ImmunityTeam       ImmunityType = "team"
	ImmunityIndividual ImmunityType = "individual"
)

// TribePlacement is one tribe's finishing position in a team challenge (1-based)
type TribePlacement struct {
	Tribe string `json:"tribe"`
	Place int    `json:"place"`
}

// IdolPlay records a hidden immunity idol played by a contestant
type IdolPlay struct {
	Contestant     string `json:"contestant"`
	VotesNullified int    `json:"votes_nullified"`
}

// EpisodeOutcome is the recorded set of events for one aired episode.
// Every list and map is optional; nil is read as empty.
type EpisodeOutcome struct {
	Episode       int          `json:"episode" validate:"required,min=1"`
	Phase         Phase        `json:"phase" validate:"required,oneof=pre_merge swap post_merge final"`
	TribalCouncil bool         `json:"tribal_council"`
	ImmunityType  ImmunityType `json:"immunity_type,omitempty" validate:"omitempty,oneof=team individual"`

	Active     []string `json:"active,omitempty"`
	Survivors  []string `json:"survivors,omitempty"`
	Eliminated string   `json:"eliminated,omitempty"`

	// Tribes maps tribe name to the contestants on it this episode
	Tribes             map[string][]string `json:"tribes,omitempty"`
	TeamImmunity       []TribePlacement    `json:"team_immunity,omitempty"`
	TeamReward         []TribePlacement    `json:"team_reward,omitempty"`
	IndividualImmunity string              `json:"individual_immunity,omitempty"`
	IndividualReward   []string            `json:"individual_reward,omitempty"`

	VoteMatched   map[string]bool   `json:"vote_matched,omitempty"`
	VoteTargets   map[string]string `json:"vote_targets,omitempty"`
	VotesReceived map[string]int    `json:"votes_received,omitempty"`
	ItemsHeld     map[string]int    `json:"items_held,omitempty"`
	Confessionals map[string]int    `json:"confessionals,omitempty"`

	CluesRead        []string   `json:"clues_read,omitempty"`
	AdvantagesFound  []string   `json:"advantages_found,omitempty"`
	AdvantagesPlayed []string   `json:"advantages_played,omitempty"`
	IdolsPlayed      []IdolPlay `json:"idols_played,omitempty"`
	IdolsFailed      []string   `json:"idols_failed,omitempty"`
	StrategicMoves   []string   `json:"strategic_moves,omitempty"`
	SocialMoves      []string   `json:"social_moves,omitempty"`

	FinalThree []string `json:"final_three,omitempty"`
	Winner     string   `json:"winner,omitempty"`
}

// IsFinale reports whether the outcome is the season finale
func (o *EpisodeOutcome) IsFinale() bool {
	return o.Phase == PhaseFinal
}

// IsActive reports whether the contestant is in the episode's active list
func (o *EpisodeOutcome) IsActive(contestantID string) bool {
	return contains(o.Active, contestantID)
}

// IsEliminated reports whether the contestant left the game this episode
func (o *EpisodeOutcome) IsEliminated(contestantID string) bool {
	return o.Eliminated != "" && o.Eliminated == contestantID
}

// Participants returns the active contestants plus the eliminated contestant
// when they are not already listed. Order follows the active list.
func (o *EpisodeOutcome) Participants() []string {
	out := make([]string, 0, len(o.Active)+1)
	out = append(out, o.Active...)
	if o.Eliminated != "" && !contains(o.Active, o.Eliminated) {
		out = append(out, o.Eliminated)
	}
	return out
}

// TribeOf returns the placement of the first tribe in results that lists the
// contestant, along with the number of tribes that competed.
func (o *EpisodeOutcome) TribeOf(contestantID string, results []TribePlacement) (TribePlacement, int, bool) {
	for _, r := range results {
		if contains(o.Tribes[r.Tribe], contestantID) {
			return r, len(results), true
		}
	}
	return TribePlacement{}, len(results), false
}

// Contains reports whether id appears in list
func Contains(list []string, id string) bool {
	return contains(list, id)
}

func contains(list []string, id string) bool {
	if id == "" {
		return false
	}
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
