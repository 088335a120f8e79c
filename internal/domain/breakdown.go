package domain

// PointSource is one labeled contribution to an episode total
type PointSource struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// EpisodeBreakdown is a contestant's point sources for one episode. It is
// derived data and can always be regenerated from the upstream inputs.
type EpisodeBreakdown struct {
	Episode   int           `json:"episode"`
	Total     int           `json:"total"`
	Sources   []PointSource `json:"sources"`
	IsCaptain bool          `json:"is_captain,omitempty"`
}

// Recompute sets Total to the sum of Sources and returns it
func (b *EpisodeBreakdown) Recompute() int {
	total := 0
	for _, s := range b.Sources {
		total += s.Points
	}
	b.Total = total
	return total
}

// Source returns the points for label and whether it is present
func (b EpisodeBreakdown) Source(label string) (int, bool) {
	for _, s := range b.Sources {
		if s.Label == label {
			return s.Points, true
		}
	}
	return 0, false
}

// Add appends a source when points is non-zero
func (b *EpisodeBreakdown) Add(label string, points int) {
	if points == 0 {
		return
	}
	b.Sources = append(b.Sources, PointSource{Label: label, Points: points})
	b.Total += points
}

// Clone returns a deep copy
func (b EpisodeBreakdown) Clone() EpisodeBreakdown {
	out := b
	out.Sources = append([]PointSource(nil), b.Sources...)
	return out
}

// ContestantSummary is a contestant's point history across episodes
type ContestantSummary struct {
	ContestantID string             `json:"contestant_id"`
	OnRoster     bool               `json:"on_roster"`
	Episodes     []EpisodeBreakdown `json:"episodes"`
	Total        int                `json:"total"`
}

// Recompute sets Total to the sum of episode totals and returns it
func (s *ContestantSummary) Recompute() int {
	total := 0
	for i := range s.Episodes {
		total += s.Episodes[i].Total
	}
	s.Total = total
	return total
}

// TeamScore is a user's aggregated result. AddPenalty is charged at team level
// only and never appears inside a contestant breakdown.
type TeamScore struct {
	UserID      string              `json:"user_id"`
	Total       int                 `json:"total"`
	AddPenalty  int                 `json:"add_penalty"`
	EventTotals map[string]int      `json:"event_totals"`
	Contestants []ContestantSummary `json:"contestants"`
}

// UserStanding is one leaderboard row
type UserStanding struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Total    int    `json:"total"`
}
