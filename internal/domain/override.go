package domain

import "time"

// CategoryOverride replaces or injects one labeled point source for one
// (contestant, episode)
type CategoryOverride struct {
	ContestantID string    `json:"contestant_id"`
	Episode      int       `json:"episode"`
	Category     string    `json:"category"`
	Points       int       `json:"points"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TotalOverride replaces a contestant's whole episode total
type TotalOverride struct {
	ContestantID string    `json:"contestant_id"`
	Episode      int       `json:"episode"`
	Total        int       `json:"total"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MaterializedPoints is the canonical override-reconciled row for one
// (episode, contestant). It is a cache of override state and is always
// re-derivable from the override tables.
type MaterializedPoints struct {
	Episode        int            `json:"episode"`
	ContestantID   string         `json:"contestant_id"`
	TotalPoints    int            `json:"total_points"`
	Breakdown      map[string]int `json:"breakdown"`
	TotalOverride  *int           `json:"total_override,omitempty"`
	MaterializedAt time.Time      `json:"materialized_at"`
}

// PricePoint is a contestant's market price after an episode
type PricePoint struct {
	ContestantID string `json:"contestant_id"`
	Episode      int    `json:"episode"`
	Price        int64  `json:"price"`
	Change       int64  `json:"change"`
}
