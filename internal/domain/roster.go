package domain

import "time"

// TribeEntry is a user's claim on a contestant for a contiguous episode range.
// RemovedAt is nil while the contestant is still on the roster.
type TribeEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ContestantID string    `json:"contestant_id"`
	AddedAt      int       `json:"added_at_episode"`
	RemovedAt    *int      `json:"removed_at_episode,omitempty"`
	Wildcard     bool      `json:"wildcard"`
	CreatedAt    time.Time `json:"created_at"`
}

// CaptainAssignment names the contestant whose points are multiplied for a
// user in one episode
type CaptainAssignment struct {
	UserID       string `json:"user_id"`
	Episode      int    `json:"episode"`
	ContestantID string `json:"contestant_id"`
}

// User is a league participant
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Contestant is a player in the reality competition
type Contestant struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BasePrice    int64  `json:"base_price"`
	EliminatedAt *int   `json:"eliminated_at_episode,omitempty"`
}
