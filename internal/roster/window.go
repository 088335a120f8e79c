// Package roster aggregates a user's roster entries into per-contestant
// point histories and a team total.
package roster

import "github.com/osse101/TribalScore_Go/internal/domain"

// OnRoster reports whether the entry covers the episode. Both ends of the
// window are inclusive.
func OnRoster(e domain.TribeEntry, episode int) bool {
	if episode < e.AddedAt {
		return false
	}
	return e.RemovedAt == nil || *e.RemovedAt >= episode
}

// IsAddition reports whether the entry was added through a transfer window
// and therefore carries the add penalty
func IsAddition(e domain.TribeEntry) bool {
	return e.AddedAt > 1
}
