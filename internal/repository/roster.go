package repository

import (
	"context"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// Roster defines read access to users, their tribe entries and captain picks. The
// standings service loads whole-season snapshots, so there are no per-user reads.
type Roster interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListEntries(ctx context.Context) ([]domain.TribeEntry, error)
	ListCaptains(ctx context.Context) ([]domain.CaptainAssignment, error)
}
