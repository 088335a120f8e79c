package repository

import (
	"context"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// Override defines the data access interface for admin corrections and the
// materialized points table
type Override interface {
	UpsertCategoryOverride(ctx context.Context, o *domain.CategoryOverride) error
	DeleteCategoryOverride(ctx context.Context, contestantID string, episode int, category string) (bool, error)
	UpsertTotalOverride(ctx context.Context, o *domain.TotalOverride) error
	DeleteTotalOverride(ctx context.Context, contestantID string, episode int) (bool, error)

	ListCategoryOverrides(ctx context.Context) ([]domain.CategoryOverride, error)
	ListCategoryOverridesByEpisode(ctx context.Context, episode int) ([]domain.CategoryOverride, error)
	ListTotalOverrides(ctx context.Context) ([]domain.TotalOverride, error)
	ListTotalOverridesByEpisode(ctx context.Context, episode int) ([]domain.TotalOverride, error)

	// ClearEpisode removes both override kinds for one episode
	ClearEpisode(ctx context.Context, episode int) error
	// ClearAll removes every override and returns the episodes that had any
	ClearAll(ctx context.Context) ([]int, error)

	// ReplaceMaterialized makes rows the complete canonical set for the
	// episode in one transaction and records the episode as materialized
	ReplaceMaterialized(ctx context.Context, episode int, rows []domain.MaterializedPoints) error
	ListMaterialized(ctx context.Context) ([]domain.MaterializedPoints, error)
	ListMaterializedByEpisode(ctx context.Context, episode int) ([]domain.MaterializedPoints, error)
	ListMaterializedEpisodes(ctx context.Context) ([]int, error)
}
