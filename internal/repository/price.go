package repository

import (
	"context"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// Price defines the data access interface for the derived price series
type Price interface {
	GetPrices(ctx context.Context, episode int) ([]domain.PricePoint, error)
	ListPrices(ctx context.Context) ([]domain.PricePoint, error)
	// SaveEpisodePrices upserts one episode's points
	SaveEpisodePrices(ctx context.Context, episode int, points []domain.PricePoint) error
	// ReplacePrices deletes every episode >= fromEpisode and writes points
	ReplacePrices(ctx context.Context, fromEpisode int, points []domain.PricePoint) error
}
