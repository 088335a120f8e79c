package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// PriceRepository implements repository.Price for PostgreSQL
type PriceRepository struct {
	db *pgxpool.Pool
}

// NewPriceRepository creates a new PriceRepository
func NewPriceRepository(db *pgxpool.Pool) *PriceRepository {
	return &PriceRepository{db: db}
}

const priceColumns = `contestant_id, episode, price, change`

// GetPrices returns one episode's price points ordered by contestant
func (r *PriceRepository) GetPrices(ctx context.Context, episode int) ([]domain.PricePoint, error) {
	rows, err := r.db.Query(ctx, `SELECT `+priceColumns+` FROM contestant_prices WHERE episode = $1 ORDER BY contestant_id`, episode)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	return scanPrices(rows)
}

// ListPrices returns the whole series ordered by episode then contestant
func (r *PriceRepository) ListPrices(ctx context.Context) ([]domain.PricePoint, error) {
	rows, err := r.db.Query(ctx, `SELECT `+priceColumns+` FROM contestant_prices ORDER BY episode, contestant_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	return scanPrices(rows)
}

func scanPrices(rows pgx.Rows) ([]domain.PricePoint, error) {
	defer rows.Close()

	var out []domain.PricePoint
	for rows.Next() {
		var p domain.PricePoint
		if err := rows.Scan(&p.ContestantID, &p.Episode, &p.Price, &p.Change); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}
	return out, nil
}

// SaveEpisodePrices replaces one episode's points
func (r *PriceRepository) SaveEpisodePrices(ctx context.Context, episode int, points []domain.PricePoint) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM contestant_prices WHERE episode = $1`, episode); err != nil {
			return fmt.Errorf("failed to delete prices: %w", err)
		}
		if err := insertPrices(ctx, tx, points); err != nil {
			return err
		}
		return nil
	})
}

// ReplacePrices deletes every episode >= fromEpisode and writes points
func (r *PriceRepository) ReplacePrices(ctx context.Context, fromEpisode int, points []domain.PricePoint) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM contestant_prices WHERE episode >= $1`, fromEpisode); err != nil {
			return fmt.Errorf("failed to delete prices: %w", err)
		}
		if err := insertPrices(ctx, tx, points); err != nil {
			return err
		}
		return nil
	})
}

func insertPrices(ctx context.Context, tx pgx.Tx, points []domain.PricePoint) error {
	if len(points) == 0 {
		return nil
	}
	rows := make([][]interface{}, 0, len(points))
	for _, p := range points {
		rows = append(rows, []interface{}{p.ContestantID, p.Episode, p.Price, p.Change})
	}
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"contestant_prices"},
		[]string{"contestant_id", "episode", "price", "change"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to insert prices: %w", err)
	}
	return nil
}
