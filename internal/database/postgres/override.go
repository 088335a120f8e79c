package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// OverrideRepository implements repository.Override for PostgreSQL
type OverrideRepository struct {
	db *pgxpool.Pool
}

// NewOverrideRepository creates a new OverrideRepository
func NewOverrideRepository(db *pgxpool.Pool) *OverrideRepository {
	return &OverrideRepository{db: db}
}

// UpsertCategoryOverride writes one category override
func (r *OverrideRepository) UpsertCategoryOverride(ctx context.Context, o *domain.CategoryOverride) error {
	query := `
		INSERT INTO category_overrides (contestant_id, episode, category, points, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (contestant_id, episode, category) DO UPDATE
		SET points = EXCLUDED.points, updated_at = NOW()
		RETURNING updated_at
	`
	if err := r.db.QueryRow(ctx, query, o.ContestantID, o.Episode, o.Category, o.Points).Scan(&o.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert category override: %w", err)
	}
	return nil
}

// DeleteCategoryOverride removes one category override and reports whether it existed
func (r *OverrideRepository) DeleteCategoryOverride(ctx context.Context, contestantID string, episode int, category string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM category_overrides WHERE contestant_id = $1 AND episode = $2 AND category = $3`,
		contestantID, episode, category)
	if err != nil {
		return false, fmt.Errorf("failed to delete category override: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpsertTotalOverride writes one total override
func (r *OverrideRepository) UpsertTotalOverride(ctx context.Context, o *domain.TotalOverride) error {
	query := `
		INSERT INTO total_overrides (contestant_id, episode, total, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (contestant_id, episode) DO UPDATE
		SET total = EXCLUDED.total, updated_at = NOW()
		RETURNING updated_at
	`
	if err := r.db.QueryRow(ctx, query, o.ContestantID, o.Episode, o.Total).Scan(&o.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert total override: %w", err)
	}
	return nil
}

// DeleteTotalOverride removes one total override and reports whether it existed
func (r *OverrideRepository) DeleteTotalOverride(ctx context.Context, contestantID string, episode int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM total_overrides WHERE contestant_id = $1 AND episode = $2`,
		contestantID, episode)
	if err != nil {
		return false, fmt.Errorf("failed to delete total override: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

const categoryOverrideColumns = `contestant_id, episode, category, points, updated_at`

// ListCategoryOverrides returns every category override
func (r *OverrideRepository) ListCategoryOverrides(ctx context.Context) ([]domain.CategoryOverride, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryOverrideColumns+` FROM category_overrides ORDER BY episode, contestant_id, category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category overrides: %w", err)
	}
	return scanCategoryOverrides(rows)
}

// ListCategoryOverridesByEpisode returns one episode's category overrides
func (r *OverrideRepository) ListCategoryOverridesByEpisode(ctx context.Context, episode int) ([]domain.CategoryOverride, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryOverrideColumns+` FROM category_overrides WHERE episode = $1 ORDER BY contestant_id, category`, episode)
	if err != nil {
		return nil, fmt.Errorf("failed to query category overrides: %w", err)
	}
	return scanCategoryOverrides(rows)
}

func scanCategoryOverrides(rows pgx.Rows) ([]domain.CategoryOverride, error) {
	defer rows.Close()

	var out []domain.CategoryOverride
	for rows.Next() {
		var o domain.CategoryOverride
		if err := rows.Scan(&o.ContestantID, &o.Episode, &o.Category, &o.Points, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category override: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}
	return out, nil
}

const totalOverrideColumns = `contestant_id, episode, total, updated_at`

// ListTotalOverrides returns every total override
func (r *OverrideRepository) ListTotalOverrides(ctx context.Context) ([]domain.TotalOverride, error) {
	rows, err := r.db.Query(ctx, `SELECT `+totalOverrideColumns+` FROM total_overrides ORDER BY episode, contestant_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query total overrides: %w", err)
	}
	return scanTotalOverrides(rows)
}

// ListTotalOverridesByEpisode returns one episode's total overrides
func (r *OverrideRepository) ListTotalOverridesByEpisode(ctx context.Context, episode int) ([]domain.TotalOverride, error) {
	rows, err := r.db.Query(ctx, `SELECT `+totalOverrideColumns+` FROM total_overrides WHERE episode = $1 ORDER BY contestant_id`, episode)
	if err != nil {
		return nil, fmt.Errorf("failed to query total overrides: %w", err)
	}
	return scanTotalOverrides(rows)
}

func scanTotalOverrides(rows pgx.Rows) ([]domain.TotalOverride, error) {
	defer rows.Close()

	var out []domain.TotalOverride
	for rows.Next() {
		var o domain.TotalOverride
		if err := rows.Scan(&o.ContestantID, &o.Episode, &o.Total, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan total override: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}
	return out, nil
}

// ClearEpisode removes both override kinds for one episode
func (r *OverrideRepository) ClearEpisode(ctx context.Context, episode int) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM category_overrides WHERE episode = $1`, episode); err != nil {
			return fmt.Errorf("failed to clear category overrides: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM total_overrides WHERE episode = $1`, episode); err != nil {
			return fmt.Errorf("failed to clear total overrides: %w", err)
		}
		return nil
	})
}

// ClearAll removes every override and returns the episodes that had any
func (r *OverrideRepository) ClearAll(ctx context.Context) ([]int, error) {
	query := `
		WITH c AS (DELETE FROM category_overrides RETURNING episode),
		     t AS (DELETE FROM total_overrides RETURNING episode)
		SELECT DISTINCT episode FROM (SELECT episode FROM c UNION SELECT episode FROM t) e
		ORDER BY episode
	`
	var episodes []int
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to clear overrides: %w", err)
		}
		if episodes, err = pgx.CollectRows(rows, pgx.RowTo[int]); err != nil {
			return fmt.Errorf("failed to clear overrides: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return episodes, nil
}

// ReplaceMaterialized makes the episode's canonical rows equal rows and
// records the episode in the materialization log. A transaction-scoped
// advisory lock on the episode serializes writers across app instances.
func (r *OverrideRepository) ReplaceMaterialized(ctx context.Context, episode int, rows []domain.MaterializedPoints) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, advisoryLockMaterialize, episode); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgAdvisoryLock, err)
		}

		keep := make([]string, 0, len(rows))
		for _, row := range rows {
			keep = append(keep, row.ContestantID)
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM materialized_points WHERE episode = $1 AND NOT (contestant_id = ANY($2))`,
			episode, keep); err != nil {
			return fmt.Errorf("failed to delete stale materialized rows: %w", err)
		}

		batch := &pgx.Batch{}
		for _, row := range rows {
			breakdown, err := json.Marshal(row.Breakdown)
			if err != nil {
				return fmt.Errorf("failed to encode breakdown: %w", err)
			}
			batch.Queue(`
				INSERT INTO materialized_points (episode, contestant_id, total_points, breakdown, total_override, materialized_at)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (episode, contestant_id) DO UPDATE
				SET total_points = EXCLUDED.total_points,
				    breakdown = EXCLUDED.breakdown,
				    total_override = EXCLUDED.total_override,
				    materialized_at = EXCLUDED.materialized_at`,
				episode, row.ContestantID, row.TotalPoints, breakdown, int4(row.TotalOverride), row.MaterializedAt)
		}
		batch.Queue(`
			INSERT INTO materialization_log (episode, row_count, materialized_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (episode) DO UPDATE
			SET row_count = EXCLUDED.row_count, materialized_at = NOW()`,
			episode, len(rows))

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to write materialized rows: %w", err)
		}
		return nil
	})
}

const materializedColumns = `episode, contestant_id, total_points, breakdown, total_override, materialized_at`

// ListMaterialized returns every canonical row
func (r *OverrideRepository) ListMaterialized(ctx context.Context) ([]domain.MaterializedPoints, error) {
	rows, err := r.db.Query(ctx, `SELECT `+materializedColumns+` FROM materialized_points ORDER BY episode, contestant_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query materialized rows: %w", err)
	}
	return scanMaterialized(rows)
}

// ListMaterializedByEpisode returns one episode's canonical rows
func (r *OverrideRepository) ListMaterializedByEpisode(ctx context.Context, episode int) ([]domain.MaterializedPoints, error) {
	rows, err := r.db.Query(ctx, `SELECT `+materializedColumns+` FROM materialized_points WHERE episode = $1 ORDER BY contestant_id`, episode)
	if err != nil {
		return nil, fmt.Errorf("failed to query materialized rows: %w", err)
	}
	return scanMaterialized(rows)
}

func scanMaterialized(rows pgx.Rows) ([]domain.MaterializedPoints, error) {
	defer rows.Close()

	var out []domain.MaterializedPoints
	for rows.Next() {
		var m domain.MaterializedPoints
		var raw []byte
		var totalOverride pgtype.Int4
		if err := rows.Scan(&m.Episode, &m.ContestantID, &m.TotalPoints, &raw, &totalOverride, &m.MaterializedAt); err != nil {
			return nil, fmt.Errorf("failed to scan materialized row: %w", err)
		}
		if err := json.Unmarshal(raw, &m.Breakdown); err != nil {
			return nil, fmt.Errorf("failed to decode breakdown: %w", err)
		}
		m.TotalOverride = ptrInt(totalOverride)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}
	return out, nil
}

// ListMaterializedEpisodes returns every episode that has been materialized
func (r *OverrideRepository) ListMaterializedEpisodes(ctx context.Context) ([]int, error) {
	rows, err := r.db.Query(ctx, `SELECT episode FROM materialization_log ORDER BY episode`)
	if err != nil {
		return nil, fmt.Errorf("failed to query materialization log: %w", err)
	}
	episodes, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}
	return episodes, nil
}
