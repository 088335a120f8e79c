package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// SeasonRepository implements repository.Season for PostgreSQL
type SeasonRepository struct {
	db *pgxpool.Pool
}

// NewSeasonRepository creates a new SeasonRepository
func NewSeasonRepository(db *pgxpool.Pool) *SeasonRepository {
	return &SeasonRepository{db: db}
}

// ListOutcomes returns every recorded outcome in episode order
func (r *SeasonRepository) ListOutcomes(ctx context.Context) ([]domain.EpisodeOutcome, error) {
	rows, err := r.db.Query(ctx, `SELECT outcome FROM episode_outcomes ORDER BY episode`)
	if err != nil {
		return nil, fmt.Errorf("failed to query outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []domain.EpisodeOutcome
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan outcome: %w", err)
		}
		var o domain.EpisodeOutcome
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, fmt.Errorf("failed to decode outcome: %w", err)
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}
	return outcomes, nil
}

// GetOutcome returns the outcome for an episode, or nil when none is recorded
func (r *SeasonRepository) GetOutcome(ctx context.Context, episode int) (*domain.EpisodeOutcome, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT outcome FROM episode_outcomes WHERE episode = $1`, episode).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get outcome: %w", err)
	}

	var o domain.EpisodeOutcome
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("failed to decode outcome: %w", err)
	}
	return &o, nil
}

// UpsertOutcome records or replaces the outcome for its episode
func (r *SeasonRepository) UpsertOutcome(ctx context.Context, outcome *domain.EpisodeOutcome) error {
	raw, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to encode outcome: %w", err)
	}

	query := `
		INSERT INTO episode_outcomes (episode, phase, outcome, recorded_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (episode) DO UPDATE
		SET phase = EXCLUDED.phase, outcome = EXCLUDED.outcome, recorded_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, outcome.Episode, string(outcome.Phase), raw); err != nil {
		return fmt.Errorf("failed to upsert outcome: %w", err)
	}
	return nil
}

// ListContestants returns every contestant ordered by id
func (r *SeasonRepository) ListContestants(ctx context.Context) ([]domain.Contestant, error) {
	query := `
		SELECT contestant_id, name, base_price, eliminated_at_episode
		FROM contestants
		ORDER BY contestant_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contestants: %w", err)
	}
	defer rows.Close()

	var contestants []domain.Contestant
	for rows.Next() {
		var c domain.Contestant
		var eliminated pgtype.Int4
		if err := rows.Scan(&c.ID, &c.Name, &c.BasePrice, &eliminated); err != nil {
			return nil, fmt.Errorf("failed to scan contestant: %w", err)
		}
		c.EliminatedAt = ptrInt(eliminated)
		contestants = append(contestants, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}
	return contestants, nil
}

// GetContestant returns a contestant, or nil when unknown
func (r *SeasonRepository) GetContestant(ctx context.Context, contestantID string) (*domain.Contestant, error) {
	query := `
		SELECT contestant_id, name, base_price, eliminated_at_episode
		FROM contestants
		WHERE contestant_id = $1
	`
	var c domain.Contestant
	var eliminated pgtype.Int4
	err := r.db.QueryRow(ctx, query, contestantID).Scan(&c.ID, &c.Name, &c.BasePrice, &eliminated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contestant: %w", err)
	}
	c.EliminatedAt = ptrInt(eliminated)
	return &c, nil
}

// GetScoringConfig returns the latest scoring config version, or nil when none exists
func (r *SeasonRepository) GetScoringConfig(ctx context.Context) (*domain.ScoringConfig, error) {
	var cfg domain.ScoringConfig
	version, found, err := r.latestConfig(ctx, "scoring_configs", &cfg)
	if err != nil || !found {
		return nil, err
	}
	cfg.Version = version
	return &cfg, nil
}

// SaveScoringConfig appends a new scoring config version and returns it
func (r *SeasonRepository) SaveScoringConfig(ctx context.Context, cfg *domain.ScoringConfig) (int, error) {
	version, err := r.appendConfig(ctx, "scoring_configs", cfg)
	if err != nil {
		return 0, err
	}
	cfg.Version = version
	return version, nil
}

// GetBPSConfig returns the latest BPS config version, or nil when none exists
func (r *SeasonRepository) GetBPSConfig(ctx context.Context) (*domain.BPSConfig, error) {
	var cfg domain.BPSConfig
	version, found, err := r.latestConfig(ctx, "bps_configs", &cfg)
	if err != nil || !found {
		return nil, err
	}
	cfg.Version = version
	return &cfg, nil
}

// SaveBPSConfig appends a new BPS config version and returns it
func (r *SeasonRepository) SaveBPSConfig(ctx context.Context, cfg *domain.BPSConfig) (int, error) {
	version, err := r.appendConfig(ctx, "bps_configs", cfg)
	if err != nil {
		return 0, err
	}
	cfg.Version = version
	return version, nil
}

// latestConfig decodes the highest version row of table into dst.
// table is always one of the package's own constants.
func (r *SeasonRepository) latestConfig(ctx context.Context, table string, dst interface{}) (int, bool, error) {
	query := fmt.Sprintf(`SELECT version, config FROM %s ORDER BY version DESC LIMIT 1`, table)

	var version int
	var raw []byte
	err := r.db.QueryRow(ctx, query).Scan(&version, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get %s: %w", table, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return 0, false, fmt.Errorf("failed to decode %s: %w", table, err)
	}
	return version, true, nil
}

func (r *SeasonRepository) appendConfig(ctx context.Context, table string, cfg interface{}) (int, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("failed to encode config: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (config) VALUES ($1) RETURNING version`, table)
	var version int
	if err := r.db.QueryRow(ctx, query, raw).Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to save %s: %w", table, err)
	}
	return version, nil
}
