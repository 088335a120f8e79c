package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TribalScore_Go/internal/domain"
)

// RosterRepository implements repository.Roster for PostgreSQL
type RosterRepository struct {
	db *pgxpool.Pool
}

// NewRosterRepository creates a new RosterRepository
func NewRosterRepository(db *pgxpool.Pool) *RosterRepository {
	return &RosterRepository{db: db}
}

// ListUsers returns every league user
func (r *RosterRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id, username FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}
	return users, nil
}

const entryColumns = `entry_id::text, user_id, contestant_id, added_at_episode, removed_at_episode, wildcard, created_at`

// ListEntries returns every tribe entry
func (r *RosterRepository) ListEntries(ctx context.Context) ([]domain.TribeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM tribe_entries ORDER BY user_id, added_at_episode, entry_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tribe entries: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]domain.TribeEntry, error) {
	defer rows.Close()

	var entries []domain.TribeEntry
	for rows.Next() {
		var e domain.TribeEntry
		var removed pgtype.Int4
		if err := rows.Scan(&e.ID, &e.UserID, &e.ContestantID, &e.AddedAt, &removed, &e.Wildcard, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tribe entry: %w", err)
		}
		e.RemovedAt = ptrInt(removed)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}
	return entries, nil
}

// ListCaptains returns every captain assignment
func (r *RosterRepository) ListCaptains(ctx context.Context) ([]domain.CaptainAssignment, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id, episode, contestant_id FROM captains ORDER BY user_id, episode`)
	if err != nil {
		return nil, fmt.Errorf("failed to query captains: %w", err)
	}
	return scanCaptains(rows)
}

func scanCaptains(rows pgx.Rows) ([]domain.CaptainAssignment, error) {
	defer rows.Close()

	var captains []domain.CaptainAssignment
	for rows.Next() {
		var c domain.CaptainAssignment
		if err := rows.Scan(&c.UserID, &c.Episode, &c.ContestantID); err != nil {
			return nil, fmt.Errorf("failed to scan captain: %w", err)
		}
		captains = append(captains, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}
	return captains, nil
}
