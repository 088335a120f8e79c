package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TribalScore_Go/internal/repository"
)

// EventLogRepository implements repository.EventLog for PostgreSQL
type EventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new EventLogRepository
func NewEventLogRepository(db *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{db: db}
}

const eventLogColumns = `id, event_type, episode, payload, metadata, created_at`

// LogEvent stores an event
func (r *EventLogRepository) LogEvent(ctx context.Context, eventType string, episode *int, payload, metadata map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("failed to encode event metadata: %w", err)
		}
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO event_log (event_type, episode, payload, metadata)
		VALUES ($1, $2, $3, $4)`,
		eventType, episode, payloadJSON, metadataJSON)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetEvents retrieves events matching filter, newest first
func (r *EventLogRepository) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT ` + eventLogColumns + ` FROM event_log WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.EventType != nil {
		fmt.Fprintf(&qb, " AND event_type = $%d", argNum)
		args = append(args, *filter.EventType)
		argNum++
	}
	if filter.Episode != nil {
		fmt.Fprintf(&qb, " AND episode = $%d", argNum)
		args = append(args, *filter.Episode)
		argNum++
	}
	if filter.Since != nil {
		fmt.Fprintf(&qb, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	qb.WriteString(" ORDER BY created_at DESC, id DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&qb, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return scanEvents(rows)
}

// CleanupOldEvents removes events older than the specified number of days
func (r *EventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	result, err := r.db.Exec(ctx, `
		DELETE FROM event_log
		WHERE created_at < NOW() - INTERVAL '1 day' * $1`, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("failed to delete events: %w", err)
	}
	return result.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]repository.EventLogEntry, error) {
	defer rows.Close()

	var events []repository.EventLogEntry
	for rows.Next() {
		var evt repository.EventLogEntry
		var payloadJSON, metadataJSON []byte

		if err := rows.Scan(&evt.ID, &evt.EventType, &evt.Episode, &payloadJSON, &metadataJSON, &evt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, fmt.Errorf("failed to decode event payload: %w", err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode event metadata: %w", err)
			}
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}
	return events, nil
}
