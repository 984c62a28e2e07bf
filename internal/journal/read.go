package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/eventbot/internal/event"
)

// Entry is one journal row.
type Entry struct {
	Seq     int64        `json:"seq"`
	Op      string       `json:"op"`
	EventID string       `json:"event_id,omitempty"`
	Event   *event.Event `json:"event,omitempty"`
	Count   int          `json:"collection_size"`
	At      time.Time    `json:"recorded_at"`
}

// History returns every mutation recorded for an event id, oldest first.
//
// Returns an empty slice (not nil) if the event has no entries.
func (j *Journal) History(ctx context.Context, eventID string) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT seq, op, event_id, snapshot, collection_size, recorded_at
		FROM mutations
		WHERE event_id = ?
		ORDER BY seq ASC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Entries returns the most recent limit entries, oldest first.
// A limit <= 0 returns the whole log.
func (j *Journal) Entries(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT seq, op, event_id, snapshot, collection_size, recorded_at
		FROM mutations
		ORDER BY seq ASC
	`
	args := []any{}
	if limit > 0 {
		query = `
			SELECT seq, op, event_id, snapshot, collection_size, recorded_at
			FROM (SELECT * FROM mutations ORDER BY seq DESC LIMIT ?)
			ORDER BY seq ASC
		`
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var (
		e          Entry
		snapshot   sql.NullString
		recordedAt string
	)
	if err := rows.Scan(&e.Seq, &e.Op, &e.EventID, &snapshot, &e.Count, &recordedAt); err != nil {
		return Entry{}, fmt.Errorf("scan entry: %w", err)
	}

	at, err := time.Parse(time.RFC3339Nano, recordedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d: parse recorded_at: %w", e.Seq, err)
	}
	e.At = at

	if snapshot.Valid {
		var ev event.Event
		if err := json.Unmarshal([]byte(snapshot.String), &ev); err != nil {
			return Entry{}, fmt.Errorf("entry %d: decode snapshot: %w", e.Seq, err)
		}
		e.Event = &ev
	}

	return e, nil
}
