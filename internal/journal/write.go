package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/eventbot/internal/store"
)

// Record appends a committed mutation. Implements store.Journal.
//
// The snapshot column is NULL when the mutation carries no record
// (delete, save_all).
func (j *Journal) Record(ctx context.Context, m store.Mutation) error {
	var snapshot sql.NullString
	if m.Event != nil {
		data, err := json.Marshal(m.Event)
		if err != nil {
			return fmt.Errorf("record mutation: marshal snapshot: %w", err)
		}
		snapshot = sql.NullString{String: string(data), Valid: true}
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO mutations
		(op, event_id, snapshot, collection_size, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		m.Op,
		m.EventID,
		snapshot,
		m.Count,
		m.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record mutation: %w", err)
	}

	return nil
}

var _ store.Journal = (*Journal)(nil)
