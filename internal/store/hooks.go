package store

import (
	"context"
	"time"

	"github.com/roach88/eventbot/internal/event"
)

// Operation names used for journal entries and metrics labels.
const (
	OpLoadAll        = "load_all"
	OpSaveAll        = "save_all"
	OpCreate         = "create"
	OpGet            = "get"
	OpGetByMessageID = "get_by_message_id"
	OpUpdate         = "update"
	OpDelete         = "delete"
	OpList           = "list"
	OpAddPlayer      = "add_player"
	OpRemovePlayer   = "remove_player"
	OpAddMediaFile   = "add_media_file"
)

// Operation results reported to a Recorder.
const (
	ResultOK    = "ok"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Mutation describes one committed write.
type Mutation struct {
	// Op is one of the mutating Op* constants.
	Op string

	// EventID is empty for OpSaveAll.
	EventID string

	// Event is the record after the write; nil for OpDelete and OpSaveAll.
	Event *event.Event

	// Count is the collection size after the write.
	Count int

	At time.Time
}

// Journal receives committed mutations. A Record failure is logged and does
// not fail the store operation that produced it.
type Journal interface {
	Record(ctx context.Context, m Mutation) error
}

// Recorder observes operation outcomes.
type Recorder interface {
	Observe(op, result string, elapsed time.Duration)
}

// observe reports an operation outcome to the recorder, if any.
// found=false with a nil error reports a miss.
func (s *Store) observe(op string, start time.Time, found bool, err error) {
	if s.recorder == nil {
		return
	}
	result := ResultOK
	switch {
	case err != nil:
		result = ResultError
	case !found:
		result = ResultMiss
	}
	s.recorder.Observe(op, result, time.Since(start))
}

// record hands a mutation to the journal, if any.
func (s *Store) record(ctx context.Context, m Mutation) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, m); err != nil {
		s.logger.Warn("journal record failed", "op", m.Op, "event_id", m.EventID, "error", err)
	}
}
