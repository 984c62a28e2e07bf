package store

import (
	"context"
	"time"

	"github.com/roach88/eventbot/internal/event"
)

// Create appends a new event built from the draft and persists the
// collection. The returned record is exactly what was written.
//
// The id comes from the configured event.IDGenerator, fed with the collection
// size before the append and the current time.
func (s *Store) Create(ctx context.Context, d event.Draft) (created event.Event, err error) {
	start := time.Now()
	defer func() { s.observe(OpCreate, start, true, err) }()

	events, err := s.load(ctx)
	if err != nil {
		return event.Event{}, err
	}

	now := s.clock.Now()
	e := d.Build(s.ids.Generate(len(events), now), now)

	events = append(events, e)
	if err := s.save(ctx, events); err != nil {
		return event.Event{}, err
	}

	s.logger.Debug("event created", "event_id", e.EventID, "creator_id", e.CreatorID)
	s.record(ctx, Mutation{Op: OpCreate, EventID: e.EventID, Event: ptr(e.Clone()), Count: len(events), At: now})
	return e, nil
}

// Get returns the event with the given id. ok is false if no event matches.
func (s *Store) Get(ctx context.Context, id string) (e event.Event, ok bool, err error) {
	start := time.Now()
	defer func() { s.observe(OpGet, start, ok, err) }()

	return s.get(ctx, id)
}

func (s *Store) get(ctx context.Context, id string) (event.Event, bool, error) {
	events, err := s.load(ctx)
	if err != nil {
		return event.Event{}, false, err
	}
	if i := indexOf(events, id); i >= 0 {
		return events[i], true, nil
	}
	return event.Event{}, false, nil
}

// GetByMessageID returns the first event, in collection order, whose
// message_id equals messageID. ok is false if none matches.
func (s *Store) GetByMessageID(ctx context.Context, messageID int64) (e event.Event, ok bool, err error) {
	start := time.Now()
	defer func() { s.observe(OpGetByMessageID, start, ok, err) }()

	events, err := s.load(ctx)
	if err != nil {
		return event.Event{}, false, err
	}
	for _, candidate := range events {
		if candidate.MessageID != nil && *candidate.MessageID == messageID {
			return candidate, true, nil
		}
	}
	return event.Event{}, false, nil
}

// Update merges the fields set in p into the event with the given id and
// persists the collection. Returns false without writing if the id is
// unknown. A nil or empty patch still rewrites the document.
func (s *Store) Update(ctx context.Context, id string, p *event.Patch) (ok bool, err error) {
	start := time.Now()
	defer func() { s.observe(OpUpdate, start, ok, err) }()

	return s.update(ctx, id, p, OpUpdate)
}

func (s *Store) update(ctx context.Context, id string, p *event.Patch, op string) (bool, error) {
	events, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	i := indexOf(events, id)
	if i < 0 {
		return false, nil
	}

	p.Apply(&events[i])
	if err := s.save(ctx, events); err != nil {
		return false, err
	}

	s.logger.Debug("event updated", "op", op, "event_id", id, "fields", p.Fields())
	s.record(ctx, Mutation{Op: op, EventID: id, Event: ptr(events[i].Clone()), Count: len(events), At: s.clock.Now()})
	return true, nil
}

// Delete removes the event with the given id. The document is rewritten only
// if something was removed.
func (s *Store) Delete(ctx context.Context, id string) (ok bool, err error) {
	start := time.Now()
	defer func() { s.observe(OpDelete, start, ok, err) }()

	events, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.EventID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) {
		return false, nil
	}

	if err := s.save(ctx, kept); err != nil {
		return false, err
	}

	s.logger.Debug("event deleted", "event_id", id)
	s.record(ctx, Mutation{Op: OpDelete, EventID: id, Count: len(kept), At: s.clock.Now()})
	return true, nil
}

// indexOf returns the position of the first event with the given id, or -1.
func indexOf(events []event.Event, id string) int {
	for i, e := range events {
		if e.EventID == id {
			return i
		}
	}
	return -1
}

func ptr[T any](v T) *T { return &v }
