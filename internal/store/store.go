package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/roach88/eventbot/internal/event"
)

// File layout inside the data directory.
const (
	DocumentName = "events.json"
	MediaDirName = "media"
)

// Store provides durable storage for event records in a single JSON document.
//
// A Store holds no event state between calls; it is safe to share across
// goroutines only in the sense that each call is independent. Concurrent
// mutations lose updates.
type Store struct {
	dir      string
	path     string
	mediaDir string

	clock    event.Clock
	ids      event.IDGenerator
	journal  Journal
	recorder Recorder
	logger   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the creation-time source (default: event.SystemClock).
func WithClock(c event.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithIDGenerator overrides the id generator (default: event.SequenceGenerator).
func WithIDGenerator(g event.IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithJournal attaches a mutation journal.
func WithJournal(j Journal) Option {
	return func(s *Store) { s.journal = j }
}

// WithRecorder attaches an operation recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Store) { s.recorder = r }
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open binds a store to a data directory. Nothing is created on disk until
// the first operation; see EnsureInitialized.
func Open(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("open store: data directory is required")
	}

	s := &Store{
		dir:      dir,
		path:     filepath.Join(dir, DocumentName),
		mediaDir: filepath.Join(dir, MediaDirName),
		clock:    event.SystemClock{},
		ids:      event.SequenceGenerator{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the location of the JSON document.
func (s *Store) Path() string { return s.path }

// MediaDir returns the directory reserved for attachment files.
func (s *Store) MediaDir() string { return s.mediaDir }

// document is the on-disk shape.
type document struct {
	Events []event.Event `json:"events"`
}

// EnsureInitialized creates the data and media directories and, if the
// document is absent, writes an empty collection.
// This function is idempotent.
func (s *Store) EnsureInitialized(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, dir := range []string{s.dir, s.mediaDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &StorageError{Op: "mkdir", Path: dir, Err: err}
		}
	}

	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &StorageError{Op: "stat", Path: s.path, Err: err}
	}

	s.logger.Debug("initializing event document", "path", s.path)
	return s.writeDocument(nil)
}

// LoadAll returns the full collection in storage order.
func (s *Store) LoadAll(ctx context.Context) (events []event.Event, err error) {
	start := time.Now()
	defer func() { s.observe(OpLoadAll, start, true, err) }()

	return s.load(ctx)
}

// SaveAll overwrites the document with the given collection.
// Last writer wins; the write is not atomic.
func (s *Store) SaveAll(ctx context.Context, events []event.Event) (err error) {
	start := time.Now()
	defer func() { s.observe(OpSaveAll, start, true, err) }()

	if err := s.save(ctx, events); err != nil {
		return err
	}
	s.record(ctx, Mutation{Op: OpSaveAll, Count: len(events), At: s.clock.Now()})
	return nil
}

// List returns the full unfiltered collection. Equivalent to LoadAll.
func (s *Store) List(ctx context.Context) (events []event.Event, err error) {
	start := time.Now()
	defer func() { s.observe(OpList, start, true, err) }()

	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) ([]event.Event, error) {
	if err := s.EnsureInitialized(ctx); err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", &StorageError{Op: "read", Path: s.path, Err: err})
	}

	events, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("load events: %w: %s: %v", ErrCorrupt, s.path, err)
	}
	return events, nil
}

// decodeDocument parses the document and checks that every record carries
// every field. A document without an "events" key is an empty collection.
func decodeDocument(data []byte) ([]event.Event, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}
	if top == nil {
		return nil, errors.New("document is not an object")
	}

	raw, ok := top["events"]
	if !ok {
		return []event.Event{}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("events: %w", err)
	}
	if records == nil {
		return nil, errors.New("events is not a list")
	}

	events := make([]event.Event, 0, len(records))
	for i, rec := range records {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(rec, &fields); err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
		if fields == nil {
			return nil, fmt.Errorf("events[%d]: record is not an object", i)
		}
		for _, name := range event.FieldNames {
			if _, ok := fields[name]; !ok {
				return nil, fmt.Errorf("events[%d]: missing %q", i, name)
			}
		}

		var e event.Event
		if err := json.Unmarshal(rec, &e); err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
		if e.EventID == "" || e.CreatedAt == "" {
			return nil, fmt.Errorf("events[%d]: empty event_id or created_at", i)
		}
		if e.Players == nil || e.MediaFiles == nil {
			return nil, fmt.Errorf("events[%d]: players and media_files must be lists", i)
		}
		events = append(events, e)
	}
	return events, nil
}

func (s *Store) save(ctx context.Context, events []event.Event) error {
	if err := s.EnsureInitialized(ctx); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	if err := s.writeDocument(events); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	return nil
}

// writeDocument truncates and rewrites the document.
func (s *Store) writeDocument(events []event.Event) error {
	if events == nil {
		events = []event.Event{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Events: events}); err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}
