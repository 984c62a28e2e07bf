package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/roach88/eventbot/internal/event"
)

// testTime is 2025-11-20T18:30:15Z, unix 1763663415.
var testTime = time.Date(2025, 11, 20, 18, 30, 15, 0, time.UTC)

// createTestStore creates a store rooted in a fresh temp directory with a
// frozen clock.
func createTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithClock(event.NewFixedClock(testTime))}, opts...)
	s, err := Open(t.TempDir(), opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return s
}

// createTestEvent creates an event with minimal required fields.
func createTestEvent(t *testing.T, s *Store, title string) event.Event {
	t.Helper()
	e, err := s.Create(context.Background(), event.Draft{
		CreatorID:   12345,
		Title:       title,
		Description: "Test",
		MaxPlayers:  5,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	return e
}

// memJournal collects mutations in memory.
type memJournal struct {
	mu      sync.Mutex
	entries []Mutation
	err     error
}

func (j *memJournal) Record(_ context.Context, m Mutation) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, m)
	return nil
}

func (j *memJournal) ops() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.entries))
	for i, m := range j.entries {
		out[i] = m.Op
	}
	return out
}

// memRecorder counts observations by "op/result".
type memRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func newMemRecorder() *memRecorder {
	return &memRecorder{counts: make(map[string]int)}
}

func (r *memRecorder) Observe(op, result string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[op+"/"+result]++
}

func (r *memRecorder) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[key]
}
