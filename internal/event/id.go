package event

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces event ids.
//
// count is the size of the collection before the new event is appended;
// now is the creation time.
type IDGenerator interface {
	Generate(count int, now time.Time) string
}

// SequenceGenerator builds ids of the form "event_<count+1>_<unix seconds>".
//
// Ids are only unique under a single sequential writer: deleting an event and
// creating another within the same second can reproduce an earlier id.
//
// Thread-safety: SequenceGenerator is stateless and safe for concurrent use.
type SequenceGenerator struct{}

// Generate implements IDGenerator.
func (SequenceGenerator) Generate(count int, now time.Time) string {
	return fmt.Sprintf("event_%d_%d", count+1, now.Unix())
}

// UUIDv7Generator builds ids of the form "event_<uuidv7>".
//
// UUIDv7 embeds a millisecond timestamp in its high bits, so ids still sort
// by creation time while staying unique across writers.
type UUIDv7Generator struct{}

// Generate implements IDGenerator. Panics if the random source fails.
func (UUIDv7Generator) Generate(int, time.Time) string {
	return "event_" + uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined ids for testing.
//
// Thread-safety: FixedGenerator is safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined id.
// Panics when all ids have been consumed.
func (g *FixedGenerator) Generate(int, time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic(fmt.Sprintf("FixedGenerator exhausted: all %d ids consumed", len(g.ids)))
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

// Id scheme names accepted by GeneratorFor.
const (
	SchemeSequence = "sequence"
	SchemeUUID     = "uuid"
)

// GeneratorFor returns the generator for a configured scheme name.
func GeneratorFor(scheme string) (IDGenerator, error) {
	switch scheme {
	case "", SchemeSequence:
		return SequenceGenerator{}, nil
	case SchemeUUID:
		return UUIDv7Generator{}, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", scheme)
	}
}
