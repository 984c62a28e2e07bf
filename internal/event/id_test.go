package event

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceGenerator_Format(t *testing.T) {
	now := time.Unix(1764615600, 0)
	assert.Equal(t, "event_1_1764615600", SequenceGenerator{}.Generate(0, now))
	assert.Equal(t, "event_4_1764615600", SequenceGenerator{}.Generate(3, now))
}

func TestSequenceGenerator_CollidesAfterDeleteInSameSecond(t *testing.T) {
	// Known weakness: same collection size at the same second yields the same id.
	now := time.Unix(1764615600, 0)
	gen := SequenceGenerator{}
	assert.Equal(t, gen.Generate(2, now), gen.Generate(2, now))
}

func TestUUIDv7Generator_Unique(t *testing.T) {
	gen := UUIDv7Generator{}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.Generate(0, time.Time{})
		require.True(t, strings.HasPrefix(id, "event_"))
		assert.Len(t, id, len("event_")+36)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestFixedGenerator(t *testing.T) {
	gen := NewFixedGenerator("a", "b")
	assert.Equal(t, "a", gen.Generate(0, time.Time{}))
	assert.Equal(t, "b", gen.Generate(0, time.Time{}))
	assert.Panics(t, func() { gen.Generate(0, time.Time{}) })
}

func TestGeneratorFor(t *testing.T) {
	tests := []struct {
		scheme  string
		want    IDGenerator
		wantErr bool
	}{
		{"", SequenceGenerator{}, false},
		{"sequence", SequenceGenerator{}, false},
		{"uuid", UUIDv7Generator{}, false},
		{"ulid", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			gen, err := GeneratorFor(tt.scheme)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown id scheme")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, gen)
		})
	}
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	c := NewFixedClock(start)
	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now())

	s := NewSteppingClock(start, time.Second)
	assert.Equal(t, start, s.Now())
	assert.Equal(t, start.Add(time.Second), s.Now())
}
