package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/eventbot/internal/event"
)

func TestWriteEvents_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	e := event.Draft{CreatorID: 1, Title: "Chess", MaxPlayers: 2}.Build("event_1_100", time.Date(2025, 11, 20, 18, 30, 15, 0, time.UTC))

	path := WriteEvents(t, dir, e)
	assert.Equal(t, filepath.Join(dir, DocumentName), path)

	got := ReadEvents(t, dir)
	require.Len(t, got, 1)
	assert.Equal(t, e, got[0])
}

func TestWriteEvents_Empty(t *testing.T) {
	dir := t.TempDir()
	WriteEvents(t, dir)

	data, err := os.ReadFile(filepath.Join(dir, DocumentName))
	require.NoError(t, err)
	assert.JSONEq(t, `{"events": []}`, string(data))
	assert.Empty(t, ReadEvents(t, dir))
}

func TestWriteRaw(t *testing.T) {
	dir := t.TempDir()
	WriteRaw(t, dir, "{not json")

	data, err := os.ReadFile(filepath.Join(dir, DocumentName))
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}
