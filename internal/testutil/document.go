// Package testutil provides helpers for tests that work with an events
// document on disk.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/eventbot/internal/event"
)

// DocumentName matches the store's document file name.
const DocumentName = "events.json"

// WriteRaw writes content verbatim as the events document in dir, creating
// dir if needed. Used to seed corrupt or hand-edited documents.
func WriteRaw(t testing.TB, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, DocumentName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// WriteEvents writes events as a well-formed document in dir.
func WriteEvents(t testing.TB, dir string, events ...event.Event) string {
	t.Helper()
	if events == nil {
		events = []event.Event{}
	}
	data, err := json.MarshalIndent(map[string][]event.Event{"events": events}, "", "  ")
	require.NoError(t, err)
	return WriteRaw(t, dir, string(data)+"\n")
}

// ReadEvents decodes the document in dir and fails the test if it is
// missing or malformed.
func ReadEvents(t testing.TB, dir string) []event.Event {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, DocumentName))
	require.NoError(t, err)

	var doc struct {
		Events []event.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc.Events
}
