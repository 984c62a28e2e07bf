package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/eventbot/internal/event"
)

func TestJournal_RecordsEachMutation(t *testing.T) {
	ctx := context.Background()
	j := &memJournal{}
	s := createTestStore(t, WithJournal(j))

	e := createTestEvent(t, s, "A")
	_, err := s.AddPlayer(ctx, e.EventID, 1)
	require.NoError(t, err)
	_, err = s.AddPlayer(ctx, e.EventID, 1) // duplicate, no write
	require.NoError(t, err)
	_, err = s.RemovePlayer(ctx, e.EventID, 1)
	require.NoError(t, err)
	_, err = s.AddMediaFile(ctx, e.EventID, "a.jpg")
	require.NoError(t, err)
	_, err = s.Update(ctx, e.EventID, event.NewPatch().SetTitle("B"))
	require.NoError(t, err)
	_, err = s.Delete(ctx, e.EventID)
	require.NoError(t, err)
	require.NoError(t, s.SaveAll(ctx, nil))

	assert.Equal(t, []string{
		OpCreate, OpAddPlayer, OpRemovePlayer, OpAddMediaFile, OpUpdate, OpDelete, OpSaveAll,
	}, j.ops())

	created := j.entries[0]
	require.NotNil(t, created.Event)
	assert.Equal(t, e, *created.Event)
	assert.Equal(t, 1, created.Count)

	media := j.entries[3]
	require.NotNil(t, media.Event)
	assert.Equal(t, []string{"a.jpg"}, media.Event.MediaFiles)

	deleted := j.entries[5]
	assert.Nil(t, deleted.Event)
	assert.Equal(t, e.EventID, deleted.EventID)
	assert.Equal(t, 0, deleted.Count)
}

func TestJournal_FailureDoesNotFailOperation(t *testing.T) {
	j := &memJournal{err: errors.New("disk full")}
	s := createTestStore(t, WithJournal(j))

	e, err := s.Create(context.Background(), event.Draft{Title: "A"})
	require.NoError(t, err)
	assert.NotEmpty(t, e.EventID)
}

func TestJournal_SnapshotIsolatedFromCaller(t *testing.T) {
	j := &memJournal{}
	s := createTestStore(t, WithJournal(j))

	e := createTestEvent(t, s, "A")
	e.Players = append(e.Players, 5)

	assert.Empty(t, j.entries[0].Event.Players)
}

func TestRecorder_Results(t *testing.T) {
	ctx := context.Background()
	r := newMemRecorder()
	s := createTestStore(t, WithRecorder(r))

	e := createTestEvent(t, s, "A")
	_, _, err := s.Get(ctx, e.EventID)
	require.NoError(t, err)
	_, _, err = s.Get(ctx, "missing")
	require.NoError(t, err)
	_, err = s.AddPlayer(ctx, e.EventID, 1)
	require.NoError(t, err)
	_, err = s.AddPlayer(ctx, e.EventID, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, r.count("create/ok"))
	assert.Equal(t, 1, r.count("get/ok"))
	assert.Equal(t, 1, r.count("get/miss"))
	assert.Equal(t, 1, r.count("add_player/ok"))
	assert.Equal(t, 1, r.count("add_player/miss"))
	assert.Equal(t, 0, r.count("update/ok"), "roster writes are not counted as update")
}

func TestRecorder_Error(t *testing.T) {
	r := newMemRecorder()
	s := createTestStore(t, WithRecorder(r))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.LoadAll(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, r.count("load_all/error"))
}
