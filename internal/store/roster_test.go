package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPlayer(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	e := createTestEvent(t, s, "Test Event")

	ok, err := s.AddPlayer(ctx, e.EventID, 99999)
	require.NoError(t, err)
	assert.True(t, ok)

	got, _, err := s.Get(ctx, e.EventID)
	require.NoError(t, err)
	assert.Equal(t, []int64{99999}, got.Players)
}

func TestAddPlayer_Duplicate(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	e := createTestEvent(t, s, "Test Event")

	ok, err := s.AddPlayer(ctx, e.EventID, 99999)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.AddPlayer(ctx, e.EventID, 99999)
	require.NoError(t, err)
	assert.False(t, ok)

	got, _, err := s.Get(ctx, e.EventID)
	require.NoError(t, err)
	assert.Equal(t, []int64{99999}, got.Players)
}

func TestAddPlayer_IgnoresCapacity(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	e := createTestEvent(t, s, "Tiny") // max_players = 5

	for p := int64(1); p <= 7; p++ {
		ok, err := s.AddPlayer(ctx, e.EventID, p)
		require.NoError(t, err)
		require.True(t, ok)
	}

	got, _, err := s.Get(ctx, e.EventID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7}, got.Players)
}

func TestAddPlayer_EventNotFound(t *testing.T) {
	s := createTestStore(t)

	ok, err := s.AddPlayer(context.Background(), "nonexistent_id", 99999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemovePlayer(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	e := createTestEvent(t, s, "Test Event")

	ok, err := s.AddPlayer(ctx, e.EventID, 99999)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.RemovePlayer(ctx, e.EventID, 99999)
	require.NoError(t, err)
	assert.True(t, ok)

	got, _, err := s.Get(ctx, e.EventID)
	require.NoError(t, err)
	assert.Empty(t, got.Players)
	assert.NotNil(t, got.Players, "roster stays an empty list, not null")
}

func TestRemovePlayer_KeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	e := createTestEvent(t, s, "Test Event")

	for _, p := range []int64{1, 2, 3} {
		_, err := s.AddPlayer(ctx, e.EventID, p)
		require.NoError(t, err)
	}

	ok, err := s.RemovePlayer(ctx, e.EventID, 2)
	require.NoError(t, err)
	require.True(t, ok)

	got, _, err := s.Get(ctx, e.EventID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, got.Players)
}

func TestRemovePlayer_NotInEvent(t *testing.T) {
	s := createTestStore(t)
	e := createTestEvent(t, s, "Test Event")

	ok, err := s.RemovePlayer(context.Background(), e.EventID, 99999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemovePlayer_EventNotFound(t *testing.T) {
	s := createTestStore(t)

	ok, err := s.RemovePlayer(context.Background(), "nonexistent_id", 99999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddMediaFile(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	e := createTestEvent(t, s, "Test Event")

	ok, err := s.AddMediaFile(ctx, e.EventID, "data/media/test.jpg")
	require.NoError(t, err)
	assert.True(t, ok)

	got, _, err := s.Get(ctx, e.EventID)
	require.NoError(t, err)
	assert.Equal(t, []string{"data/media/test.jpg"}, got.MediaFiles)
}

func TestAddMediaFile_OrderAndDuplicates(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	e := createTestEvent(t, s, "Test Event")

	for _, path := range []string{"a.jpg", "b.png", "a.jpg"} {
		ok, err := s.AddMediaFile(ctx, e.EventID, path)
		require.NoError(t, err)
		require.True(t, ok)
	}

	got, _, err := s.Get(ctx, e.EventID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.png", "a.jpg"}, got.MediaFiles)
}

func TestAddMediaFile_EventNotFound(t *testing.T) {
	s := createTestStore(t)

	ok, err := s.AddMediaFile(context.Background(), "nonexistent_id", "data/media/test.jpg")
	require.NoError(t, err)
	assert.False(t, ok)
}
