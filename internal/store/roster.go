package store

import (
	"context"
	"time"

	"github.com/roach88/eventbot/internal/event"
)

// AddPlayer appends player to the event's roster.
//
// Returns false if the event does not exist or the player is already on the
// roster; neither case writes. Capacity (max_players) is not checked.
func (s *Store) AddPlayer(ctx context.Context, id string, player int64) (ok bool, err error) {
	start := time.Now()
	defer func() { s.observe(OpAddPlayer, start, ok, err) }()

	e, found, err := s.get(ctx, id)
	if err != nil || !found {
		return false, err
	}
	if e.HasPlayer(player) {
		return false, nil
	}

	players := make([]int64, 0, len(e.Players)+1)
	players = append(players, e.Players...)
	players = append(players, player)
	return s.update(ctx, id, event.NewPatch().SetPlayers(players), OpAddPlayer)
}

// RemovePlayer removes the first occurrence of player from the roster.
//
// Returns false if the event does not exist or the player is not on the
// roster; neither case writes.
func (s *Store) RemovePlayer(ctx context.Context, id string, player int64) (ok bool, err error) {
	start := time.Now()
	defer func() { s.observe(OpRemovePlayer, start, ok, err) }()

	e, found, err := s.get(ctx, id)
	if err != nil || !found {
		return false, err
	}

	players, removed := e.WithoutPlayer(player)
	if !removed {
		return false, nil
	}
	return s.update(ctx, id, event.NewPatch().SetPlayers(players), OpRemovePlayer)
}

// AddMediaFile appends path to the event's media list. Duplicates are kept.
// Returns false if the event does not exist.
func (s *Store) AddMediaFile(ctx context.Context, id, path string) (ok bool, err error) {
	start := time.Now()
	defer func() { s.observe(OpAddMediaFile, start, ok, err) }()

	e, found, err := s.get(ctx, id)
	if err != nil || !found {
		return false, err
	}

	files := make([]string, 0, len(e.MediaFiles)+1)
	files = append(files, e.MediaFiles...)
	files = append(files, path)
	return s.update(ctx, id, event.NewPatch().SetMediaFiles(files), OpAddMediaFile)
}
