package store

import (
	"context"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/eventbot/internal/event"
)

// TestDocumentLayout pins the on-disk format. To regenerate:
//
//	go test ./internal/store -run TestDocumentLayout -update
func TestDocumentLayout(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	e, err := s.Create(ctx, event.Draft{
		CreatorID:   12345,
		Title:       "D&D Session",
		Description: "Lost Mines of Phandelver",
		MaxPlayers:  5,
		EventDate:   event.String("2025-12-01T19:00:00"),
		MessageID:   event.Int64(99999),
	})
	require.NoError(t, err)

	_, err = s.AddPlayer(ctx, e.EventID, 42)
	require.NoError(t, err)
	_, err = s.AddMediaFile(ctx, e.EventID, "data/media/map.png")
	require.NoError(t, err)

	_, err = s.Create(ctx, event.Draft{
		CreatorID:   67890,
		Title:       "Board games",
		Description: "",
		MaxPlayers:  4,
		Autodelete:  event.Bool(false),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "document", data)
}
