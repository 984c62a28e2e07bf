package event

import "time"

// Timestamp layouts for created_at: local time, no zone suffix. The
// fraction is written only when the microseconds are non-zero.
const (
	CreatedAtLayout       = "2006-01-02T15:04:05.000000"
	CreatedAtSecondLayout = "2006-01-02T15:04:05"
)

// FormatCreatedAt renders t as a created_at value.
func FormatCreatedAt(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(CreatedAtSecondLayout)
	}
	return t.Format(CreatedAtLayout)
}

// Event is a single persisted event record.
type Event struct {
	EventID     string   `json:"event_id"`
	CreatorID   int64    `json:"creator_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	MaxPlayers  int      `json:"max_players"`
	Players     []int64  `json:"players"`
	CreatedAt   string   `json:"created_at"`
	EventDate   *string  `json:"event_date"`
	MediaFiles  []string `json:"media_files"`
	MessageID   *int64   `json:"message_id"`
	Autodelete  bool     `json:"autodelete"`
}

// FieldNames lists the JSON keys every stored record carries, in record
// order.
var FieldNames = []string{
	"event_id", "creator_id", "title", "description", "max_players", "players",
	"created_at", "event_date", "media_files", "message_id", "autodelete",
}

// Draft holds the caller-supplied fields of a new event.
// Autodelete defaults to true when nil.
type Draft struct {
	CreatorID   int64
	Title       string
	Description string
	MaxPlayers  int
	EventDate   *string
	MessageID   *int64
	Autodelete  *bool
}

// Build materializes a draft into a full record with the given id and
// creation time. Title and description are NFC-normalized.
func (d Draft) Build(id string, createdAt time.Time) Event {
	autodelete := true
	if d.Autodelete != nil {
		autodelete = *d.Autodelete
	}
	return Event{
		EventID:     id,
		CreatorID:   d.CreatorID,
		Title:       NormalizeText(d.Title),
		Description: NormalizeText(d.Description),
		MaxPlayers:  d.MaxPlayers,
		Players:     []int64{},
		CreatedAt:   FormatCreatedAt(createdAt),
		EventDate:   copyString(d.EventDate),
		MediaFiles:  []string{},
		MessageID:   copyInt64(d.MessageID),
		Autodelete:  autodelete,
	}
}

// HasPlayer reports whether id is on the roster.
func (e Event) HasPlayer(id int64) bool {
	return e.playerIndex(id) >= 0
}

func (e Event) playerIndex(id int64) int {
	for i, p := range e.Players {
		if p == id {
			return i
		}
	}
	return -1
}

// WithoutPlayer returns a copy of the roster with the first occurrence of id
// removed, and whether anything was removed.
func (e Event) WithoutPlayer(id int64) ([]int64, bool) {
	i := e.playerIndex(id)
	if i < 0 {
		return e.Players, false
	}
	out := make([]int64, 0, len(e.Players)-1)
	out = append(out, e.Players[:i]...)
	out = append(out, e.Players[i+1:]...)
	return out, true
}

// Clone returns a deep copy of the event.
func (e Event) Clone() Event {
	c := e
	if e.Players != nil {
		c.Players = append([]int64{}, e.Players...)
	}
	if e.MediaFiles != nil {
		c.MediaFiles = append([]string{}, e.MediaFiles...)
	}
	c.EventDate = copyString(e.EventDate)
	c.MessageID = copyInt64(e.MessageID)
	return c
}

// Bool returns a pointer to b. Convenience for Draft.Autodelete.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s.
func String(s string) *string { return &s }

// Int64 returns a pointer to n.
func Int64(n int64) *int64 { return &n }

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyInt64(n *int64) *int64 {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}
