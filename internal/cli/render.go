package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/eventbot/internal/event"
	"github.com/roach88/eventbot/internal/journal"
)

// eventView renders one event. JSON output uses the stored field names.
type eventView event.Event

func (v eventView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", v.EventID, v.Title)
	row := func(label, value string) {
		fmt.Fprintf(&b, "  %-12s %s\n", label+":", value)
	}
	row("description", v.Description)
	row("creator", strconv.FormatInt(v.CreatorID, 10))
	row("players", fmt.Sprintf("%d/%d %s", len(v.Players), v.MaxPlayers, joinInts(v.Players)))
	row("date", optString(v.EventDate))
	row("message", optInt(v.MessageID))
	row("media", strings.Join(v.MediaFiles, ", "))
	row("created", v.CreatedAt)
	row("autodelete", strconv.FormatBool(v.Autodelete))
	return strings.TrimRight(b.String(), "\n")
}

// eventListView renders a collection, one line per event.
type eventListView []event.Event

func (v eventListView) String() string {
	if len(v) == 0 {
		return "No events."
	}
	var b strings.Builder
	for i, e := range v {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %-24s %d/%d  %s", e.EventID, e.Title, len(e.Players), e.MaxPlayers, optString(e.EventDate))
	}
	return strings.TrimRight(b.String(), " ")
}

// historyView renders journal entries.
type historyView []journal.Entry

func (v historyView) String() string {
	if len(v) == 0 {
		return "No history."
	}
	var b strings.Builder
	for i, e := range v {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%4d  %s  %-15s", e.Seq, e.At.Format("2006-01-02 15:04:05"), e.Op)
		if e.Event != nil {
			fmt.Fprintf(&b, " players=%s media=%d", joinInts(e.Event.Players), len(e.Event.MediaFiles))
		}
	}
	return b.String()
}

// messageView is a plain text result with a JSON shape.
type messageView struct {
	Message string `json:"message"`
	EventID string `json:"event_id,omitempty"`
}

func (v messageView) String() string { return v.Message }

func joinInts(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func optString(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func optInt(n *int64) string {
	if n == nil {
		return "-"
	}
	return strconv.FormatInt(*n, 10)
}
