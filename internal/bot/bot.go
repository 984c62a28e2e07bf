// Package bot holds the chat-facing shim around the event store: the ping
// reply, the startup announcement and the notifiers that deliver it.
package bot

import (
	"context"
	"fmt"
	"time"
)

// StartupLayout formats the time in the startup announcement.
const StartupLayout = "2006-01-02 15:04:05"

// Ping returns the reply to the ping command.
func Ping() string {
	return "Pong!"
}

// StartupMessage returns the text sent to the operator when the bot starts.
func StartupMessage(at time.Time) string {
	return fmt.Sprintf("Bot started successfully at %s", at.Format(StartupLayout))
}

// Notifier delivers a text message to a chat.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

// AnnounceStartup sends the startup message to adminID. It is a no-op when
// adminID is zero. Returns whether a message was sent.
func AnnounceStartup(ctx context.Context, n Notifier, adminID int64, at time.Time) (bool, error) {
	if adminID == 0 {
		return false, nil
	}
	if err := n.Notify(ctx, adminID, StartupMessage(at)); err != nil {
		return false, fmt.Errorf("announce startup: %w", err)
	}
	return true, nil
}
