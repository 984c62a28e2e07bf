package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// DefaultTimeout bounds each Bot API request.
const DefaultTimeout = 60 * time.Second

// DefaultAPIBase is the public Bot API host.
const DefaultAPIBase = "https://api.telegram.org"

// TelegramNotifier sends messages through the Telegram Bot API sendMessage
// method.
type TelegramNotifier struct {
	token   string
	apiBase string
	client  *http.Client
}

// NewTelegramNotifier creates a notifier for the given bot token.
// apiBase defaults to DefaultAPIBase when empty. No request is made until
// Notify is called.
func NewTelegramNotifier(token, apiBase string, client *http.Client) *TelegramNotifier {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &TelegramNotifier{
		token:   token,
		apiBase: strings.TrimRight(apiBase, "/"),
		client:  client,
	}
}

// botAPI builds a client bound to ctx. tgbotapi.NewBotAPI would call getMe
// first, which a one-shot notification does not need.
func (n *TelegramNotifier) botAPI(ctx context.Context) *tgbotapi.BotAPI {
	api := &tgbotapi.BotAPI{
		Token:  n.token,
		Client: contextClient{ctx: ctx, client: n.client},
	}
	api.SetAPIEndpoint(n.apiBase + "/bot%s/%s")
	return api
}

// Notify implements Notifier.
func (n *TelegramNotifier) Notify(ctx context.Context, chatID int64, text string) error {
	if _, err := n.botAPI(ctx).Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		var apiErr *tgbotapi.Error
		if errors.As(err, &apiErr) {
			return fmt.Errorf("sendMessage: status %d: %s", apiErr.Code, apiErr.Message)
		}
		// The request URL carries the token; never echo it.
		return fmt.Errorf("sendMessage: %w", redact(err, n.token))
	}
	return nil
}

// contextClient attaches ctx to every request; tgbotapi builds requests
// without one.
type contextClient struct {
	ctx    context.Context
	client *http.Client
}

func (c contextClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req.WithContext(c.ctx))
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redact(err error, token string) error {
	if token == "" {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), token, "<token>"), err: err}
}

// LogNotifier writes notifications to a logger instead of a chat. Used when
// no bot token is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify implements Notifier.
func (n LogNotifier) Notify(_ context.Context, chatID int64, text string) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("notification", "chat_id", chatID, "text", text)
	return nil
}
