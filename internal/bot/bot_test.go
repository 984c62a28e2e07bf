package bot

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	chatID int64
	text   string
	calls  int
	err    error
}

func (r *recordingNotifier) Notify(_ context.Context, chatID int64, text string) error {
	r.calls++
	r.chatID = chatID
	r.text = text
	return r.err
}

func TestPing(t *testing.T) {
	assert.Equal(t, "Pong!", Ping())
}

func TestStartupMessage(t *testing.T) {
	at := time.Date(2025, 11, 20, 18, 30, 15, 0, time.UTC)
	assert.Equal(t, "Bot started successfully at 2025-11-20 18:30:15", StartupMessage(at))
}

func TestAnnounceStartup(t *testing.T) {
	at := time.Date(2025, 11, 20, 18, 30, 15, 0, time.UTC)

	t.Run("sends_to_admin", func(t *testing.T) {
		n := &recordingNotifier{}
		sent, err := AnnounceStartup(context.Background(), n, 42, at)
		require.NoError(t, err)
		assert.True(t, sent)
		assert.Equal(t, int64(42), n.chatID)
		assert.Equal(t, StartupMessage(at), n.text)
	})

	t.Run("no_admin_is_noop", func(t *testing.T) {
		n := &recordingNotifier{}
		sent, err := AnnounceStartup(context.Background(), n, 0, at)
		require.NoError(t, err)
		assert.False(t, sent)
		assert.Zero(t, n.calls)
	})

	t.Run("notifier_error", func(t *testing.T) {
		n := &recordingNotifier{err: errors.New("offline")}
		sent, err := AnnounceStartup(context.Background(), n, 42, at)
		require.Error(t, err)
		assert.False(t, sent)
		assert.Contains(t, err.Error(), "announce startup")
	})
}

func TestTelegramNotifier_Success(t *testing.T) {
	var chatID, text, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.NoError(t, r.ParseForm())
		chatID = r.PostForm.Get("chat_id")
		text = r.PostForm.Get("text")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"},"text":"hello"}}`))
	}))
	defer srv.Close()

	n := NewTelegramNotifier("TOKEN", srv.URL+"/", srv.Client())
	require.NoError(t, n.Notify(context.Background(), 42, "hello"))

	assert.Equal(t, "/botTOKEN/sendMessage", path)
	assert.Equal(t, "42", chatID)
	assert.Equal(t, "hello", text)
}

func TestTelegramNotifier_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	n := NewTelegramNotifier("TOKEN", srv.URL, srv.Client())
	err := n.Notify(context.Background(), 42, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "chat not found")
}

func TestTelegramNotifier_HonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := NewTelegramNotifier("TOKEN", srv.URL, srv.Client())
	err := n.Notify(ctx, 42, "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTelegramNotifier_TransportErrorRedactsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	n := NewTelegramNotifier("SECRET123", url, nil)
	err := n.Notify(context.Background(), 42, "hello")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET123")
}

func TestNewTelegramNotifier_Defaults(t *testing.T) {
	n := NewTelegramNotifier("t", "", nil)
	assert.Equal(t, "https://api.telegram.org", n.apiBase)
	assert.Equal(t, DefaultTimeout, n.client.Timeout)
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := LogNotifier{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	require.NoError(t, n.Notify(context.Background(), 7, "Bot started"))
	assert.Contains(t, buf.String(), "chat_id=7")
	assert.Contains(t, buf.String(), `text="Bot started"`)
}
