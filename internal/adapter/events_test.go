package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

func newEventServer(t *testing.T, events ...models.ListEvent) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/todolists/5", r.URL.Path)

		conn, err := websocket.Accept(w, r, nil)
		if !assert.NoError(t, err) {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "")

		for _, e := range events {
			if !assert.NoError(t, wsjson.Write(r.Context(), conn, e)) {
				return
			}
		}
	}))
}

func TestNewEventListener_DerivesWSScheme(t *testing.T) {
	tests := []struct {
		name string
		http string
		ws   string
		want string
	}{
		{name: "from http", http: "http://localhost:8080", want: "ws://localhost:8080"},
		{name: "from https", http: "https://todo.example", want: "wss://todo.example"},
		{name: "explicit ws", http: "http://localhost:8080", ws: "ws://push:9000/", want: "ws://push:9000"},
		{name: "bare host", http: "localhost:8080", want: "ws://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewEventListener(tt.http, tt.ws, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.(*wsEventListener).baseURL)
		})
	}
}

func TestListen_DeliversEvents(t *testing.T) {
	srv := newEventServer(t,
		models.ListEvent{Event: models.EventToggleCompleteDone, ListID: 5},
		models.ListEvent{Event: models.EventToggleCompleteError, Error: "boom"},
	)
	defer srv.Close()

	l, err := NewEventListener(srv.URL, "", logger.Nop())
	require.NoError(t, err)

	var got []models.ListEvent
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = l.Listen(ctx, 5, func(e models.ListEvent) { got = append(got, e) })

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.EventToggleCompleteDone, got[0].Event)
	assert.Equal(t, models.ID(5), got[1].ListID)
	assert.Equal(t, "boom", got[1].Error)
}

func TestListen_DialError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := strings.Replace(srv.URL, "http", "ws", 1)
	srv.Close()

	l, err := NewEventListener(url, "", logger.Nop())
	require.NoError(t, err)

	err = l.Listen(context.Background(), 5, func(models.ListEvent) {})
	assert.Error(t, err)
}

// TestWatch_Reconnects verifies that Watch dials again after the server
// closes the connection.
func TestWatch_Reconnects(t *testing.T) {
	srv := newEventServer(t, models.ListEvent{Event: models.EventToggleCompleteDone, ListID: 5})
	defer srv.Close()

	l, err := NewEventListener(srv.URL, "", logger.Nop())
	require.NoError(t, err)
	l.(*wsEventListener).reconnectDelay = 5 * time.Millisecond

	events := make(chan models.ListEvent, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Watch(ctx, 5, func(e models.ListEvent) { events <- e })
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-events:
		case <-time.After(2 * time.Second):
			t.Fatalf("event %d not received", i)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
