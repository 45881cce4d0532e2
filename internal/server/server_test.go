package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	handlerhttp "github.com/MKhiriev/go-todo-keeper/internal/handler/http"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/notify"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

type countingRunner struct {
	started atomic.Int32
	stopped chan struct{}
}

func (r *countingRunner) Run(ctx context.Context) {
	r.started.Add(1)
	go func() {
		<-ctx.Done()
		close(r.stopped)
	}()
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func testHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: handlerhttp.NewHandler(&service.Services{}, notify.NewHub(logger.Nop()), nil, logger.Nop()),
	}
}

func TestNewServer_NoHTTPAddress(t *testing.T) {
	s, err := NewServer(testHandlers(), nil, &config.ServerConfig{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoHandler(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, nil, &config.ServerConfig{HTTPAddress: ":0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServer_RunServesUntilContextDone(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: freeAddress(t), RequestTimeout: time.Second}
	runner := &countingRunner{stopped: make(chan struct{})}

	srv, err := NewServer(testHandlers(), runner, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	<-runner.stopped
	assert.Equal(t, int32(1), runner.started.Load())
}

func TestServer_RunWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.Error(t, s.run(context.Background()))
}
