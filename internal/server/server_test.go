package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/handler"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/service"
	"github.com/palavrapasse/import-web-api/internal/workers"
)

type okHealthService struct{}

func (okHealthService) Check(context.Context) error { return nil }

func newTestServer(t *testing.T) *server {
	t.Helper()

	handlers, err := handler.NewHandlers(&service.Services{HealthService: okHealthService{}}, config.Uploads{}, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, &workers.Workers{}, config.Server{Host: "127.0.0.1", Port: 0}, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandler(t *testing.T) {
	srv, err := NewServer(nil, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandler)
	assert.Nil(t, srv)

	srv, err = NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandler)
	assert.Nil(t, srv)
}

func TestNewHTTPServer_ReadHeaderTimeout(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{Host: "localhost", Port: 8080, RequestTimeout: 5 * time.Second}, logger.Nop())
	assert.Equal(t, "localhost:8080", h.server.Addr)
	assert.Equal(t, 5*time.Second, h.server.ReadHeaderTimeout)

	h = newHTTPServer(http.NotFoundHandler(), config.Server{Port: 8080}, logger.Nop())
	assert.Zero(t, h.server.ReadHeaderTimeout)
}

func TestServer_Run_ServesUntilCancelled(t *testing.T) {
	srv := newTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + ln.Addr().String() + "/health")
	assert.Error(t, err)
}

func TestServer_RunServer_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := newTestServer(t)
	srv.address = ln.Addr().String()

	assert.Error(t, srv.RunServer(context.Background()))
}
