package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/palavrapasse/import-web-api/internal/config"
	"github.com/palavrapasse/import-web-api/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:    cfg.Address(),
		Handler: handler,
	}
	// Only the header read is bounded; an import may legitimately keep the
	// connection open for a long time.
	if cfg.RequestTimeout > 0 {
		srv.ReadHeaderTimeout = cfg.RequestTimeout
	}

	return &httpServer{server: srv, logger: logger}
}

// serve accepts connections on ln until the server is shut down.
func (h *httpServer) serve(ln net.Listener) error {
	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")

	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server Serve")
		return err
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
		return err
	}
	return nil
}
