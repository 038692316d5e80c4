package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

type httpServer struct {
	server *http.Server

	// base is the parent of every request context. It is cancelled on
	// shutdown so long-lived event streams end instead of holding the drain.
	base       context.Context
	cancelBase context.CancelFunc

	mu       sync.Mutex
	listener net.Listener
	ready    chan struct{}

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.ClientServer, logger *logger.Logger) *httpServer {
	base, cancel := context.WithCancel(context.Background())

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
			BaseContext:       func(net.Listener) context.Context { return base },
		},
		base:       base,
		cancelBase: cancel,
		ready:      make(chan struct{}),
		logger:     logger,
	}
}

func (h *httpServer) RunServer() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("HTTP server listen on %s: %w", h.server.Addr, err)
	}

	h.mu.Lock()
	h.listener = ln
	h.mu.Unlock()
	close(h.ready)

	h.logger.Info().Str("func", "httpServer.RunServer").Str("address", ln.Addr().String()).Msg("control API listening")
	if err = h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

// Addr returns the bound address once the listener is open.
func (h *httpServer) Addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.cancelBase()
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}
