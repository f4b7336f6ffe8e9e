package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/zserge/o/pkg/vdom"
)

// tracerName identifies spans emitted around event dispatch.
const tracerName = "o"

// Config configures the live-session server.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string

	// Root builds the root descriptor for a new session.
	Root func() *vdom.VNode

	// Title is the page title of the HTML shell.
	Title string

	// Metrics exposes Prometheus metrics on /metrics when true.
	Metrics bool

	// Logger receives structured logs. Defaults to slog.Default().
	Logger *slog.Logger

	// ShutdownTimeout bounds graceful shutdown. Defaults to 5s.
	ShutdownTimeout time.Duration
}

// Server serves the HTML shell and the live WebSocket sessions.
type Server struct {
	cfg      Config
	log      *slog.Logger
	router   chi.Router
	upgrader websocket.Upgrader
	tracer   trace.Tracer
	metrics  *metrics
	http     *http.Server
}

// New creates a server for the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Root == nil {
		return nil, fmt.Errorf("server: Config.Root must be set")
	}
	if cfg.Addr == "" {
		return nil, fmt.Errorf("server: Config.Addr must be set")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	if cfg.Title == "" {
		cfg.Title = "o"
	}

	s := &Server{
		cfg:     cfg,
		log:     cfg.Logger,
		tracer:  otel.Tracer(tracerName),
		metrics: getMetrics(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}

	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/live", s.handleLive)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	s.router = r
	s.http = &http.Server{Addr: cfg.Addr, Handler: r}
	return s, nil
}

// Handler returns the HTTP handler, for mounting under another mux or for
// httptest servers.
func (s *Server) Handler() http.Handler { return s.router }

// Start listens on the configured address until ctx is canceled, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// handleIndex serves the HTML shell with the embedded thin client.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexPage, s.cfg.Title)
}

// handleLive upgrades to WebSocket and runs a session until the peer goes
// away.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "err", err)
		return
	}
	sess := newSession(s, conn)
	s.metrics.sessionsTotal.Inc()
	s.metrics.sessionsActive.Inc()
	defer s.metrics.sessionsActive.Dec()
	sess.run(r.Context())
}
