package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"watchdate/internal/platform/config"
	"watchdate/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr     string
	mux      *chi.Mux
	srv      *stdhttp.Server
	shutdown time.Duration
}

// NewServer creates the http server reading API_PORT and SHUTDOWN_GRACE from cfg
// opts receive the *chi.Mux so callers can mount routes/mw
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("API_PORT", ":4000")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:     addr,
		mux:      m,
		shutdown: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Handler returns the root handler, handy for httptest
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Addr returns the listening address
func (s *Server) Addr() string { return s.addr }

// Run serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("http listening")
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Dur("grace", s.shutdown).Msg("http shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()
		return s.Shutdown(sctx)
	}
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
