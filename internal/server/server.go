// Package server exposes the visualizer over HTTP: an HTML form and a JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rcliao/bsearch-viz/internal/parse"
	"github.com/rcliao/bsearch-viz/internal/store"
)

// Options configures the server.
type Options struct {
	Addr   string
	Parse  parse.Options
	Logger *zap.Logger
	// Lessons is optional; without it lesson lookups answer 404.
	Lessons store.Store
	// Seed fixes the random list generator, 0 seeds from the clock.
	Seed int64
}

// Server is the HTTP front end.
type Server struct {
	opts Options
	h    *handlers
	mux  *chi.Mux
}

// New builds the router.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Parse.Delimiter == "" {
		opts.Parse = parse.DefaultOptions()
	}

	h := newHandlers(opts)
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(accessLog(opts.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/", h.page)
	r.Get("/healthz", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Post("/search", h.search)
		r.Get("/random", h.random)
		r.Get("/lessons", h.lessons)
		r.Get("/lessons/{name}", h.lesson)
	})

	return &Server{opts: opts, h: h, mux: r}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("listening", zap.String("addr", s.opts.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		s.opts.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
