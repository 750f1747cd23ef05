// Package server exposes the fan-out pipeline and the layout store over
// HTTP. Routes:
//
//	POST /v1/fanout        run the pipeline on an inline device
//	GET  /v1/layouts/{id}  fetch a stored layout
//	GET  /v1/pads          list the available pad prototypes
//	GET  /healthz          liveness probe
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dominauta/padring/pkg/pipeline"
	"github.com/dominauta/padring/pkg/store"
)

// Config carries the server collaborators. Store may be nil; layouts are
// then computed but not persisted, and the layouts route always 404s.
type Config struct {
	Addr   string
	Runner *pipeline.Runner
	Store  store.Store
	Logger *log.Logger
}

// Server is the HTTP front end of the pipeline.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	http   *http.Server
}

// New builds the server and its route table.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	st := cfg.Store
	if st == nil {
		st = store.NullStore{}
	}

	s := &Server{
		runner: cfg.Runner,
		store:  st,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/fanout", s.handleFanout)
		r.Get("/layouts/{id}", s.handleGetLayout)
		r.Get("/pads", s.handleListPads)
	})

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the route table, mostly for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// ListenAndServe blocks until the context is cancelled or the listener
// fails, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// logRequests logs one line per request with the chi request ID.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
