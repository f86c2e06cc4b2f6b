// Package server exposes the word-network pipeline over HTTP.
//
// Routes:
//
//	GET /healthz                    liveness and word count
//	GET /distance?a=&b=             edit distance of two words
//	GET /friends/{word}             friends within the loaded list
//	GET /network/{word}?degree=N    network of a word (format=json|text|dot|svg|png)
//
// Every response carries an X-Request-ID header. Errors are JSON objects with
// a machine-readable code from pkg/errors.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/levnet/pkg/pipeline"
)

// Options configures a Server.
type Options struct {
	// Words is the list every request is answered against.
	Words []string

	// MaxDegree bounds the degree query parameter; <= 0 means unbounded.
	MaxDegree int

	// Workers is passed through to the pipeline.
	Workers int

	Logger *log.Logger
}

// Server answers word-network queries.
type Server struct {
	runner *pipeline.Runner
	opts   Options
	router chi.Router
}

// New creates a server backed by runner. The runner's cache is shared by
// all requests.
func New(runner *pipeline.Runner, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = runner.Logger
	}
	s := &Server{runner: runner, opts: opts}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/distance", s.handleDistance)
	r.Get("/friends/{word}", s.handleFriends)
	r.Get("/network/{word}", s.handleNetwork)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound(r.URL.Path))
	})
	return r
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("listening", "addr", addr, "words", len(s.opts.Words))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.opts.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) pipelineOptions(r *http.Request) pipeline.Options {
	return pipeline.Options{
		Words:   s.opts.Words,
		Workers: s.opts.Workers,
		Logger:  loggerFrom(r.Context(), s.opts.Logger),
	}
}
