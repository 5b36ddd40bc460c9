// Package server exposes the render pipeline over HTTP.
//
// Endpoints:
//
//	GET /v1/render?viz=parliament&format=svg&dataset=<name>
//	GET /healthz
//
// Every response carries an X-Request-ID header. Errors are returned as
// JSON with the pkg/errors code, mapped to an HTTP status.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/ballotviz/ballotviz/pkg/config"
	"github.com/ballotviz/ballotviz/pkg/errors"
	"github.com/ballotviz/ballotviz/pkg/pipeline"
)

// Server serves rendered visualizations from a dataset directory.
type Server struct {
	runner     *pipeline.Runner
	cfg        config.Config
	datasetDir string
	logger     *log.Logger
	httpServer *http.Server
}

// New creates a server. The runner must not be nil; a nil logger falls
// back to the default logger.
func New(runner *pipeline.Runner, cfg config.Config, datasetDir, addr string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:     runner,
		cfg:        cfg,
		datasetDir: datasetDir,
		logger:     logger,
	}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Router builds the chi router with middleware. Exposed separately so
// tests can drive it with httptest.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/v1/render", s.handleRender)
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.httpServer.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}

	opts := pipeline.Options{
		Dir:     s.datasetDir,
		Dataset: q.Get("dataset"),
		VizType: q.Get("viz"),
		Formats: []string{format},
		Legend:  q.Get("legend") == "true",
		Arrows:  q.Get("arrows") == "true",
		Colors:  s.cfg.Parties,
		Width:   s.cfg.Viewport.Width,
		Height:  s.cfg.Viewport.Height,
		Padding: s.cfg.Viewport.Padding,

		RowCount:    s.cfg.Layout.RowCount,
		InnerRadius: s.cfg.Layout.InnerRadius,
		OuterRadius: s.cfg.Layout.OuterRadius,
		AreaDivisor: s.cfg.Layout.AreaDivisor,

		Logger: s.logger,
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if result.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

func contentType(format string) string {
	if format == pipeline.FormatJSON {
		return "application/json; charset=utf-8"
	}
	return "image/svg+xml; charset=utf-8"
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	s.logger.Error("request failed",
		"path", r.URL.Path,
		"status", status,
		"code", errors.GetCode(err),
		"err", err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:     errors.UserMessage(err),
		Code:      string(errors.GetCode(err)),
		RequestID: w.Header().Get(requestIDHeader),
	})
}

// statusForError maps error codes onto HTTP statuses. Empty datasets are
// well-formed requests over unusable data, hence 422.
func statusForError(err error) int {
	code := errors.GetCode(err)
	switch {
	case code == errors.ErrCodeEmptyDataset:
		return http.StatusUnprocessableEntity
	case code == errors.ErrCodeNotFound || code == errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case strings.HasPrefix(string(code), "INVALID_"):
		return http.StatusBadRequest
	case code == errors.ErrCodeAllocationMismatch || code == errors.ErrCodeDuplicateCell:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
