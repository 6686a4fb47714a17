// Package server exposes the calendar page, poster images and background snapshots over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"golang.org/x/text/language"

	"github.com/lixenwraith/wallcal/calendar"
	"github.com/lixenwraith/wallcal/core"
	"github.com/lixenwraith/wallcal/render"
)

// Options configures a Server
type Options struct {
	Addr            string
	BaseURL         string       // empty derives scheme and host from each request
	Language        language.Tag // fallback when the request expresses no preference
	ShutdownTimeout time.Duration
	Palette         calendar.Palette
	Background      render.RGB
	Snapshot        SnapshotLimits
	Logger          *log.Logger
	Now             func() time.Time
}

// SnapshotLimits bounds background renders
type SnapshotLimits struct {
	Width, Height int
	PixelRatio    float64
	MaxFrames     int
}

// Server serves the wallcal HTTP API
type Server struct {
	opts    Options
	logger  *log.Logger
	handler http.Handler
}

// New creates a server; zero options fall back to working defaults
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Language == language.Und {
		opts.Language = calendar.Languages[0]
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if opts.Snapshot.PixelRatio <= 0 {
		opts.Snapshot.PixelRatio = 0.25
	}
	if opts.Snapshot.Width <= 0 || opts.Snapshot.Height <= 0 {
		opts.Snapshot.Width, opts.Snapshot.Height = 1024, 768
	}
	if (opts.Palette == calendar.Palette{}) {
		opts.Palette = calendar.DefaultPalette
	}

	s := &Server{opts: opts, logger: opts.Logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/link", s.handleLink)
	mux.HandleFunc("GET /api/background.png", s.handleBackground)

	s.handler = s.logRequests(mux)
	return s
}

// Handler returns the routed handler with request logging
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts on ln until ctx is cancelled, then drains in-flight requests
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          s.logger,
	}

	errc := make(chan error, 1)
	core.Go(func() { errc <- srv.Serve(ln) })
	s.logger.Printf("server: listening on %s", ln.Addr())

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	s.logger.Printf("server: stopped")
	return nil
}

// statusRecorder captures the response code for the access log
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		s.logger.Printf("http: %s %s %d %dB %v", r.Method, r.URL.RequestURI(), rec.status, rec.bytes, time.Since(start).Round(time.Microsecond))
	})
}
