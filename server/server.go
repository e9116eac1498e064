// Package server exposes path searches over HTTP.
//
// Routes:
//
//	POST /api/search            run one search (JSON body, see searchRequest)
//	GET  /api/heuristics        list heuristics
//	GET  /api/profiles          list search profiles
//	GET  /api/profiles/{name}   show one profile
//	GET  /healthz               liveness
//	GET  /metrics               Prometheus exposition
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/metrics"
)

// Defaults for Options.
const (
	DefaultSearchTimeout = 10 * time.Second
	DefaultMaxCells      = 1 << 20
	DefaultMaxBodyBytes  = 8 << 20
)

// Options configures a Server.
type Options struct {
	Profiles      *config.Profiles
	Logger        *slog.Logger
	Registry      *prometheus.Registry
	SearchTimeout time.Duration
	MaxCells      int
	MaxBodyBytes  int64
}

// Option represents a functional option for NewServer.
type Option func(*Options)

// WithProfiles sets the profiles that requests may name.
func WithProfiles(ps *config.Profiles) Option {
	return func(o *Options) { o.Profiles = ps }
}

// WithLogger sets the base logger; every request gets a child of it.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRegistry sets the registry that collects search metrics and backs
// /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *Options) { o.Registry = reg }
}

// WithSearchTimeout bounds the duration of a single search.
func WithSearchTimeout(d time.Duration) Option {
	return func(o *Options) { o.SearchTimeout = d }
}

// WithMaxCells rejects grids with more cells than n.
func WithMaxCells(n int) Option {
	return func(o *Options) { o.MaxCells = n }
}

// Server is the HTTP API. It implements http.Handler.
type Server struct {
	opts     Options
	router   *mux.Router
	recorder *metrics.Recorder
}

// NewServer builds a Server. Without WithRegistry a fresh registry with the
// Go and process collectors is used.
func NewServer(opts ...Option) *Server {
	cfg := Options{
		SearchTimeout: DefaultSearchTimeout,
		MaxCells:      DefaultMaxCells,
		MaxBodyBytes:  DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = config.Builtin()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
		cfg.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	s := &Server{
		opts:     cfg,
		router:   mux.NewRouter(),
		recorder: metrics.NewRecorder(cfg.Registry),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestLogger)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodPost)
	api.HandleFunc("/heuristics", s.handleHeuristics).Methods(http.MethodGet)
	api.HandleFunc("/profiles", s.handleListProfiles).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{name}", s.handleGetProfile).Methods(http.MethodGet)

	s.router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.opts.Registry, promhttp.HandlerOpts{}))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// statusWriter remembers the status code written through it.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// requestLogger attaches a request-scoped logger to the context and logs
// one record per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.opts.Logger.With(
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		began := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r.WithContext(ctxlog.WithLogger(r.Context(), logger)))

		logger.Info("request handled",
			slog.Int("status", sw.status),
			slog.Duration("elapsed", time.Since(began)),
		)
	})
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

type errorResponse struct {
	Error     string `json:"error"`
	Connected *bool  `json:"connected,omitempty"`
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
