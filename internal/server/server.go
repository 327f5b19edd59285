package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/LootLedger_Go/internal/appraisal"
	"github.com/osse101/LootLedger_Go/internal/catalog"
	"github.com/osse101/LootLedger_Go/internal/handler"
	"github.com/osse101/LootLedger_Go/internal/logger"
	"github.com/osse101/LootLedger_Go/internal/metrics"
)

// Server wraps the HTTP server and its router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
}

// Config carries the server wiring.
type Config struct {
	Port        int
	APIKey      string
	ServiceName string
	Version     string
	Catalog     *catalog.Catalog
	Appraiser   appraisal.Service
}

// New builds the router and returns a server ready to start.
func New(cfg Config) *Server {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware)
	r.Use(RequestSizeLimitMiddleware)
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(AuthMiddleware(cfg.APIKey))

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(cfg.Catalog))
	r.Get("/version", handler.HandleVersion(cfg.ServiceName, cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/appraise", handler.HandleAppraise(cfg.Appraiser))
		r.Get("/item", handler.HandleGetItem(cfg.Appraiser, cfg.Catalog))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		router: r,
	}
}

// Router exposes the mux for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins serving and blocks until the server stops.
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info("Server stopping")
	return s.httpServer.Shutdown(ctx)
}

// loggingMiddleware attaches a request ID to the context and logs each
// request with its duration. Health and metrics probes are skipped to
// keep the logs readable.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}
