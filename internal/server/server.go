package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/TribalScore_Go/internal/database"
	"github.com/osse101/TribalScore_Go/internal/eventlog"
	"github.com/osse101/TribalScore_Go/internal/handler"
	"github.com/osse101/TribalScore_Go/internal/logger"
	"github.com/osse101/TribalScore_Go/internal/metrics"
	"github.com/osse101/TribalScore_Go/internal/override"
	"github.com/osse101/TribalScore_Go/internal/pricing"
	"github.com/osse101/TribalScore_Go/internal/season"
	"github.com/osse101/TribalScore_Go/internal/standings"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
	Environment    string
}

// Services are the domain services the routes call
type Services struct {
	Standings standings.Service
	Override  override.Service
	Season    season.Service
	Pricing   pricing.Service
	EventLog  eventlog.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svcs Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, svcs),
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
		},
	}
}

// NewRouter builds the route tree. Read routes are public; everything under
// /api/v1/admin requires the API key.
func NewRouter(opts Options, dbPool database.Pool, svcs Services) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.Version, opts.Environment))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	standingsHandler := handler.NewStandingsHandler(svcs.Standings)
	pricesHandler := handler.NewPricesHandler(svcs.Pricing)
	overrideHandler := handler.NewOverrideHandler(svcs.Override)
	seasonHandler := handler.NewSeasonHandler(svcs.Season)
	eventLogHandler := handler.NewEventLogHandler(svcs.EventLog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/leaderboard", standingsHandler.HandleGetLeaderboard)
		r.Get("/teams/{userID}", standingsHandler.HandleGetTeam)
		r.Get("/contestants/{contestantID}/points", standingsHandler.HandleGetContestantPoints)
		r.Get("/prices", pricesHandler.HandleGetPrices)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))

			r.Post("/outcomes", seasonHandler.HandleRecordOutcome)
			r.Get("/outcomes/{episode}", seasonHandler.HandleGetOutcome)

			r.Route("/overrides", func(r chi.Router) {
				r.Delete("/", overrideHandler.HandleClearAll)
				r.Put("/category", overrideHandler.HandleSetCategoryOverride)
				r.Delete("/category", overrideHandler.HandleDeleteCategoryOverride)
				r.Put("/total", overrideHandler.HandleSetTotalOverride)
				r.Delete("/total", overrideHandler.HandleDeleteTotalOverride)
				r.Get("/episode/{episode}", overrideHandler.HandleGetEpisodeOverrides)
				r.Delete("/episode/{episode}", overrideHandler.HandleClearEpisode)
			})

			r.Post("/materialize", overrideHandler.HandleMaterializeAll)
			r.Post("/materialize/{episode}", overrideHandler.HandleMaterializeEpisode)
			r.Post("/prices/recompute", pricesHandler.HandleRecomputePrices)
			r.Get("/events", eventLogHandler.HandleListEvents)

			r.Route("/config", func(r chi.Router) {
				r.Get("/scoring", seasonHandler.HandleGetScoringConfig)
				r.Put("/scoring", seasonHandler.HandleSaveScoringConfig)
				r.Get("/bps", seasonHandler.HandleGetBPSConfig)
				r.Put("/bps", seasonHandler.HandleSaveBPSConfig)
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
