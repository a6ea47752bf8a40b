// Package api exposes the marketplace over HTTP: a chi router with huma
// operations for every resource, plus CORS, access logging and rate limiting
// of the login and registration endpoints.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/edinacircular/circular-server/internal/config"
	"github.com/edinacircular/circular-server/internal/http/response"
	"github.com/edinacircular/circular-server/internal/ratelimit"
	"github.com/edinacircular/circular-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store           *store.Store
	services        *Services
	router          *chi.Mux
	api             huma.API
	logger          *slog.Logger
	authRateLimiter *ratelimit.KeyedRateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, services *Services, cfg *config.Config, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	s := &Server{
		store:    st,
		services: services,
		router:   router,
		logger:   logger,
		authRateLimiter: ratelimit.New(
			ratelimit.PerMinute(cfg.Auth.RateLimit),
			cfg.Auth.RateBurst,
			ratelimit.DefaultIdleTTL,
		),
	}

	s.setupMiddleware(cfg.Server.CORSOrigins)

	RegisterErrorHandler()
	s.api = humachi.New(router, NewHumaConfig())

	s.setupRoutes()

	return s
}

// NewHumaConfig returns the OpenAPI configuration for the API. Responses are
// plain JSON, so the $schema link huma adds by default is switched off.
func NewHumaConfig() huma.Config {
	cfg := huma.DefaultConfig("Edina Circular API", "1.0.0")
	cfg.Info.Description = "Community item sharing: lend and give away items, request what you need."
	cfg.CreateHooks = nil
	return cfg
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API returns the huma API, mainly for tests.
func (s *Server) API() huma.API {
	return s.api
}

// Close releases background resources held by the server.
func (s *Server) Close() {
	s.authRateLimiter.Stop()
}

func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	s.router.Use(RateLimitMiddleware(s.authRateLimiter, s.logger, "/login", "/register"))

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "no route for "+r.Method+" "+r.URL.Path, s.logger)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.MethodNotAllowed(w, s.logger)
	})
}

func (s *Server) setupRoutes() {
	s.registerHealthRoutes()
	s.registerItemRoutes()
	s.registerRequestRoutes()
	s.registerUserRoutes()
	s.registerOutreachRoutes()
	s.registerMetricsRoutes()
}
