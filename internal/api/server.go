// Package api provides the HTTP server and handlers for the catalog.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cinelog/cinelog-server/internal/config"
	"github.com/cinelog/cinelog-server/internal/http/response"
	"github.com/cinelog/cinelog-server/internal/service"
)

// Services bundles the per-entity services the handlers depend on.
type Services struct {
	Title    *service.TitleService
	Genre    *service.GenreService
	Actor    *service.ActorService
	Director *service.DirectorService
	User     *service.UserService
	Review   *service.ReviewService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services Services
	router   *chi.Mux
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services Services, corsCfg config.CORSConfig, logger *slog.Logger) *Server {
	s := &Server{
		services: services,
		router:   chi.NewRouter(),
		logger:   logger,
	}

	s.setupMiddleware(corsCfg)
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware(corsCfg config.CORSConfig) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/movies", func(r chi.Router) {
		r.Get("/", s.handleListTitles)
		r.Post("/", s.handleCreateTitle)
		r.Put("/", s.handleUpsertTitle)
		r.Get("/{id}", s.handleGetTitle)
		r.Delete("/{id}", s.handleDeleteTitle)
	})

	s.router.Route("/actors", func(r chi.Router) {
		r.Get("/", s.handleListActors)
		r.Post("/", s.handleCreateActor)
		r.Get("/{id}", s.handleGetActor)
		r.Put("/{id}", s.handleUpdateActor)
		r.Delete("/{id}", s.handleDeleteActor)
	})

	s.router.Route("/directors", func(r chi.Router) {
		r.Get("/", s.handleListDirectors)
		r.Post("/", s.handleCreateDirector)
		r.Get("/{id}", s.handleGetDirector)
		r.Patch("/{id}", s.handlePatchDirector)
		r.Get("/{id}/movies", s.handleListDirectorTitles)
	})

	s.router.Route("/genres", func(r chi.Router) {
		r.Post("/", s.handleCreateGenre)
		r.Delete("/{id}", s.handleDeleteGenre)
	})

	s.router.Route("/reviews", func(r chi.Router) {
		r.Get("/", s.handleListReviews)
		r.Post("/", s.handleCreateReview)
		r.Get("/{id}", s.handleGetReview)
		r.Put("/{id}", s.handleUpdateReview)
		r.Delete("/{id}", s.handleDeleteReview)
		r.Patch("/{id}/comentario", s.handleUpdateReviewComment)
	})

	s.router.Route("/usuarios", func(r chi.Router) {
		r.Get("/", s.handleListUsers)
		r.Post("/register", s.handleRegisterUser)
		r.Get("/{id}", s.handleGetUser)
		r.Put("/{id}", s.handleUpdateUserProfile)
		r.Patch("/{id}/password", s.handleChangePassword)
		r.Patch("/{id}/alias", s.handleChangeAlias)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, "healthy", map[string]string{"status": "healthy"}, s.logger)
}
