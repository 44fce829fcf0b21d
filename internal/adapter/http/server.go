package adapthttp

import (
	"log/slog"
	"net/http"
	"time"

	"profileboard/internal/app"
	"profileboard/internal/domain"
)

// Renderer produces the HTML pages served by the public read handlers.
// Markup is presentation glue owned by the render package.
type Renderer interface {
	ProfileList(profiles []domain.Profile) ([]byte, error)
	AdminTeam(admins []domain.AdminProfile) ([]byte, error)
	ProfileDetail(p domain.Profile) ([]byte, error)
}

// Options carries the handler-facing configuration of the server.
type Options struct {
	SessionDuration time.Duration
	MaxRequestBytes int64
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	profiles *app.ProfileService
	auth     *app.AuthService
	renderer Renderer
	logger   *slog.Logger
	opts     Options
}

// New creates a Server wired to the given application services.
func New(profiles *app.ProfileService, auth *app.AuthService, renderer Renderer, logger *slog.Logger, opts Options) *Server {
	return &Server{
		profiles: profiles,
		auth:     auth,
		renderer: renderer,
		logger:   logger,
		opts:     opts,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	router := NewRouter()

	router.Get("/", s.handleHome)
	router.Get("/admin", s.handleAdminTeam)
	router.Get("/profile/:id", s.handleProfileDetail)

	router.Get("/api/health", s.handleHealth)
	router.Get("/api/session", s.handleCheckSession)
	router.Post("/api/login", s.handleLogin)
	router.Post("/api/logout", s.handleLogout)
	router.Post("/api/profiles", s.handleAddProfile)

	return securityHeaders(s.loggingMiddleware(router))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ Params) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
