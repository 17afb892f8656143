package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"seminarmanager/internal/delivery/http/controllers"
	h "seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/delivery/http/middleware"
	"seminarmanager/internal/domain"
	"seminarmanager/internal/metrics"
)

// Controllers bundles the handlers mounted by NewRouter.
type Controllers struct {
	Auth         *controllers.AuthController
	Seminar      *controllers.SeminarController
	Location     *controllers.LocationController
	Registration *controllers.RegistrationController
	Contact      *controllers.ContactController
	Health       *controllers.HealthController
}

// RouterConfig holds what the middleware chain needs.
type RouterConfig struct {
	Logger       *slog.Logger
	AuthService  domain.AuthService
	Cookie       h.SessionCookie
	LoginLimiter *middleware.LoginRateLimiter
	CORSOrigins  []string
}

// NewRouter initializes the HTTP router with all application routes.
// Requests pass CORS, then request logging, then metrics before reaching the mux.
func NewRouter(c Controllers, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(cfg.AuthService, cfg.Cookie, cfg.Logger)

	// Admin session
	mux.HandleFunc("POST /admin/token", cfg.LoginLimiter.Wrap(c.Auth.Login))
	mux.HandleFunc("GET /admin/check", c.Auth.Check)
	mux.HandleFunc("POST /admin/logout", admin(c.Auth.Logout))

	// Seminars
	mux.HandleFunc("GET /seminars", c.Seminar.List)
	mux.HandleFunc("GET /seminars/count", c.Seminar.Count)
	mux.HandleFunc("GET /seminars/{id}", c.Seminar.Get)
	mux.HandleFunc("POST /seminars", admin(c.Seminar.Create))
	mux.HandleFunc("PUT /seminars/{id}", admin(c.Seminar.Update))
	mux.HandleFunc("DELETE /seminars/{id}", admin(c.Seminar.Delete))

	// Registrations
	mux.HandleFunc("POST /seminars/{id}/register", c.Registration.Register)
	mux.HandleFunc("GET /seminars/{id}/unregister", c.Registration.Unregister)
	mux.HandleFunc("GET /seminars/{id}/participants", admin(c.Registration.ListParticipants))
	mux.HandleFunc("GET /admin/seminars/{id}/participants/pdf", admin(c.Registration.ParticipantSheet))

	// Locations
	mux.HandleFunc("GET /locations", c.Location.List)
	mux.HandleFunc("GET /locations/{id}", c.Location.Get)
	mux.HandleFunc("POST /locations", admin(c.Location.Create))
	mux.HandleFunc("PUT /locations/{id}", admin(c.Location.Update))
	mux.HandleFunc("DELETE /locations/{id}", admin(c.Location.Delete))

	// Contact
	mux.HandleFunc("POST /contact", c.Contact.Submit)

	// Operations
	mux.HandleFunc("GET /healthz", c.Health.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = metrics.HTTPMiddleware(mux)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	return middleware.CORS(cfg.CORSOrigins, handler)
}
