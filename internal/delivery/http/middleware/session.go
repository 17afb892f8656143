package middleware

import (
	"context"
	"log/slog"
	"net/http"

	h "seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/domain"
)

type contextKey string

const adminKey contextKey = "admin"

// SetAdmin returns a context carrying the authenticated admin identity.
func SetAdmin(ctx context.Context, admin *domain.AdminIdentity) context.Context {
	return context.WithValue(ctx, adminKey, admin)
}

// AdminFromContext returns the admin identity set by RequireAdmin, if present.
func AdminFromContext(ctx context.Context) (*domain.AdminIdentity, bool) {
	admin, ok := ctx.Value(adminKey).(*domain.AdminIdentity)
	return admin, ok && admin != nil
}

// RequireAdmin returns a wrapper that reads the session cookie, verifies it and
// sets the admin identity in the request context. A missing, expired or forged
// token answers 401 with the same body and does not call next.
func RequireAdmin(auth domain.AuthService, cookie h.SessionCookie, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			admin, err := auth.CheckSession(cookie.Token(r))
			if err != nil {
				logger.DebugContext(r.Context(), "admin session rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "not authenticated")
				return
			}
			next(w, r.WithContext(SetAdmin(r.Context(), admin)))
		}
	}
}
