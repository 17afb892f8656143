package helpers

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "access_token"

// SessionCookie describes how the admin session cookie is written.
type SessionCookie struct {
	Name     string
	MaxAge   time.Duration
	Secure   bool
	SameSite http.SameSite
}

// Set writes the session token as an http-only cookie. The cookie expires after
// MaxAge or at expiresAt, whichever comes first.
func (c SessionCookie) Set(w http.ResponseWriter, token string, now, expiresAt time.Time) {
	expires := now.Add(c.MaxAge)
	if expiresAt.Before(expires) {
		expires = expiresAt
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(expires.Sub(now).Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

// Clear removes the session cookie from the client.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

// Token returns the session token sent by the client, or "".
func (c SessionCookie) Token(r *http.Request) string {
	cookie, err := r.Cookie(c.name())
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (c SessionCookie) name() string {
	if c.Name == "" {
		return SessionCookieName
	}
	return c.Name
}

// ParseSameSite maps "strict", "lax" or "none" to http.SameSite. Anything else is Strict.
func ParseSameSite(s string) http.SameSite {
	switch s {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
