package controllers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	h "seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/domain"
)

// LoginRequest is the request body for POST /admin/token. It is accepted as
// JSON or as an url-encoded form.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

// LoginResponse is the data payload of a successful login. The token itself is
// only sent in the http-only session cookie.
type LoginResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginSuccessResponse is the success response envelope for POST /admin/token (200).
type LoginSuccessResponse struct {
	Data  LoginResponse `json:"data"`
	Error *h.APIError   `json:"error"`
}

// SessionStatus is the data payload of GET /admin/check.
type SessionStatus struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
	Cookie  h.SessionCookie
	Clock   domain.Clock
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, cookie h.SessionCookie, clock domain.Clock) *AuthController {
	if clock == nil {
		clock = domain.SystemClock()
	}
	return &AuthController{
		Logger:  logger,
		Service: svc,
		Cookie:  cookie,
		Clock:   clock,
	}
}

// Login godoc
// @Summary Log in as admin
// @Description Verifies the admin credentials and sets the session token as an http-only cookie. Limited to a few attempts per hour and client.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body LoginRequest true "Admin credentials"
// @Success 200 {object} controllers.LoginSuccessResponse "data contains the session expiry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/token [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeLogin(w, r)
	if !ok {
		return
	}
	session, err := c.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		h.WriteServiceError(w, r, c.Logger, err, "not found")
		return
	}
	c.Cookie.Set(w, session.Token, c.Clock.Now(), session.ExpiresAt)
	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{ExpiresAt: session.ExpiresAt})
}

// decodeLogin reads the credentials from a form or a JSON body and validates them.
func decodeLogin(w http.ResponseWriter, r *http.Request) (LoginRequest, bool) {
	var req LoginRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/x-www-form-urlencoded" {
		return req, h.DecodeAndValidate(w, r, &req)
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := r.ParseForm(); err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return req, false
	}
	req.Username = r.PostForm.Get("username")
	req.Password = r.PostForm.Get("password")
	if errs := h.ValidateStruct(&req); len(errs) > 0 {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, strings.Join(errs, "; "))
		return req, false
	}
	return req, true
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie. The token itself stays valid until it expires.
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} helpers.APIResponse "data.message: logged out"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.Cookie.Clear(w)
	h.WriteJSONSuccess(w, http.StatusOK, h.MessageResponse{Message: "logged out"})
}

// Check godoc
// @Summary Check the admin session
// @Description Reports whether the request carries a valid admin session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains authenticated and username"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/check [get]
func (c *AuthController) Check(w http.ResponseWriter, r *http.Request) {
	admin, err := c.Service.CheckSession(c.Cookie.Token(r))
	if err != nil {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "not authenticated")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, SessionStatus{Authenticated: true, Username: admin.Username})
}
