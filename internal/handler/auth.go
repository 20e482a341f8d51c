package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/educonnect/internal/apperror"
	"github.com/sakif/educonnect/internal/auth"
	"github.com/sakif/educonnect/internal/service"
)

// AuthHandler exposes registration, login, logout and "who am I".
//
// Each request gets its own session built from the cookie; after the
// service call the session is written back as a new cookie (or a cleared
// one).
type AuthHandler struct {
	auth   *service.AuthService
	tokens *auth.TokenService
	logger *slog.Logger
}

func NewAuthHandler(authService *service.AuthService, tokens *auth.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, tokens: tokens, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates an account and logs it in.
//
// HTTP: POST /api/auth/register
// REQUEST BODY: {"name":"Ana","email":"a@x.com","password":"senha1","confirmPassword":"senha1"}
// RESPONSE: 201 with the public user and a session cookie.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.logger.Warn("invalid request body", slog.String("path", r.URL.Path))
		writeError(w, err)
		return
	}

	sess := auth.SessionFromRequest(r, h.tokens)
	user, err := h.auth.Register(r.Context(), sess, in)
	if err != nil {
		writeError(w, err)
		return
	}
	if !h.commit(w, r, sess) {
		return
	}
	writeJSON(w, http.StatusCreated, user.Public())
}

// HandleLogin checks the credentials and starts a session.
//
// HTTP: POST /api/auth/login
// REQUEST BODY: {"email":"a@x.com","password":"senha1"}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeJSON(w, r, &in); err != nil {
		h.logger.Warn("invalid request body", slog.String("path", r.URL.Path))
		writeError(w, err)
		return
	}

	sess := auth.SessionFromRequest(r, h.tokens)
	user, err := h.auth.Login(r.Context(), sess, in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if !h.commit(w, r, sess) {
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

// HandleLogout clears the session. The JSON body tells the front end where
// to go next.
//
// HTTP: POST /api/auth/logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromRequest(r, h.tokens)
	if err := h.auth.Logout(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	if !h.commit(w, r, sess) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"redirect": h.auth.LoginPath()})
}

// HandleMe returns the logged-in user, or 401 when the session does not
// resolve. Pages call it on load to decide whether to show the dashboard.
//
// HTTP: GET /api/auth/me
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromRequest(r, h.tokens)
	user, err := h.auth.CurrentUser(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		auth.ClearCookie(w)
		writeError(w, apperror.Unauthorized(service.MsgLoginRequired))
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

func (h *AuthHandler) commit(w http.ResponseWriter, r *http.Request, sess service.Session) bool {
	if err := auth.WriteSession(r.Context(), w, h.tokens, sess); err != nil {
		h.logger.Error("writing session cookie failed", slog.String("error", err.Error()))
		writeError(w, err)
		return false
	}
	return true
}
