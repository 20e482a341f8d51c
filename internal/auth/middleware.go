package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/educonnect/internal/apperror"
	"github.com/sakif/educonnect/internal/model"
	"github.com/sakif/educonnect/internal/service"
)

// CookieName is the cookie holding the session token.
const CookieName = "session"

// contextKey keeps our context values out of reach of other packages.
type contextKey string

const userKey contextKey = "user"

// SessionFromRequest builds the per-request session from the cookie.
//
// A missing, expired or tampered token yields an empty session; the caller
// then sees "nobody logged in", exactly as after a logout.
func SessionFromRequest(r *http.Request, tokens *TokenService) *service.MemorySession {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return service.NewMemorySession("")
	}
	email, err := tokens.Validate(cookie.Value)
	if err != nil {
		return service.NewMemorySession("")
	}
	return service.NewMemorySession(email)
}

// WriteSession mirrors sess back into the response: a fresh token when it
// points at someone, an expired cookie when it is empty.
func WriteSession(ctx context.Context, w http.ResponseWriter, tokens *TokenService, sess service.Session) error {
	email, err := sess.Email(ctx)
	if err != nil {
		return err
	}
	if email == "" {
		ClearCookie(w)
		return nil
	}

	token, err := tokens.Generate(email)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokens.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearCookie tells the browser to drop the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireAuth guards the dashboard routes.
//
// It resolves the cookie through AuthService.RequireAuth. When nobody is
// logged in the client is redirected (303 See Other) to the login page and
// the chain stops; otherwise the user is stored in the request context.
func RequireAuth(authService *service.AuthService, tokens *TokenService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromRequest(r, tokens)
			nav := service.NavigatorFunc(func(url string) {
				ClearCookie(w)
				http.Redirect(w, r, url, http.StatusSeeOther)
			})

			user, err := authService.RequireAuth(r.Context(), sess, nav)
			if err != nil {
				if errors.Is(err, apperror.ErrUnauthorized) {
					return
				}
				logger.Error("resolving session failed",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal_error","message":"An internal error occurred"}` + "\n"))
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user RequireAuth resolved for this request.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok && user != nil
}

// WithUser stores user in ctx the way RequireAuth does. Handler tests use
// it to skip the cookie round trip.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}
