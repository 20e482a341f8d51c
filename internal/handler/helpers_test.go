package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/sakif/educonnect/internal/auth"
	"github.com/sakif/educonnect/internal/handler"
	"github.com/sakif/educonnect/internal/service"
	"github.com/sakif/educonnect/internal/storage"
)

// testAPI is the full /api surface on an in-memory store.
type testAPI struct {
	router http.Handler
	store  *storage.Store
	tokens *auth.TokenService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewStore(storage.NewMemoryKV(), logger)
	deps := service.Deps{Store: store, Logger: logger}

	tokens, err := auth.NewTokenService("handler-test-secret-0123456789", time.Hour)
	require.NoError(t, err)

	authService := service.NewAuthService(deps, "/login.html")
	authHandler := handler.NewAuthHandler(authService, tokens, logger)
	groupHandler := handler.NewGroupHandler(service.NewGroupService(deps), logger)
	mentorHandler := handler.NewMentorHandler(service.NewMentorService(deps), logger)
	materialHandler := handler.NewMaterialHandler(service.NewMaterialService(deps), logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.NotFound(handler.HandleNotFound)
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)
		r.Get("/auth/me", authHandler.HandleMe)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(authService, tokens, logger))
			r.Get("/groups", groupHandler.HandleListMine)
			r.Post("/groups", groupHandler.HandleCreate)
			r.Get("/groups/available", groupHandler.HandleListAvailable)
			r.Post("/groups/{id}/join", groupHandler.HandleJoin)
			r.Get("/mentorings", mentorHandler.HandleListMentorings)
			r.Post("/mentors", mentorHandler.HandleRegister)
			r.Get("/mentors/available", mentorHandler.HandleListAvailable)
			r.Post("/mentors/{userID}/connect", mentorHandler.HandleConnect)
			r.Get("/materials", materialHandler.HandleListMine)
			r.Post("/materials", materialHandler.HandleShare)
		})
	})

	return &testAPI{router: r, store: store, tokens: tokens}
}

// do sends body (JSON-encoded unless nil) with the given session cookie.
func (a *testAPI) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account over HTTP and returns its session cookie.
func (a *testAPI) register(t *testing.T, name, email string) (string, *http.Cookie) {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name": name, "email": email, "password": "senha1", "confirmPassword": "senha1",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user struct {
		ID string `json:"id"`
	}
	decode(t, rec, &user)
	return user.ID, sessionCookie(t, rec)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatalf("response has no %q cookie", auth.CookieName)
	return nil
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}
