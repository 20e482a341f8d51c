// Package server wires storage, services, handlers and routes together and
// runs the HTTP server.
//
// DEPENDENCY INJECTION FLOW:
//
//	main: config.Load → backend.Open
//	server.New: storage.Store → services → handlers → chi routes
//
// Everything is assembled here (the composition root); no other package
// constructs its own dependencies.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/educonnect/internal/auth"
	"github.com/sakif/educonnect/internal/config"
	"github.com/sakif/educonnect/internal/handler"
	"github.com/sakif/educonnect/internal/middleware"
	"github.com/sakif/educonnect/internal/service"
	"github.com/sakif/educonnect/internal/storage"
	"github.com/sakif/educonnect/internal/storage/backend"
)

// Server is the HTTP server and the backend it owns.
type Server struct {
	router  *chi.Mux
	config  *config.Config
	logger  *slog.Logger
	backend *backend.Handle
}

// New builds the router on top of an already opened backend. The server
// closes the backend when Start returns.
func New(cfg *config.Config, b *backend.Handle, logger *slog.Logger) (*Server, error) {
	if err := cfg.ValidateServer(); err != nil {
		return nil, err
	}
	tokens, err := auth.NewTokenService(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("creating token service: %w", err)
	}

	s := &Server{
		router:  chi.NewRouter(),
		config:  cfg,
		logger:  logger,
		backend: b,
	}
	s.setupRoutes(storage.NewStore(b.KV, logger), tokens)
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes registers middleware and routes.
//
// ROUTE STRUCTURE:
// GET    /healthz                        → liveness
// POST   /api/auth/register              → register and log in
// POST   /api/auth/login                 → log in
// POST   /api/auth/logout                → log out
// GET    /api/auth/me                    → current user or 401
// GET    /api/groups                     → my groups              [auth]
// POST   /api/groups                     → create group           [auth]
// GET    /api/groups/available           → groups I can join      [auth]
// POST   /api/groups/{id}/join           → join group             [auth]
// GET    /api/mentorings                 → my mentorings          [auth]
// POST   /api/mentors                    → become a mentor        [auth]
// GET    /api/mentors/available          → other mentors          [auth]
// POST   /api/mentors/{userID}/connect   → connect with a mentor  [auth]
// GET    /api/materials                  → my materials           [auth]
// POST   /api/materials                  → share material         [auth]
// GET    /*                              → static front end (when STATIC_DIR is set)
//
// [auth] routes redirect to LOGIN_PATH (303) when nobody is logged in.
func (s *Server) setupRoutes(store *storage.Store, tokens *auth.TokenService) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	deps := service.Deps{Store: store, Logger: s.logger}
	authService := service.NewAuthService(deps, s.config.LoginPath)

	authHandler := handler.NewAuthHandler(authService, tokens, s.logger)
	groupHandler := handler.NewGroupHandler(service.NewGroupService(deps), s.logger)
	mentorHandler := handler.NewMentorHandler(service.NewMentorService(deps), s.logger)
	materialHandler := handler.NewMaterialHandler(service.NewMaterialService(deps), s.logger)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	s.router.Route("/api", func(r chi.Router) {
		r.NotFound(handler.HandleNotFound)
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)
		r.Get("/auth/me", authHandler.HandleMe)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(authService, tokens, s.logger))

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

	if s.config.StaticDir != "" {
		s.router.Handle("/*", http.FileServer(http.Dir(s.config.StaticDir)))
	}
}

// Start serves until SIGINT/SIGTERM, then drains in-flight requests for up
// to 30 seconds and closes the backend.
func (s *Server) Start() error {
	defer func() {
		if err := s.backend.Close(); err != nil {
			s.logger.Error("closing storage failed", slog.String("error", err.Error()))
		}
	}()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
			slog.String("storage", string(s.config.Storage.Driver)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
