// Package service holds the business logic: the session/auth service and the
// domain operations behind every dashboard panel.
//
// Services only talk to storage through storage.Store and never know which
// backend sits behind it, so tests run them on storage.MemoryKV.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sakif/educonnect/internal/apperror"
	"github.com/sakif/educonnect/internal/model"
	"github.com/sakif/educonnect/internal/storage"
)

// DefaultLoginPath is where RequireAuth sends clients without a session.
const DefaultLoginPath = "/login.html"

// AuthService resolves sessions and handles login, registration and logout.
//
// Lookups are linear scans over the users collection, first match wins.
type AuthService struct {
	users     *storage.Collection[model.User]
	ids       IDGenerator
	now       func() time.Time
	loginPath string
	logger    *slog.Logger
}

// NewAuthService builds the service. An empty loginPath means DefaultLoginPath.
func NewAuthService(d Deps, loginPath string) *AuthService {
	d = d.withDefaults()
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	return &AuthService{
		users:     d.Store.Users,
		ids:       d.IDs,
		now:       d.Now,
		loginPath: loginPath,
		logger:    d.Logger,
	}
}

// RegisterInput is what the registration form submits.
// ConfirmPassword is optional; when present, even as "", it must equal
// Password.
type RegisterInput struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword *string `json:"confirmPassword,omitempty"`
}

// CurrentUser resolves the session pointer to a full user record.
//
// It returns nil (and no error) when there is no pointer or when the pointer
// names an email that is no longer in the users collection.
func (s *AuthService) CurrentUser(ctx context.Context, sess Session) (*model.User, error) {
	email, err := sess.Email(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/auth: reading session: %w", err)
	}
	if email == "" {
		return nil, nil
	}

	users, err := s.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/auth: loading users: %w", err)
	}
	return model.FindUserByEmail(users, email), nil
}

// Login succeeds when a user with exactly this email and password exists.
// On success the session points at that email.
func (s *AuthService) Login(ctx context.Context, sess Session, email, password string) (*model.User, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/auth: loading users: %w", err)
	}

	var found *model.User
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			found = &users[i]
			break
		}
	}
	if found == nil {
		s.logger.Warn("login rejected", slog.String("email", email))
		return nil, apperror.ValidationFailed("email", MsgInvalidCredentials)
	}

	if err := sess.SetEmail(ctx, found.Email); err != nil {
		return nil, fmt.Errorf("service/auth: starting session: %w", err)
	}

	s.logger.Info("user logged in", slog.String("userID", found.ID))
	return found, nil
}

// Register creates an account and logs it in.
//
// The duplicate-email check and the append happen in one read-modify-write
// cycle, so two registrations for the same email never both succeed within
// this process.
func (s *AuthService) Register(ctx context.Context, sess Session, in RegisterInput) (*model.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", MsgNameRequired)
	}
	if in.Email == "" {
		return nil, apperror.ValidationFailed("email", MsgEmailRequired)
	}
	if in.ConfirmPassword != nil && *in.ConfirmPassword != in.Password {
		return nil, apperror.ValidationFailed("confirmPassword", MsgPasswordMismatch)
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return nil, apperror.ValidationFailed("password", MsgPasswordTooShort)
	}

	user := model.User{
		ID:        s.ids.NewID(),
		Name:      name,
		Email:     in.Email,
		Password:  in.Password,
		CreatedAt: s.now(),
	}

	taken := false
	err := s.users.Update(ctx, func(users []model.User) ([]model.User, bool) {
		if model.FindUserByEmail(users, user.Email) != nil {
			taken = true
			return users, false
		}
		return append(users, user), true
	})
	if err != nil {
		return nil, fmt.Errorf("service/auth: saving user: %w", err)
	}
	if taken {
		return nil, apperror.ValidationFailed("email", MsgEmailTaken)
	}

	if err := sess.SetEmail(ctx, user.Email); err != nil {
		return nil, fmt.Errorf("service/auth: starting session: %w", err)
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("email", user.Email),
	)
	return &user, nil
}

// Logout clears the session pointer. Where the client goes next is up to
// the caller.
func (s *AuthService) Logout(ctx context.Context, sess Session) error {
	if err := sess.Clear(ctx); err != nil {
		return fmt.Errorf("service/auth: clearing session: %w", err)
	}
	return nil
}

// RequireAuth returns the current user, or sends the client to the login
// page and returns an ErrUnauthorized AppError when the session does not
// resolve.
func (s *AuthService) RequireAuth(ctx context.Context, sess Session, nav Navigator) (*model.User, error) {
	user, err := s.CurrentUser(ctx, sess)
	if err != nil {
		return nil, err
	}
	if user == nil {
		nav.NavigateTo(s.loginPath)
		return nil, apperror.Unauthorized(MsgLoginRequired)
	}
	return user, nil
}

// LoginPath is where RequireAuth redirects.
func (s *AuthService) LoginPath() string {
	return s.loginPath
}
