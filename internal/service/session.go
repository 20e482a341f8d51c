package service

import (
	"context"
	"sync"
)

// Session is the per-client pointer to the logged-in user: the user's
// email, or "" when nobody is logged in.
//
// It is passed explicitly to every AuthService call. It is created on login
// or registration and cleared on logout. Implementations:
//   - MemorySession: lives for one request (HTTP fills it from the cookie)
//   - storage.PersistentSession: kept in the store between runs (CLI)
type Session interface {
	Email(ctx context.Context) (string, error)
	SetEmail(ctx context.Context, email string) error
	Clear(ctx context.Context) error
}

// MemorySession holds the pointer in a field.
type MemorySession struct {
	mu    sync.Mutex
	email string
}

// NewMemorySession starts a session already pointing at email ("" for none).
func NewMemorySession(email string) *MemorySession {
	return &MemorySession{email: email}
}

func (s *MemorySession) Email(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email, nil
}

func (s *MemorySession) SetEmail(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.email = email
	return nil
}

func (s *MemorySession) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.email = ""
	return nil
}

// Navigator sends the client to another page. The HTTP driver answers with
// a redirect; the CLI prints a hint.
type Navigator interface {
	NavigateTo(url string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(url string)

func (f NavigatorFunc) NavigateTo(url string) { f(url) }
