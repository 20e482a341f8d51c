package storage

import (
	"context"
	"fmt"
)

// PersistentSession keeps the session pointer (the logged-in user's email)
// under CurrentUserKey of a KV, so it survives between process runs.
// It satisfies service.Session.
type PersistentSession struct {
	kv KV
}

func NewPersistentSession(kv KV) *PersistentSession {
	return &PersistentSession{kv: kv}
}

// Email returns the stored pointer, or "" when nobody is logged in.
func (s *PersistentSession) Email(ctx context.Context) (string, error) {
	email, _, err := s.kv.Get(ctx, CurrentUserKey)
	if err != nil {
		return "", fmt.Errorf("storage: reading session: %w", err)
	}
	return email, nil
}

func (s *PersistentSession) SetEmail(ctx context.Context, email string) error {
	if err := s.kv.Set(ctx, CurrentUserKey, email); err != nil {
		return fmt.Errorf("storage: writing session: %w", err)
	}
	return nil
}

func (s *PersistentSession) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, CurrentUserKey); err != nil {
		return fmt.Errorf("storage: clearing session: %w", err)
	}
	return nil
}
