// Package model defines the EduConnect records and the read-only views built
// from them.
//
// Every record here is stored as one element of a named collection (see
// internal/storage). The `json:"..."` tags fix the persisted field names, so
// renaming a tag changes the storage layout.
package model

import "time"

// User represents a registered account.
//
// Password is stored exactly as typed and Login compares it as a plain
// string. Accounts are a demo identity, not a security boundary.
//
// Email is the natural key: it is unique across all users and it is what a
// Session points at (see service.Session).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the shape of a User handed to presentation code.
// It drops the password so JSON responses never echo it back.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the presentation-safe view of u.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Placeholder labels used when a referenced user no longer exists.
// References are by id only and nothing enforces them at write time, so
// readers must tolerate dangling ids and show one of these instead.
const (
	UnknownUserName   = "Usuário"
	UnknownMentorName = "Mentor"
)

// FindUserByID returns the first user with the given id, or nil.
func FindUserByID(users []User, id string) *User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

// FindUserByEmail returns the first user whose email matches exactly, or nil.
// First match wins; email uniqueness is only guaranteed by Register.
func FindUserByEmail(users []User, email string) *User {
	for i := range users {
		if users[i].Email == email {
			return &users[i]
		}
	}
	return nil
}

// NameOr returns the user's name, or fallback when u is nil.
func (u *User) NameOr(fallback string) string {
	if u == nil {
		return fallback
	}
	return u.Name
}
