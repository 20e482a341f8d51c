// Package auth carries the EduConnect session pointer across HTTP requests.
//
// SESSION CARRIER:
// The session pointer is just the logged-in user's email. Between requests
// it travels in the "session" cookie as an HS256-signed JWT:
//
//	HEADER.PAYLOAD.SIGNATURE
//	- Payload: {"sub":"a@x.com","iss":"educonnect","exp":1234567890}
//
// On each request the middleware verifies the token, copies the subject into
// a service.MemorySession and lets service.AuthService resolve it to a user.
// A valid token for an email that is no longer registered resolves to nobody.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "educonnect"

// DefaultTTL is how long a session token stays valid.
const DefaultTTL = 24 * time.Hour

// TokenService signs and verifies session tokens with one HMAC secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService. A ttl of zero means DefaultTTL.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: session secret must be at least 16 characters")
	}
	if ttl < 0 {
		return nil, fmt.Errorf("auth: negative session ttl %s", ttl)
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL is the lifetime of tokens issued by Generate.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

type claims struct {
	jwt.RegisteredClaims
}

// Generate signs a token whose subject is email.
func (s *TokenService) Generate(email string) (string, error) {
	return s.generate(email, s.ttl)
}

func (s *TokenService) generate(email string, ttl time.Duration) (string, error) {
	if email == "" {
		return "", errors.New("auth: empty token subject")
	}
	now := s.now()

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// Validate verifies tokenStr and returns the email stored in "sub".
//
// CHECKS (done by the jwt library):
//   - HS256 signature made with our secret
//   - "exp" present and in the future
//   - "iss" is "educonnect"
func (s *TokenService) Validate(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("auth: token expired")
		}
		return "", fmt.Errorf("auth: invalid token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("auth: invalid token claims")
	}
	if c.Subject == "" {
		return "", fmt.Errorf("auth: token has no subject")
	}
	return c.Subject, nil
}
