// Package auth resolves the signed-in user from a session token.
//
// Sign-up and sign-in happen outside this program. It only verifies an
// HS256 session token issued by the hosted auth service and reads the user
// id from its subject claim.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// Session is the signed-in user.
type Session struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// SessionSource reports the current session. It returns (nil, nil) when
// nobody is signed in.
type SessionSource interface {
	Session(ctx context.Context) (*Session, error)
}

// Claims are the session token claims.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Verifier checks session tokens against a shared key.
type Verifier struct {
	key []byte
}

func NewVerifier(key string) *Verifier {
	return &Verifier{key: []byte(key)}
}

// Verify parses tokenStr and returns its session.
func (v *Verifier) Verify(tokenStr string) (*Session, error) {
	if len(v.key) == 0 {
		return nil, fmt.Errorf("%w: no verification key configured", ErrInvalidToken)
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	s := &Session{UserID: claims.Subject, Email: claims.Email}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// Issue signs a session token. Used by the local `dayne session` helper
// and tests.
func Issue(key, userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
}

// TokenSource is a SessionSource backed by a fixed token, typically from
// DAYNE_SESSION_TOKEN.
type TokenSource struct {
	token    string
	verifier *Verifier
}

func NewTokenSource(token string, v *Verifier) *TokenSource {
	return &TokenSource{token: token, verifier: v}
}

// Session returns nil when no token is configured. An expired or forged
// token is an error.
func (s *TokenSource) Session(context.Context) (*Session, error) {
	if s == nil || s.token == "" {
		return nil, nil
	}
	return s.verifier.Verify(s.token)
}

type sessionKey struct{}

// WithSession attaches a session to ctx.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session attached by WithSession, if any.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}

// ContextSource is a SessionSource reading the request-scoped session.
type ContextSource struct{}

func (ContextSource) Session(ctx context.Context) (*Session, error) {
	return FromContext(ctx), nil
}
