package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-signing-key"

func TestVerify_RoundTrip(t *testing.T) {
	token, err := Issue(testKey, "user-1", "a@example.com", time.Hour)
	require.NoError(t, err)

	s, err := NewVerifier(testKey).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, "a@example.com", s.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt, 5*time.Second)
}

func TestVerify_Rejects(t *testing.T) {
	good, err := Issue(testKey, "user-1", "", time.Hour)
	require.NoError(t, err)
	expired, err := Issue(testKey, "user-1", "", -time.Minute)
	require.NoError(t, err)
	noSubject, err := Issue(testKey, "", "", time.Hour)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := []struct {
		name  string
		key   string
		token string
	}{
		{"wrong key", "other-key", good},
		{"expired", testKey, expired},
		{"no subject", testKey, noSubject},
		{"alg none", testKey, none},
		{"garbage", testKey, "not-a-jwt"},
		{"no key", "", good},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewVerifier(c.key).Verify(c.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenSource(t *testing.T) {
	v := NewVerifier(testKey)

	s, err := NewTokenSource("", v).Session(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s, "no token means signed out")

	token, err := Issue(testKey, "user-9", "", time.Hour)
	require.NoError(t, err)
	s, err = NewTokenSource(token, v).Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-9", s.UserID)
}

func TestContextSource(t *testing.T) {
	s, err := ContextSource{}.Session(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)

	ctx := WithSession(context.Background(), &Session{UserID: "u"})
	s, err = ContextSource{}.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u", s.UserID)
}
